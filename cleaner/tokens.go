package cleaner

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// EstimateTokens provides a fast token count estimate without importing tiktoken.
//
// Heuristic: latin text averages ~4 chars/token, CJK text ~1.5 chars/token.
// CJK runes are weighted accordingly and everything else counts as 1/4.
func EstimateTokens(text string) int {
	if text == "" {
		return 0
	}
	var latin, cjk int
	for _, r := range text {
		if isCJK(r) {
			cjk++
		} else {
			latin++
		}
	}
	est := latin/4 + (cjk*2)/3
	if est < 1 {
		return 1
	}
	return est
}

// Truncate shortens text to roughly maxTokens, cutting at the last word
// boundary. Text already within budget is returned unchanged.
func Truncate(text string, maxTokens int) string {
	if maxTokens <= 0 {
		return ""
	}
	if EstimateTokens(text) <= maxTokens {
		return text
	}

	// Walk runes until the budget is spent.
	var latin, cjk, cut int
	for i, r := range text {
		if isCJK(r) {
			cjk++
		} else {
			latin++
		}
		if latin/4+(cjk*2)/3 > maxTokens {
			cut = i
			break
		}
	}
	out := text[:cut]
	if idx := strings.LastIndexFunc(out, unicode.IsSpace); idx > 0 {
		out = out[:idx]
	}
	return strings.TrimSpace(out) + "…"
}

func isCJK(r rune) bool {
	return r >= utf8.RuneSelf && (unicode.Is(unicode.Han, r) ||
		unicode.Is(unicode.Hiragana, r) ||
		unicode.Is(unicode.Katakana, r) ||
		unicode.Is(unicode.Hangul, r))
}

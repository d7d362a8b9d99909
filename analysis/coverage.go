package analysis

import (
	"sort"
	"strings"
	"unicode"

	"github.com/antzucaro/matchr"

	"github.com/use-agent/listingscout/models"
)

// similarWord is the Jaro-Winkler score at which two words count as the
// same term ("bottle" vs "bottles").
const similarWord = 0.9

// maxGapTerms caps the terms handed to the keyword gap prompt.
const maxGapTerms = 20

var stopWords = map[string]bool{
	"and": true, "the": true, "for": true, "with": true, "from": true,
	"your": true, "you": true, "this": true, "that": true, "pack": true,
	"set": true, "pcs": true, "new": true, "are": true, "its": true,
	"into": true, "our": true, "all": true, "per": true, "not": true,
}

// CoverageGaps returns words that appear in competitor titles but have no
// close match anywhere in the listing text. Terms used by more competitors
// come first.
func CoverageGaps(listing string, competitors []models.Competitor) []string {
	have := tokens(listing)
	counts := make(map[string]int)
	var order []string

	for _, c := range competitors {
		seen := make(map[string]bool)
		for _, w := range tokens(c.Title) {
			if seen[w] {
				continue
			}
			seen[w] = true
			if covered(w, have) {
				continue
			}
			if counts[w] == 0 {
				order = append(order, w)
			}
			counts[w]++
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	return head(order, maxGapTerms)
}

func covered(word string, have []string) bool {
	for _, h := range have {
		if h == word || matchr.JaroWinkler(word, h, false) >= similarWord {
			return true
		}
	}
	return false
}

// tokens lowercases s and splits it into words of three or more letters,
// dropping stop words and pure numbers.
func tokens(s string) []string {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	out := fields[:0]
	for _, f := range fields {
		if len([]rune(f)) < 3 || stopWords[f] || isNumber(f) {
			continue
		}
		out = append(out, f)
	}
	return out
}

func isNumber(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

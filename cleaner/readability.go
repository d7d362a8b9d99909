package cleaner

import (
	"log/slog"
	nurl "net/url"
	"strings"

	readability "github.com/go-shiori/go-readability"
)

// minContentLength is the minimum TextContent length (in characters) for
// readability output to be considered valid.
const minContentLength = 50

// ReadableText runs the Mozilla Readability algorithm on a product page and
// returns its main text with whitespace collapsed. When readability finds
// no meaningful body it falls back to PrunedText, and returns "" if that
// is short too.
func ReadableText(rawHTML string, sourceURL string) string {
	if text := readable(rawHTML, sourceURL); len(text) >= minContentLength {
		return text
	}
	if text := PrunedText(rawHTML); len(text) >= minContentLength {
		return text
	}
	return ""
}

func readable(rawHTML, sourceURL string) string {
	parsedURL, err := nurl.Parse(sourceURL)
	if err != nil {
		slog.Warn("readability: invalid source URL",
			slog.String("url", sourceURL), slog.Any("error", err),
		)
		return ""
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), parsedURL)
	if err != nil {
		slog.Debug("readability: extraction failed",
			slog.String("url", sourceURL), slog.Any("error", err),
		)
		return ""
	}
	return CollapseSpace(article.TextContent)
}

package cleaner

import (
	"strings"
	"sync"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
)

var (
	mdOnce sync.Once
	mdConv *converter.Converter
)

// markdownConverter returns the shared goroutine-safe converter:
//
//   - base plugin: strips script, style, iframe, noscript and comments.
//   - commonmark plugin: standard Markdown rendering.
//   - table plugin: keeps comparison charts readable with minimal padding.
func markdownConverter() *converter.Converter {
	mdOnce.Do(func() {
		mdConv = converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(),
				table.NewTablePlugin(
					table.WithCellPaddingBehavior(table.CellPaddingBehaviorMinimal),
				),
			),
		)
	})
	return mdConv
}

// DescriptionMarkdown turns an A+ content block into compact Markdown.
// Images, buttons and scripts are removed first; relative links resolve
// against domain.
func DescriptionMarkdown(htmlContent, domain string) (string, error) {
	stripped, err := StripNoise(htmlContent)
	if err != nil {
		return "", err
	}
	md, err := markdownConverter().ConvertString(stripped, converter.WithDomain(domain))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(md), nil
}

package cleaner

import (
	"math"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Signal weights for the block scorer.
const (
	wTextDensity = 3.0
	wLinkDensity = -2.0
	wClassID     = 1.0
	wTextLength  = 0.5
)

// Class and id fragments that mark listing copy versus page chrome on
// product pages.
var (
	listingHints = []string{"description", "feature", "aplus", "detail", "bullet", "product"}
	chromeHints  = []string{"nav", "footer", "header", "carousel", "sims", "rhf", "ad-", "sponsored", "review", "buybox", "cart"}
)

// PrunedText keeps the blocks of a product page that look like listing
// copy and returns their text with whitespace collapsed. It is the last
// resort when no description selector matched and readability found
// nothing.
func PrunedText(rawHTML string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return ""
	}
	doc.Find("script, style, noscript").Remove()

	root := doc.Find("#dp-container").First()
	if root.Length() == 0 {
		root = doc.Find("body")
	}

	var kept []string
	root.Children().Each(func(_ int, el *goquery.Selection) {
		if blockScore(el) > 0 {
			if t := CollapseSpace(el.Text()); t != "" {
				kept = append(kept, t)
			}
		}
	})
	return strings.Join(kept, " ")
}

func blockScore(el *goquery.Selection) float64 {
	outer, err := goquery.OuterHtml(el)
	if err != nil || outer == "" {
		return 0
	}
	text := strings.TrimSpace(el.Text())
	if text == "" {
		return 0
	}

	linkText := 0
	el.Find("a").Each(func(_ int, a *goquery.Selection) {
		linkText += len(strings.TrimSpace(a.Text()))
	})

	textDensity := float64(len(text)) / float64(len(outer))
	linkDensity := float64(linkText) / float64(len(text))

	return textDensity*wTextDensity +
		linkDensity*wLinkDensity +
		classIDScore(el)*wClassID +
		math.Log10(float64(len(text))+1)*wTextLength
}

// classIDScore is +3 when class or id names listing copy and -3 when it
// names page chrome. A block can earn both.
func classIDScore(el *goquery.Selection) float64 {
	class, _ := el.Attr("class")
	id, _ := el.Attr("id")
	combined := strings.ToLower(class + " " + id)

	score := 0.0
	for _, h := range listingHints {
		if strings.Contains(combined, h) {
			score += 3
			break
		}
	}
	for _, h := range chromeHints {
		if strings.Contains(combined, h) {
			score -= 3
			break
		}
	}
	return score
}

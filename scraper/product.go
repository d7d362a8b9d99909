package scraper

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/use-agent/listingscout/cleaner"
	"github.com/use-agent/listingscout/models"
)

// maxRelated caps the related product cards kept from a detail page.
const maxRelated = 10

var asinInPath = regexp.MustCompile(`/dp/([A-Z0-9]{10})`)

// ASINFromURL extracts the ASIN from a /dp/ product URL, or "".
func ASINFromURL(raw string) string {
	path := raw
	if u, err := url.Parse(raw); err == nil && u.Path != "" {
		path = u.Path
	}
	if m := asinInPath.FindStringSubmatch(path); m != nil {
		return m[1]
	}
	return ""
}

// ParseProduct extracts a product record from a rendered detail page.
// It fails with PARSE_FAILED when the page has no #productTitle.
func ParseProduct(html, pageURL string) (*models.Product, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, models.NewScrapeError(models.ErrCodeParse, "failed to parse product page", err)
	}

	title := text(doc.Selection, "#productTitle")
	if title == "" {
		return nil, models.NewScrapeError(models.ErrCodeParse, "product title not found", nil)
	}

	p := &models.Product{
		Title:          title,
		Price:          firstText(doc.Selection, ".a-price-whole", ".a-offscreen"),
		Rating:         text(doc.Selection, ".a-icon-alt"),
		ReviewCount:    firstText(doc.Selection, `[data-hook="total-review-count"]`, "#acrCustomerReviewText"),
		Availability:   text(doc.Selection, "#availability span"),
		Brand:          text(doc.Selection, "#bylineInfo"),
		Category:       cleaner.CollapseSpace(text(doc.Selection, "#wayfinding-breadcrumbs_feature_div")),
		BulletPoints:   texts(doc.Selection, "#feature-bullets ul span"),
		Description:    description(doc, html, pageURL),
		Images:         attrs(doc.Selection, "#altImages img", "src"),
		Variants:       texts(doc.Selection, "#variation_style_name .selection"),
		Specifications: specifications(doc),
		ASIN:           ASINFromURL(pageURL),
		URL:            pageURL,
	}
	p.RelatedProducts = relatedProducts(doc)
	return p, nil
}

// description prefers the plain description block, then the A+ content as
// markdown, then whatever readability can find.
func description(doc *goquery.Document, html, pageURL string) string {
	if d := text(doc.Selection, "#productDescription p"); d != "" {
		return d
	}
	if aplus := doc.Find("#aplus_feature_div").First(); aplus.Length() > 0 {
		if inner, err := goquery.OuterHtml(aplus); err == nil {
			if md, err := cleaner.DescriptionMarkdown(inner, hostOf(pageURL)); err == nil && md != "" {
				return md
			}
		}
		if t := strings.TrimSpace(aplus.Text()); t != "" {
			return cleaner.CollapseSpace(t)
		}
	}
	return cleaner.ReadableText(html, pageURL)
}

func specifications(doc *goquery.Document) []models.Specification {
	specs := []models.Specification{}
	doc.Find("#productDetails_techSpec_section_1 tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 2 {
			return
		}
		specs = append(specs, models.Specification{
			Key:   strings.TrimSpace(cells.Eq(0).Text()),
			Value: strings.TrimSpace(cells.Eq(1).Text()),
		})
	})
	return specs
}

// relatedProducts reads product cards embedded in a detail page with the
// first container selector that matches.
func relatedProducts(doc *goquery.Document) []models.RelatedProduct {
	out := []models.RelatedProduct{}
	for _, container := range []string{
		`[data-component-type="s-search-result"]`,
		".s-result-item",
		`[cel_widget_id*="MAIN-SEARCH_RESULTS"]`,
	} {
		cards := doc.Find(container)
		if cards.Length() == 0 {
			continue
		}
		cards.EachWithBreak(func(_ int, card *goquery.Selection) bool {
			title := firstText(card, "h2 a span", ".s-size-mini span")
			if title != "" {
				link, _ := card.Find("h2 a").First().Attr("href")
				out = append(out, models.RelatedProduct{
					Title:  title,
					Price:  firstText(card, ".a-price-whole", ".a-offscreen"),
					Rating: text(card, ".a-icon-alt"),
					Link:   link,
				})
			}
			return len(out) < maxRelated
		})
		break
	}
	return out
}

// text returns the trimmed text of the first match of sel.
func text(s *goquery.Selection, sel string) string {
	return strings.TrimSpace(s.Find(sel).First().Text())
}

// firstText tries each selector in order and returns the first non-empty
// text.
func firstText(s *goquery.Selection, sels ...string) string {
	for _, sel := range sels {
		if t := text(s, sel); t != "" {
			return t
		}
	}
	return ""
}

// texts returns the non-empty trimmed texts of every match of sel.
func texts(s *goquery.Selection, sel string) []string {
	out := []string{}
	s.Find(sel).Each(func(_ int, el *goquery.Selection) {
		if t := strings.TrimSpace(el.Text()); t != "" {
			out = append(out, t)
		}
	})
	return out
}

func attrs(s *goquery.Selection, sel, name string) []string {
	out := []string{}
	s.Find(sel).Each(func(_ int, el *goquery.Selection) {
		if v, ok := el.Attr(name); ok && v != "" {
			out = append(out, v)
		}
	})
	return out
}

func hostOf(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return u.Host
}

package scraper

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/use-agent/listingscout/models"
)

// strategy is one layout of the search results page. Each field lists
// candidate selectors tried in order within a result container.
type strategy struct {
	container   string
	title       []string
	price       []string
	rating      []string
	reviewCount []string
	link        []string
	image       []string
}

var strategies = []strategy{
	{
		container:   `[data-component-type="s-search-result"]`,
		title:       []string{"h2 a span", "h2 span", ".a-size-base-plus", ".a-size-medium"},
		price:       []string{".a-price .a-offscreen", ".a-price-whole", ".a-price-symbol", ".a-price-range"},
		rating:      []string{".a-icon-alt", ".a-star-5 .a-icon-alt"},
		reviewCount: []string{".a-size-base", ".a-link-normal"},
		link:        []string{"h2 a", ".a-link-normal"},
		image:       []string{".s-image", "img"},
	},
	{
		container:   ".s-result-item",
		title:       []string{"h2 a span", ".s-size-mini span", ".a-size-base-plus"},
		price:       []string{".a-price-whole", ".a-price .a-offscreen"},
		rating:      []string{".a-icon-alt"},
		reviewCount: []string{".a-size-base"},
		link:        []string{"h2 a", ".a-link-normal"},
		image:       []string{".s-image", "img"},
	},
	{
		container:   `[data-cy="title-recipe-title"], .puisg-row`,
		title:       []string{`[data-cy="title-recipe-title"] span`, "h2 span", ".a-size-base-plus"},
		price:       []string{".a-price-whole", ".a-price .a-offscreen"},
		rating:      []string{".a-icon-alt"},
		reviewCount: []string{".a-size-base", ".a-link-normal span"},
		link:        []string{"h2 a", ".a-link-normal"},
		image:       []string{".s-image", "img"},
	},
}

var (
	asinPatterns = []*regexp.Regexp{
		regexp.MustCompile(`/dp/([A-Z0-9]{10})`),
		regexp.MustCompile(`/gp/product/([A-Z0-9]{10})`),
		regexp.MustCompile(`asin=([A-Z0-9]{10})`),
	}
	ratingNumber = regexp.MustCompile(`(\d+\.?\d*)`)
	countDigits  = regexp.MustCompile(`([\d,]+)`)
)

// ParseSearch extracts up to max competitors from a search results page.
// Strategies are tried in order and the first one yielding any product
// wins. Relative links are resolved against linkBase.
func ParseSearch(html, linkBase string, max int) []models.Competitor {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return []models.Competitor{}
	}
	for _, st := range strategies {
		containers := doc.Find(st.container)
		if containers.Length() == 0 {
			continue
		}
		out := make([]models.Competitor, 0, max)
		containers.EachWithBreak(func(i int, el *goquery.Selection) bool {
			if i >= max {
				return false
			}
			if c, ok := st.parse(el, linkBase); ok {
				out = append(out, c)
			}
			return true
		})
		if len(out) > 0 {
			return out
		}
	}
	return []models.Competitor{}
}

func (st strategy) parse(el *goquery.Selection, linkBase string) (models.Competitor, bool) {
	titleEl := find(el, st.title)
	if titleEl == nil {
		return models.Competitor{}, false
	}
	title := strings.TrimSpace(titleEl.Text())
	if title == "" {
		return models.Competitor{}, false
	}

	var link, image string
	if l := find(el, st.link); l != nil {
		link, _ = l.Attr("href")
	}
	if img := find(el, st.image); img != nil {
		image, _ = img.Attr("src")
		if image == "" {
			image, _ = img.Attr("data-src")
		}
	}

	c := models.Competitor{
		Title:       title,
		Price:       selText(find(el, st.price)),
		Rating:      firstMatch(ratingNumber, selText(find(el, st.rating))),
		ReviewCount: firstMatch(countDigits, selText(find(el, st.reviewCount))),
		Link:        absolute(link, linkBase),
		Image:       image,
		ASIN:        asinFromLink(link),
	}
	return c, true
}

// find returns the first element matched by the earliest selector that
// matches anything, or nil.
func find(el *goquery.Selection, sels []string) *goquery.Selection {
	for _, sel := range sels {
		if m := el.Find(sel).First(); m.Length() > 0 {
			return m
		}
	}
	return nil
}

func selText(s *goquery.Selection) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(s.Text())
}

func firstMatch(re *regexp.Regexp, s string) string {
	if m := re.FindStringSubmatch(s); m != nil {
		return m[1]
	}
	return ""
}

func asinFromLink(link string) string {
	if link == "" {
		return ""
	}
	for _, re := range asinPatterns {
		if m := re.FindStringSubmatch(link); m != nil {
			return m[1]
		}
	}
	return ""
}

func absolute(link, base string) string {
	if strings.HasPrefix(link, "http") {
		return link
	}
	return base + link
}

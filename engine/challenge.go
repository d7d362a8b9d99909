package engine

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/use-agent/listingscout/models"
)

// challengeSelectors match Amazon's captcha and robot check interstitials.
var challengeSelectors = []string{
	"#captchacharacters",
	"form[action*='Captcha']",
	"img[src*='captcha']",
}

// IsChallenge reports whether the HTML is a bot challenge page rather than
// the requested content.
func IsChallenge(html, title string) bool {
	if strings.Contains(strings.ToLower(title), "robot check") {
		return true
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return false
	}
	if strings.Contains(strings.ToLower(doc.Find("title").First().Text()), "robot check") {
		return true
	}
	for _, sel := range challengeSelectors {
		if doc.Find(sel).Length() > 0 {
			return true
		}
	}
	return false
}

func checkChallenge(res *FetchResult) error {
	if IsChallenge(res.HTML, res.Title) {
		return models.NewScrapeError(
			models.ErrCodeBotChallenge,
			"bot challenge served by "+res.EngineName,
			nil,
		)
	}
	return nil
}

package research

import (
	"strings"

	"github.com/use-agent/listingscout/models"
	"github.com/use-agent/listingscout/scraper"
)

const (
	placeholderTitle = "Product Analysis"
	notAvailable     = "N/A"

	// placeholderQuery stands in for the title words of an unscraped product.
	placeholderQuery = "water dispenser pump"
)

// broadQueries are tried in order when the title search finds nothing.
var broadQueries = []string{"home kitchen", "electronics", "household items"}

// PlaceholderProduct is analysed in place of a product page that could not
// be scraped. Only the ASIN and URL come from the request.
func PlaceholderProduct(url string) *models.Product {
	return &models.Product{
		Title:           placeholderTitle,
		Brand:           "Unknown",
		Price:           notAvailable,
		Rating:          notAvailable,
		ReviewCount:     notAvailable,
		Category:        "Unknown",
		ASIN:            scraper.ASINFromURL(url),
		URL:             url,
		BulletPoints:    []string{},
		Images:          []string{},
		Variants:        []string{},
		Specifications:  []models.Specification{},
		RelatedProducts: []models.RelatedProduct{},
	}
}

// titleQuery is the search phrase built from the first four title words.
func titleQuery(title string) string {
	words := strings.Fields(title)
	return strings.Join(head(words, 4), " ")
}

// The analyze-product route substitutes these when a step's completion
// fails, so a partial answer is still returned.

func routeKeywordAnalysis() *models.KeywordAnalysis {
	return &models.KeywordAnalysis{
		PrimaryKeywords:      []string{"product analysis", "amazon optimization"},
		LongTailKeywords:     []string{"amazon product optimization"},
		BrandKeywords:        []string{},
		CategoryKeywords:     []string{"general"},
		CompetitorKeywords:   []string{},
		SearchVolumeEstimate: models.VolumeBuckets{High: []string{}, Medium: []string{}, Low: []string{}},
		KeywordDifficulty:    models.DifficultyBuckets{Easy: []string{}, Medium: []string{}, Hard: []string{}},
		SeasonalKeywords:     []string{},
		BuyerIntentKeywords:  []string{},
		RankingStrategy:      models.RankingStrategy{Immediate: []string{}, ShortTerm: []string{}, LongTerm: []string{}},
		ContentOptimization: models.ContentOptimization{
			TitleSuggestions:    []string{},
			BulletPointKeywords: []string{},
			BackendKeywords:     []string{},
		},
	}
}

func routeCompetitorAnalysis() *models.CompetitorAnalysis {
	return &models.CompetitorAnalysis{
		CompetitivePosition: models.CompetitivePosition{
			Strengths:     []string{"Unique product offering"},
			Weaknesses:    []string{"Limited competitive data available"},
			Opportunities: []string{"Market research needed"},
			Threats:       []string{"Unknown competitive landscape"},
		},
	}
}

func emptyBuckets() models.PriorityBuckets {
	return models.PriorityBuckets{
		HighPriority:   []string{},
		MediumPriority: []string{},
		LowPriority:    []string{},
	}
}

func routeAdKeywords() *models.AdKeywords {
	return &models.AdKeywords{
		ExactMatch:       emptyBuckets(),
		PhraseMatch:      emptyBuckets(),
		BroadMatch:       emptyBuckets(),
		NegativeKeywords: []string{},
		CampaignStrategy: &models.CampaignStrategy{
			Recommendations: []string{},
			BidStrategy:     "Conservative bidding recommended",
		},
	}
}

func routeSalesStrategy() *models.SalesStrategy {
	return &models.SalesStrategy{
		ImmediateActions:  []models.TimedAction{{Action: "Optimize product listing", Impact: "Improved visibility", Timeframe: "1-2 weeks"}},
		ShortTermStrategy: []models.TimedAction{{Action: "Conduct market research", Impact: "Better positioning", Timeframe: "1-2 months"}},
		LongTermStrategy:  []models.TimedAction{{Action: "Expand product line", Impact: "Market growth", Timeframe: "3-6 months"}},
	}
}

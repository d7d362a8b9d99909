package research

import (
	"strings"

	"github.com/use-agent/listingscout/models"
)

const mockImage = "https://via.placeholder.com/300x300"

// mockCompetitors stands in for live search results in lite mode.
func mockCompetitors(info *models.ProductInfo) []models.Competitor {
	return []models.Competitor{
		{
			Title:       "Similar " + info.ProductName + " - Premium Quality",
			Price:       "$24.99",
			Rating:      "4.3",
			ReviewCount: "1,247",
			Image:       mockImage,
			ASIN:        "B0MOCK001",
		},
		{
			Title:       info.Category + " Essential Tool",
			Price:       "$19.99",
			Rating:      "4.1",
			ReviewCount: "856",
			Image:       mockImage,
			ASIN:        "B0MOCK002",
		},
	}
}

func liteInsights(info *models.ProductInfo) *models.CompetitorInsights {
	return &models.CompetitorInsights{
		MarketGaps: []models.MarketGap{{
			Gap:         models.Text("Limited premium " + info.ProductName + " options"),
			Opportunity: "Focus on quality and unique features",
		}},
		CompetitorWeaknesses: []models.CompetitorWeakness{{
			Competitor: "Market Leaders",
			Weakness:   "Generic positioning",
		}},
		PricingAnalysis: models.PricingAnalysis{
			RecommendedPrice: models.Text(orDefault(info.PriceRange, "$20-30")),
		},
	}
}

func liteListing(info *models.ProductInfo) *models.OptimizedListing {
	name := info.ProductName
	return &models.OptimizedListing{
		OptimizedTitle: models.LaunchTitle{
			Title:        models.Text(name + " - Premium Quality"),
			KeywordsUsed: []string{name, "premium"},
		},
		BulletPoints: []models.LaunchBullet{{
			BulletPoint: models.Text("HIGH QUALITY: Premium " + name),
			Focus:       "Quality",
		}},
		ProductDescription: models.ProductDescription{
			DetailedDescription: models.Text("Premium " + name + " for " + info.Category),
		},
		BackendKeywords: models.BackendKeywords{
			SearchTerms:     []string{strings.ToLower(name), "premium"},
			TotalCharacters: "25",
		},
	}
}

// litePlan has three phases: preparation, launch and follow-up.
func litePlan() *models.LaunchPlan {
	return &models.LaunchPlan{
		PrelaunchPhase: &models.PrelaunchPhase{
			Duration: "Week 1-2",
			Tasks:    []models.LaunchTask{{Task: "Prepare listing"}},
		},
		LaunchWeek: &models.LaunchWeek{
			Duration:   "Week 3-4",
			DailyTasks: map[string][]string{"day1": {"Launch product"}},
		},
		Month1Strategy: &models.Month1Strategy{
			Duration: "Week 5+",
			WeeklyGoals: []models.WeeklyGoal{{
				Week:    "Week 5+",
				Goals:   []string{"Optimize performance"},
				Actions: []string{},
			}},
		},
	}
}

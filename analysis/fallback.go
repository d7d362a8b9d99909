package analysis

import "github.com/use-agent/listingscout/models"

// inProgress fills every field of a placeholder payload.
const inProgress = "Analysis in progress"

func pending() []string { return []string{inProgress} }

// FallbackKeywordAnalysis is returned when a keyword reply cannot be parsed.
func FallbackKeywordAnalysis() *models.KeywordAnalysis {
	return &models.KeywordAnalysis{
		PrimaryKeywords:    []string{"keyword analysis", "product optimization"},
		LongTailKeywords:   []string{"long tail keyword research"},
		BrandKeywords:      []string{"brand related terms"},
		CategoryKeywords:   []string{"category specific keywords"},
		CompetitorKeywords: []string{"competitor analysis"},
		SearchVolumeEstimate: models.VolumeBuckets{
			High:   []string{"high volume terms"},
			Medium: []string{"medium volume terms"},
			Low:    []string{"low volume terms"},
		},
		KeywordDifficulty: models.DifficultyBuckets{
			Easy:   []string{"easy ranking keywords"},
			Medium: []string{"medium difficulty keywords"},
			Hard:   []string{"hard ranking keywords"},
		},
		SeasonalKeywords:    []string{"seasonal terms"},
		BuyerIntentKeywords: []string{"buy intent keywords"},
		RankingStrategy: models.RankingStrategy{
			Immediate: []string{"immediate focus keywords"},
			ShortTerm: []string{"short term keywords"},
			LongTerm:  []string{"long term keywords"},
		},
		ContentOptimization: models.ContentOptimization{
			TitleSuggestions:    []string{"optimized title suggestions"},
			BulletPointKeywords: []string{"bullet point keywords"},
			BackendKeywords:     []string{"backend search terms"},
		},
	}
}

// FallbackCompetitorAnalysis is returned when a competitor reply cannot be
// parsed.
func FallbackCompetitorAnalysis() *models.CompetitorAnalysis {
	return &models.CompetitorAnalysis{
		CompetitivePosition: models.CompetitivePosition{
			Strengths:     pending(),
			Weaknesses:    pending(),
			Opportunities: pending(),
		},
		PricingStrategy: &models.PricingPosition{
			CurrentPosition: "competitive",
			Recommendation:  inProgress,
			PriceRange:      inProgress,
		},
		KeywordGaps:             pending(),
		CompetitorKeywords:      pending(),
		DifferentiationStrategy: pending(),
		MarketingAngles:         pending(),
		ImprovementAreas:        pending(),
	}
}

// FallbackAdKeywords is returned when a PPC reply cannot be parsed.
func FallbackAdKeywords() *models.AdKeywords {
	return &models.AdKeywords{
		ExactMatch: models.PriorityBuckets{
			HighPriority:   []string{"product keywords", "brand keywords"},
			MediumPriority: []string{"category keywords"},
			LowPriority:    []string{"general keywords"},
		},
		PhraseMatch: models.PriorityBuckets{
			HighPriority:   []string{"product phrase keywords"},
			MediumPriority: []string{"category phrase keywords"},
			LowPriority:    []string{"general phrase keywords"},
		},
		BroadMatch: models.PriorityBuckets{
			HighPriority:   []string{"broad product keywords"},
			MediumPriority: []string{"broad category keywords"},
			LowPriority:    []string{"broad general keywords"},
		},
		NegativeKeywords: []string{"irrelevant terms"},
		CampaignStrategy: &models.CampaignStrategy{
			LaunchCampaign:    []string{"launch keywords"},
			ScalingCampaign:   []string{"scaling keywords"},
			DefensiveCampaign: []string{"brand protection keywords"},
		},
		BidRecommendations: &models.BidRecommendations{
			HighBid:   []string{"high value keywords"},
			MediumBid: []string{"medium value keywords"},
			LowBid:    []string{"low value keywords"},
		},
	}
}

// FallbackSalesStrategy is returned when a strategy reply cannot be parsed.
func FallbackSalesStrategy() *models.SalesStrategy {
	return &models.SalesStrategy{
		ImmediateActions:  []models.TimedAction{{Action: "Optimize product images", Impact: "Improve conversion rate", Timeframe: "1-2 weeks"}},
		ShortTermStrategy: []models.TimedAction{{Action: "Improve product listing", Impact: "Better search ranking", Timeframe: "1-3 months"}},
		LongTermStrategy:  []models.TimedAction{{Action: "Build brand presence", Impact: "Long-term growth", Timeframe: "3-6 months"}},
		ListingOptimization: &models.ListingSuggestions{
			Title:        "Optimized title suggestion",
			BulletPoints: []string{"Improved bullet point 1", "Improved bullet point 2"},
			Description:  "Enhanced description strategy",
			Images:       []string{"Better main image", "Additional lifestyle images"},
		},
		PricingStrategy: &models.PricingPlan{
			CurrentAnalysis:     "Competitive pricing analysis",
			Recommendation:      "Adjust pricing strategy",
			PromotionalStrategy: "Promotional recommendations",
		},
		ReviewStrategy: &models.ReviewStrategy{
			TargetReviewCount:     "100+ reviews",
			ReviewAcquisitionPlan: []string{"Follow up with customers", "Improve product quality"},
			QualityImprovements:   []string{"Product improvements", "Customer service enhancements"},
		},
		InventoryManagement: &models.InventoryManagement{
			StockLevels:       "Maintain adequate inventory",
			SeasonalPlanning:  "Plan for seasonal demand",
			DemandForecasting: "Monitor demand trends",
		},
	}
}

// FallbackSalesProblems is returned when a diagnosis reply cannot be parsed.
func FallbackSalesProblems() *models.SalesProblems {
	return &models.SalesProblems{
		CriticalMistakes: []models.CriticalMistake{{
			Mistake:  "Analysis in progress - please try again",
			Impact:   "Unable to determine impact",
			Severity: "medium",
			Solution: "Retry analysis",
		}},
		PricingIssues: models.PricingIssues{
			Problem:              inProgress,
			CompetitorPriceRange: inProgress,
			RecommendedPrice:     inProgress,
			PricingStrategy:      inProgress,
		},
		ListingProblems: models.ListingProblems{
			TitleIssues:       pending(),
			ImageProblems:     pending(),
			DescriptionIssues: pending(),
			BulletPointIssues: pending(),
		},
		KeywordMistakes: models.KeywordMistakes{
			MissingKeywords:    pending(),
			WrongKeywords:      pending(),
			KeywordGaps:        pending(),
			CompetitorKeywords: pending(),
		},
		CompetitiveDisadvantages: []models.CompetitiveDisadvantage{{
			Area:             inProgress,
			YourStatus:       inProgress,
			CompetitorStatus: inProgress,
			ActionNeeded:     inProgress,
		}},
		TrustSignals: models.TrustSignals{
			Missing:      pending(),
			Weak:         pending(),
			Improvements: pending(),
		},
		ConversionKillers: []models.ConversionKiller{{Issue: inProgress, Fix: inProgress, Priority: "medium"}},
		ImmediateActions: []models.ImmediateAction{{
			Action:          "Retry analysis",
			ExpectedImpact:  "Better insights",
			TimeToImplement: "1 minute",
			Difficulty:      "easy",
		}},
	}
}

// FallbackKeywordGaps is returned when a keyword gap reply cannot be parsed.
func FallbackKeywordGaps() *models.KeywordGaps {
	return &models.KeywordGaps{
		MissingHighValueKeywords: []models.MissingKeyword{{
			Keyword:      inProgress,
			SearchVolume: "medium",
			Competition:  "medium",
			Opportunity:  inProgress,
			WhereToUse:   "title",
		}},
		CompetitorKeywordAdvantages: []models.KeywordAdvantage{{
			Competitor:       inProgress,
			KeywordAdvantage: inProgress,
			WhyItWorks:       inProgress,
			HowToAdopt:       inProgress,
		}},
		KeywordOptimizationPlan: models.KeywordOptimizationPlan{
			TitleKeywords:       pending(),
			BulletKeywords:      pending(),
			DescriptionKeywords: pending(),
			BackendKeywords:     pending(),
		},
		RankingOpportunities: []models.RankingOpportunity{{
			Keyword:        inProgress,
			CurrentRanking: "Unknown",
			TargetRanking:  "Top 10",
			Difficulty:     "medium",
			Strategy:       inProgress,
		}},
	}
}

// FallbackListingOptimization is returned when a listing optimization reply
// cannot be parsed.
func FallbackListingOptimization() *models.ListingOptimization {
	return &models.ListingOptimization{
		OptimizedTitle: models.OptimizedTitleSuggestion{
			NewTitle:       inProgress,
			Improvements:   pending(),
			KeywordsAdded:  pending(),
			CharactersUsed: inProgress,
		},
		OptimizedBulletPoints: []models.BulletSuggestion{{BulletPoint: inProgress, Focus: inProgress, Keywords: pending()}},
		OptimizedDescription: models.DescriptionSuggestion{
			NewDescription:   inProgress,
			Structure:        inProgress,
			KeywordsIncluded: pending(),
		},
		ImageRecommendations: []models.ImageRecommendation{{ImageType: "main", Description: inProgress, Priority: "high"}},
		PricingOptimization: models.PricingOptimization{
			RecommendedPrice:    inProgress,
			PricingReason:       inProgress,
			CompetitivePosition: inProgress,
		},
		A9AlgorithmOptimization: models.A9Optimization{
			PrimaryKeywords:   pending(),
			SecondaryKeywords: pending(),
			KeywordDensity:    inProgress,
			RankingFactors:    pending(),
		},
	}
}

// FallbackOptimizedListing is returned when launch copy cannot be parsed.
// It is built from the product's own name, category and audience.
func FallbackOptimizedListing(info *models.ProductInfo) *models.OptimizedListing {
	name, category := info.ProductName, info.Category
	return &models.OptimizedListing{
		OptimizedTitle: models.LaunchTitle{
			Title:          models.Text(name + " - Premium Quality " + category),
			KeywordsUsed:   []string{name, category},
			CharactersUsed: inProgress,
			WhyOptimal:     inProgress,
		},
		BulletPoints: []models.LaunchBullet{{
			BulletPoint:          models.Text("Premium " + name + " with superior quality"),
			Focus:                "Quality emphasis",
			Keywords:             []string{name},
			CompetitiveAdvantage: inProgress,
		}},
		ProductDescription: models.ProductDescription{
			Description:      models.Text("High-quality " + name + " designed for " + info.TargetAudience),
			Structure:        inProgress,
			KeywordsIncluded: []string{name},
			SEOStrategy:      inProgress,
		},
		BackendKeywords: models.BackendKeywords{
			SearchTerms:     []string{name, category},
			TotalCharacters: inProgress,
			Strategy:        inProgress,
		},
		CompetitivePositioning: &models.CompetitivePositioning{
			PriceStrategy:   inProgress,
			Differentiators: pending(),
			TargetKeywords:  []string{name},
			RankingStrategy: inProgress,
		},
		ImageRecommendations: []models.ImageRecommendation{{
			ImageType:       "main",
			Description:     "Clear product image on white background",
			Priority:        "high",
			CompetitiveEdge: inProgress,
		}},
		LaunchStrategy: &models.LaunchStrategy{
			Phase1:     []string{"Set up listing", "Initial keyword targeting"},
			Phase2:     []string{"Monitor performance", "Optimize based on data"},
			Phase3:     []string{"Scale advertising", "Expand keyword targeting"},
			KeyMetrics: []string{"Conversion rate", "Keyword ranking"},
		},
	}
}

// FallbackCompetitorInsights is returned when an insights reply cannot be
// parsed.
func FallbackCompetitorInsights() *models.CompetitorInsights {
	return &models.CompetitorInsights{
		MarketGaps: []models.MarketGap{{Gap: inProgress, Opportunity: inProgress, Difficulty: "medium", Impact: inProgress}},
		CompetitorWeaknesses: []models.CompetitorWeakness{{
			Competitor:   inProgress,
			Weakness:     inProgress,
			HowToExploit: inProgress,
			Keywords:     pending(),
		}},
		PricingAnalysis: models.PricingAnalysis{
			AveragePrice:     inProgress,
			PriceRange:       inProgress,
			RecommendedPrice: inProgress,
			PricingStrategy:  inProgress,
		},
		KeywordOpportunities: []models.KeywordOpportunity{{
			Keyword:        inProgress,
			SearchVolume:   "medium",
			Competition:    "medium",
			WhyOpportunity: inProgress,
			HowToRank:      inProgress,
		}},
		DifferentiationStrategy: &models.DifferentiationStrategy{
			PrimaryDifferentiators: pending(),
			MessagingStrategy:      inProgress,
			TargetKeywords:         pending(),
			CompetitiveAdvantages:  pending(),
		},
		LaunchTiming: &models.LaunchTiming{
			BestTimeToLaunch:    inProgress,
			SeasonalFactors:     inProgress,
			MarketConditions:    inProgress,
			CompetitiveActivity: inProgress,
		},
	}
}

// FallbackLaunchPlan is returned when a launch plan reply cannot be parsed.
func FallbackLaunchPlan() *models.LaunchPlan {
	targets := models.Targets{Sales: inProgress, Ranking: inProgress}
	return &models.LaunchPlan{
		PrelaunchPhase: &models.PrelaunchPhase{
			Duration: "2-4 weeks before launch",
			Tasks: []models.LaunchTask{{
				Task:            "Finalize product listing optimization",
				Timeline:        "2 weeks before launch",
				Priority:        "high",
				ExpectedOutcome: "SEO-optimized listing ready",
			}},
		},
		LaunchWeek: &models.LaunchWeek{
			Duration: "Week 1",
			DailyTasks: map[string][]string{
				"day1": {"Launch product", "Start advertising campaigns"},
				"day2": {"Monitor performance", "Adjust bids"},
				"day7": {"Weekly performance review", "Plan week 2"},
			},
			KeyMetrics:      []string{"Sales velocity", "Keyword ranking"},
			SuccessCriteria: []string{"First sale within 24 hours", "Top 100 ranking for main keyword"},
		},
		Month1Strategy: &models.Month1Strategy{
			Duration: "Weeks 2-4",
			WeeklyGoals: []models.WeeklyGoal{{
				Week:    "Week 2",
				Goals:   []string{"Increase daily sales", "Improve keyword rankings"},
				Actions: []string{"Optimize ad campaigns", "Monitor competitor activity"},
			}},
			AdvertisingStrategy: &models.AdvertisingStrategy{
				Budget:         inProgress,
				Campaigns:      []string{"Sponsored Products", "Sponsored Brands"},
				TargetKeywords: pending(),
			},
		},
		Month23Strategy: &models.Month23Strategy{
			Duration:          "Months 2-3",
			Objectives:        []string{"Scale profitably", "Expand keyword targeting"},
			ScalingStrategy:   []string{"Increase ad budget", "Launch additional campaigns"},
			OptimizationFocus: []string{"Conversion rate", "Profit margins"},
		},
		BudgetAllocation: &models.BudgetAllocation{
			Advertising: "40-50%",
			Inventory:   "30-40%",
			Promotions:  "10-15%",
			Contingency: "5-10%",
		},
		RiskMitigation: []models.Risk{{
			Risk:        "Low initial sales",
			Probability: "medium",
			Impact:      "high",
			Mitigation:  "Aggressive promotional pricing and advertising",
		}},
		SuccessMetrics: &models.SuccessMetrics{
			Week1Targets:  targets,
			Month1Targets: targets,
			Month3Targets: targets,
		},
	}
}

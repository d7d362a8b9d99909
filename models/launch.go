package models

// ProductInfo describes a product that has not launched yet.
type ProductInfo struct {
	ProductName         string   `json:"productName"`
	Category            string   `json:"category"`
	KeyFeatures         []string `json:"keyFeatures"`
	UniqueSellingPoints []string `json:"uniqueSellingPoints"`
	TargetAudience      string   `json:"targetAudience"`
	PriceRange          string   `json:"priceRange"`
	Brand               string   `json:"brand"`
	LaunchBudget        string   `json:"launchBudget"`
	Dimensions          string   `json:"dimensions"`
	Material            string   `json:"material"`
}

// OptimizedListing is launch-ready listing copy for a new product.
type OptimizedListing struct {
	OptimizedTitle            LaunchTitle                `json:"optimizedTitle"`
	BulletPoints              []LaunchBullet             `json:"bulletPoints"`
	ProductDescription        ProductDescription         `json:"productDescription"`
	BackendKeywords           BackendKeywords            `json:"backendKeywords"`
	CompetitorKeywordAnalysis *CompetitorKeywordAnalysis `json:"competitorKeywordAnalysis,omitempty"`
	CompetitivePositioning    *CompetitivePositioning    `json:"competitivePositioning,omitempty"`
	ImageRecommendations      []ImageRecommendation      `json:"imageRecommendations,omitempty"`
	LaunchStrategy            *LaunchStrategy            `json:"launchStrategy,omitempty"`
}

type LaunchTitle struct {
	Title          Text     `json:"title"`
	KeywordsUsed   []string `json:"keywordsUsed"`
	CharactersUsed Text     `json:"charactersUsed,omitempty"`
	WhyOptimal     Text     `json:"whyOptimal,omitempty"`
}

type LaunchBullet struct {
	BulletPoint          Text     `json:"bulletPoint"`
	Focus                Text     `json:"focus"`
	Keywords             []string `json:"keywords,omitempty"`
	CompetitiveAdvantage Text     `json:"competitiveAdvantage,omitempty"`
	EmotionalTrigger     Text     `json:"emotionalTrigger,omitempty"`
	ProofElement         Text     `json:"proofElement,omitempty"`
}

type ProductDescription struct {
	ShortDescription    Text     `json:"shortDescription,omitempty"`
	DetailedDescription Text     `json:"detailedDescription,omitempty"`
	Description         Text     `json:"description,omitempty"`
	Structure           Text     `json:"structure,omitempty"`
	KeywordsIncluded    []string `json:"keywordsIncluded,omitempty"`
	SEOStrategy         Text     `json:"seoStrategy,omitempty"`
	EmotionalHooks      []string `json:"emotionalHooks,omitempty"`
	SocialProof         Text     `json:"socialProof,omitempty"`
	CallToAction        Text     `json:"callToAction,omitempty"`
}

// Text returns the most complete description the model produced.
func (d ProductDescription) Text() string {
	for _, s := range []Text{d.Description, d.DetailedDescription, d.ShortDescription} {
		if s != "" {
			return string(s)
		}
	}
	return ""
}

type BackendKeywords struct {
	SearchTerms     []string `json:"searchTerms"`
	TotalCharacters Text     `json:"totalCharacters"`
	Strategy        Text     `json:"strategy,omitempty"`
}

type CompetitorKeywordAnalysis struct {
	MostUsedKeywords       []KeywordUsage        `json:"mostUsedKeywords"`
	HighConvertingKeywords []ConvertingKeyword   `json:"highConvertingKeywords"`
	LongTailOpportunities  []LongTailOpportunity `json:"longTailOpportunities"`
	KeywordGaps            []KeywordGap          `json:"keywordGaps"`
	CategoryKeywords       []string              `json:"categoryKeywords"`
	FeatureKeywords        []string              `json:"featureKeywords"`
	BenefitKeywords        []string              `json:"benefitKeywords"`
}

type KeywordUsage struct {
	Keyword     Text `json:"keyword"`
	Frequency   Text `json:"frequency"`
	AvgRating   Text `json:"avgRating"`
	Opportunity Text `json:"opportunity"`
}

type ConvertingKeyword struct {
	Keyword           Text `json:"keyword"`
	CompetitorRating  Text `json:"competitorRating"`
	CompetitorReviews Text `json:"competitorReviews"`
	WhyEffective      Text `json:"whyEffective"`
}

type LongTailOpportunity struct {
	Keyword      Text `json:"keyword"`
	Competition  Text `json:"competition"`
	SearchIntent Text `json:"searchIntent"`
	HowToUse     Text `json:"howToUse"`
}

type KeywordGap struct {
	Keyword         Text `json:"keyword"`
	CompetitorUsage Text `json:"competitorUsage"`
	YourAdvantage   Text `json:"yourAdvantage"`
}

type CompetitivePositioning struct {
	PriceStrategy   Text     `json:"priceStrategy"`
	Differentiators []string `json:"differentiators"`
	TargetKeywords  []string `json:"targetKeywords"`
	RankingStrategy Text     `json:"rankingStrategy"`
}

type LaunchStrategy struct {
	Phase1     []string `json:"phase1"`
	Phase2     []string `json:"phase2"`
	Phase3     []string `json:"phase3"`
	KeyMetrics []string `json:"keyMetrics"`
}

// CompetitorInsights summarises the competitive landscape for a launch.
type CompetitorInsights struct {
	MarketGaps              []MarketGap              `json:"marketGaps"`
	CompetitorWeaknesses    []CompetitorWeakness     `json:"competitorWeaknesses"`
	PricingAnalysis         PricingAnalysis          `json:"pricingAnalysis"`
	KeywordOpportunities    []KeywordOpportunity     `json:"keywordOpportunities,omitempty"`
	DifferentiationStrategy *DifferentiationStrategy `json:"differentiationStrategy,omitempty"`
	LaunchTiming            *LaunchTiming            `json:"launchTiming,omitempty"`
}

type MarketGap struct {
	Gap         Text `json:"gap"`
	Opportunity Text `json:"opportunity"`
	Difficulty  Text `json:"difficulty,omitempty"`
	Impact      Text `json:"impact,omitempty"`
}

type CompetitorWeakness struct {
	Competitor   Text     `json:"competitor"`
	Weakness     Text     `json:"weakness"`
	HowToExploit Text     `json:"howToExploit,omitempty"`
	Keywords     []string `json:"keywords,omitempty"`
}

type PricingAnalysis struct {
	AveragePrice     Text `json:"averagePrice,omitempty"`
	PriceRange       Text `json:"priceRange,omitempty"`
	RecommendedPrice Text `json:"recommendedPrice"`
	PricingStrategy  Text `json:"pricingStrategy,omitempty"`
}

type KeywordOpportunity struct {
	Keyword        Text `json:"keyword"`
	SearchVolume   Text `json:"searchVolume"`
	Competition    Text `json:"competition"`
	WhyOpportunity Text `json:"whyOpportunity"`
	HowToRank      Text `json:"howToRank"`
}

type DifferentiationStrategy struct {
	PrimaryDifferentiators []string `json:"primaryDifferentiators"`
	MessagingStrategy      Text     `json:"messagingStrategy"`
	TargetKeywords         []string `json:"targetKeywords"`
	CompetitiveAdvantages  []string `json:"competitiveAdvantages"`
}

type LaunchTiming struct {
	BestTimeToLaunch    Text `json:"bestTimeToLaunch"`
	SeasonalFactors     Text `json:"seasonalFactors"`
	MarketConditions    Text `json:"marketConditions"`
	CompetitiveActivity Text `json:"competitiveActivity"`
}

// LaunchPlan is a phased launch plan. Every phase is optional so a partial
// plan reports only the phases it has.
type LaunchPlan struct {
	PrelaunchPhase   *PrelaunchPhase   `json:"prelaunchPhase,omitempty"`
	LaunchWeek       *LaunchWeek       `json:"launchWeek,omitempty"`
	Month1Strategy   *Month1Strategy   `json:"month1Strategy,omitempty"`
	Month23Strategy  *Month23Strategy  `json:"month2_3Strategy,omitempty"`
	BudgetAllocation *BudgetAllocation `json:"budgetAllocation,omitempty"`
	RiskMitigation   []Risk            `json:"riskMitigation,omitempty"`
	SuccessMetrics   *SuccessMetrics   `json:"successMetrics,omitempty"`
}

// Phases counts the top-level sections present in the plan.
func (p *LaunchPlan) Phases() int {
	if p == nil {
		return 0
	}
	n := 0
	for _, present := range []bool{
		p.PrelaunchPhase != nil,
		p.LaunchWeek != nil,
		p.Month1Strategy != nil,
		p.Month23Strategy != nil,
		p.BudgetAllocation != nil,
		len(p.RiskMitigation) > 0,
		p.SuccessMetrics != nil,
	} {
		if present {
			n++
		}
	}
	return n
}

type PrelaunchPhase struct {
	Duration Text         `json:"duration"`
	Tasks    []LaunchTask `json:"tasks"`
}

type LaunchTask struct {
	Task            Text `json:"task"`
	Timeline        Text `json:"timeline,omitempty"`
	Priority        Text `json:"priority,omitempty"`
	ExpectedOutcome Text `json:"expectedOutcome,omitempty"`
}

type LaunchWeek struct {
	Duration        Text                `json:"duration"`
	DailyTasks      map[string][]string `json:"dailyTasks,omitempty"`
	KeyMetrics      []string            `json:"keyMetrics,omitempty"`
	SuccessCriteria []string            `json:"successCriteria,omitempty"`
}

type Month1Strategy struct {
	Duration            Text                 `json:"duration"`
	WeeklyGoals         []WeeklyGoal         `json:"weeklyGoals,omitempty"`
	AdvertisingStrategy *AdvertisingStrategy `json:"advertisingStrategy,omitempty"`
}

type WeeklyGoal struct {
	Week    Text     `json:"week"`
	Goals   []string `json:"goals"`
	Actions []string `json:"actions"`
}

type AdvertisingStrategy struct {
	Budget         Text     `json:"budget"`
	Campaigns      []string `json:"campaigns"`
	TargetKeywords []string `json:"targetKeywords"`
}

type Month23Strategy struct {
	Duration          Text     `json:"duration"`
	Objectives        []string `json:"objectives"`
	ScalingStrategy   []string `json:"scalingStrategy"`
	OptimizationFocus []string `json:"optimizationFocus"`
}

type BudgetAllocation struct {
	Advertising Text `json:"advertising"`
	Inventory   Text `json:"inventory"`
	Promotions  Text `json:"promotions"`
	Contingency Text `json:"contingency"`
}

type Risk struct {
	Risk        Text `json:"risk"`
	Probability Text `json:"probability"`
	Impact      Text `json:"impact"`
	Mitigation  Text `json:"mitigation"`
}

type SuccessMetrics struct {
	Week1Targets  Targets `json:"week1Targets"`
	Month1Targets Targets `json:"month1Targets"`
	Month3Targets Targets `json:"month3Targets"`
}

type Targets struct {
	Sales   Text `json:"sales"`
	Ranking Text `json:"ranking"`
}

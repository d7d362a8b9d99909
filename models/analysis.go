package models

// KeywordAnalysis is the keyword research result for one product.
type KeywordAnalysis struct {
	PrimaryKeywords      []string            `json:"primaryKeywords"`
	LongTailKeywords     []string            `json:"longTailKeywords"`
	BrandKeywords        []string            `json:"brandKeywords"`
	CategoryKeywords     []string            `json:"categoryKeywords"`
	CompetitorKeywords   []string            `json:"competitorKeywords"`
	SearchVolumeEstimate VolumeBuckets       `json:"searchVolumeEstimate"`
	KeywordDifficulty    DifficultyBuckets   `json:"keywordDifficulty"`
	SeasonalKeywords     []string            `json:"seasonalKeywords"`
	BuyerIntentKeywords  []string            `json:"buyerIntentKeywords"`
	RankingStrategy      RankingStrategy     `json:"rankingStrategy"`
	ContentOptimization  ContentOptimization `json:"contentOptimization"`
}

// VolumeBuckets groups keywords by estimated search volume.
type VolumeBuckets struct {
	High   []string `json:"high"`
	Medium []string `json:"medium"`
	Low    []string `json:"low"`
}

// DifficultyBuckets groups keywords by ranking difficulty.
type DifficultyBuckets struct {
	Easy   []string `json:"easy"`
	Medium []string `json:"medium"`
	Hard   []string `json:"hard"`
}

// RankingStrategy groups keywords by when to target them.
type RankingStrategy struct {
	Immediate []string `json:"immediate"`
	ShortTerm []string `json:"shortTerm"`
	LongTerm  []string `json:"longTerm"`
}

// ContentOptimization carries listing copy keyword suggestions.
type ContentOptimization struct {
	TitleSuggestions    []string `json:"titleSuggestions"`
	BulletPointKeywords []string `json:"bulletPointKeywords"`
	BackendKeywords     []string `json:"backendKeywords"`
}

// TotalKeywords counts primary, long-tail and brand keywords.
func (k *KeywordAnalysis) TotalKeywords() int {
	if k == nil {
		return 0
	}
	return len(k.PrimaryKeywords) + len(k.LongTailKeywords) + len(k.BrandKeywords)
}

// KeywordStrategy is the trimmed keyword block embedded in diagnose and
// launch responses.
type KeywordStrategy struct {
	PrimaryKeywords  []string        `json:"primaryKeywords"`
	LongTailKeywords []string        `json:"longTailKeywords"`
	RankingStrategy  RankingStrategy `json:"rankingStrategy"`
}

// Strategy projects the analysis onto a KeywordStrategy.
func (k *KeywordAnalysis) Strategy() KeywordStrategy {
	return KeywordStrategy{
		PrimaryKeywords:  k.PrimaryKeywords,
		LongTailKeywords: k.LongTailKeywords,
		RankingStrategy:  k.RankingStrategy,
	}
}

// CompetitorAnalysis positions a product against its search competitors.
// Only CompetitivePosition is guaranteed; the degraded form carries nothing
// else.
type CompetitorAnalysis struct {
	CompetitivePosition     CompetitivePosition `json:"competitivePosition"`
	PricingStrategy         *PricingPosition    `json:"pricingStrategy,omitempty"`
	KeywordGaps             []string            `json:"keywordGaps,omitempty"`
	CompetitorKeywords      []string            `json:"competitorKeywords,omitempty"`
	DifferentiationStrategy []string            `json:"differentiationStrategy,omitempty"`
	MarketingAngles         []string            `json:"marketingAngles,omitempty"`
	ImprovementAreas        []string            `json:"improvementAreas,omitempty"`
}

// CompetitivePosition is a SWOT-style summary.
type CompetitivePosition struct {
	Strengths     []string `json:"strengths"`
	Weaknesses    []string `json:"weaknesses"`
	Opportunities []string `json:"opportunities"`
	Threats       []string `json:"threats,omitempty"`
}

// PricingPosition describes where the price sits in the market.
type PricingPosition struct {
	CurrentPosition Text `json:"currentPosition"` // premium|competitive|budget
	Recommendation  Text `json:"recommendation"`
	PriceRange      Text `json:"priceRange"`
}

// AdKeywords are PPC keywords bucketed by match type and priority.
type AdKeywords struct {
	ExactMatch         PriorityBuckets     `json:"exactMatch"`
	PhraseMatch        PriorityBuckets     `json:"phraseMatch"`
	BroadMatch         PriorityBuckets     `json:"broadMatch"`
	NegativeKeywords   []string            `json:"negativeKeywords"`
	CampaignStrategy   *CampaignStrategy   `json:"campaignStrategy,omitempty"`
	BidRecommendations *BidRecommendations `json:"bidRecommendations,omitempty"`
}

// PriorityBuckets groups keywords of one match type.
type PriorityBuckets struct {
	HighPriority   []string `json:"high_priority"`
	MediumPriority []string `json:"medium_priority"`
	LowPriority    []string `json:"low_priority"`
}

// CampaignStrategy assigns keywords to campaign types. Recommendations and
// BidStrategy are only set by the degraded form.
type CampaignStrategy struct {
	LaunchCampaign    []string `json:"launchCampaign,omitempty"`
	ScalingCampaign   []string `json:"scalingCampaign,omitempty"`
	DefensiveCampaign []string `json:"defensiveCampaign,omitempty"`
	Recommendations   []string `json:"recommendations"`
	BidStrategy       Text     `json:"bidStrategy,omitempty"`
}

// BidRecommendations groups keywords by suggested bid level.
type BidRecommendations struct {
	HighBid   []string `json:"highBid"`
	MediumBid []string `json:"mediumBid"`
	LowBid    []string `json:"lowBid"`
}

// HighPriorityCount counts high-priority keywords across all match types.
func (a *AdKeywords) HighPriorityCount() int {
	if a == nil {
		return 0
	}
	return len(a.ExactMatch.HighPriority) + len(a.PhraseMatch.HighPriority) + len(a.BroadMatch.HighPriority)
}

// SalesStrategy is the phased improvement plan for an existing listing.
type SalesStrategy struct {
	ImmediateActions    []TimedAction        `json:"immediateActions"`
	ShortTermStrategy   []TimedAction        `json:"shortTermStrategy"`
	LongTermStrategy    []TimedAction        `json:"longTermStrategy"`
	ListingOptimization *ListingSuggestions  `json:"listingOptimization,omitempty"`
	PricingStrategy     *PricingPlan         `json:"pricingStrategy,omitempty"`
	ReviewStrategy      *ReviewStrategy      `json:"reviewStrategy,omitempty"`
	InventoryManagement *InventoryManagement `json:"inventoryManagement,omitempty"`
}

// TimedAction is one step of a sales plan.
type TimedAction struct {
	Action    Text `json:"action"`
	Impact    Text `json:"impact"`
	Timeframe Text `json:"timeframe"`
}

// ListingSuggestions are copy improvements for an existing listing.
type ListingSuggestions struct {
	Title        Text     `json:"title"`
	BulletPoints []string `json:"bulletPoints"`
	Description  Text     `json:"description"`
	Images       []string `json:"images"`
}

// PricingPlan is a pricing recommendation.
type PricingPlan struct {
	CurrentAnalysis     Text `json:"currentAnalysis"`
	Recommendation      Text `json:"recommendation"`
	PromotionalStrategy Text `json:"promotionalStrategy"`
}

// ReviewStrategy describes how to grow review count.
type ReviewStrategy struct {
	TargetReviewCount     Text     `json:"targetReviewCount"`
	ReviewAcquisitionPlan []string `json:"reviewAcquisitionPlan"`
	QualityImprovements   []string `json:"qualityImprovements"`
}

// InventoryManagement holds stock planning advice.
type InventoryManagement struct {
	StockLevels       Text `json:"stockLevels"`
	SeasonalPlanning  Text `json:"seasonalPlanning"`
	DemandForecasting Text `json:"demandForecasting"`
}

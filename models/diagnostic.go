package models

// SalesProblems explains why a listing underperforms its top competitors.
type SalesProblems struct {
	CriticalMistakes         []CriticalMistake         `json:"criticalMistakes"`
	PricingIssues            PricingIssues             `json:"pricingIssues"`
	ListingProblems          ListingProblems           `json:"listingProblems"`
	KeywordMistakes          KeywordMistakes           `json:"keywordMistakes"`
	CompetitiveDisadvantages []CompetitiveDisadvantage `json:"competitiveDisadvantages"`
	TrustSignals             TrustSignals              `json:"trustSignals"`
	ConversionKillers        []ConversionKiller        `json:"conversionKillers"`
	ImmediateActions         []ImmediateAction         `json:"immediateActions"`
}

type CriticalMistake struct {
	Mistake  Text `json:"mistake"`
	Impact   Text `json:"impact"`
	Severity Text `json:"severity"` // high|medium|low
	Solution Text `json:"solution"`
}

type PricingIssues struct {
	Problem              Text `json:"problem"`
	CompetitorPriceRange Text `json:"competitorPriceRange"`
	RecommendedPrice     Text `json:"recommendedPrice"`
	PricingStrategy      Text `json:"pricingStrategy"`
}

type ListingProblems struct {
	TitleIssues       []string `json:"titleIssues"`
	ImageProblems     []string `json:"imageProblems"`
	DescriptionIssues []string `json:"descriptionIssues"`
	BulletPointIssues []string `json:"bulletPointIssues"`
}

type KeywordMistakes struct {
	MissingKeywords    []string `json:"missingKeywords"`
	WrongKeywords      []string `json:"wrongKeywords"`
	KeywordGaps        []string `json:"keywordGaps"`
	CompetitorKeywords []string `json:"competitorKeywords"`
}

type CompetitiveDisadvantage struct {
	Area             Text `json:"area"`
	YourStatus       Text `json:"yourStatus"`
	CompetitorStatus Text `json:"competitorStatus"`
	ActionNeeded     Text `json:"actionNeeded"`
}

type TrustSignals struct {
	Missing      []string `json:"missing"`
	Weak         []string `json:"weak"`
	Improvements []string `json:"improvements"`
}

type ConversionKiller struct {
	Issue    Text `json:"issue"`
	Fix      Text `json:"fix"`
	Priority Text `json:"priority"`
}

type ImmediateAction struct {
	Action          Text `json:"action"`
	ExpectedImpact  Text `json:"expectedImpact"`
	TimeToImplement Text `json:"timeToImplement"`
	Difficulty      Text `json:"difficulty"` // easy|medium|hard
}

// KeywordGaps lists keywords top competitors rank for that a listing lacks.
type KeywordGaps struct {
	MissingHighValueKeywords    []MissingKeyword        `json:"missingHighValueKeywords"`
	CompetitorKeywordAdvantages []KeywordAdvantage      `json:"competitorKeywordAdvantages"`
	KeywordOptimizationPlan     KeywordOptimizationPlan `json:"keywordOptimizationPlan"`
	RankingOpportunities        []RankingOpportunity    `json:"rankingOpportunities"`
}

type MissingKeyword struct {
	Keyword      Text `json:"keyword"`
	SearchVolume Text `json:"searchVolume"`
	Competition  Text `json:"competition"`
	Opportunity  Text `json:"opportunity"`
	WhereToUse   Text `json:"whereToUse"` // title|bullets|description|backend
}

type KeywordAdvantage struct {
	Competitor       Text `json:"competitor"`
	KeywordAdvantage Text `json:"keywordAdvantage"`
	WhyItWorks       Text `json:"whyItWorks"`
	HowToAdopt       Text `json:"howToAdopt"`
}

type KeywordOptimizationPlan struct {
	TitleKeywords       []string `json:"titleKeywords"`
	BulletKeywords      []string `json:"bulletKeywords"`
	DescriptionKeywords []string `json:"descriptionKeywords"`
	BackendKeywords     []string `json:"backendKeywords"`
}

type RankingOpportunity struct {
	Keyword        Text `json:"keyword"`
	CurrentRanking Text `json:"currentRanking"`
	TargetRanking  Text `json:"targetRanking"`
	Difficulty     Text `json:"difficulty"`
	Strategy       Text `json:"strategy"`
}

// ListingOptimization is rewritten listing copy modelled on top performers.
type ListingOptimization struct {
	OptimizedTitle          OptimizedTitleSuggestion `json:"optimizedTitle"`
	OptimizedBulletPoints   []BulletSuggestion       `json:"optimizedBulletPoints"`
	OptimizedDescription    DescriptionSuggestion    `json:"optimizedDescription"`
	ImageRecommendations    []ImageRecommendation    `json:"imageRecommendations"`
	PricingOptimization     PricingOptimization      `json:"pricingOptimization"`
	A9AlgorithmOptimization A9Optimization           `json:"a9AlgorithmOptimization"`
}

type OptimizedTitleSuggestion struct {
	NewTitle       Text     `json:"newTitle"`
	Improvements   []string `json:"improvements"`
	KeywordsAdded  []string `json:"keywordsAdded"`
	CharactersUsed Text     `json:"charactersUsed"`
}

type BulletSuggestion struct {
	BulletPoint Text     `json:"bulletPoint"`
	Focus       Text     `json:"focus"`
	Keywords    []string `json:"keywords"`
}

type DescriptionSuggestion struct {
	NewDescription   Text     `json:"newDescription"`
	Structure        Text     `json:"structure"`
	KeywordsIncluded []string `json:"keywordsIncluded"`
}

type ImageRecommendation struct {
	ImageType       Text `json:"imageType"`
	Description     Text `json:"description"`
	Priority        Text `json:"priority"`
	CompetitiveEdge Text `json:"competitiveEdge,omitempty"`
}

type PricingOptimization struct {
	RecommendedPrice    Text `json:"recommendedPrice"`
	PricingReason       Text `json:"pricingReason"`
	CompetitivePosition Text `json:"competitivePosition"`
}

type A9Optimization struct {
	PrimaryKeywords   []string `json:"primaryKeywords"`
	SecondaryKeywords []string `json:"secondaryKeywords"`
	KeywordDensity    Text     `json:"keywordDensity"`
	RankingFactors    []string `json:"rankingFactors"`
}

// YourProduct is the product block of a diagnose response.
type YourProduct struct {
	Title       string `json:"title"`
	Price       string `json:"price"`
	Rating      string `json:"rating"`
	ReviewCount string `json:"reviewCount"`
	Category    string `json:"category"`
	ASIN        string `json:"asin"`
}

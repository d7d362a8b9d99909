package models

import "time"

// AnalyzeResponse is the response for POST /api/analyze-product.
type AnalyzeResponse struct {
	Success            bool                `json:"success"`
	Timestamp          time.Time           `json:"timestamp"`
	ProductData        ProductSummary      `json:"productData"`
	KeywordAnalysis    *KeywordAnalysis    `json:"keywordAnalysis"`
	Competitors        []Competitor        `json:"competitors"`
	CompetitorAnalysis *CompetitorAnalysis `json:"competitorAnalysis"`
	AdKeywords         *AdKeywords         `json:"adKeywords"`
	SalesStrategy      *SalesStrategy      `json:"salesStrategy"`
	Summary            AnalyzeSummary      `json:"summary"`
}

type AnalyzeSummary struct {
	TotalKeywords       int `json:"totalKeywords"`
	CompetitorsAnalyzed int `json:"competitorsAnalyzed"`
	AdKeywordsGenerated int `json:"adKeywordsGenerated"`
}

// QuickKeywordsResponse is the response for POST /api/quick-keywords.
type QuickKeywordsResponse struct {
	Success         bool             `json:"success"`
	Timestamp       time.Time        `json:"timestamp"`
	ProductData     *QuickProduct    `json:"productData"`
	KeywordAnalysis *KeywordAnalysis `json:"keywordAnalysis"`
}

// CompetitorSearchResponse is the response for POST /api/competitor-search.
type CompetitorSearchResponse struct {
	Success     bool         `json:"success"`
	Timestamp   time.Time    `json:"timestamp"`
	SearchQuery string       `json:"searchQuery"`
	Competitors []Competitor `json:"competitors"`
	TotalFound  int          `json:"totalFound"`
}

// DiagnoseResponse is the response for POST /api/diagnose-sales-problems.
type DiagnoseResponse struct {
	Success             bool                 `json:"success"`
	Timestamp           time.Time            `json:"timestamp"`
	YourProduct         YourProduct          `json:"yourProduct"`
	TopPerformers       []Competitor         `json:"topPerformers"`
	SalesProblems       *SalesProblems       `json:"salesProblems"`
	KeywordGaps         *KeywordGaps         `json:"keywordGaps"`
	ListingOptimization *ListingOptimization `json:"listingOptimization"`
	KeywordAnalysis     KeywordStrategy      `json:"keywordAnalysis"`
	Summary             DiagnoseSummary      `json:"summary"`
}

type DiagnoseSummary struct {
	CriticalIssuesFound     int `json:"criticalIssuesFound"`
	KeywordGapsIdentified   int `json:"keywordGapsIdentified"`
	CompetitorsAnalyzed     int `json:"competitorsAnalyzed"`
	OptimizationSuggestions int `json:"optimizationSuggestions"`
}

// LaunchResponse is the response for POST /api/optimize-new-product.
type LaunchResponse struct {
	Success            bool              `json:"success"`
	Timestamp          time.Time         `json:"timestamp"`
	ProductInfo        LaunchProduct     `json:"productInfo"`
	CompetitorAnalysis LaunchCompetitors `json:"competitorAnalysis"`
	OptimizedListing   *OptimizedListing `json:"optimizedListing"`
	KeywordStrategy    KeywordStrategy   `json:"keywordStrategy"`
	LaunchPlan         *LaunchPlan       `json:"launchPlan"`
	Summary            LaunchSummary     `json:"summary"`
}

type LaunchProduct struct {
	Name           string `json:"name"`
	Category       string `json:"category"`
	TargetAudience string `json:"targetAudience"`
	PriceRange     string `json:"priceRange"`
}

type LaunchCompetitors struct {
	TotalCompetitorsFound int                 `json:"totalCompetitorsFound"`
	TopPerformers         []Competitor        `json:"topPerformers"`
	Insights              *CompetitorInsights `json:"insights"`
}

type LaunchSummary struct {
	CompetitorsAnalyzed      int    `json:"competitorsAnalyzed"`
	KeywordsGenerated        int    `json:"keywordsGenerated"`
	BulletPointsCreated      int    `json:"bulletPointsCreated"`
	LaunchPhases             int    `json:"launchPhases"`
	EstimatedLaunchReadiness string `json:"estimatedLaunchReadiness"` // High|Medium
}

// AdKeywordsResponse is the response for POST /api/generate-ad-keywords.
type AdKeywordsResponse struct {
	Success    bool        `json:"success"`
	Timestamp  time.Time   `json:"timestamp"`
	AdKeywords *AdKeywords `json:"adKeywords"`
}

// TestScrapingResponse is the response for GET /api/test-scraping.
type TestScrapingResponse struct {
	Success      bool         `json:"success"`
	Query        string       `json:"query"`
	ResultsFound int          `json:"resultsFound"`
	Results      []Competitor `json:"results"`
	Timestamp    time.Time    `json:"timestamp"`
}

// HealthResponse is the response for GET /api/health.
type HealthResponse struct {
	Status    string         `json:"status"`
	Timestamp time.Time      `json:"timestamp"`
	Uptime    string         `json:"uptime"`
	Services  HealthServices `json:"services"`
	LLM       LLMInfo        `json:"llm"`
	Scraper   PoolStats      `json:"scraper"`
	System    SystemStats    `json:"system"`
}

type HealthServices struct {
	OpenAI                 bool `json:"openai"`
	Scraper                bool `json:"scraper"`
	SalesDiagnostic        bool `json:"salesDiagnostic"`
	ProductLaunchOptimizer bool `json:"productLaunchOptimizer"`
}

type LLMInfo struct {
	Provider string `json:"provider"`
	Model    string `json:"model"`
}

// PoolStats reports the state of the browser page pool.
type PoolStats struct {
	MaxPages    int `json:"maxPages"`
	ActivePages int `json:"activePages"`
}

// SystemStats reports host resource usage.
type SystemStats struct {
	CPUPercent     float64 `json:"cpuPercent"`
	MemUsedPercent float64 `json:"memUsedPercent"`
	Goroutines     int     `json:"goroutines"`
}

// HistoryResponse is the response for GET /api/history.
type HistoryResponse struct {
	Success bool            `json:"success"`
	Records []HistoryRecord `json:"records"`
}

// HistoryRecord is one stored analysis.
type HistoryRecord struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Input     string    `json:"input"`
	Summary   string    `json:"summary"`
	CreatedAt time.Time `json:"createdAt"`
}

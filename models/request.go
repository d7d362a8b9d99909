package models

import "strings"

// AnalyzeRequest is the payload for POST /api/analyze-product and
// POST /api/diagnose-sales-problems.
type AnalyzeRequest struct {
	// AmazonURL is the product detail page to analyze. Required.
	AmazonURL string `json:"amazonUrl"`
}

// ValidAmazonURL reports whether the URL points at an Amazon storefront.
func (r *AnalyzeRequest) ValidAmazonURL() bool {
	return strings.Contains(r.AmazonURL, "amazon.")
}

// QuickKeywordsRequest is the payload for POST /api/quick-keywords.
type QuickKeywordsRequest struct {
	ProductTitle string `json:"productTitle"`
	Category     string `json:"category,omitempty"`
	Description  string `json:"description,omitempty"`
	Price        string `json:"price,omitempty"`
}

// CompetitorSearchRequest is the payload for POST /api/competitor-search.
type CompetitorSearchRequest struct {
	SearchQuery string `json:"searchQuery"`

	// MaxResults caps the number of competitors returned.
	// Default: 10.
	MaxResults int `json:"maxResults,omitempty"`
}

// Defaults applies default values to unset fields.
func (r *CompetitorSearchRequest) Defaults() {
	if r.MaxResults <= 0 {
		r.MaxResults = 10
	}
}

// LaunchRequest is the payload for POST /api/optimize-new-product.
type LaunchRequest struct {
	ProductInfo *ProductInfo `json:"productInfo"`
}

// Valid reports whether the mandatory product name and category are set.
func (r *LaunchRequest) Valid() bool {
	return r.ProductInfo != nil &&
		strings.TrimSpace(r.ProductInfo.ProductName) != "" &&
		strings.TrimSpace(r.ProductInfo.Category) != ""
}

// AdKeywordsRequest is the payload for POST /api/generate-ad-keywords.
type AdKeywordsRequest struct {
	ProductData     *Product         `json:"productData"`
	KeywordAnalysis *KeywordAnalysis `json:"keywordAnalysis"`
}

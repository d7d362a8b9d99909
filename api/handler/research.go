package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/use-agent/listingscout/models"
)

// AnalyzeProduct returns a handler for POST /api/analyze-product.
//
// Validation order:
//  1. amazonUrl present              → 400
//  2. LLM configured                 → 500
//  3. amazonUrl names a storefront   → 400
func AnalyzeProduct(svc Researcher, llmReady bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.AnalyzeRequest
		_ = c.ShouldBindJSON(&req)

		if strings.TrimSpace(req.AmazonURL) == "" {
			badRequest(c, "Amazon product URL is required")
			return
		}
		if !llmReady {
			noLLM(c)
			return
		}
		if !req.ValidAmazonURL() {
			badRequest(c, "Please provide a valid Amazon product URL")
			return
		}

		resp, err := svc.AnalyzeProduct(c.Request.Context(), req.AmazonURL)
		if err != nil {
			slog.ErrorContext(c.Request.Context(), "analyze product failed",
				slog.String("url", req.AmazonURL), slog.Any("error", err))
			failed(c, "Failed to analyze product", err, true)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// QuickKeywords returns a handler for POST /api/quick-keywords.
func QuickKeywords(svc Researcher, llmReady bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.QuickKeywordsRequest
		_ = c.ShouldBindJSON(&req)

		if strings.TrimSpace(req.ProductTitle) == "" {
			badRequest(c, "Product title is required")
			return
		}
		if !llmReady {
			noLLM(c)
			return
		}

		resp, err := svc.QuickKeywords(c.Request.Context(), &req)
		if err != nil {
			slog.ErrorContext(c.Request.Context(), "quick keywords failed", slog.Any("error", err))
			failed(c, "Failed to analyze keywords", err, false)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// CompetitorSearch returns a handler for POST /api/competitor-search.
func CompetitorSearch(svc Researcher) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.CompetitorSearchRequest
		_ = c.ShouldBindJSON(&req)

		if strings.TrimSpace(req.SearchQuery) == "" {
			badRequest(c, "Search query is required")
			return
		}
		req.Defaults()

		resp, err := svc.CompetitorSearch(c.Request.Context(), req.SearchQuery, req.MaxResults)
		if err != nil {
			slog.ErrorContext(c.Request.Context(), "competitor search failed",
				slog.String("query", req.SearchQuery), slog.Any("error", err))
			failed(c, "Failed to search competitors", err, false)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// DiagnoseSales returns a handler for POST /api/diagnose-sales-problems.
// It validates like AnalyzeProduct.
func DiagnoseSales(svc Researcher, llmReady bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.AnalyzeRequest
		_ = c.ShouldBindJSON(&req)

		if strings.TrimSpace(req.AmazonURL) == "" {
			badRequest(c, "Amazon product URL is required")
			return
		}
		if !llmReady {
			noLLM(c)
			return
		}
		if !req.ValidAmazonURL() {
			badRequest(c, "Please provide a valid Amazon product URL")
			return
		}

		resp, err := svc.DiagnoseSales(c.Request.Context(), req.AmazonURL)
		if err != nil {
			slog.ErrorContext(c.Request.Context(), "sales diagnostic failed",
				slog.String("url", req.AmazonURL), slog.Any("error", err))
			failed(c, "Failed to diagnose sales problems", err, true)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// OptimizeLaunch returns a handler for POST /api/optimize-new-product.
func OptimizeLaunch(svc Researcher, llmReady bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.LaunchRequest
		_ = c.ShouldBindJSON(&req)

		if !req.Valid() {
			badRequest(c, "Product information is required (productName and category are mandatory)")
			return
		}
		if !llmReady {
			noLLM(c)
			return
		}

		resp, err := svc.OptimizeLaunch(c.Request.Context(), req.ProductInfo)
		if err != nil {
			slog.ErrorContext(c.Request.Context(), "launch optimization failed",
				slog.String("product", req.ProductInfo.ProductName), slog.Any("error", err))
			failed(c, "Failed to optimize product for launch", err, true)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// GenerateAdKeywords returns a handler for POST /api/generate-ad-keywords.
func GenerateAdKeywords(svc Researcher, llmReady bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.AdKeywordsRequest
		_ = c.ShouldBindJSON(&req)

		if req.ProductData == nil || req.KeywordAnalysis == nil {
			badRequest(c, "Product data and keyword analysis are required")
			return
		}
		if !llmReady {
			noLLM(c)
			return
		}

		resp, err := svc.GenerateAdKeywords(c.Request.Context(), req.ProductData, req.KeywordAnalysis)
		if err != nil {
			slog.ErrorContext(c.Request.Context(), "ad keywords failed", slog.Any("error", err))
			failed(c, "Failed to generate ad keywords", err, false)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// TestScraping returns a handler for GET /api/test-scraping.
func TestScraping(svc Researcher) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp, err := svc.TestScraping(c.Request.Context(), c.Query("q"))
		if err != nil {
			slog.ErrorContext(c.Request.Context(), "test scraping failed", slog.Any("error", err))
			c.JSON(http.StatusInternalServerError, gin.H{
				"success":   false,
				"error":     message(err),
				"timestamp": time.Now().UTC(),
			})
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// Package handler holds the gin handlers of the listingscout API.
package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/use-agent/listingscout/models"
	"github.com/use-agent/listingscout/webhook"
)

// Researcher is the research service as the handlers see it.
type Researcher interface {
	AnalyzeProduct(ctx context.Context, url string) (*models.AnalyzeResponse, error)
	QuickKeywords(ctx context.Context, req *models.QuickKeywordsRequest) (*models.QuickKeywordsResponse, error)
	CompetitorSearch(ctx context.Context, query string, maxResults int) (*models.CompetitorSearchResponse, error)
	DiagnoseSales(ctx context.Context, url string) (*models.DiagnoseResponse, error)
	OptimizeLaunch(ctx context.Context, info *models.ProductInfo) (*models.LaunchResponse, error)
	GenerateAdKeywords(ctx context.Context, p *models.Product, k *models.KeywordAnalysis) (*models.AdKeywordsResponse, error)
	TestScraping(ctx context.Context, query string) (*models.TestScrapingResponse, error)
}

// Searcher runs raw competitor searches for batch jobs.
type Searcher interface {
	SearchCompetitors(ctx context.Context, query string, maxResults int) ([]models.Competitor, error)
}

// PoolStatter reports browser pool usage.
type PoolStatter interface {
	Stats() models.PoolStats
}

// Notifier delivers webhook events in the background.
type Notifier interface {
	DeliverAsync(event *webhook.Event)
}

const msgNoLLM = "OpenAI API key not configured"

// message is the human part of err and its cause, without the error code prefix.
func message(err error) string {
	var se *models.ScrapeError
	if !errors.As(err, &se) {
		return err.Error()
	}
	if se.Err != nil {
		return se.Message + ": " + se.Err.Error()
	}
	return se.Message
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}

func noLLM(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{"error": msgNoLLM})
}

// failed writes a 500 with the endpoint's error and the cause.
func failed(c *gin.Context, msg string, err error, withTimestamp bool) {
	body := gin.H{"error": msg, "message": message(err)}
	if withTimestamp {
		body["timestamp"] = time.Now().UTC()
	}
	c.JSON(http.StatusInternalServerError, body)
}

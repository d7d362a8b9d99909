// Package api wires the HTTP routes of the listingscout service.
package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/use-agent/listingscout/api/handler"
	"github.com/use-agent/listingscout/api/middleware"
	"github.com/use-agent/listingscout/config"
	"github.com/use-agent/listingscout/store"
)

// Deps are the services behind the routes.
type Deps struct {
	Research handler.Researcher
	Pool     handler.PoolStatter
	Batches  *handler.Batches
	Store    store.Store
	Started  time.Time
}

// NewRouter creates a configured Gin engine with all routes and middleware.
//
// Middleware chain:
//
//	Global:  Recovery → Logger → CORS
//	API:     Auth (if enabled) → RateLimit
//
// Health and test-scraping stay outside auth so health checks always work.
func NewRouter(cfg *config.Config, d Deps) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)
	if d.Store == nil {
		d.Store = store.Nop{}
	}

	r := gin.New()
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		slog.ErrorContext(c.Request.Context(), "panic in handler",
			slog.String("path", c.Request.URL.Path),
			slog.Any("panic", recovered),
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":   "Internal server error",
			"message": fmt.Sprint(recovered),
		})
	}))
	r.Use(gin.Logger())
	r.Use(cors.New(corsConfig(cfg.Server.CORSOrigins)))

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Endpoint not found"})
	})

	llmReady := cfg.LLM.Configured()
	api := r.Group("/api")

	// Open routes.
	api.GET("/health", handler.Health(d.Pool, cfg.LLM, d.Started))
	api.GET("/test-scraping", handler.TestScraping(d.Research))

	protected := api.Group("")
	if cfg.Auth.Enabled {
		protected.Use(middleware.Auth(cfg.Auth.APIKeys))
	}
	protected.Use(middleware.RateLimit(cfg.RateLimit))

	// Research
	protected.POST("/analyze-product", handler.AnalyzeProduct(d.Research, llmReady))
	protected.POST("/quick-keywords", handler.QuickKeywords(d.Research, llmReady))
	protected.POST("/competitor-search", handler.CompetitorSearch(d.Research))
	protected.POST("/diagnose-sales-problems", handler.DiagnoseSales(d.Research, llmReady))
	protected.POST("/optimize-new-product", handler.OptimizeLaunch(d.Research, llmReady))
	protected.POST("/generate-ad-keywords", handler.GenerateAdKeywords(d.Research, llmReady))

	// Batch
	if d.Batches != nil {
		protected.POST("/batch/competitor-search", d.Batches.Post())
		protected.GET("/batch/:id", d.Batches.Get())
	}

	// History
	protected.GET("/history", handler.History(d.Store))

	return r
}

func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", "X-API-Key"},
		ExposeHeaders: []string{"Retry-After"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
	}
	return c
}

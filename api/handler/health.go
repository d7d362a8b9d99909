package handler

import (
	"log/slog"
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"

	"github.com/use-agent/listingscout/config"
	"github.com/use-agent/listingscout/models"
)

// Health returns a handler for GET /api/health.
//
// The analysis services report ready when an LLM key is configured. CPU
// usage is measured since the previous call, so the first call reads 0.
func Health(sc PoolStatter, llmCfg config.LLMConfig, startTime time.Time) gin.HandlerFunc {
	ready := llmCfg.Configured()
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var sys models.SystemStats
		if pct, err := cpu.PercentWithContext(ctx, 0, false); err == nil && len(pct) > 0 {
			sys.CPUPercent = pct[0]
		} else if err != nil {
			slog.DebugContext(ctx, "cpu usage unavailable", slog.Any("error", err))
		}
		if vm, err := mem.VirtualMemoryWithContext(ctx); err == nil {
			sys.MemUsedPercent = vm.UsedPercent
		}
		sys.Goroutines = runtime.NumGoroutine()

		c.JSON(http.StatusOK, models.HealthResponse{
			Status:    "healthy",
			Timestamp: time.Now().UTC(),
			Uptime:    time.Since(startTime).Round(time.Second).String(),
			Services: models.HealthServices{
				OpenAI:                 ready,
				Scraper:                true,
				SalesDiagnostic:        ready,
				ProductLaunchOptimizer: ready,
			},
			LLM: models.LLMInfo{
				Provider: llmCfg.Provider,
				Model:    llmCfg.Model(),
			},
			Scraper: sc.Stats(),
			System:  sys,
		})
	}
}

package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/use-agent/listingscout/models"
	"github.com/use-agent/listingscout/store"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// History returns a handler for GET /api/history?kind=&limit=.
func History(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultHistoryLimit)))
		if err != nil || limit <= 0 {
			limit = defaultHistoryLimit
		}
		limit = min(limit, maxHistoryLimit)

		records, err := st.List(c.Request.Context(), c.Query("kind"), limit)
		if err != nil {
			slog.ErrorContext(c.Request.Context(), "history query failed", slog.Any("error", err))
			failed(c, "Failed to load history", err, false)
			return
		}
		if records == nil {
			records = []models.HistoryRecord{}
		}
		c.JSON(http.StatusOK, models.HistoryResponse{Success: true, Records: records})
	}
}

package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/use-agent/listingscout/models"
)

// Classify maps a provider SDK error to a ScrapeError carrying an LLM error
// code. Errors that already carry a code are returned unchanged.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	var se *models.ScrapeError
	if errors.As(err, &se) {
		return se
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return models.NewScrapeError(models.ErrCodeTimeout, "LLM request timed out", err)
	}

	status, msg, ok := openAIStatus(err)
	if !ok {
		status, msg, ok = anthropicStatus(err)
	}
	if !ok {
		return models.NewScrapeError(models.ErrCodeLLMFailure, "LLM request failed", err)
	}
	return classifyStatus(status, msg, err)
}

// classifyStatus maps HTTP status codes to appropriate error codes.
func classifyStatus(status int, msg string, err error) *models.ScrapeError {
	if msg == "" {
		msg = "LLM API error"
	}
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return models.NewScrapeError(models.ErrCodeLLMAuthFailure, msg, err)
	case http.StatusTooManyRequests:
		return models.NewScrapeError(models.ErrCodeLLMRateLimited, msg, err)
	default:
		return models.NewScrapeError(models.ErrCodeLLMFailure, fmt.Sprintf("LLM API returned %d: %s", status, msg), err)
	}
}

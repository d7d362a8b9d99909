package main

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/use-agent/listingscout/models"
)

// apiError is the error envelope of the listingscout API.
type apiError struct {
	Msg     string `json:"error"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

func (e *apiError) Error() string {
	msg := e.Msg
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Code != "" {
		return fmt.Sprintf("[%s] %s", e.Code, msg)
	}
	return msg
}

// apiClient calls a running listingscout API.
type apiClient struct {
	r            *resty.Client
	pollInterval time.Duration
}

func newAPIClient(baseURL, apiKey string) *apiClient {
	r := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(5*time.Minute).
		SetHeader("Content-Type", "application/json").
		SetHeader("User-Agent", "listingscout-mcp/1.0")
	if apiKey != "" {
		r.SetHeader("X-API-Key", apiKey)
	}
	return &apiClient{r: r, pollInterval: 2 * time.Second}
}

// post sends payload to path and decodes a 2xx reply into out.
func (a *apiClient) post(ctx context.Context, path string, payload, out any) error {
	resp, err := a.r.R().
		SetContext(ctx).
		SetBody(payload).
		SetResult(out).
		SetError(&apiError{}).
		Post(path)
	return checkResponse(resp, err)
}

func (a *apiClient) get(ctx context.Context, path string, out any) error {
	resp, err := a.r.R().
		SetContext(ctx).
		SetResult(out).
		SetError(&apiError{}).
		Get(path)
	return checkResponse(resp, err)
}

func checkResponse(resp *resty.Response, err error) error {
	if err != nil {
		return fmt.Errorf("API request failed: %w", err)
	}
	if resp.IsError() {
		if e, ok := resp.Error().(*apiError); ok && e.Msg != "" {
			return e
		}
		return fmt.Errorf("API returned %s", resp.Status())
	}
	return nil
}

// waitBatch polls a batch job until it leaves the scraping state or ctx is
// done.
func (a *apiClient) waitBatch(ctx context.Context, id string) (*models.BatchStatusResponse, error) {
	ticker := time.NewTicker(a.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
			var status models.BatchStatusResponse
			if err := a.get(ctx, "/api/batch/"+id, &status); err != nil {
				return nil, err
			}
			if status.Status != "scraping" {
				return &status, nil
			}
		}
	}
}

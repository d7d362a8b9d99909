package engine

import (
	"context"
	"time"
)

// Engine is one fetch tier of the dispatcher chain.
type Engine interface {
	// Name returns the tier identifier ("rod", "http", "firecrawl").
	Name() string

	// Fetch retrieves the page HTML for the given request.
	Fetch(ctx context.Context, req *FetchRequest) (*FetchResult, error)
}

// FetchRequest contains everything a tier needs to fetch a page.
type FetchRequest struct {
	URL     string
	Headers map[string]string

	// Timeout bounds a single tier attempt. Zero means the caller's context
	// deadline alone applies.
	Timeout time.Duration
}

// FetchResult is the output of a successful fetch.
type FetchResult struct {
	HTML       string
	Title      string
	StatusCode int
	FinalURL   string
	EngineName string
}

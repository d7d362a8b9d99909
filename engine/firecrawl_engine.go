package engine

import (
	"context"
	"fmt"

	"github.com/mendableai/firecrawl-go/v2"
)

// firecrawlAPIURL is the hosted endpoint used when no URL is configured.
const firecrawlAPIURL = "https://api.firecrawl.dev"

// FirecrawlEngine is the hosted fetch tier. It is last in the chain and
// only built when an API key is configured.
type FirecrawlEngine struct {
	app *firecrawl.FirecrawlApp
}

// NewFirecrawlEngine creates the tier for the given API key and endpoint.
func NewFirecrawlEngine(apiKey, apiURL string) (*FirecrawlEngine, error) {
	if apiURL == "" {
		apiURL = firecrawlAPIURL
	}
	app, err := firecrawl.NewFirecrawlApp(apiKey, apiURL)
	if err != nil {
		return nil, fmt.Errorf("firecrawl: init: %w", err)
	}
	return &FirecrawlEngine{app: app}, nil
}

func (e *FirecrawlEngine) Name() string { return "firecrawl" }

func (e *FirecrawlEngine) Fetch(ctx context.Context, req *FetchRequest) (*FetchResult, error) {
	onlyMain := false
	params := &firecrawl.ScrapeParams{
		Formats:         []string{"rawHtml"},
		OnlyMainContent: &onlyMain,
	}
	if req.Timeout > 0 {
		ms := int(req.Timeout.Milliseconds())
		params.Timeout = &ms
	}

	// The SDK call takes no context; run it aside so cancellation returns
	// promptly.
	type outcome struct {
		doc *firecrawl.FirecrawlDocument
		err error
	}
	done := make(chan outcome, 1)
	go func() {
		doc, err := e.app.ScrapeURL(req.URL, params)
		done <- outcome{doc, err}
	}()

	var doc *firecrawl.FirecrawlDocument
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case o := <-done:
		if o.err != nil {
			return nil, fmt.Errorf("firecrawl: scrape %s: %w", req.URL, o.err)
		}
		doc = o.doc
	}

	page := doc.RawHTML
	if page == "" {
		page = doc.HTML
	}
	if page == "" {
		return nil, fmt.Errorf("firecrawl: no html returned for %s", req.URL)
	}

	var title string
	if doc.Metadata != nil && doc.Metadata.Title != nil {
		title = *doc.Metadata.Title
	}
	if title == "" {
		title = extractTitle(page)
	}
	return &FetchResult{
		HTML:       page,
		Title:      title,
		StatusCode: 200,
		FinalURL:   req.URL,
		EngineName: e.Name(),
	}, nil
}

package engine

import (
	"context"
	"fmt"
)

// RenderFunc renders a page in the shared browser. It is injected by the
// scraper so engine/ does not import scraper/.
type RenderFunc func(ctx context.Context, req *FetchRequest) (*FetchResult, error)

// RodEngine is the headless browser tier.
type RodEngine struct {
	render RenderFunc
}

// NewRodEngine wraps a browser render function as a tier.
func NewRodEngine(render RenderFunc) *RodEngine {
	return &RodEngine{render: render}
}

func (e *RodEngine) Name() string { return "rod" }

func (e *RodEngine) Fetch(ctx context.Context, req *FetchRequest) (*FetchResult, error) {
	if e.render == nil {
		return nil, fmt.Errorf("rod: render func not configured")
	}
	res, err := e.render(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("rod: %w", err)
	}
	return res, nil
}

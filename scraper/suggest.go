package scraper

import (
	"context"
	"log/slog"
	"strings"
)

const completionURL = "https://completion.amazon.com/api/2017/suggestions"

type suggestionsResponse struct {
	Suggestions []struct {
		Value string `json:"value"`
	} `json:"suggestions"`
}

// KeywordSuggestions returns the shopper search completions Amazon offers
// for seed in the configured marketplace. It is best-effort: any failure
// yields nil.
func (s *Scraper) KeywordSuggestions(ctx context.Context, seed string) []string {
	seed = strings.TrimSpace(seed)
	if seed == "" {
		return nil
	}

	var out suggestionsResponse
	resp, err := s.suggest.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"page-type":       "Search",
			"client-info":     "amazon-search-ui",
			"limit":           "15",
			"mid":             s.market.MarketplaceID,
			"alias":           "aps",
			"suggestion-type": "KEYWORD",
			"prefix":          seed,
		}).
		SetResult(&out).
		Get(s.suggestURL)
	if err != nil {
		s.logger.DebugContext(ctx, "keyword suggestions failed", slog.Any("error", err))
		return nil
	}
	if resp.IsError() {
		s.logger.DebugContext(ctx, "keyword suggestions failed", slog.Int("status", resp.StatusCode()))
		return nil
	}

	values := make([]string, 0, len(out.Suggestions))
	for _, sg := range out.Suggestions {
		if v := strings.TrimSpace(sg.Value); v != "" {
			values = append(values, v)
		}
	}
	return values
}

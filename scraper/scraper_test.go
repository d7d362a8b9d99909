package scraper

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/use-agent/listingscout/cache"
	"github.com/use-agent/listingscout/config"
	"github.com/use-agent/listingscout/engine"
	"github.com/use-agent/listingscout/models"
)

type fakeFetcher struct {
	mu   sync.Mutex
	html string
	err  error
	urls []string
}

func (f *fakeFetcher) Dispatch(_ context.Context, req *engine.FetchRequest) (*engine.FetchResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.urls = append(f.urls, req.URL)
	if f.err != nil {
		return nil, f.err
	}
	return &engine.FetchResult{HTML: f.html, StatusCode: 200, EngineName: "fake"}, nil
}

func testScraper(f fetcher, opts ...Option) (*Scraper, *[]time.Duration) {
	cfg := config.ScraperConfig{
		Marketplace:       "US",
		NavigationTimeout: time.Second,
		SearchDelayMin:    time.Second,
		SearchDelayMax:    3 * time.Second,
	}
	s := newScraper(f, cfg, opts...)
	var slept []time.Duration
	s.sleep = func(_ context.Context, d time.Duration) error {
		slept = append(slept, d)
		return nil
	}
	return s, &slept
}

func TestSearchCompetitors(t *testing.T) {
	f := &fakeFetcher{html: searchHTML}
	s, slept := testScraper(f, WithCache(cache.New[[]models.Competitor](time.Minute, 10)))

	got, err := s.SearchCompetitors(context.Background(), "water bottle", 5)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, []string{"https://www.amazon.com/s?k=water+bottle&ref=sr_pg_1"}, f.urls)
	require.Len(t, *slept, 1)
	require.GreaterOrEqual(t, (*slept)[0], time.Second)
	require.LessOrEqual(t, (*slept)[0], 3*time.Second)

	// Served from cache: no fetch, no delay.
	again, err := s.SearchCompetitors(context.Background(), "water bottle", 5)
	require.NoError(t, err)
	require.Equal(t, got, again)
	require.Len(t, f.urls, 1)
	require.Len(t, *slept, 1)

	// A different cap is a different key.
	_, err = s.SearchCompetitors(context.Background(), "water bottle", 1)
	require.NoError(t, err)
	require.Len(t, f.urls, 2)
}

func TestSearchCompetitorsFailure(t *testing.T) {
	f := &fakeFetcher{err: models.NewScrapeError(models.ErrCodeBotChallenge, "bot challenge page", nil)}
	s, _ := testScraper(f)

	got, err := s.SearchCompetitors(context.Background(), "water bottle", 5)
	require.Error(t, err)
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestSearchCompetitorsCanceledDuringDelay(t *testing.T) {
	f := &fakeFetcher{html: searchHTML}
	s, _ := testScraper(f)
	s.sleep = sleepCtx

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := s.SearchCompetitors(ctx, "water bottle", 5)
	require.ErrorIs(t, err, context.Canceled)
	require.Empty(t, f.urls)
}

func TestTestSearchDefaults(t *testing.T) {
	f := &fakeFetcher{html: searchHTML}
	s, _ := testScraper(f)

	_, err := s.TestSearch(context.Background(), "")
	require.NoError(t, err)
	require.Equal(t, []string{"https://www.amazon.com/s?k=water+dispenser+pump&ref=sr_pg_1"}, f.urls)
}

func TestScrapeProduct(t *testing.T) {
	f := &fakeFetcher{html: productHTML}
	s, _ := testScraper(f)
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return at }

	p, err := s.ScrapeProduct(context.Background(), "https://www.amazon.com/dp/B0ABCDEF12")
	require.NoError(t, err)
	require.Equal(t, "Insulated Water Bottle", p.Title)
	require.Equal(t, "B0ABCDEF12", p.ASIN)
	require.Equal(t, at, p.ScrapedAt)

	f.err = errors.New("all tiers failed")
	_, err = s.ScrapeProduct(context.Background(), "https://www.amazon.com/dp/B0ABCDEF12")
	require.Error(t, err)
}

func TestKeywordSuggestions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("prefix") != "water bottle" || q.Get("mid") != "ATVPDKIKX0DER" || q.Get("alias") != "aps" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"prefix":"water bottle","suggestions":[{"value":"water bottle with straw"},{"value":" "},{"value":"water bottle 32 oz"}]}`))
	}))
	defer srv.Close()

	s, _ := testScraper(nil)
	s.suggestURL = srv.URL

	got := s.KeywordSuggestions(context.Background(), " water bottle ")
	require.Equal(t, []string{"water bottle with straw", "water bottle 32 oz"}, got)

	require.Nil(t, s.KeywordSuggestions(context.Background(), ""))

	s.suggestURL = srv.URL + "/missing"
	require.Nil(t, s.KeywordSuggestions(context.Background(), "kettle"))
}

func TestStatsWithoutBrowser(t *testing.T) {
	s, _ := testScraper(nil)
	require.Equal(t, models.PoolStats{}, s.Stats())
	s.Close()
}

func TestPageHealthRetirement(t *testing.T) {
	h := newPageHealth()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	h.now = func() time.Time { return now }

	require.False(t, h.record("flaky", false))
	require.False(t, h.record("flaky", false))
	require.True(t, h.record("flaky", false))

	for i := 1; i < maxUses; i++ {
		require.False(t, h.record("busy", true), "use %d", i)
	}
	require.True(t, h.record("busy", true))

	require.False(t, h.record("old", true))
	now = now.Add(maxPageAge)
	require.True(t, h.record("old", true))
}

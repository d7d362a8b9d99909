package scraper

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"slices"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/launcher/flags"
	"github.com/go-rod/rod/lib/proto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/use-agent/listingscout/cache"
	"github.com/use-agent/listingscout/config"
	"github.com/use-agent/listingscout/engine"
	"github.com/use-agent/listingscout/models"
	"github.com/use-agent/listingscout/telemetry"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// testQuery is the query used when the diagnostics endpoint gets no query.
const testQuery = "water dispenser pump"

// fetcher is the part of engine.Dispatcher the scraper needs.
type fetcher interface {
	Dispatch(ctx context.Context, req *engine.FetchRequest) (*engine.FetchResult, error)
}

// Scraper owns the shared browser and turns Amazon pages into records.
// It is safe for concurrent use.
type Scraper struct {
	browser  *rod.Browser
	pagePool rod.Pool[rod.Page]
	blocked  map[proto.NetworkResourceType]struct{}
	health   *pageHealth

	browserCfg config.BrowserConfig
	scraperCfg config.ScraperConfig
	market     Marketplace

	fetch      fetcher
	dispatcher *engine.Dispatcher
	cache      *cache.Cache[[]models.Competitor]
	suggest    *resty.Client
	suggestURL string

	activePages atomic.Int32
	sleep       func(ctx context.Context, d time.Duration) error
	now         func() time.Time
	logger      *slog.Logger
	tracer      trace.Tracer
}

// Option configures a Scraper.
type Option func(*Scraper)

// WithCache reuses search results for the cache's TTL.
func WithCache(c *cache.Cache[[]models.Competitor]) Option {
	return func(s *Scraper) { s.cache = c }
}

// WithLogger replaces the default logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Scraper) { s.logger = l }
}

// New launches a headless browser, builds the page pool and the fetch tier
// chain: rod, then plain HTTP, then firecrawl when an API key is set.
func New(browserCfg config.BrowserConfig, scraperCfg config.ScraperConfig, opts ...Option) (*Scraper, error) {
	l := launcher.New().
		Headless(browserCfg.Headless).
		NoSandbox(browserCfg.NoSandbox)

	if browserCfg.BrowserBin != "" {
		l = l.Bin(browserCfg.BrowserBin)
	}
	if browserCfg.DefaultProxy != "" {
		l = l.Proxy(browserCfg.DefaultProxy)
	}

	// ── Stealth flags ────────────────────────────────────────────────
	l.Set(flags.Flag("disable-blink-features"), "AutomationControlled")
	l.Delete(flags.Flag("enable-automation"))
	l.Set(flags.Flag("user-agent"), userAgent)
	l.Set(flags.Flag("window-size"), "1920,1080")
	l.Set(flags.Flag("disable-features"), "TranslateUI")
	l.Set(flags.Flag("disable-renderer-backgrounding"))
	l.Set(flags.Flag("disable-background-timer-throttling"))
	l.Set(flags.Flag("disable-dev-shm-usage"))
	l.Set(flags.Flag("disable-extensions"))
	l.Set(flags.Flag("no-first-run"))

	controlURL, err := l.Launch()
	if err != nil {
		return nil, models.NewScrapeError(models.ErrCodeBrowserCrash, "failed to launch browser", err)
	}

	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		return nil, models.NewScrapeError(models.ErrCodeBrowserCrash, "failed to connect to browser", err)
	}

	s := newScraper(nil, scraperCfg, opts...)
	s.browser = browser
	s.browserCfg = browserCfg
	s.pagePool = rod.NewPagePool(browserCfg.MaxPages)
	s.logger.Info("browser launched",
		slog.String("controlURL", controlURL),
		slog.Int("maxPages", browserCfg.MaxPages),
	)

	engines := []engine.Engine{
		engine.NewRodEngine(s.render),
		engine.NewHTTPEngine(browserCfg.DefaultProxy, s.market.AcceptLanguage).WithTimeout(scraperCfg.HTTPTimeout),
	}
	if scraperCfg.FirecrawlAPIKey != "" {
		fc, err := engine.NewFirecrawlEngine(scraperCfg.FirecrawlAPIKey, scraperCfg.FirecrawlAPIURL)
		if err != nil {
			s.logger.Warn("firecrawl tier disabled", slog.Any("error", err))
		} else {
			engines = append(engines, fc)
		}
	}
	s.dispatcher = engine.NewDispatcher(engine.NewHostMemory(time.Hour), engines...)
	s.fetch = s.dispatcher
	s.logger.Info("fetch tiers ready", slog.Any("engines", s.dispatcher.Engines()))

	return s, nil
}

// newScraper builds everything but the browser.
func newScraper(f fetcher, scraperCfg config.ScraperConfig, opts ...Option) *Scraper {
	s := &Scraper{
		scraperCfg: scraperCfg,
		market:     LookupMarketplace(scraperCfg.Marketplace),
		blocked:    blockedTypes(scraperCfg.BlockedResourceTypes),
		health:     newPageHealth(),
		fetch:      f,
		suggest:    resty.New().SetTimeout(5 * time.Second).SetHeader("User-Agent", userAgent),
		suggestURL: completionURL,
		sleep:      sleepCtx,
		now:        time.Now,
		logger:     slog.Default().WithGroup("scraper"),
		tracer:     otel.Tracer("github.com/use-agent/listingscout/scraper"),
	}
	telemetry.InstrumentResty(s.suggest, "github.com/use-agent/listingscout/scraper")
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Marketplace returns the storefront searches run against.
func (s *Scraper) Marketplace() Marketplace { return s.market }

// ScrapeProduct fetches and parses one product detail page.
func (s *Scraper) ScrapeProduct(ctx context.Context, productURL string) (*models.Product, error) {
	ctx, span := s.tracer.Start(ctx, "scrape.product", trace.WithAttributes(attribute.String("url", productURL)))
	defer span.End()

	res, err := s.fetch.Dispatch(ctx, &engine.FetchRequest{
		URL:     productURL,
		Timeout: s.scraperCfg.NavigationTimeout,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "fetch failed")
		return nil, err
	}
	span.SetAttributes(attribute.String("engine", res.EngineName))

	product, err := ParseProduct(res.HTML, productURL)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "parse failed")
		return nil, err
	}
	product.ScrapedAt = s.now()
	return product, nil
}

// SearchCompetitors returns up to maxResults organic results for query.
// On failure it returns an empty slice together with the error.
func (s *Scraper) SearchCompetitors(ctx context.Context, query string, maxResults int) ([]models.Competitor, error) {
	ctx, span := s.tracer.Start(ctx, "scrape.search", trace.WithAttributes(
		attribute.String("query", query),
		attribute.Int("max", maxResults),
		attribute.String("marketplace", s.market.Code),
	))
	defer span.End()

	key := cache.Key(s.market.Code, query, strconv.Itoa(maxResults))
	if s.cache != nil {
		if cs, ok := s.cache.Get(key); ok {
			span.SetAttributes(attribute.Bool("cached", true))
			return slices.Clone(cs), nil
		}
	}

	if err := s.sleep(ctx, s.searchDelay()); err != nil {
		return []models.Competitor{}, err
	}

	res, err := s.fetch.Dispatch(ctx, &engine.FetchRequest{
		URL:     s.market.SearchURL(query),
		Timeout: s.scraperCfg.NavigationTimeout,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "fetch failed")
		s.logger.WarnContext(ctx, "competitor search failed",
			slog.String("query", query),
			slog.Any("error", err),
		)
		return []models.Competitor{}, err
	}

	cs := ParseSearch(res.HTML, s.market.linkBase(), maxResults)
	span.SetAttributes(attribute.Int("results", len(cs)))
	s.logger.InfoContext(ctx, "competitor search done",
		slog.String("query", query),
		slog.String("engine", res.EngineName),
		slog.Int("results", len(cs)),
	)
	if s.cache != nil && len(cs) > 0 {
		s.cache.Set(key, slices.Clone(cs))
	}
	return cs, nil
}

// TestSearch runs a small search for the diagnostics endpoint.
func (s *Scraper) TestSearch(ctx context.Context, query string) ([]models.Competitor, error) {
	if query == "" {
		query = testQuery
	}
	return s.SearchCompetitors(ctx, query, 5)
}

// Stats returns a snapshot of the pool's current state.
func (s *Scraper) Stats() models.PoolStats {
	return models.PoolStats{
		MaxPages:    s.browserCfg.MaxPages,
		ActivePages: int(s.activePages.Load()),
	}
}

// Close drains the page pool and kills the browser process.
func (s *Scraper) Close() {
	if s.browser == nil {
		return
	}
	s.logger.Info("scraper shutting down: draining page pool")
	s.pagePool.Cleanup(func(p *rod.Page) {
		_ = p.Close()
	})
	s.browser.MustClose()
	s.logger.Info("scraper shutdown complete")
}

// searchDelay picks a uniform delay in [SearchDelayMin, SearchDelayMax].
func (s *Scraper) searchDelay() time.Duration {
	lo, hi := s.scraperCfg.SearchDelayMin, s.scraperCfg.SearchDelayMax
	if hi <= lo {
		return lo
	}
	return lo + rand.N(hi-lo+1)
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

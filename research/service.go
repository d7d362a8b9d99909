// Package research combines scraping and LLM analysis into the responses
// served by the API.
package research

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-json-experiment/json"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/use-agent/listingscout/models"
	"github.com/use-agent/listingscout/store"
	"github.com/use-agent/listingscout/webhook"
)

// Record kinds written to the history store.
const (
	KindAnalyze          = "analyze-product"
	KindQuickKeywords    = "quick-keywords"
	KindCompetitorSearch = "competitor-search"
	KindDiagnose         = "diagnose-sales"
	KindLaunch           = "optimize-launch"
	KindAdKeywords       = "ad-keywords"
)

// EventAnalysisCompleted is the webhook event type sent after each recorded
// analysis.
const EventAnalysisCompleted = "analysis.completed"

// recordTimeout bounds the history write, which outlives a cancelled request.
const recordTimeout = 5 * time.Second

// Scraper fetches product and search pages.
type Scraper interface {
	ScrapeProduct(ctx context.Context, url string) (*models.Product, error)
	SearchCompetitors(ctx context.Context, query string, maxResults int) ([]models.Competitor, error)
	TestSearch(ctx context.Context, query string) ([]models.Competitor, error)
}

// Analyzer runs the LLM analyses. A completion error is returned; an
// undecodable reply is replaced by the analysis's own fallback.
type Analyzer interface {
	KeywordAnalysis(ctx context.Context, p *models.Product) (*models.KeywordAnalysis, error)
	CompetitorAnalysis(ctx context.Context, p *models.Product, cs []models.Competitor) (*models.CompetitorAnalysis, error)
	AdKeywords(ctx context.Context, p *models.Product, k *models.KeywordAnalysis) (*models.AdKeywords, error)
	SalesStrategy(ctx context.Context, p *models.Product, ca *models.CompetitorAnalysis, k *models.KeywordAnalysis) (*models.SalesStrategy, error)
	DiagnoseSales(ctx context.Context, p *models.Product, top []models.Competitor) (*models.SalesProblems, error)
	KeywordGaps(ctx context.Context, p *models.Product, top []models.Competitor) (*models.KeywordGaps, error)
	ListingOptimization(ctx context.Context, p *models.Product, top []models.Competitor) (*models.ListingOptimization, error)
	OptimizeListing(ctx context.Context, info *models.ProductInfo, cs []models.Competitor) (*models.OptimizedListing, error)
	CompetitorInsights(ctx context.Context, info *models.ProductInfo, cs []models.Competitor) (*models.CompetitorInsights, error)
	LaunchPlan(ctx context.Context, info *models.ProductInfo, insights *models.CompetitorInsights, listing *models.OptimizedListing) (*models.LaunchPlan, error)
}

// Notifier delivers webhook events without blocking the caller.
type Notifier interface {
	DeliverAsync(event *webhook.Event)
}

// Service answers the research endpoints.
type Service struct {
	scraper  Scraper
	analyzer Analyzer
	store    store.Store
	notifier Notifier
	lite     bool
	now      func() time.Time
	logger   *slog.Logger
	tracer   trace.Tracer
}

// Option configures a Service.
type Option func(*Service)

// WithStore records completed analyses.
func WithStore(st store.Store) Option {
	return func(s *Service) { s.store = st }
}

// WithNotifier announces completed analyses.
func WithNotifier(n Notifier) Option {
	return func(s *Service) { s.notifier = n }
}

// WithLiteMode makes OptimizeLaunch skip scraping and the launch LLM calls.
func WithLiteMode(lite bool) Option {
	return func(s *Service) { s.lite = lite }
}

// WithClock replaces time.Now for response timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithLogger replaces the default logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// New creates a Service. Without WithStore and WithNotifier nothing is
// recorded or announced.
func New(sc Scraper, an Analyzer, opts ...Option) *Service {
	s := &Service{
		scraper:  sc,
		analyzer: an,
		store:    store.Nop{},
		now:      time.Now,
		logger:   slog.Default().WithGroup("research"),
		tracer:   otel.Tracer("github.com/use-agent/listingscout/research"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Lite reports whether launch optimisation runs in lite mode.
func (s *Service) Lite() bool { return s.lite }

func (s *Service) start(ctx context.Context, op string) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, "research."+op)
}

func fail(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

// record stores a completed analysis and announces it. Failures are logged
// and never reach the caller.
func (s *Service) record(ctx context.Context, kind, input string, summary any) {
	body, err := json.Marshal(summary)
	if err != nil {
		s.logger.WarnContext(ctx, "history summary not encodable",
			slog.String("kind", kind),
			slog.Any("error", err),
		)
		body = []byte("{}")
	}

	rec := &models.HistoryRecord{
		ID:        uuid.NewString(),
		Kind:      kind,
		Input:     input,
		Summary:   string(body),
		CreatedAt: s.now().UTC(),
	}

	saveCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), recordTimeout)
	defer cancel()
	if err := s.store.Save(saveCtx, rec); err != nil {
		s.logger.WarnContext(ctx, "history write failed",
			slog.String("kind", kind),
			slog.Any("error", err),
		)
	}

	if s.notifier != nil {
		s.notifier.DeliverAsync(&webhook.Event{
			Type:      EventAnalysisCompleted,
			ID:        rec.ID,
			Timestamp: rec.CreatedAt.Unix(),
			Data:      rec,
		})
	}
}

// search runs one competitor search and treats a failed search as empty.
func (s *Service) search(ctx context.Context, query string, maxResults int) []models.Competitor {
	cs, err := s.scraper.SearchCompetitors(ctx, query, maxResults)
	if err != nil {
		s.logger.WarnContext(ctx, "search failed, continuing without results",
			slog.String("query", query),
			slog.Any("error", err),
		)
		return []models.Competitor{}
	}
	return cs
}

// scrapeOrPlaceholder scrapes url and substitutes PlaceholderProduct when
// scraping fails.
func (s *Service) scrapeOrPlaceholder(ctx context.Context, url string) (*models.Product, bool) {
	p, err := s.scraper.ScrapeProduct(ctx, url)
	if err != nil {
		s.logger.WarnContext(ctx, "product scrape failed, using placeholder",
			slog.String("url", url),
			slog.Any("error", err),
		)
		return PlaceholderProduct(url), true
	}
	return p, false
}

func head[T any](s []T, n int) []T {
	if len(s) > n {
		return s[:n]
	}
	return s
}

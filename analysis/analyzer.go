package analysis

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/use-agent/listingscout/cleaner"
	"github.com/use-agent/listingscout/llm"
	"github.com/use-agent/listingscout/models"
)

var tracer = otel.Tracer("github.com/use-agent/listingscout/analysis")

// System roles sent with each operation.
const (
	roleSEO         = "You are an expert Amazon SEO specialist with deep knowledge of keyword research, product ranking, and Amazon's A9 algorithm. Provide actionable, data-driven keyword recommendations."
	roleMarket      = "You are an expert Amazon marketplace analyst specializing in competitive analysis and market positioning."
	rolePPC         = "You are an expert Amazon PPC specialist with extensive experience in keyword bidding, campaign optimization, and profitable advertising strategies."
	roleFBA         = "You are an expert Amazon FBA consultant specializing in sales optimization, listing improvement, and marketplace growth strategies."
	roleDiagnostic  = "You are an expert Amazon FBA consultant specializing in diagnosing why products fail to sell and providing actionable solutions to increase sales."
	roleKeywordGaps = "You are an expert Amazon SEO specialist focusing on keyword gap analysis and ranking opportunities."
	roleListing     = "You are an expert Amazon listing optimization specialist with deep knowledge of the A9 algorithm and conversion optimization."
	roleCopywriter  = "You are a world-class Amazon listing copywriter and SEO specialist. You understand consumer psychology, emotional triggers, and the Amazon A9 algorithm. You study competitor weaknesses and write listings that combine storytelling, social proof, and strategic keyword placement to outrank and outsell them."
	roleIntel       = "You are an expert market research analyst specializing in Amazon marketplace competitive intelligence and product launch strategy."
	roleLaunch      = "You are an expert Amazon product launch strategist with extensive experience in successful product launches and scaling strategies."
)

// KeywordSuggester returns real shopper search queries for a seed phrase.
// Implementations are best-effort and return nil on failure.
type KeywordSuggester interface {
	KeywordSuggestions(ctx context.Context, seed string) []string
}

// Analyzer turns scraped records into LLM analyses.
type Analyzer struct {
	llm             llm.Completer
	suggester       KeywordSuggester
	maxPromptTokens int
	logger          *slog.Logger
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithSuggester adds autocomplete suggestions to keyword prompts.
func WithSuggester(s KeywordSuggester) Option {
	return func(a *Analyzer) { a.suggester = s }
}

// WithMaxPromptTokens caps the estimated prompt size. Product descriptions
// are shortened to fit.
func WithMaxPromptTokens(n int) Option {
	return func(a *Analyzer) { a.maxPromptTokens = n }
}

// New creates an Analyzer backed by the given completer.
func New(c llm.Completer, opts ...Option) *Analyzer {
	a := &Analyzer{
		llm:    c,
		logger: slog.Default().WithGroup("analysis"),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// call is one LLM step: its name (for spans and logs), its request and the
// payload to substitute when the reply cannot be decoded.
type call[T any] struct {
	step     string
	req      llm.Request
	fallback func() *T
}

// run sends the request and decodes the reply into T. A completion error is
// returned as is. A reply that cannot be decoded yields the fallback and a
// nil error.
func run[T any](ctx context.Context, a *Analyzer, c call[T]) (*T, error) {
	ctx, span := tracer.Start(ctx, "llm."+c.step)
	defer span.End()
	span.SetAttributes(
		attribute.Int("llm.max_tokens", c.req.MaxTokens),
		attribute.Float64("llm.temperature", c.req.Temperature),
		attribute.Int("llm.prompt_tokens_estimate", cleaner.EstimateTokens(c.req.Prompt)),
	)

	raw, err := a.llm.Complete(ctx, c.req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "completion failed")
		return nil, err
	}

	out, err := llm.DecodeJSON[T](raw)
	if err != nil {
		a.logger.WarnContext(ctx, "unparseable reply, using fallback",
			slog.String("step", c.step),
			slog.Any("error", err),
		)
		span.SetAttributes(attribute.Bool("llm.fallback", true))
		return c.fallback(), nil
	}
	return &out, nil
}

// fit renders a prompt and, when it exceeds the token budget, renders it
// again with a shortened description.
func (a *Analyzer) fit(desc string, render func(desc string) string) string {
	prompt := render(desc)
	if a.maxPromptTokens <= 0 {
		return prompt
	}
	over := cleaner.EstimateTokens(prompt) - a.maxPromptTokens
	if over <= 0 {
		return prompt
	}
	keep := cleaner.EstimateTokens(desc) - over
	if keep < 0 {
		keep = 0
	}
	return render(cleaner.Truncate(desc, keep))
}

// KeywordAnalysis produces keyword research for a product.
func (a *Analyzer) KeywordAnalysis(ctx context.Context, p *models.Product) (*models.KeywordAnalysis, error) {
	var suggestions []string
	if a.suggester != nil {
		suggestions = a.suggester.KeywordSuggestions(ctx, seedPhrase(p.Title))
	}
	prompt := a.fit(p.Description, func(desc string) string {
		return keywordPrompt(p, desc, suggestions)
	})
	return run(ctx, a, call[models.KeywordAnalysis]{
		step:     "keyword_analysis",
		req:      llm.Request{System: roleSEO, Prompt: prompt, Temperature: 0.7, MaxTokens: 2000},
		fallback: FallbackKeywordAnalysis,
	})
}

// CompetitorAnalysis positions a product against its top five competitors.
func (a *Analyzer) CompetitorAnalysis(ctx context.Context, p *models.Product, competitors []models.Competitor) (*models.CompetitorAnalysis, error) {
	return run(ctx, a, call[models.CompetitorAnalysis]{
		step:     "competitor_analysis",
		req:      llm.Request{System: roleMarket, Prompt: competitorPrompt(p, head(competitors, 5)), Temperature: 0.7, MaxTokens: 1500},
		fallback: FallbackCompetitorAnalysis,
	})
}

// AdKeywords builds PPC keyword buckets from a product and its keyword
// research.
func (a *Analyzer) AdKeywords(ctx context.Context, p *models.Product, k *models.KeywordAnalysis) (*models.AdKeywords, error) {
	return run(ctx, a, call[models.AdKeywords]{
		step:     "ad_keywords",
		req:      llm.Request{System: rolePPC, Prompt: adKeywordsPrompt(p, k), Temperature: 0.6, MaxTokens: 1500},
		fallback: FallbackAdKeywords,
	})
}

// SalesStrategy builds a phased improvement plan.
func (a *Analyzer) SalesStrategy(ctx context.Context, p *models.Product, ca *models.CompetitorAnalysis, k *models.KeywordAnalysis) (*models.SalesStrategy, error) {
	return run(ctx, a, call[models.SalesStrategy]{
		step:     "sales_strategy",
		req:      llm.Request{System: roleFBA, Prompt: salesStrategyPrompt(p, ca, k), Temperature: 0.7, MaxTokens: 2000},
		fallback: FallbackSalesStrategy,
	})
}

// DiagnoseSales explains why a listing underperforms its top five
// competitors.
func (a *Analyzer) DiagnoseSales(ctx context.Context, p *models.Product, top []models.Competitor) (*models.SalesProblems, error) {
	prompt := a.fit(p.Description, func(desc string) string {
		return diagnosePrompt(p, desc, head(top, 5))
	})
	return run(ctx, a, call[models.SalesProblems]{
		step:     "diagnose_sales",
		req:      llm.Request{System: roleDiagnostic, Prompt: prompt, Temperature: 0.7, MaxTokens: 2500},
		fallback: FallbackSalesProblems,
	})
}

// KeywordGaps finds keywords the top three competitors use that the listing
// lacks.
func (a *Analyzer) KeywordGaps(ctx context.Context, p *models.Product, top []models.Competitor) (*models.KeywordGaps, error) {
	top = head(top, 3)
	missing := CoverageGaps(listingText(p), top)
	prompt := a.fit(p.Description, func(desc string) string {
		return keywordGapsPrompt(p, desc, top, missing)
	})
	return run(ctx, a, call[models.KeywordGaps]{
		step:     "keyword_gaps",
		req:      llm.Request{System: roleKeywordGaps, Prompt: prompt, Temperature: 0.6, MaxTokens: 2000},
		fallback: FallbackKeywordGaps,
	})
}

// ListingOptimization rewrites listing copy modelled on the top three
// performers.
func (a *Analyzer) ListingOptimization(ctx context.Context, p *models.Product, top []models.Competitor) (*models.ListingOptimization, error) {
	prompt := a.fit(p.Description, func(desc string) string {
		return listingOptimizationPrompt(p, desc, head(top, 3))
	})
	return run(ctx, a, call[models.ListingOptimization]{
		step:     "listing_optimization",
		req:      llm.Request{System: roleListing, Prompt: prompt, Temperature: 0.7, MaxTokens: 2500},
		fallback: FallbackListingOptimization,
	})
}

// OptimizeListing writes launch copy for a new product against up to
// fifteen competitors.
func (a *Analyzer) OptimizeListing(ctx context.Context, info *models.ProductInfo, competitors []models.Competitor) (*models.OptimizedListing, error) {
	return run(ctx, a, call[models.OptimizedListing]{
		step: "optimize_listing",
		req:  llm.Request{System: roleCopywriter, Prompt: optimizeListingPrompt(info, competitors), Temperature: 0.7, MaxTokens: 3000},
		fallback: func() *models.OptimizedListing {
			return FallbackOptimizedListing(info)
		},
	})
}

// CompetitorInsights analyses up to eight competitors for a launch.
func (a *Analyzer) CompetitorInsights(ctx context.Context, info *models.ProductInfo, competitors []models.Competitor) (*models.CompetitorInsights, error) {
	return run(ctx, a, call[models.CompetitorInsights]{
		step:     "competitor_insights",
		req:      llm.Request{System: roleIntel, Prompt: insightsPrompt(info, head(competitors, 8)), Temperature: 0.6, MaxTokens: 2500},
		fallback: FallbackCompetitorInsights,
	})
}

// LaunchPlan builds a 90-day launch plan from the insights and listing.
func (a *Analyzer) LaunchPlan(ctx context.Context, info *models.ProductInfo, insights *models.CompetitorInsights, listing *models.OptimizedListing) (*models.LaunchPlan, error) {
	return run(ctx, a, call[models.LaunchPlan]{
		step:     "launch_plan",
		req:      llm.Request{System: roleLaunch, Prompt: launchPlanPrompt(info, insights, listing), Temperature: 0.7, MaxTokens: 3000},
		fallback: FallbackLaunchPlan,
	})
}

func head[T any](s []T, n int) []T {
	if len(s) > n {
		return s[:n]
	}
	return s
}

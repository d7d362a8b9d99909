package research

import (
	"context"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"github.com/use-agent/listingscout/models"
)

const (
	analyzeSearchMax = 10
	broadSearchMax   = 5

	// DefaultCompetitorResults is the competitor-search cap when none is
	// given.
	DefaultCompetitorResults = 10

	analyzeCompetitorsShown = 5
)

// AnalyzeProduct runs the full analysis of one listing. Each LLM step that
// fails is replaced by a fixed stand-in so the caller always gets a
// complete response unless the request itself is cancelled.
func (s *Service) AnalyzeProduct(ctx context.Context, url string) (*models.AnalyzeResponse, error) {
	ctx, span := s.start(ctx, "analyze_product")
	defer span.End()
	span.SetAttributes(attribute.String("url", url))

	// 1. Product page, or the placeholder.
	product, placeholder := s.scrapeOrPlaceholder(ctx, url)
	span.SetAttributes(attribute.Bool("placeholder", placeholder))

	// 2. Keywords.
	keywords, err := s.analyzer.KeywordAnalysis(ctx, product)
	if err != nil {
		s.logger.WarnContext(ctx, "keyword analysis failed", slog.Any("error", err))
		keywords = routeKeywordAnalysis()
	}

	// 3. Competitors.
	query := placeholderQuery
	if !placeholder {
		query = titleQuery(product.Title)
	}
	competitors := s.search(ctx, query, analyzeSearchMax)
	if len(competitors) == 0 {
		for _, q := range broadQueries {
			if cs := s.search(ctx, q, broadSearchMax); len(cs) > 0 {
				competitors = cs
				break
			}
		}
	}

	// 4. Competitor analysis and ad keywords are independent.
	var (
		analysis *models.CompetitorAnalysis
		ads      *models.AdKeywords
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		ca, err := s.analyzer.CompetitorAnalysis(gctx, product, competitors)
		if err != nil {
			s.logger.WarnContext(ctx, "competitor analysis failed", slog.Any("error", err))
			ca = routeCompetitorAnalysis()
		}
		analysis = ca
		return nil
	})
	g.Go(func() error {
		ak, err := s.analyzer.AdKeywords(gctx, product, keywords)
		if err != nil {
			s.logger.WarnContext(ctx, "ad keywords failed", slog.Any("error", err))
			ak = routeAdKeywords()
		}
		ads = ak
		return nil
	})
	_ = g.Wait()

	// 5. Sales strategy.
	strategy, err := s.analyzer.SalesStrategy(ctx, product, analysis, keywords)
	if err != nil {
		s.logger.WarnContext(ctx, "sales strategy failed", slog.Any("error", err))
		strategy = routeSalesStrategy()
	}

	if err := ctx.Err(); err != nil {
		fail(span, err)
		return nil, err
	}

	resp := &models.AnalyzeResponse{
		Success:            true,
		Timestamp:          s.now().UTC(),
		ProductData:        product.Summary(url),
		KeywordAnalysis:    keywords,
		Competitors:        head(competitors, analyzeCompetitorsShown),
		CompetitorAnalysis: analysis,
		AdKeywords:         ads,
		SalesStrategy:      strategy,
		Summary: models.AnalyzeSummary{
			TotalKeywords:       keywords.TotalKeywords(),
			CompetitorsAnalyzed: len(competitors),
			AdKeywordsGenerated: ads.HighPriorityCount(),
		},
	}
	s.record(ctx, KindAnalyze, url, resp.Summary)
	return resp, nil
}

// QuickKeywords runs keyword research on a product described by hand.
func (s *Service) QuickKeywords(ctx context.Context, req *models.QuickKeywordsRequest) (*models.QuickKeywordsResponse, error) {
	ctx, span := s.start(ctx, "quick_keywords")
	defer span.End()

	product := &models.Product{
		Title:        req.ProductTitle,
		Category:     orDefault(req.Category, "General"),
		Description:  req.Description,
		Price:        orDefault(req.Price, notAvailable),
		Rating:       notAvailable,
		ReviewCount:  notAvailable,
		BulletPoints: []string{},
	}

	keywords, err := s.analyzer.KeywordAnalysis(ctx, product)
	if err != nil {
		fail(span, err)
		return nil, err
	}

	s.record(ctx, KindQuickKeywords, req.ProductTitle, map[string]int{
		"totalKeywords": keywords.TotalKeywords(),
	})
	return &models.QuickKeywordsResponse{
		Success:         true,
		Timestamp:       s.now().UTC(),
		ProductData:     product.Quick(),
		KeywordAnalysis: keywords,
	}, nil
}

// CompetitorSearch returns the organic results for a query.
func (s *Service) CompetitorSearch(ctx context.Context, query string, maxResults int) (*models.CompetitorSearchResponse, error) {
	ctx, span := s.start(ctx, "competitor_search")
	defer span.End()

	if maxResults <= 0 {
		maxResults = DefaultCompetitorResults
	}
	span.SetAttributes(attribute.String("query", query), attribute.Int("max", maxResults))

	cs, err := s.scraper.SearchCompetitors(ctx, query, maxResults)
	if err != nil {
		fail(span, err)
		return nil, err
	}

	s.record(ctx, KindCompetitorSearch, query, map[string]int{"totalFound": len(cs)})
	return &models.CompetitorSearchResponse{
		Success:     true,
		Timestamp:   s.now().UTC(),
		SearchQuery: query,
		Competitors: cs,
		TotalFound:  len(cs),
	}, nil
}

// GenerateAdKeywords builds PPC keywords from an earlier analysis.
func (s *Service) GenerateAdKeywords(ctx context.Context, p *models.Product, k *models.KeywordAnalysis) (*models.AdKeywordsResponse, error) {
	ctx, span := s.start(ctx, "generate_ad_keywords")
	defer span.End()

	ads, err := s.analyzer.AdKeywords(ctx, p, k)
	if err != nil {
		fail(span, err)
		return nil, err
	}

	s.record(ctx, KindAdKeywords, p.Title, map[string]int{"highPriority": ads.HighPriorityCount()})
	return &models.AdKeywordsResponse{
		Success:    true,
		Timestamp:  s.now().UTC(),
		AdKeywords: ads,
	}, nil
}

// TestScraping runs a small sample search so operators can check that
// scraping works.
func (s *Service) TestScraping(ctx context.Context, query string) (*models.TestScrapingResponse, error) {
	ctx, span := s.start(ctx, "test_scraping")
	defer span.End()

	query = orDefault(query, placeholderQuery)
	cs, err := s.scraper.TestSearch(ctx, query)
	if err != nil {
		fail(span, err)
		return nil, err
	}
	return &models.TestScrapingResponse{
		Success:      true,
		Query:        query,
		ResultsFound: len(cs),
		Results:      cs,
		Timestamp:    s.now().UTC(),
	}, nil
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

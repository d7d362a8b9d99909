package research

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"github.com/use-agent/listingscout/models"
	"github.com/use-agent/listingscout/scraper"
)

// Top performer thresholds for the sales diagnostic.
const (
	diagnoseSearchMax  = 15
	topMinRating       = 4.0
	topMinReviews      = 100
	topPerformersUsed  = 5
	topPerformersShown = 3
)

// DiagnoseSales compares a listing with the best sellers for its title
// words and explains what holds it back.
func (s *Service) DiagnoseSales(ctx context.Context, url string) (*models.DiagnoseResponse, error) {
	ctx, span := s.start(ctx, "diagnose_sales")
	defer span.End()
	span.SetAttributes(attribute.String("url", url))

	product, placeholder := s.scrapeOrPlaceholder(ctx, url)
	span.SetAttributes(attribute.Bool("placeholder", placeholder))

	all := s.search(ctx, titleQuery(product.Title), diagnoseSearchMax)
	top := scraper.TopPerformers(all, topMinRating, topMinReviews, topPerformersUsed)
	span.SetAttributes(attribute.Int("top_performers", len(top)))

	var (
		problems *models.SalesProblems
		gaps     *models.KeywordGaps
		listing  *models.ListingOptimization
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		problems, err = s.analyzer.DiagnoseSales(gctx, product, top)
		return err
	})
	g.Go(func() (err error) {
		gaps, err = s.analyzer.KeywordGaps(gctx, product, top)
		return err
	})
	g.Go(func() (err error) {
		listing, err = s.analyzer.ListingOptimization(gctx, product, top)
		return err
	})
	if err := g.Wait(); err != nil {
		fail(span, err)
		return nil, err
	}

	keywords, err := s.analyzer.KeywordAnalysis(ctx, product)
	if err != nil {
		fail(span, err)
		return nil, err
	}

	resp := &models.DiagnoseResponse{
		Success:   true,
		Timestamp: s.now().UTC(),
		YourProduct: models.YourProduct{
			Title:       product.Title,
			Price:       product.Price,
			Rating:      product.Rating,
			ReviewCount: product.ReviewCount,
			Category:    product.Category,
			ASIN:        product.ASIN,
		},
		TopPerformers:       head(top, topPerformersShown),
		SalesProblems:       problems,
		KeywordGaps:         gaps,
		ListingOptimization: listing,
		KeywordAnalysis:     keywords.Strategy(),
		Summary: models.DiagnoseSummary{
			CriticalIssuesFound:     len(problems.CriticalMistakes),
			KeywordGapsIdentified:   len(gaps.MissingHighValueKeywords),
			CompetitorsAnalyzed:     len(top),
			OptimizationSuggestions: len(listing.OptimizedBulletPoints),
		},
	}
	s.record(ctx, KindDiagnose, url, resp.Summary)
	return resp, nil
}

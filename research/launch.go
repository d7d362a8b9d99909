package research

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"github.com/use-agent/listingscout/models"
	"github.com/use-agent/listingscout/scraper"
)

// Competitor selection for a launch. The wide pass only runs when the
// narrow one leaves nothing.
const (
	launchSearchMax  = 5
	launchMinRating  = 3.0
	launchMinReviews = 5
	launchCap        = 20

	wideSearchMax  = 15
	wideMinRating  = 2.5
	wideMinReviews = 1
	wideCap        = 15

	launchPerformersShown = 5
)

// OptimizeLaunch writes launch copy and a launch plan for a product that is
// not on sale yet.
func (s *Service) OptimizeLaunch(ctx context.Context, info *models.ProductInfo) (*models.LaunchResponse, error) {
	ctx, span := s.start(ctx, "optimize_launch")
	defer span.End()
	span.SetAttributes(
		attribute.String("product", info.ProductName),
		attribute.Bool("lite", s.lite),
	)

	var all []models.Competitor
	if s.lite {
		all = mockCompetitors(info)
	} else {
		all = append(all, s.search(ctx, info.ProductName, launchSearchMax)...)
		all = append(all, s.search(ctx, info.Category, launchSearchMax)...)
	}
	unique := scraper.DedupeByTitle(all)
	top := scraper.TopPerformers(unique, launchMinRating, launchMinReviews, launchCap)

	if len(top) == 0 && !s.lite {
		all = append(all, s.search(ctx, info.Category, wideSearchMax)...)
		all = append(all, s.search(ctx, info.Category+" products", wideSearchMax)...)
		top = scraper.TopPerformers(scraper.DedupeByTitle(all), wideMinRating, wideMinReviews, wideCap)
	}
	span.SetAttributes(attribute.Int("competitors", len(top)))

	var (
		listing  *models.OptimizedListing
		insights *models.CompetitorInsights
		plan     *models.LaunchPlan
	)
	if s.lite {
		listing, insights, plan = liteListing(info), liteInsights(info), litePlan()
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() (err error) {
			listing, err = s.analyzer.OptimizeListing(gctx, info, top)
			return err
		})
		g.Go(func() (err error) {
			insights, err = s.analyzer.CompetitorInsights(gctx, info, top)
			return err
		})
		if err := g.Wait(); err != nil {
			fail(span, err)
			return nil, err
		}

		var err error
		plan, err = s.analyzer.LaunchPlan(ctx, info, insights, listing)
		if err != nil {
			fail(span, err)
			return nil, err
		}
	}

	keywords, err := s.analyzer.KeywordAnalysis(ctx, listingProduct(info, listing))
	if err != nil {
		fail(span, err)
		return nil, err
	}

	readiness := "Medium"
	if len(top) > 0 {
		readiness = "High"
	}
	resp := &models.LaunchResponse{
		Success:   true,
		Timestamp: s.now().UTC(),
		ProductInfo: models.LaunchProduct{
			Name:           info.ProductName,
			Category:       info.Category,
			TargetAudience: info.TargetAudience,
			PriceRange:     info.PriceRange,
		},
		CompetitorAnalysis: models.LaunchCompetitors{
			TotalCompetitorsFound: len(unique),
			TopPerformers:         head(top, launchPerformersShown),
			Insights:              insights,
		},
		OptimizedListing: listing,
		KeywordStrategy:  keywords.Strategy(),
		LaunchPlan:       plan,
		Summary: models.LaunchSummary{
			CompetitorsAnalyzed:      len(top),
			KeywordsGenerated:        len(keywords.PrimaryKeywords) + len(keywords.LongTailKeywords),
			BulletPointsCreated:      len(listing.BulletPoints),
			LaunchPhases:             plan.Phases(),
			EstimatedLaunchReadiness: readiness,
		},
	}
	s.record(ctx, KindLaunch, info.ProductName, resp.Summary)
	return resp, nil
}

// listingProduct describes the launch listing as a product so it can go
// through keyword research.
func listingProduct(info *models.ProductInfo, l *models.OptimizedListing) *models.Product {
	bullets := make([]string, 0, len(l.BulletPoints))
	for _, b := range l.BulletPoints {
		bullets = append(bullets, string(b.BulletPoint))
	}
	return &models.Product{
		Title:        orDefault(string(l.OptimizedTitle.Title), info.ProductName),
		Category:     info.Category,
		Description:  l.ProductDescription.Text(),
		BulletPoints: bullets,
		Brand:        orDefault(info.Brand, "Generic"),
	}
}

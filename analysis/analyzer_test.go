package analysis

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/use-agent/listingscout/llm"
	"github.com/use-agent/listingscout/models"
)

type fakeLLM struct {
	mu    sync.Mutex
	reply string
	err   error
	reqs  []llm.Request
}

func (f *fakeLLM) Complete(_ context.Context, req llm.Request) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reqs = append(f.reqs, req)
	return f.reply, f.err
}

func (f *fakeLLM) last() llm.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.reqs[len(f.reqs)-1]
}

type fakeSuggester []string

func (s fakeSuggester) KeywordSuggestions(context.Context, string) []string { return s }

func product() *models.Product {
	return &models.Product{
		Title:        "Stainless Steel Water Bottle 32oz",
		Brand:        "Hydro",
		Category:     "Sports",
		Price:        "$24.99",
		Rating:       "4.5",
		ReviewCount:  "1,247",
		Description:  "Keeps drinks cold for 24 hours.",
		BulletPoints: []string{"Leak proof lid", "BPA free"},
		ASIN:         "B000TEST01",
	}
}

func TestKeywordAnalysisDecodesReply(t *testing.T) {
	f := &fakeLLM{reply: "```json\n{\"primaryKeywords\": [\"water bottle\"], \"longTailKeywords\": [\"insulated water bottle 32oz\",],}\n```"}
	a := New(f, WithSuggester(fakeSuggester{"water bottle with straw"}))

	got, err := a.KeywordAnalysis(context.Background(), product())
	require.NoError(t, err)
	require.Equal(t, []string{"water bottle"}, got.PrimaryKeywords)
	require.Equal(t, []string{"insulated water bottle 32oz"}, got.LongTailKeywords)

	req := f.last()
	require.Equal(t, roleSEO, req.System)
	require.Equal(t, 0.7, req.Temperature)
	require.Equal(t, 2000, req.MaxTokens)
	require.Contains(t, req.Prompt, "Stainless Steel Water Bottle 32oz")
	require.Contains(t, req.Prompt, "water bottle with straw")
}

func TestKeywordAnalysisKeepsReplyWithMistypedMember(t *testing.T) {
	f := &fakeLLM{reply: `{
		"primaryKeywords": ["water bottle", "insulated bottle"],
		"seasonalKeywords": [{"keyword": "summer water bottle", "season": "summer"}],
		"rankingStrategy": "start with long tail terms"
	}`}
	a := New(f)

	got, err := a.KeywordAnalysis(context.Background(), product())
	require.NoError(t, err)
	require.Equal(t, []string{"water bottle", "insulated bottle"}, got.PrimaryKeywords)
	require.Equal(t, []string{"summer water bottle - summer"}, got.SeasonalKeywords)
	require.Empty(t, got.RankingStrategy.Immediate)
	require.NotEqual(t, FallbackKeywordAnalysis().PrimaryKeywords, got.PrimaryKeywords)
}

func TestUnparseableReplyUsesFallback(t *testing.T) {
	f := &fakeLLM{reply: "I'm sorry, I can't help with that."}
	a := New(f)
	ctx := context.Background()

	k, err := a.KeywordAnalysis(ctx, product())
	require.NoError(t, err)
	if diff := cmp.Diff(FallbackKeywordAnalysis(), k); diff != "" {
		t.Errorf("keyword fallback mismatch (-want +got):\n%s", diff)
	}

	plan, err := a.LaunchPlan(ctx, &models.ProductInfo{ProductName: "Bottle"}, nil, nil)
	require.NoError(t, err)
	require.Equal(t, 7, plan.Phases())

	info := &models.ProductInfo{ProductName: "Bottle", Category: "Sports", TargetAudience: "hikers"}
	listing, err := a.OptimizeListing(ctx, info, nil)
	require.NoError(t, err)
	require.Equal(t, models.Text("Bottle - Premium Quality Sports"), listing.OptimizedTitle.Title)
	require.Equal(t, "High-quality Bottle designed for hikers", listing.ProductDescription.Text())
}

func TestCompletionErrorPropagates(t *testing.T) {
	boom := errors.New("upstream down")
	a := New(&fakeLLM{err: boom})

	got, err := a.CompetitorAnalysis(context.Background(), product(), nil)
	require.ErrorIs(t, err, boom)
	require.Nil(t, got)
}

func TestOperationParameters(t *testing.T) {
	f := &fakeLLM{reply: "{}"}
	a := New(f)
	ctx := context.Background()
	p := product()
	info := &models.ProductInfo{ProductName: "Bottle", Category: "Sports"}
	competitors := make([]models.Competitor, 10)
	for i := range competitors {
		competitors[i] = models.Competitor{Title: "Competitor " + string(rune('A'+i)), Rating: "4.0"}
	}

	tests := []struct {
		name   string
		run    func() error
		system string
		temp   float64
		max    int
	}{
		{"competitor analysis", func() error { _, err := a.CompetitorAnalysis(ctx, p, competitors); return err }, roleMarket, 0.7, 1500},
		{"ad keywords", func() error { _, err := a.AdKeywords(ctx, p, nil); return err }, rolePPC, 0.6, 1500},
		{"sales strategy", func() error { _, err := a.SalesStrategy(ctx, p, nil, nil); return err }, roleFBA, 0.7, 2000},
		{"diagnose", func() error { _, err := a.DiagnoseSales(ctx, p, competitors); return err }, roleDiagnostic, 0.7, 2500},
		{"keyword gaps", func() error { _, err := a.KeywordGaps(ctx, p, competitors); return err }, roleKeywordGaps, 0.6, 2000},
		{"listing optimization", func() error { _, err := a.ListingOptimization(ctx, p, competitors); return err }, roleListing, 0.7, 2500},
		{"optimize listing", func() error { _, err := a.OptimizeListing(ctx, info, competitors); return err }, roleCopywriter, 0.7, 3000},
		{"insights", func() error { _, err := a.CompetitorInsights(ctx, info, competitors); return err }, roleIntel, 0.6, 2500},
		{"launch plan", func() error { _, err := a.LaunchPlan(ctx, info, nil, nil); return err }, roleLaunch, 0.7, 3000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, tt.run())
			req := f.last()
			require.Equal(t, tt.system, req.System)
			require.Equal(t, tt.temp, req.Temperature)
			require.Equal(t, tt.max, req.MaxTokens)
		})
	}
}

func TestCompetitorLimits(t *testing.T) {
	f := &fakeLLM{reply: "{}"}
	a := New(f)
	ctx := context.Background()
	competitors := make([]models.Competitor, 10)
	for i := range competitors {
		competitors[i] = models.Competitor{Title: "Item" + string(rune('A'+i))}
	}

	_, err := a.CompetitorAnalysis(ctx, product(), competitors)
	require.NoError(t, err)
	require.Contains(t, f.last().Prompt, "ItemE")
	require.NotContains(t, f.last().Prompt, "ItemF")

	_, err = a.ListingOptimization(ctx, product(), competitors)
	require.NoError(t, err)
	require.Contains(t, f.last().Prompt, "ItemC")
	require.NotContains(t, f.last().Prompt, "ItemD")

	_, err = a.CompetitorInsights(ctx, &models.ProductInfo{}, competitors)
	require.NoError(t, err)
	require.Contains(t, f.last().Prompt, "ItemH")
	require.NotContains(t, f.last().Prompt, "ItemI")
}

func TestFitShortensDescription(t *testing.T) {
	f := &fakeLLM{reply: "{}"}
	a := New(f, WithMaxPromptTokens(1200))
	p := product()
	p.Description = strings.Repeat("insulated ", 5000)

	_, err := a.DiagnoseSales(context.Background(), p, nil)
	require.NoError(t, err)
	prompt := f.last().Prompt
	require.Less(t, len(prompt), len(p.Description))
	require.Contains(t, prompt, "…")
}

func TestCoverageGaps(t *testing.T) {
	listing := "Stainless Steel Water Bottle with leak proof lid"
	competitors := []models.Competitor{
		{Title: "Insulated Water Bottles with Straw Lid"},
		{Title: "Insulated Stainless Bottle for Gym"},
		{Title: "Kids Water Bottle 2 Pack"},
	}

	got := CoverageGaps(listing, competitors)
	want := []string{"insulated", "straw", "gym", "kids"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("CoverageGaps mismatch (-want +got):\n%s", diff)
	}
}

func TestAverageRating(t *testing.T) {
	tests := []struct {
		name string
		in   []models.Competitor
		want string
	}{
		{"empty", nil, "0.0"},
		{"mean", []models.Competitor{{Rating: "4.6"}, {Rating: "4.0"}}, "4.3"},
		{"unparseable counts as zero", []models.Competitor{{Rating: "4.0"}, {Rating: ""}}, "2.0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := averageRating(tt.in); got != tt.want {
				t.Errorf("averageRating() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSeedPhrase(t *testing.T) {
	if got := seedPhrase("Stainless Steel Water Bottle 32oz"); got != "stainless steel water" {
		t.Errorf("seedPhrase() = %q", got)
	}
}

package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/use-agent/listingscout/config"
	"github.com/use-agent/listingscout/models"
)

type fakeResearch struct {
	err      error
	urls     []string
	maxAsked int
	query    string
}

func (f *fakeResearch) AnalyzeProduct(_ context.Context, url string) (*models.AnalyzeResponse, error) {
	f.urls = append(f.urls, url)
	if f.err != nil {
		return nil, f.err
	}
	return &models.AnalyzeResponse{Success: true, ProductData: models.ProductSummary{URL: url}}, nil
}

func (f *fakeResearch) QuickKeywords(_ context.Context, req *models.QuickKeywordsRequest) (*models.QuickKeywordsResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.QuickKeywordsResponse{Success: true, ProductData: &models.QuickProduct{Title: req.ProductTitle}}, nil
}

func (f *fakeResearch) CompetitorSearch(_ context.Context, query string, maxResults int) (*models.CompetitorSearchResponse, error) {
	f.query, f.maxAsked = query, maxResults
	if f.err != nil {
		return nil, f.err
	}
	return &models.CompetitorSearchResponse{Success: true, SearchQuery: query, Competitors: []models.Competitor{}}, nil
}

func (f *fakeResearch) DiagnoseSales(_ context.Context, url string) (*models.DiagnoseResponse, error) {
	f.urls = append(f.urls, url)
	if f.err != nil {
		return nil, f.err
	}
	return &models.DiagnoseResponse{Success: true}, nil
}

func (f *fakeResearch) OptimizeLaunch(_ context.Context, info *models.ProductInfo) (*models.LaunchResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.LaunchResponse{Success: true, ProductInfo: models.LaunchProduct{Name: info.ProductName}}, nil
}

func (f *fakeResearch) GenerateAdKeywords(context.Context, *models.Product, *models.KeywordAnalysis) (*models.AdKeywordsResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.AdKeywordsResponse{Success: true}, nil
}

func (f *fakeResearch) TestScraping(_ context.Context, query string) (*models.TestScrapingResponse, error) {
	f.query = query
	if f.err != nil {
		return nil, f.err
	}
	return &models.TestScrapingResponse{Success: true, Query: query}, nil
}

type fakePool struct{}

func (fakePool) Stats() models.PoolStats { return models.PoolStats{MaxPages: 4, ActivePages: 1} }

type fakeHistory struct {
	kind  string
	limit int
}

func (f *fakeHistory) Save(context.Context, *models.HistoryRecord) error { return nil }

func (f *fakeHistory) List(_ context.Context, kind string, limit int) ([]models.HistoryRecord, error) {
	f.kind, f.limit = kind, limit
	return nil, nil
}

func (f *fakeHistory) Close() error { return nil }

func testConfig() *config.Config {
	return &config.Config{
		Server:    config.ServerConfig{Mode: gin.TestMode, CORSOrigins: []string{"*"}},
		LLM:       config.LLMConfig{Provider: "openai", OpenAIAPIKey: "sk-test", OpenAIModel: "gpt-4"},
		RateLimit: config.RateLimitConfig{RequestsPerSecond: 100, Burst: 100},
	}
}

func newTestRouter(cfg *config.Config, f *fakeResearch) *gin.Engine {
	return NewRouter(cfg, Deps{
		Research: f,
		Pool:     fakePool{},
		Store:    &fakeHistory{},
		Started:  time.Now(),
	})
}

func do(r http.Handler, method, path, body string, headers ...string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestAnalyzeProductValidation(t *testing.T) {
	noLLM := testConfig()
	noLLM.LLM.OpenAIAPIKey = ""

	tests := []struct {
		name    string
		cfg     *config.Config
		body    string
		status  int
		wantErr string
	}{
		{"missing url", testConfig(), `{}`, http.StatusBadRequest, "Amazon product URL is required"},
		{"empty body", testConfig(), "", http.StatusBadRequest, "Amazon product URL is required"},
		{"no llm", noLLM, `{"amazonUrl":"https://www.amazon.com/dp/B0ABCDEF12"}`, http.StatusInternalServerError, "OpenAI API key not configured"},
		{"not amazon", testConfig(), `{"amazonUrl":"https://example.com/item/1"}`, http.StatusBadRequest, "Please provide a valid Amazon product URL"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &fakeResearch{}
			w := do(newTestRouter(tt.cfg, f), http.MethodPost, "/api/analyze-product", tt.body)
			require.Equal(t, tt.status, w.Code)
			require.Equal(t, tt.wantErr, decode(t, w)["error"])
			require.Empty(t, f.urls)
		})
	}
}

func TestAnalyzeProduct(t *testing.T) {
	f := &fakeResearch{}
	w := do(newTestRouter(testConfig(), f), http.MethodPost, "/api/analyze-product",
		`{"amazonUrl":"https://www.amazon.co.uk/dp/B0ABCDEF12"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, []string{"https://www.amazon.co.uk/dp/B0ABCDEF12"}, f.urls)
	require.Equal(t, true, decode(t, w)["success"])
}

func TestAnalyzeProductFailure(t *testing.T) {
	f := &fakeResearch{err: models.NewScrapeError(models.ErrCodeLLMFailure, "upstream timeout", nil)}
	w := do(newTestRouter(testConfig(), f), http.MethodPost, "/api/analyze-product",
		`{"amazonUrl":"https://www.amazon.com/dp/B0ABCDEF12"}`)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	body := decode(t, w)
	require.Equal(t, "Failed to analyze product", body["error"])
	require.Equal(t, "upstream timeout", body["message"])
	require.Contains(t, body, "timestamp")
}

func TestAnalyzeProductFailureKeepsCause(t *testing.T) {
	cause := errors.New("navigation failed: net::ERR_NAME_NOT_RESOLVED")
	f := &fakeResearch{err: models.NewScrapeError(models.ErrCodeNavigation, "failed to load page", cause)}
	w := do(newTestRouter(testConfig(), f), http.MethodPost, "/api/analyze-product",
		`{"amazonUrl":"https://www.amazon.com/dp/B0ABCDEF12"}`)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Equal(t, "failed to load page: navigation failed: net::ERR_NAME_NOT_RESOLVED", decode(t, w)["message"])
}

func TestRequiredFields(t *testing.T) {
	tests := []struct {
		path    string
		body    string
		wantErr string
	}{
		{"/api/quick-keywords", `{"category":"Kitchen"}`, "Product title is required"},
		{"/api/competitor-search", `{"searchQuery":"  "}`, "Search query is required"},
		{"/api/diagnose-sales-problems", `{}`, "Amazon product URL is required"},
		{"/api/optimize-new-product", `{"productInfo":{"productName":"Mat"}}`, "Product information is required (productName and category are mandatory)"},
		{"/api/optimize-new-product", `{}`, "Product information is required (productName and category are mandatory)"},
		{"/api/generate-ad-keywords", `{"productData":{"title":"Mat"}}`, "Product data and keyword analysis are required"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := do(newTestRouter(testConfig(), &fakeResearch{}), http.MethodPost, tt.path, tt.body)
			require.Equal(t, http.StatusBadRequest, w.Code)
			require.Equal(t, tt.wantErr, decode(t, w)["error"])
		})
	}
}

func TestCompetitorSearchDefaults(t *testing.T) {
	f := &fakeResearch{}
	w := do(newTestRouter(testConfig(), f), http.MethodPost, "/api/competitor-search", `{"searchQuery":"yoga mat"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "yoga mat", f.query)
	require.Equal(t, 10, f.maxAsked)
}

func TestEndpointFailures(t *testing.T) {
	tests := []struct {
		path    string
		body    string
		wantErr string
		stamped bool
	}{
		{"/api/quick-keywords", `{"productTitle":"Mat"}`, "Failed to analyze keywords", false},
		{"/api/competitor-search", `{"searchQuery":"mat"}`, "Failed to search competitors", false},
		{"/api/diagnose-sales-problems", `{"amazonUrl":"https://www.amazon.com/dp/B0ABCDEF12"}`, "Failed to diagnose sales problems", true},
		{"/api/optimize-new-product", `{"productInfo":{"productName":"Mat","category":"Kitchen"}}`, "Failed to optimize product for launch", true},
		{"/api/generate-ad-keywords", `{"productData":{"title":"Mat"},"keywordAnalysis":{}}`, "Failed to generate ad keywords", false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			f := &fakeResearch{err: errors.New("boom")}
			w := do(newTestRouter(testConfig(), f), http.MethodPost, tt.path, tt.body)
			require.Equal(t, http.StatusInternalServerError, w.Code)
			body := decode(t, w)
			require.Equal(t, tt.wantErr, body["error"])
			require.Equal(t, "boom", body["message"])
			_, stamped := body["timestamp"]
			require.Equal(t, tt.stamped, stamped)
		})
	}
}

func TestTestScraping(t *testing.T) {
	f := &fakeResearch{}
	r := newTestRouter(testConfig(), f)

	w := do(r, http.MethodGet, "/api/test-scraping?q=kettle", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "kettle", f.query)

	f.err = errors.New("all tiers failed")
	w = do(r, http.MethodGet, "/api/test-scraping", "")
	require.Equal(t, http.StatusInternalServerError, w.Code)
	body := decode(t, w)
	require.Equal(t, false, body["success"])
	require.Equal(t, "all tiers failed", body["error"])
}

func TestHealth(t *testing.T) {
	w := do(newTestRouter(testConfig(), &fakeResearch{}), http.MethodGet, "/api/health", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "healthy", resp.Status)
	require.Equal(t, models.HealthServices{OpenAI: true, Scraper: true, SalesDiagnostic: true, ProductLaunchOptimizer: true}, resp.Services)
	require.Equal(t, models.LLMInfo{Provider: "openai", Model: "gpt-4"}, resp.LLM)
	require.Equal(t, models.PoolStats{MaxPages: 4, ActivePages: 1}, resp.Scraper)
	require.Positive(t, resp.System.Goroutines)
}

func TestNotFoundAndPanic(t *testing.T) {
	r := newTestRouter(testConfig(), &fakeResearch{})
	r.GET("/boom", func(*gin.Context) { panic("kaboom") })

	w := do(r, http.MethodGet, "/api/nope", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "Endpoint not found", decode(t, w)["error"])

	w = do(r, http.MethodGet, "/boom", "")
	require.Equal(t, http.StatusInternalServerError, w.Code)
	body := decode(t, w)
	require.Equal(t, "Internal server error", body["error"])
	require.Equal(t, "kaboom", body["message"])
}

func TestAuth(t *testing.T) {
	cfg := testConfig()
	cfg.Auth = config.AuthConfig{Enabled: true, APIKeys: []string{"secret-key"}}
	r := newTestRouter(cfg, &fakeResearch{})
	body := `{"searchQuery":"mat"}`

	require.Equal(t, http.StatusOK, do(r, http.MethodGet, "/api/health", "").Code)
	require.Equal(t, http.StatusUnauthorized, do(r, http.MethodPost, "/api/competitor-search", body).Code)
	require.Equal(t, http.StatusUnauthorized, do(r, http.MethodPost, "/api/competitor-search", body, "X-API-Key", "wrong").Code)
	require.Equal(t, http.StatusOK, do(r, http.MethodPost, "/api/competitor-search", body, "X-API-Key", "secret-key").Code)
	require.Equal(t, http.StatusOK, do(r, http.MethodPost, "/api/competitor-search", body, "Authorization", "Bearer secret-key").Code)
}

func TestRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimit = config.RateLimitConfig{RequestsPerSecond: 0.5, Burst: 1}
	r := newTestRouter(cfg, &fakeResearch{})
	body := `{"searchQuery":"mat"}`

	require.Equal(t, http.StatusOK, do(r, http.MethodPost, "/api/competitor-search", body).Code)
	w := do(r, http.MethodPost, "/api/competitor-search", body)
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	require.Equal(t, "2", w.Header().Get("Retry-After"))
	require.Equal(t, models.ErrCodeRateLimited, decode(t, w)["code"])
}

func TestHistory(t *testing.T) {
	tests := []struct {
		query     string
		wantKind  string
		wantLimit int
	}{
		{"", "", 20},
		{"?kind=diagnose-sales&limit=5", "diagnose-sales", 5},
		{"?limit=500", "", 100},
		{"?limit=abc", "", 20},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			h := &fakeHistory{}
			r := NewRouter(testConfig(), Deps{Research: &fakeResearch{}, Pool: fakePool{}, Store: h})
			w := do(r, http.MethodGet, "/api/history"+tt.query, "")
			require.Equal(t, http.StatusOK, w.Code)
			require.JSONEq(t, `{"success":true,"records":[]}`, w.Body.String())
			require.Equal(t, tt.wantKind, h.kind)
			require.Equal(t, tt.wantLimit, h.limit)
		})
	}
}

func TestCORS(t *testing.T) {
	r := newTestRouter(testConfig(), &fakeResearch{})
	w := do(r, http.MethodGet, "/api/health", "", "Origin", "https://seller.example.com")
	require.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

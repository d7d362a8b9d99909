package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/use-agent/listingscout/config"
	"github.com/use-agent/listingscout/models"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", `{"a":1}`, `{"a":1}`},
		{"fenced", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"prose around", "Here is the analysis:\n{\"a\":{\"b\":2}}\nLet me know!", `{"a":{"b":2}}`},
		{"no object", "sorry, I cannot help", "sorry, I cannot help"},
		{"whitespace", "   \n{\"a\":1}\n\t", `{"a":1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractJSON(tt.in); got != tt.want {
				t.Errorf("ExtractJSON(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDecodeJSON(t *testing.T) {
	type title struct {
		Title          models.Text `json:"title"`
		KeywordsUsed   []string    `json:"keywordsUsed"`
		CharactersUsed models.Text `json:"charactersUsed"`
	}

	raw := "```json\n{\"title\": \"Steel Pump\", \"keywordsUsed\": [\"pump\", \"steel\",], \"charactersUsed\": 180, \"extra\": true}\n```"
	got, err := DecodeJSON[title](raw)
	require.NoError(t, err)

	want := title{Title: "Steel Pump", KeywordsUsed: []string{"pump", "steel"}, CharactersUsed: "180"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("DecodeJSON mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeJSONMissingMembers(t *testing.T) {
	got, err := DecodeJSON[models.KeywordAnalysis](`{"primaryKeywords": ["water pump"]}`)
	require.NoError(t, err)
	require.Equal(t, []string{"water pump"}, got.PrimaryKeywords)
	require.Nil(t, got.LongTailKeywords)
	require.Nil(t, got.RankingStrategy.Immediate)
}

func TestDecodeJSONNoObject(t *testing.T) {
	_, err := DecodeJSON[models.KeywordAnalysis]("")
	require.Error(t, err)
}

func TestDecodeJSONCoercesStrings(t *testing.T) {
	raw := `{
		"primaryKeywords": ["water bottle", 32, {"keyword": "insulated bottle", "volume": "high"}],
		"longTailKeywords": "water bottle with straw",
		"brandKeywords": {"main": "hydro", "alt": "hydro flask"},
		"seasonalKeywords": [{"keyword": "summer water bottle"}]
	}`
	got, err := DecodeJSON[models.KeywordAnalysis](raw)
	require.NoError(t, err)
	require.Equal(t, []string{"water bottle", "32", "insulated bottle - high"}, got.PrimaryKeywords)
	require.Equal(t, []string{"water bottle with straw"}, got.LongTailKeywords)
	require.Equal(t, []string{"hydro", "hydro flask"}, got.BrandKeywords)
	require.Equal(t, []string{"summer water bottle"}, got.SeasonalKeywords)
}

func TestDecodeJSONDropsMistypedMembers(t *testing.T) {
	raw := `{
		"primaryKeywords": ["water bottle"],
		"rankingStrategy": "target long tail first",
		"searchVolumeEstimate": {"high": ["water bottle"], "medium": true},
		"keywordDifficulty": [1, 2]
	}`
	got, err := DecodeJSON[models.KeywordAnalysis](raw)
	require.NoError(t, err)
	require.Equal(t, []string{"water bottle"}, got.PrimaryKeywords)
	require.Equal(t, models.RankingStrategy{}, got.RankingStrategy)
	require.Equal(t, []string{"water bottle"}, got.SearchVolumeEstimate.High)
	require.Equal(t, []string{"true"}, got.SearchVolumeEstimate.Medium)
	require.Equal(t, models.DifficultyBuckets{}, got.KeywordDifficulty)
}

func TestPrune(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		pointer string
		want    string
		ok      bool
	}{
		{"member", `{"a":1,"b":2}`, "/a", `{"b":2}`, true},
		{"array element", `{"a":[1,2,3]}`, "/a/1", `{"a":[1,3]}`, true},
		{"escaped", `{"x/y":1}`, "/x~1y", `{}`, true},
		{"missing", `{"a":1}`, "/b", ``, false},
		{"bad index", `{"a":[1]}`, "/a/5", ``, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := prune([]byte(tt.in), tt.pointer)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				require.JSONEq(t, tt.want, string(got))
			}
		})
	}
}

func TestClassifyStatus(t *testing.T) {
	tests := []struct {
		status int
		code   string
	}{
		{http.StatusUnauthorized, models.ErrCodeLLMAuthFailure},
		{http.StatusForbidden, models.ErrCodeLLMAuthFailure},
		{http.StatusTooManyRequests, models.ErrCodeLLMRateLimited},
		{http.StatusInternalServerError, models.ErrCodeLLMFailure},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.status), func(t *testing.T) {
			if got := classifyStatus(tt.status, "boom", nil); got.Code != tt.code {
				t.Errorf("classifyStatus(%d) = %s, want %s", tt.status, got.Code, tt.code)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	require.NoError(t, Classify(nil))

	coded := models.NewScrapeError(models.ErrCodeLLMRateLimited, "slow down", nil)
	var se *models.ScrapeError
	require.ErrorAs(t, Classify(fmt.Errorf("wrapped: %w", coded)), &se)
	require.Equal(t, models.ErrCodeLLMRateLimited, se.Code)

	plain := errors.New("connection reset")
	require.ErrorAs(t, Classify(plain), &se)
	require.Equal(t, models.ErrCodeLLMFailure, se.Code)
	require.ErrorIs(t, se, plain)
}

func TestNew(t *testing.T) {
	_, err := New(config.LLMConfig{Provider: "openai"})
	require.ErrorIs(t, err, ErrNotConfigured)

	c, err := New(config.LLMConfig{Provider: "openai", OpenAIAPIKey: "sk-test", OpenAIModel: "gpt-4"})
	require.NoError(t, err)
	require.IsType(t, &OpenAI{}, c)

	c, err = New(config.LLMConfig{Provider: "anthropic", AnthropicAPIKey: "key", AnthropicModel: "claude"})
	require.NoError(t, err)
	require.IsType(t, &Anthropic{}, c)
}

func TestDisabled(t *testing.T) {
	_, err := Disabled{}.Complete(context.Background(), Request{Prompt: "hi"})
	require.ErrorIs(t, err, ErrNotConfigured)
}

func TestDecodeJSONDuplicateNames(t *testing.T) {
	got, err := DecodeJSON[models.KeywordAnalysis](`{"primaryKeywords": ["old"], "primaryKeywords": ["water bottle"]}`)
	require.NoError(t, err)
	require.Equal(t, []string{"water bottle"}, got.PrimaryKeywords)
}

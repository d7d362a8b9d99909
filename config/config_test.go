package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
}

func TestReadFileMergesLocalOverride(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "listingscout.json5")
	writeFile(t, base, `{
		// comments and trailing commas are fine in json5
		server: { port: 4000, host: "127.0.0.1", },
		scraper: { marketplace: "DE" },
	}`)
	writeFile(t, filepath.Join(dir, "listingscout.local.json5"), `{
		server: { port: 5000 },
	}`)

	cfg := defaults()
	require.NoError(t, ReadFile(base, cfg))
	require.Equal(t, 5000, cfg.Server.Port)
	require.Equal(t, "127.0.0.1", cfg.Server.Host)
	require.Equal(t, "DE", cfg.Scraper.Marketplace)
	require.Equal(t, "release", cfg.Server.Mode)
	require.Equal(t, 4, cfg.Browser.MaxPages)
}

func TestReadFileMissing(t *testing.T) {
	cfg := defaults()
	require.ErrorIs(t, ReadFile(filepath.Join(t.TempDir(), "nope.json5"), cfg), os.ErrNotExist)
	require.Equal(t, defaults(), cfg)
}

func TestReadFileSetsFalseAndZero(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "listingscout.json5")
	writeFile(t, base, `{
		browser: { headless: false },
		launch: { liteMode: true },
		rateLimit: { burst: 0 },
	}`)
	writeFile(t, filepath.Join(dir, "listingscout.local.json5"), `{
		launch: { liteMode: false },
		server: { corsOrigins: [] },
	}`)

	cfg := defaults()
	require.NoError(t, ReadFile(base, cfg))
	require.False(t, cfg.Browser.Headless)
	require.False(t, cfg.Launch.LiteMode)
	require.Equal(t, 0, cfg.RateLimit.Burst)
	require.Empty(t, cfg.Server.CORSOrigins)
	require.Equal(t, 2.0, cfg.RateLimit.RequestsPerSecond)
}

func TestLoadFileHeadlessFalse(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.json5")
	writeFile(t, path, `{ browser: { headless: false }, telemetry: { headers: { "x-team": "growth", "x-env": "prod" } } }`)
	t.Setenv("LISTINGSCOUT_CONFIG", path)
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "x-env=staging,Authorization=Bearer x")

	cfg := Load()
	require.False(t, cfg.Browser.Headless)
	require.Equal(t, map[string]string{
		"x-team":        "growth",
		"x-env":         "staging",
		"Authorization": "Bearer x",
	}, cfg.Telemetry.Headers)
}

func TestLoadBadFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.json5")
	writeFile(t, path, `{ browser: { headless: false }, server: { port: "not a number" } }`)
	t.Setenv("LISTINGSCOUT_CONFIG", path)

	cfg := Load()
	require.True(t, cfg.Browser.Headless)
	require.Equal(t, 3001, cfg.Server.Port)
}

func TestLoadPrecedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cfg.json5")
	writeFile(t, path, `{ server: { port: 4000 }, llm: { openaiModel: "gpt-4o" } }`)

	t.Setenv("LISTINGSCOUT_CONFIG", path)
	t.Setenv("PORT", "9090")
	t.Setenv("LISTINGSCOUT_NAV_TIMEOUT", "12s")
	t.Setenv("LISTINGSCOUT_LITE_MODE", "true")
	t.Setenv("LISTINGSCOUT_MARKETPLACE", "gb")

	cfg := Load()
	require.Equal(t, 9090, cfg.Server.Port)
	require.Equal(t, "gpt-4o", cfg.LLM.OpenAIModel)
	require.Equal(t, 12*time.Second, cfg.Scraper.NavigationTimeout)
	require.True(t, cfg.Launch.LiteMode)
	require.Equal(t, "GB", cfg.Scraper.Marketplace)
	require.Equal(t, time.Second, cfg.Scraper.SearchDelayMin)
}

func TestLLMConfigured(t *testing.T) {
	c := LLMConfig{Provider: "openai", OpenAIModel: "gpt-4"}
	require.False(t, c.Configured())
	c.OpenAIAPIKey = "sk-test"
	require.True(t, c.Configured())
	require.Equal(t, "gpt-4", c.Model())

	c = LLMConfig{Provider: "anthropic", AnthropicModel: "claude", OpenAIAPIKey: "sk-test"}
	require.False(t, c.Configured())
	require.Equal(t, "claude", c.Model())
}

func TestEnvMapOr(t *testing.T) {
	t.Setenv("TEST_HEADERS", "Authorization=Bearer x, x-team = growth ,broken")
	got := envMapOr("TEST_HEADERS", nil)
	require.Equal(t, map[string]string{"Authorization": "Bearer x", "x-team": "growth"}, got)

	fallback := map[string]string{"a": "b"}
	require.Equal(t, fallback, envMapOr("TEST_HEADERS_UNSET", fallback))
}

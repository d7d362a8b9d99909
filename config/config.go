package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"dario.cat/mergo"
	"github.com/joho/godotenv"
	"github.com/titanous/json5"
)

// Config holds all application configuration.
//
// Values are resolved in three layers: built-in defaults, then the optional
// JSON5 config file (and its .local override) decoded on top of them, then
// environment variables. OTLP headers from the environment are merged over
// the file's headers.
// Durations are not read from the file.
type Config struct {
	Server    ServerConfig    `json:"server"`
	Browser   BrowserConfig   `json:"browser"`
	Scraper   ScraperConfig   `json:"scraper"`
	LLM       LLMConfig       `json:"llm"`
	Launch    LaunchConfig    `json:"launch"`
	Store     StoreConfig     `json:"store"`
	Webhook   WebhookConfig   `json:"webhook"`
	Telemetry TelemetryConfig `json:"telemetry"`
	Auth      AuthConfig      `json:"auth"`
	RateLimit RateLimitConfig `json:"rateLimit"`
	Cache     CacheConfig     `json:"cache"`
	Log       LogConfig       `json:"log"`
}

// ServerConfig controls the HTTP server.
type ServerConfig struct {
	Host string `json:"host"` // default: "0.0.0.0"
	Port int    `json:"port"` // default: 3001
	Mode string `json:"mode"` // "debug", "release", "test"; default: "release"

	// CORSOrigins lists allowed origins. "*" allows any.
	CORSOrigins []string `json:"corsOrigins"` // default: ["*"]
}

// BrowserConfig controls the Rod browser instance.
type BrowserConfig struct {
	// Headless controls whether the browser runs headless.
	Headless bool `json:"headless"` // default: true

	// MaxPages is the page pool capacity (max concurrent tabs).
	MaxPages int `json:"maxPages"` // default: 4

	// DefaultProxy is the proxy URL for all browser traffic.
	DefaultProxy string `json:"proxy"`

	// NoSandbox disables Chrome's sandbox (needed in Docker).
	NoSandbox bool `json:"noSandbox"` // default: false

	// BrowserBin overrides the Chromium binary path.
	BrowserBin string `json:"browserBin"`
}

// ScraperConfig controls Amazon scraping behavior.
type ScraperConfig struct {
	// Marketplace is the two-letter Amazon storefront code used for searches.
	Marketplace string `json:"marketplace"` // default: "US"

	// NavigationTimeout is the max time for one page fetch.
	NavigationTimeout time.Duration `json:"-"` // default: 30s

	// SearchDelayMin and SearchDelayMax bound the random pause before
	// every search page request.
	SearchDelayMin time.Duration `json:"-"` // default: 1s
	SearchDelayMax time.Duration `json:"-"` // default: 3s

	// BlockedResourceTypes lists resource types to block.
	// default: ["Image", "Font", "Media"]
	BlockedResourceTypes []string `json:"blockedResources"`

	// HTTPTimeout is the deadline for the plain HTTP fetch tier.
	HTTPTimeout time.Duration `json:"-"` // default: 10s

	// FirecrawlAPIKey enables the hosted fetch tier when set.
	FirecrawlAPIKey string `json:"firecrawlApiKey"`
	FirecrawlAPIURL string `json:"firecrawlApiUrl"` // default: "https://api.firecrawl.dev"
}

// LLMConfig selects and configures the completion provider.
type LLMConfig struct {
	// Provider is "openai" or "anthropic".
	Provider string `json:"provider"` // default: "openai"

	OpenAIAPIKey  string `json:"openaiApiKey"`
	OpenAIModel   string `json:"openaiModel"` // default: "gpt-4"
	OpenAIBaseURL string `json:"openaiBaseUrl"`

	AnthropicAPIKey string `json:"anthropicApiKey"`
	AnthropicModel  string `json:"anthropicModel"` // default: "claude-3-5-sonnet-latest"

	// MaxRetries is passed to the SDK retry policy.
	MaxRetries int `json:"maxRetries"` // default: 2

	// Timeout bounds a single completion request.
	Timeout time.Duration `json:"-"` // default: 90s

	// MaxPromptTokens caps the estimated prompt size.
	MaxPromptTokens int `json:"maxPromptTokens"` // default: 6000
}

// Model returns the model name of the selected provider.
func (c LLMConfig) Model() string {
	if c.Provider == "anthropic" {
		return c.AnthropicModel
	}
	return c.OpenAIModel
}

// Configured reports whether the selected provider has an API key.
func (c LLMConfig) Configured() bool {
	if c.Provider == "anthropic" {
		return c.AnthropicAPIKey != ""
	}
	return c.OpenAIAPIKey != ""
}

// LaunchConfig controls the new-product launch pipeline.
type LaunchConfig struct {
	// LiteMode skips live competitor scraping and returns static launch
	// content, for deployments without a browser.
	LiteMode bool `json:"liteMode"` // default: false
}

// StoreConfig controls the analysis history database.
type StoreConfig struct {
	// DSN selects the driver by scheme. Empty disables history.
	DSN string `json:"dsn"`
}

// WebhookConfig controls completion notifications.
type WebhookConfig struct {
	URL    string `json:"url"`
	Secret string `json:"secret"`
}

// TelemetryConfig controls OTLP trace export.
type TelemetryConfig struct {
	ServiceName string            `json:"serviceName"` // default: "listingscout"
	Endpoint    string            `json:"endpoint"`
	Headers     map[string]string `json:"headers"`
}

// AuthConfig controls API key authentication.
type AuthConfig struct {
	// Enabled toggles API key authentication.
	Enabled bool `json:"enabled"` // default: false

	// APIKeys is the list of valid API keys.
	APIKeys []string `json:"apiKeys"`
}

// RateLimitConfig controls per-client rate limiting.
type RateLimitConfig struct {
	// RequestsPerSecond is the sustained rate per client.
	RequestsPerSecond float64 `json:"rps"` // default: 2

	// Burst is the maximum burst size per client.
	Burst int `json:"burst"` // default: 5
}

// CacheConfig controls the competitor search cache.
type CacheConfig struct {
	// TTL is how long a search result is reused. Zero disables caching.
	TTL time.Duration `json:"-"` // default: 10m

	// MaxEntries is the maximum number of cached searches.
	MaxEntries int `json:"maxEntries"` // default: 500
}

// LogConfig controls structured logging.
type LogConfig struct {
	Level  string `json:"level"`  // default: "info"
	Format string `json:"format"` // "json" or "text"; default: "json"
}

// Load reads configuration from .env, the optional config file and
// environment variables, in increasing order of precedence.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to load .env file", slog.Any("error", err))
	}

	cfg := defaults()

	path := envOr("LISTINGSCOUT_CONFIG", "listingscout.json5")
	if err := ReadFile(path, cfg); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to read config file", slog.String("path", path), slog.Any("error", err))
		cfg = defaults()
	}

	applyEnv(cfg)
	return cfg
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Host:        "0.0.0.0",
			Port:        3001,
			Mode:        "release",
			CORSOrigins: []string{"*"},
		},
		Browser: BrowserConfig{
			Headless: true,
			MaxPages: 4,
		},
		Scraper: ScraperConfig{
			Marketplace:          "US",
			NavigationTimeout:    30 * time.Second,
			SearchDelayMin:       time.Second,
			SearchDelayMax:       3 * time.Second,
			BlockedResourceTypes: []string{"Image", "Font", "Media"},
			HTTPTimeout:          10 * time.Second,
			FirecrawlAPIURL:      "https://api.firecrawl.dev",
		},
		LLM: LLMConfig{
			Provider:        "openai",
			OpenAIModel:     "gpt-4",
			AnthropicModel:  "claude-3-5-sonnet-latest",
			MaxRetries:      2,
			Timeout:         90 * time.Second,
			MaxPromptTokens: 6000,
		},
		Telemetry: TelemetryConfig{
			ServiceName: "listingscout",
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 2,
			Burst:             5,
		},
		Cache: CacheConfig{
			TTL:        10 * time.Minute,
			MaxEntries: 500,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

func applyEnv(c *Config) {
	c.Server.Host = envOr("LISTINGSCOUT_HOST", c.Server.Host)
	c.Server.Port = envIntOr("PORT", c.Server.Port)
	c.Server.Mode = envOr("LISTINGSCOUT_MODE", c.Server.Mode)
	c.Server.CORSOrigins = envSliceOr("LISTINGSCOUT_CORS_ORIGINS", c.Server.CORSOrigins)

	c.Browser.Headless = envBoolOr("LISTINGSCOUT_HEADLESS", c.Browser.Headless)
	c.Browser.MaxPages = envIntOr("LISTINGSCOUT_MAX_PAGES", c.Browser.MaxPages)
	c.Browser.DefaultProxy = envOr("LISTINGSCOUT_PROXY", c.Browser.DefaultProxy)
	c.Browser.NoSandbox = envBoolOr("LISTINGSCOUT_NO_SANDBOX", c.Browser.NoSandbox)
	c.Browser.BrowserBin = envOr("LISTINGSCOUT_BROWSER_BIN", c.Browser.BrowserBin)

	c.Scraper.Marketplace = strings.ToUpper(envOr("LISTINGSCOUT_MARKETPLACE", c.Scraper.Marketplace))
	c.Scraper.NavigationTimeout = envDurationOr("LISTINGSCOUT_NAV_TIMEOUT", c.Scraper.NavigationTimeout)
	c.Scraper.SearchDelayMin = envDurationOr("LISTINGSCOUT_SEARCH_DELAY_MIN", c.Scraper.SearchDelayMin)
	c.Scraper.SearchDelayMax = envDurationOr("LISTINGSCOUT_SEARCH_DELAY_MAX", c.Scraper.SearchDelayMax)
	c.Scraper.BlockedResourceTypes = envSliceOr("LISTINGSCOUT_BLOCKED_RESOURCES", c.Scraper.BlockedResourceTypes)
	c.Scraper.HTTPTimeout = envDurationOr("LISTINGSCOUT_HTTP_TIMEOUT", c.Scraper.HTTPTimeout)
	c.Scraper.FirecrawlAPIKey = envOr("FIRECRAWL_API_KEY", c.Scraper.FirecrawlAPIKey)
	c.Scraper.FirecrawlAPIURL = envOr("FIRECRAWL_API_URL", c.Scraper.FirecrawlAPIURL)

	c.LLM.Provider = strings.ToLower(envOr("LLM_PROVIDER", c.LLM.Provider))
	c.LLM.OpenAIAPIKey = envOr("OPENAI_API_KEY", c.LLM.OpenAIAPIKey)
	c.LLM.OpenAIModel = envOr("OPENAI_MODEL", c.LLM.OpenAIModel)
	c.LLM.OpenAIBaseURL = envOr("OPENAI_BASE_URL", c.LLM.OpenAIBaseURL)
	c.LLM.AnthropicAPIKey = envOr("ANTHROPIC_API_KEY", c.LLM.AnthropicAPIKey)
	c.LLM.AnthropicModel = envOr("ANTHROPIC_MODEL", c.LLM.AnthropicModel)
	c.LLM.MaxRetries = envIntOr("LLM_MAX_RETRIES", c.LLM.MaxRetries)
	c.LLM.Timeout = envDurationOr("LLM_TIMEOUT", c.LLM.Timeout)
	c.LLM.MaxPromptTokens = envIntOr("LLM_MAX_PROMPT_TOKENS", c.LLM.MaxPromptTokens)

	c.Launch.LiteMode = envBoolOr("LISTINGSCOUT_LITE_MODE", c.Launch.LiteMode)

	c.Store.DSN = envOr("DATABASE_URL", c.Store.DSN)

	c.Webhook.URL = envOr("WEBHOOK_URL", c.Webhook.URL)
	c.Webhook.Secret = envOr("WEBHOOK_SECRET", c.Webhook.Secret)

	c.Telemetry.Endpoint = envOr("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT", c.Telemetry.Endpoint)
	if headers := envMapOr("OTEL_EXPORTER_OTLP_HEADERS", nil); headers != nil {
		if c.Telemetry.Headers == nil {
			c.Telemetry.Headers = make(map[string]string, len(headers))
		}
		if err := mergo.Merge(&c.Telemetry.Headers, headers, mergo.WithOverride); err != nil {
			slog.Warn("failed to merge OTLP headers", slog.Any("error", err))
		}
	}

	c.Auth.Enabled = envBoolOr("LISTINGSCOUT_AUTH_ENABLED", c.Auth.Enabled)
	c.Auth.APIKeys = envSliceOr("LISTINGSCOUT_API_KEYS", c.Auth.APIKeys)

	c.RateLimit.RequestsPerSecond = envFloatOr("LISTINGSCOUT_RATE_RPS", c.RateLimit.RequestsPerSecond)
	c.RateLimit.Burst = envIntOr("LISTINGSCOUT_RATE_BURST", c.RateLimit.Burst)

	c.Cache.TTL = envDurationOr("SEARCH_CACHE_TTL", c.Cache.TTL)
	c.Cache.MaxEntries = envIntOr("SEARCH_CACHE_MAX_ENTRIES", c.Cache.MaxEntries)

	c.Log.Level = envOr("LISTINGSCOUT_LOG_LEVEL", c.Log.Level)
	c.Log.Format = envOr("LISTINGSCOUT_LOG_FORMAT", c.Log.Format)
}

// ReadFile decodes a JSON5 config file onto cfg, then <name>.local.<ext>
// over it. Members a file leaves out keep their current value, while members
// it sets win even when false or zero. It returns os.ErrNotExist when
// neither file exists.
func ReadFile(name string, cfg *Config) error {
	found := false

	data, err := os.ReadFile(name)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	if len(data) > 0 {
		if err := json5.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("parse %s: %w", name, err)
		}
		found = true
	}

	ext := filepath.Ext(name)
	local := strings.TrimSuffix(name, ext) + ".local" + ext
	data, err = os.ReadFile(local)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	if len(data) > 0 {
		if err := json5.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("parse %s: %w", local, err)
		}
		slog.Info("merging config with local overrides", slog.String("local", local))
		found = true
	}

	if !found {
		return os.ErrNotExist
	}
	return nil
}

// --- helper functions ---

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func envBoolOr(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envFloatOr(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envDurationOr(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func envSliceOr(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		return result
	}
	return fallback
}

// envMapOr parses "k1=v1,k2=v2" as used by OTEL_EXPORTER_OTLP_HEADERS.
func envMapOr(key string, fallback map[string]string) map[string]string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	result := make(map[string]string)
	for _, pair := range strings.Split(v, ",") {
		k, val, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		if k = strings.TrimSpace(k); k != "" {
			result[k] = strings.TrimSpace(val)
		}
	}
	if len(result) == 0 {
		return fallback
	}
	return result
}

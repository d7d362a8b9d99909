package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/use-agent/listingscout/analysis"
	"github.com/use-agent/listingscout/api"
	"github.com/use-agent/listingscout/api/handler"
	"github.com/use-agent/listingscout/cache"
	"github.com/use-agent/listingscout/config"
	"github.com/use-agent/listingscout/llm"
	"github.com/use-agent/listingscout/models"
	"github.com/use-agent/listingscout/research"
	"github.com/use-agent/listingscout/scraper"
	"github.com/use-agent/listingscout/store"
	"github.com/use-agent/listingscout/telemetry"
	"github.com/use-agent/listingscout/webhook"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API (the default command).",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return serve(cmd.Context())
	},
}

func serve(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := context.WithCancel(parent)
	defer stop()

	// ── 1. Load configuration ───────────────────────────────────────
	cfg := config.Load()

	// ── 2. Initialise structured logging ────────────────────────────
	initLogger(cfg.Log)
	slog.Info("listingscout starting",
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"mode", cfg.Server.Mode,
		"marketplace", cfg.Scraper.Marketplace,
		"maxPages", cfg.Browser.MaxPages,
		"liteMode", cfg.Launch.LiteMode,
	)

	// ── 3. Tracing ──────────────────────────────────────────────────
	shutdownTracing, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		return err
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			slog.Warn("tracing shutdown failed", "error", err)
		}
	}()

	// ── 4. Initialise scraper (launches browser) ────────────────────
	sc, err := scraper.New(cfg.Browser, cfg.Scraper,
		scraper.WithCache(cache.New[[]models.Competitor](cfg.Cache.TTL, cfg.Cache.MaxEntries)),
	)
	if err != nil {
		return fmt.Errorf("initialise scraper: %w", err)
	}
	defer sc.Close()

	// ── 5. LLM and analyzer ─────────────────────────────────────────
	completer, err := llm.New(cfg.LLM)
	switch {
	case errors.Is(err, llm.ErrNotConfigured):
		slog.Warn("LLM provider not configured, analysis endpoints are disabled",
			"provider", cfg.LLM.Provider,
		)
		completer = llm.Disabled{}
	case err != nil:
		return err
	default:
		slog.Info("LLM provider ready", "provider", cfg.LLM.Provider, "model", cfg.LLM.Model())
	}
	analyzer := analysis.New(completer,
		analysis.WithSuggester(sc),
		analysis.WithMaxPromptTokens(cfg.LLM.MaxPromptTokens),
	)

	// ── 6. History store ────────────────────────────────────────────
	var st store.Store = store.Nop{}
	if cfg.Store.DSN != "" {
		sqlStore, err := store.Open(ctx, cfg.Store.DSN)
		if err != nil {
			return err
		}
		defer sqlStore.Close()
		st = sqlStore
		slog.Info("analysis history enabled")
	}

	// ── 7. Webhooks ─────────────────────────────────────────────────
	wh := webhook.New(cfg.Webhook)

	// ── 8. Research service ─────────────────────────────────────────
	svc := research.New(sc, analyzer,
		research.WithStore(st),
		research.WithNotifier(wh),
		research.WithLiteMode(cfg.Launch.LiteMode),
	)

	// ── 9. Setup router ─────────────────────────────────────────────
	router := api.NewRouter(cfg, api.Deps{
		Research: svc,
		Pool:     sc,
		Batches:  handler.NewBatches(ctx, sc, wh),
		Store:    st,
		Started:  time.Now(),
	})

	// ── 10. Start HTTP server ───────────────────────────────────────
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// ── 11. Graceful shutdown ───────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case sig := <-quit:
		slog.Info("shutdown signal received", "signal", sig.String())
	case err := <-errCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case <-ctx.Done():
	}

	// Give in-flight requests 5 seconds to complete.
	drainCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(drainCtx); err != nil {
		slog.Error("HTTP server forced shutdown", "error", err)
	} else {
		slog.Info("HTTP server drained gracefully")
	}

	// sc.Close() runs via defer after the server: drains the page pool and kills Chrome.
	slog.Info("listingscout stopped")
	return nil
}

package scraper

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
	"github.com/go-rod/stealth"
	"github.com/ysmood/gson"

	"github.com/use-agent/listingscout/engine"
	"github.com/use-agent/listingscout/models"
)

// render loads one page in the shared browser. It is the rod tier of the
// dispatcher.
//
// Lifecycle (numbered steps match the inline comments):
//
//  1. Acquire page      – borrow a tab from the pool (or create one)
//  2. DEFER: cleanup    – about:blank + return to pool, or retire the tab
//  3. Stealth injection – mask navigator.webdriver etc.
//  4. Extra headers     – Accept-Language and friends for the marketplace
//  5. Hijack mount      – block images, fonts, media and ad hosts
//  6. Context binding   – propagate the deadline to all Rod operations
//  7. Navigate + wait   – DOM stable
//  8. Extract           – page.HTML() + document.title
//
// Steps 3-5 must run before step 7 to take effect. The cleanup in step 2
// uses the page without the request context so it succeeds after the
// deadline has passed.
func (s *Scraper) render(ctx context.Context, req *engine.FetchRequest) (res *engine.FetchResult, err error) {
	// ── 1. Acquire page from pool ─────────────────────────────────────
	s.activePages.Add(1)
	defer s.activePages.Add(-1)

	page, err := s.pagePool.Get(func() (*rod.Page, error) {
		return s.browser.Page(proto.TargetCreateTarget{})
	})
	if err != nil {
		s.pagePool.Put(nil)
		return nil, models.NewScrapeError(models.ErrCodeBrowserCrash, "failed to acquire page from pool", err)
	}

	// ── 2. Cleanup: reset the tab and return it, or retire it ────────
	defer func() {
		if s.health.record(page.TargetID, err == nil) {
			s.logger.Info("retiring browser tab", slog.String("target", string(page.TargetID)))
			_ = page.Close()
			s.pagePool.Put(nil)
			return
		}
		if navErr := page.Navigate("about:blank"); navErr != nil {
			s.logger.Warn("cleanup: failed to navigate to about:blank", slog.Any("error", navErr))
		}
		s.pagePool.Put(page)
	}()

	// ── 3. Stealth injection ──────────────────────────────────────────
	if _, evalErr := page.EvalOnNewDocument(stealth.JS); evalErr != nil {
		s.logger.Warn("stealth injection failed, proceeding without stealth", slog.Any("error", evalErr))
	}

	// ── 4. Extra headers ──────────────────────────────────────────────
	headers := s.browserHeaders()
	for k, v := range req.Headers {
		headers[k] = v
	}
	_ = proto.NetworkSetExtraHTTPHeaders{Headers: toHeadersMap(headers)}.Call(page)

	// ── 5. Mount hijack router ────────────────────────────────────────
	router := setupHijack(page, s.blocked)
	defer func() { _ = router.Stop() }()

	// ── 6. Bind request context to page ───────────────────────────────
	p := page.Context(ctx)

	// ── 7. Navigate and wait ──────────────────────────────────────────
	if navErr := p.Navigate(req.URL); navErr != nil {
		return nil, categorizeError(navErr, "navigation to target URL failed")
	}
	if stableErr := p.WaitDOMStable(300*time.Millisecond, 0.1); stableErr != nil {
		s.logger.Debug("WaitDOMStable did not converge, proceeding with current DOM", slog.Any("error", stableErr))
	}

	// ── 8. Extract rendered HTML ──────────────────────────────────────
	rawHTML, htmlErr := p.HTML()
	if htmlErr != nil {
		return nil, categorizeError(htmlErr, "failed to extract page HTML")
	}
	finalURL := evalStringOrEmpty(p, `() => window.location.href`)
	if finalURL == "" {
		finalURL = req.URL
	}

	return &engine.FetchResult{
		HTML:       rawHTML,
		Title:      evalStringOrEmpty(p, `() => document.title`),
		StatusCode: 200,
		FinalURL:   finalURL,
	}, nil
}

// browserHeaders are the request headers every tier sends for the
// configured marketplace.
func (s *Scraper) browserHeaders() map[string]string {
	return map[string]string{
		"Accept-Language":           s.market.AcceptLanguage,
		"Accept":                    "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,image/apng,*/*;q=0.8",
		"Upgrade-Insecure-Requests": "1",
	}
}

// evalStringOrEmpty evaluates a JS expression and returns the string
// result, or "" on any error.
func evalStringOrEmpty(page *rod.Page, js string) string {
	res, err := page.Eval(js)
	if err != nil {
		return ""
	}
	return res.Value.Str()
}

// toHeadersMap converts a plain string map to proto.NetworkHeaders.
func toHeadersMap(headers map[string]string) proto.NetworkHeaders {
	m := make(proto.NetworkHeaders, len(headers))
	for k, v := range headers {
		m[k] = gson.New(v)
	}
	return m
}

// categorizeError wraps raw errors into typed ScrapeErrors so the API layer
// can map them to status codes.
func categorizeError(err error, msg string) *models.ScrapeError {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return models.NewScrapeError(models.ErrCodeTimeout, msg, err)
	case errors.Is(err, context.Canceled):
		return models.NewScrapeError(models.ErrCodeTimeout, "request canceled", err)
	default:
		return models.NewScrapeError(models.ErrCodeNavigation, msg, err)
	}
}

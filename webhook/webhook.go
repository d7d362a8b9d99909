// Package webhook posts signed completion events to a configured URL.
package webhook

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/use-agent/listingscout/config"
	"github.com/use-agent/listingscout/telemetry"
)

// SignatureHeader carries "sha256=<hex>" of the request body when a secret
// is configured.
const SignatureHeader = "X-Listingscout-Signature"

// Event is the payload sent to webhook endpoints.
type Event struct {
	Type      string `json:"type"` // e.g. "analysis.completed", "batch.completed"
	ID        string `json:"id"`
	Timestamp int64  `json:"timestamp"`
	Data      any    `json:"data"`
}

// Notifier delivers events. A Notifier without a URL does nothing.
type Notifier struct {
	client *resty.Client
	url    string
	secret string

	// delays are the waits before each retry.
	delays []time.Duration
	sleep  func(ctx context.Context, d time.Duration) error
	logger *slog.Logger
}

// New creates a Notifier for cfg.
func New(cfg config.WebhookConfig) *Notifier {
	client := resty.New().
		SetTimeout(10*time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("User-Agent", "Listingscout-Webhook/1.0")
	telemetry.InstrumentResty(client, "github.com/use-agent/listingscout/webhook")

	return &Notifier{
		client: client,
		url:    cfg.URL,
		secret: cfg.Secret,
		delays: []time.Duration{time.Second, 5 * time.Second, 30 * time.Second},
		sleep:  sleepCtx,
		logger: slog.Default().WithGroup("webhook"),
	}
}

// Enabled reports whether a URL is configured.
func (n *Notifier) Enabled() bool { return n != nil && n.url != "" }

// Notify delivers event, retrying on transport errors and 5xx responses.
// It returns the last error once retries are exhausted.
func (n *Notifier) Notify(ctx context.Context, event *Event) error {
	if !n.Enabled() {
		return nil
	}
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("webhook: marshal event: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt <= len(n.delays); attempt++ {
		if attempt > 0 {
			if err := n.sleep(ctx, n.delays[attempt-1]); err != nil {
				return err
			}
		}
		retry, err := n.deliver(ctx, body)
		if err == nil {
			n.logger.InfoContext(ctx, "webhook delivered",
				slog.String("event", event.Type),
				slog.String("id", event.ID),
				slog.Int("attempt", attempt+1),
			)
			return nil
		}
		n.logger.WarnContext(ctx, "webhook delivery failed",
			slog.String("event", event.Type),
			slog.String("id", event.ID),
			slog.Int("attempt", attempt+1),
			slog.Any("error", err),
		)
		lastErr = err
		if !retry {
			break
		}
	}
	return lastErr
}

// DeliverAsync runs Notify in its own goroutine, detached from any request.
func (n *Notifier) DeliverAsync(event *Event) {
	if !n.Enabled() {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		if err := n.Notify(ctx, event); err != nil {
			n.logger.Error("webhook delivery exhausted all retries",
				slog.String("event", event.Type),
				slog.String("id", event.ID),
				slog.Any("error", err),
			)
		}
	}()
}

// deliver makes one attempt and reports whether a failure is retryable.
func (n *Notifier) deliver(ctx context.Context, body []byte) (bool, error) {
	req := n.client.R().SetContext(ctx).SetBody(body)
	if n.secret != "" {
		req.SetHeader(SignatureHeader, "sha256="+Sign(n.secret, body))
	}
	resp, err := req.Post(n.url)
	if err != nil {
		return true, fmt.Errorf("webhook: deliver: %w", err)
	}
	if resp.StatusCode() >= 500 {
		return true, fmt.Errorf("webhook: endpoint returned status %d", resp.StatusCode())
	}
	if resp.StatusCode() >= 400 {
		return false, fmt.Errorf("webhook: endpoint returned status %d", resp.StatusCode())
	}
	return false, nil
}

// Sign returns the hex HMAC-SHA256 of body under secret.
func Sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

package llm

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/use-agent/listingscout/config"
	"github.com/use-agent/listingscout/models"
)

// Anthropic completes prompts with the Messages API.
type Anthropic struct {
	client anthropic.Client
	model  string
	logger *slog.Logger
}

var _ Completer = (*Anthropic)(nil)

// NewAnthropic creates an Anthropic completer.
func NewAnthropic(cfg config.LLMConfig) *Anthropic {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.AnthropicAPIKey),
		option.WithMaxRetries(cfg.MaxRetries),
	}
	if cfg.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(cfg.Timeout))
	}

	return &Anthropic{
		client: anthropic.NewClient(opts...),
		model:  cfg.AnthropicModel,
		logger: slog.Default().WithGroup("anthropic"),
	}
}

// Complete implements [Completer].
func (c *Anthropic) Complete(ctx context.Context, req Request) (string, error) {
	c.logger.DebugContext(ctx, "create message",
		slog.String("model", c.model),
		slog.Int("max_tokens", req.MaxTokens),
	)

	params := anthropic.MessageNewParams{
		Model: anthropic.Model(c.model),
		System: []anthropic.TextBlockParam{
			{
				Text: req.System,
			},
		},
		Messages: []anthropic.MessageParam{
			{
				Content: []anthropic.ContentBlockParamUnion{
					anthropic.NewTextBlock(req.Prompt),
				},
				Role: anthropic.MessageParamRoleUser,
			},
		},
		MaxTokens:   int64(req.MaxTokens),
		Temperature: anthropic.Float(req.Temperature),
	}

	msg, err := c.client.Messages.New(ctx, params)
	if err != nil {
		c.logger.ErrorContext(ctx, "create message failed", slog.Any("error", err))
		return "", Classify(err)
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		sb.WriteString(block.Text)
	}
	if sb.Len() == 0 {
		return "", models.NewScrapeError(models.ErrCodeLLMFailure, "LLM returned empty content", nil)
	}
	return sb.String(), nil
}

func anthropicStatus(err error) (int, string, bool) {
	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode, apiErr.Error(), true
	}
	return 0, "", false
}

package llm

import (
	"context"
	"errors"
	"log/slog"

	openai "github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"

	"github.com/use-agent/listingscout/config"
	"github.com/use-agent/listingscout/models"
)

// OpenAI completes prompts with the chat completions API.
type OpenAI struct {
	client *openai.Client
	model  string
	logger *slog.Logger
}

var _ Completer = (*OpenAI)(nil)

// NewOpenAI creates an OpenAI completer. Retries with backoff are handled
// by the SDK.
func NewOpenAI(cfg config.LLMConfig) *OpenAI {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.OpenAIAPIKey),
		option.WithMaxRetries(cfg.MaxRetries),
	}
	if cfg.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(cfg.Timeout))
	}
	if cfg.OpenAIBaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.OpenAIBaseURL))
	}
	client := openai.NewClient(opts...)

	return &OpenAI{
		client: &client,
		model:  cfg.OpenAIModel,
		logger: slog.Default().WithGroup("openai"),
	}
}

// Complete implements [Completer].
func (c *OpenAI) Complete(ctx context.Context, req Request) (string, error) {
	c.logger.DebugContext(ctx, "chat completion",
		slog.String("model", c.model),
		slog.Int("max_tokens", req.MaxTokens),
	)

	params := openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(req.System),
			openai.UserMessage(req.Prompt),
		},
		Temperature:         openai.Float(req.Temperature),
		MaxCompletionTokens: openai.Int(int64(req.MaxTokens)),
	}

	completion, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		c.logger.ErrorContext(ctx, "chat completion failed", slog.Any("error", err))
		return "", Classify(err)
	}
	if len(completion.Choices) == 0 {
		return "", models.NewScrapeError(models.ErrCodeLLMFailure, "LLM returned no choices", nil)
	}

	content := completion.Choices[0].Message.Content
	if content == "" {
		return "", models.NewScrapeError(models.ErrCodeLLMFailure, "LLM returned empty content", nil)
	}
	return content, nil
}

func openAIStatus(err error) (int, string, bool) {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode, apiErr.Error(), true
	}
	return 0, "", false
}

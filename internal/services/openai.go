package services

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"seekr/backend/internal/config"
)

// ChatMessage is a single turn in a chat-completion request.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatClient performs a single chat-completion call. Implementations make
// exactly one attempt; callers decide what a failure means.
type ChatClient interface {
	Complete(ctx context.Context, model string, messages []ChatMessage, temperature float64, maxTokens int) (string, error)
}

type openAIClient struct {
	client *resty.Client
	logger *zap.Logger
}

// NewOpenAIClient builds a chat-completions client against the configured
// base URL. The base URL is configurable so tests can point it at a local
// server.
func NewOpenAIClient(cfg *config.Config, logger *zap.Logger) ChatClient {
	client := resty.New().
		SetBaseURL(cfg.OpenAI.BaseURL).
		SetTimeout(cfg.OpenAI.Timeout).
		SetAuthToken(cfg.OpenAI.APIKey).
		SetHeader("Content-Type", "application/json")

	return &openAIClient{client: client, logger: logger}
}

func (c *openAIClient) Complete(ctx context.Context, model string, messages []ChatMessage, temperature float64, maxTokens int) (string, error) {
	body := map[string]interface{}{
		"model":       model,
		"messages":    messages,
		"temperature": temperature,
		"max_tokens":  maxTokens,
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(body).
		Post("/chat/completions")
	if err != nil {
		return "", NewUpstreamUnavailableError(err)
	}

	if resp.IsError() {
		c.logger.Warn("chat completion request failed",
			zap.Int("status", resp.StatusCode()),
			zap.String("body", resp.String()))
		return "", NewUpstreamUnavailableError(fmt.Errorf("upstream returned status %d", resp.StatusCode()))
	}

	content := gjson.Get(resp.String(), "choices.0.message.content").String()
	if content == "" {
		return "", NewEmptyResponseError()
	}

	return content, nil
}

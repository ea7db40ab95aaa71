package services

import (
	"context"
	"encoding/json"
	"strings"

	"go.uber.org/zap"

	"seekr/backend/internal/models"
)

type assistedStrategy struct {
	client  ChatClient
	prompts *PromptBuilder
	model   string
	logger  *zap.Logger
}

// NewAssistedStrategy builds a language-model-backed extraction strategy.
// It makes a single completion attempt per resume; failures surface to the
// caller instead of falling back to the rule-based path.
func NewAssistedStrategy(client ChatClient, model string, logger *zap.Logger) ExtractionStrategy {
	return &assistedStrategy{
		client:  client,
		prompts: NewPromptBuilder(),
		model:   model,
		logger:  logger,
	}
}

func (a *assistedStrategy) ExtractFields(ctx context.Context, text string) (models.ResumeFields, error) {
	content, err := a.client.Complete(ctx, a.model, a.prompts.ParseMessages(text), 0.2, 1500)
	if err != nil {
		return models.ResumeFields{}, err
	}

	cleaned := stripMarkdownFences(content)

	var fields models.ResumeFields
	if err := json.Unmarshal([]byte(cleaned), &fields); err != nil {
		a.logger.Warn("model returned unparseable payload",
			zap.String("content", cleaned),
			zap.Error(err))
		return models.ResumeFields{}, NewMalformedJSONError(err)
	}

	return fields, nil
}

// stripMarkdownFences removes ```json / ``` wrappers some models add around
// JSON payloads.
func stripMarkdownFences(content string) string {
	content = strings.ReplaceAll(content, "```json", "")
	content = strings.ReplaceAll(content, "```", "")
	return strings.TrimSpace(content)
}

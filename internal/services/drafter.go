package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"seekr/backend/internal/models"
)

// DraftIntent selects the tone of a drafted outreach email.
type DraftIntent string

const (
	IntentQuickApply DraftIntent = "quick_apply"
	IntentDraftEmail DraftIntent = "draft_email"
)

// ParseDraftIntent normalizes a client-supplied intent string. Unknown or
// empty values default to a plain outreach draft.
func ParseDraftIntent(value string) DraftIntent {
	if DraftIntent(strings.ToLower(strings.TrimSpace(value))) == IntentQuickApply {
		return IntentQuickApply
	}
	return IntentDraftEmail
}

// Drafter produces outreach emails from a profile and an opportunity.
type Drafter interface {
	// Draft returns the email text and whether the canned fallback was
	// used. The result is never empty and the method never fails: if the
	// single language-model attempt does not produce usable text, the
	// fallback template is returned instead.
	Draft(ctx context.Context, profile *models.Profile, opp *models.Opportunity, intent DraftIntent) (string, bool)
}

type drafter struct {
	client  ChatClient
	prompts *PromptBuilder
	model   string
	logger  *zap.Logger
}

func NewDrafter(client ChatClient, model string, logger *zap.Logger) Drafter {
	return &drafter{
		client:  client,
		prompts: NewPromptBuilder(),
		model:   model,
		logger:  logger,
	}
}

func (d *drafter) Draft(ctx context.Context, profile *models.Profile, opp *models.Opportunity, intent DraftIntent) (string, bool) {
	messages := d.prompts.DraftMessages(profile, opp, intent)

	content, err := d.client.Complete(ctx, d.model, messages, 0.7, 600)
	if err == nil && strings.TrimSpace(content) != "" {
		return content, false
	}

	if err != nil {
		d.logger.Warn("email drafting fell back to template",
			zap.String("opportunity_id", opp.ID),
			zap.Error(err))
	}

	return d.prompts.FallbackEmail(profile, opp), true
}

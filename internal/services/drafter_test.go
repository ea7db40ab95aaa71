package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"seekr/backend/internal/models"
)

func draftFixtures() (*models.Profile, *models.Opportunity) {
	profile := &models.Profile{
		ID:              uuid.New(),
		FullName:        "Aditya Kumar",
		Email:           "adikum26@uw.edu",
		Major:           "Computer Science",
		GPA:             "3.85",
		GradYear:        2026,
		ParsedSkills:    models.NewPresenceMap([]string{"Python", "React", "SQL", "Git"}),
		ParsedInterests: models.NewPresenceMap([]string{"NLP", "Robotics"}),
		Bio:             "CS junior working on language technology.",
	}

	opportunities := models.SeedOpportunities()
	return profile, &opportunities[0]
}

func TestDrafterUsesModelResponse(t *testing.T) {
	profile, opp := draftFixtures()

	client := &fakeChatClient{content: "Subject: Research Inquiry\n\nDear Dr. Chen, ..."}
	drafter := NewDrafter(client, "gpt-3.5-turbo", zap.NewNop())

	email, fallbackUsed := drafter.Draft(context.Background(), profile, opp, IntentDraftEmail)

	assert.False(t, fallbackUsed)
	assert.Equal(t, client.content, email)
	assert.InDelta(t, 0.7, client.lastTemp, 0.001)
	assert.Equal(t, 600, client.lastTokens)

	require.Len(t, client.lastMessage, 2)
	assert.Contains(t, client.lastMessage[1].Content, "Aditya Kumar")
	assert.Contains(t, client.lastMessage[1].Content, opp.Title)
	assert.Contains(t, client.lastMessage[1].Content, "Draft Email")
}

func TestDrafterQuickApplyIntent(t *testing.T) {
	profile, opp := draftFixtures()

	client := &fakeChatClient{content: "Subject: Application\n\n..."}
	drafter := NewDrafter(client, "gpt-3.5-turbo", zap.NewNop())

	drafter.Draft(context.Background(), profile, opp, IntentQuickApply)
	assert.Contains(t, client.lastMessage[1].Content, "Quick Apply")
}

func TestDrafterFallsBackOnError(t *testing.T) {
	profile, opp := draftFixtures()

	client := &fakeChatClient{err: NewUpstreamUnavailableError(errors.New("timeout"))}
	drafter := NewDrafter(client, "gpt-3.5-turbo", zap.NewNop())

	email, fallbackUsed := drafter.Draft(context.Background(), profile, opp, IntentDraftEmail)

	assert.True(t, fallbackUsed)
	assert.NotEmpty(t, strings.TrimSpace(email))
	assert.Contains(t, email, profile.FullName)
	assert.Contains(t, email, opp.ContactEmail())
	assert.Contains(t, email, opp.Professor)
}

func TestDrafterFallsBackOnBlankResponse(t *testing.T) {
	profile, opp := draftFixtures()

	client := &fakeChatClient{content: "   \n "}
	drafter := NewDrafter(client, "gpt-3.5-turbo", zap.NewNop())

	email, fallbackUsed := drafter.Draft(context.Background(), profile, opp, IntentDraftEmail)

	assert.True(t, fallbackUsed)
	assert.NotEmpty(t, strings.TrimSpace(email))
}

func TestDrafterFallbackHandlesSparseProfile(t *testing.T) {
	opp := &models.SeedOpportunities()[1]
	profile := &models.Profile{ID: uuid.New()}

	client := &fakeChatClient{err: NewEmptyResponseError()}
	drafter := NewDrafter(client, "gpt-3.5-turbo", zap.NewNop())

	email, fallbackUsed := drafter.Draft(context.Background(), profile, opp, IntentDraftEmail)

	assert.True(t, fallbackUsed)
	assert.Contains(t, email, "Student")
	assert.Contains(t, email, opp.ContactEmail())
	assert.NotContains(t, email, "%!")
}

func TestParseDraftIntent(t *testing.T) {
	assert.Equal(t, IntentQuickApply, ParseDraftIntent("quick_apply"))
	assert.Equal(t, IntentQuickApply, ParseDraftIntent(" QUICK_APPLY "))
	assert.Equal(t, IntentDraftEmail, ParseDraftIntent("draft_email"))
	assert.Equal(t, IntentDraftEmail, ParseDraftIntent(""))
	assert.Equal(t, IntentDraftEmail, ParseDraftIntent("nonsense"))
}

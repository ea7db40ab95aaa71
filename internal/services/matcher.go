package services

import (
	"sort"
	"strings"

	"go.uber.org/zap"

	"seekr/backend/internal/models"
)

const topMatchCount = 3

// Matcher scores research opportunities against a student profile.
type Matcher interface {
	Match(profile *models.Profile, opportunities []models.Opportunity) []models.MatchedOpportunity
}

type matcher struct {
	logger *zap.Logger
}

func NewMatcher(logger *zap.Logger) Matcher {
	return &matcher{logger: logger}
}

// Match counts how many of the profile's skill and interest keywords appear
// in each opportunity's text, adds a bonus of 2 when the student's major
// appears, and returns up to three matches ordered by score. Ties keep the
// opportunities' original order.
func (m *matcher) Match(profile *models.Profile, opportunities []models.Opportunity) []models.MatchedOpportunity {
	keywords := profile.Keywords()

	scored := make([]models.MatchedOpportunity, 0, len(opportunities))
	for _, opp := range opportunities {
		oppText := opp.SearchText()

		score := 0
		for _, keyword := range keywords {
			if strings.Contains(oppText, strings.ToLower(keyword)) {
				score++
			}
		}

		if profile.Major != "" && strings.Contains(oppText, strings.ToLower(profile.Major)) {
			score += 2
		}

		scored = append(scored, models.MatchedOpportunity{Opportunity: opp, Score: score})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > topMatchCount {
		scored = scored[:topMatchCount]
	}

	m.logger.Debug("matched opportunities",
		zap.String("profile_id", profile.ID.String()),
		zap.Int("keywords", len(keywords)),
		zap.Int("matches", len(scored)))

	return scored
}

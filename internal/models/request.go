package models

type MatchRequest struct {
	ProfileID string `json:"profile_id"`
}

type MatchData struct {
	Matches []MatchedOpportunity `json:"matches"`
}

type MatchResponse struct {
	Success bool      `json:"success"`
	Data    MatchData `json:"data"`
}

type DraftEmailRequest struct {
	ProfileID     string `json:"profile_id"`
	OpportunityID string `json:"opportunity_id"`
	Intent        string `json:"intent"`
}

type DraftEmailData struct {
	Email        string `json:"email"`
	FallbackUsed bool   `json:"fallback_used"`
}

type DraftEmailResponse struct {
	Success bool           `json:"success"`
	Data    DraftEmailData `json:"data"`
}

// UpdateResumeRequest applies a parsed resume to a stored profile.
type UpdateResumeRequest struct {
	ResumeFields
	Text string `json:"text"`
}

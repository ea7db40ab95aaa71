package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPresenceMapRoundTrip(t *testing.T) {
	keys := []string{"Python", "React", "SQL"}
	m := NewPresenceMap(keys)

	assert.Equal(t, []string{"Python", "React", "SQL"}, m.Keys())
	assert.True(t, m["Python"])
}

func TestPresenceMapSkipsFalseEntries(t *testing.T) {
	m := PresenceMap{"Python": true, "React": false}
	assert.Equal(t, []string{"Python"}, m.Keys())
}

func TestPresenceMapEmpty(t *testing.T) {
	assert.Empty(t, PresenceMap(nil).Keys())
	assert.Empty(t, NewPresenceMap(nil).Keys())
}

func TestProfileKeywords(t *testing.T) {
	p := Profile{
		ParsedSkills:    NewPresenceMap([]string{"SQL", "Python"}),
		ParsedInterests: NewPresenceMap([]string{"Robotics", "NLP"}),
	}

	// Skill keys first, then interest keys, each group sorted.
	assert.Equal(t, []string{"Python", "SQL", "NLP", "Robotics"}, p.Keywords())
}

func TestApplyResumeOverwritesFoundFields(t *testing.T) {
	p := Profile{
		FullName: "Old Name",
		Email:    "old@uw.edu",
		Major:    "History",
	}

	p.ApplyResume(&ResumeFields{
		FullName:       "Aditya Kumar",
		Email:          "adikum26@uw.edu",
		Major:          "Computer Science",
		GPA:            "3.85",
		GraduationYear: "2026",
		Skills:         []string{"Python"},
		Interests:      []string{"NLP"},
		Summary:        "CS student.",
	}, "full resume text")

	assert.Equal(t, "Aditya Kumar", p.FullName)
	assert.Equal(t, "adikum26@uw.edu", p.Email)
	assert.Equal(t, "Computer Science", p.Major)
	assert.Equal(t, "3.85", p.GPA)
	assert.Equal(t, 2026, p.GradYear)
	assert.Equal(t, []string{"Python"}, p.ParsedSkills.Keys())
	assert.Equal(t, []string{"NLP"}, p.ParsedInterests.Keys())
	assert.Equal(t, "CS student.", p.Bio)
	assert.Equal(t, "full resume text", p.ResumeText)
}

func TestApplyResumeKeepsExistingOnMissingFields(t *testing.T) {
	p := Profile{
		FullName:     "Aditya Kumar",
		Email:        "adikum26@uw.edu",
		GPA:          "3.85",
		GradYear:     2026,
		ParsedSkills: NewPresenceMap([]string{"Python"}),
		Bio:          "Existing bio",
	}

	p.ApplyResume(&ResumeFields{FullName: "Unknown"}, "new text")

	assert.Equal(t, "Aditya Kumar", p.FullName, "the Unknown placeholder never overwrites a real name")
	assert.Equal(t, "adikum26@uw.edu", p.Email)
	assert.Equal(t, "3.85", p.GPA)
	assert.Equal(t, 2026, p.GradYear)
	assert.Equal(t, []string{"Python"}, p.ParsedSkills.Keys())
	assert.Equal(t, "Existing bio", p.Bio)
	assert.Equal(t, "new text", p.ResumeText)
}

func TestOpportunitySearchText(t *testing.T) {
	opp := Opportunity{
		Title:       "NLP Research",
		Focus:       "Large Language Models",
		Subfield:    "NLP",
		Description: "Transformer work.",
	}

	assert.Equal(t, "nlp research large language models nlp transformer work.", opp.SearchText())
}

func TestOpportunityContactEmail(t *testing.T) {
	opp := Opportunity{Emails: []string{"first@uw.edu", "second@uw.edu"}}
	assert.Equal(t, "first@uw.edu", opp.ContactEmail())

	assert.Empty(t, (&Opportunity{}).ContactEmail())
}

func TestSeedOpportunities(t *testing.T) {
	seeds := SeedOpportunities()
	assert.Len(t, seeds, 5)

	for _, opp := range seeds {
		assert.NotEmpty(t, opp.ID)
		assert.NotEmpty(t, opp.Title)
		assert.NotEmpty(t, opp.Professor)
		assert.NotEmpty(t, opp.Emails)
	}
}

package models

import "strings"

// Opportunity is a research opening a student can be matched against.
type Opportunity struct {
	ID          string   `gorm:"primaryKey;type:text" json:"id"`
	Title       string   `gorm:"type:text" json:"title"`
	Focus       string   `gorm:"type:text" json:"focus"`
	Subfield    string   `gorm:"type:text" json:"subfield"`
	Emails      []string `gorm:"serializer:json" json:"emails"`
	URL         string   `gorm:"type:text" json:"url"`
	Description string   `gorm:"type:text" json:"description"`
	Professor   string   `gorm:"type:text" json:"professor"`
	Department  string   `gorm:"type:text" json:"department"`
}

func (o *Opportunity) TableName() string {
	return "opportunities"
}

// SearchText is the lowercased haystack keyword matching runs against.
func (o *Opportunity) SearchText() string {
	return strings.ToLower(o.Title + " " + o.Focus + " " + o.Subfield + " " + o.Description)
}

// ContactEmail returns the first listed contact address, if any.
func (o *Opportunity) ContactEmail() string {
	if len(o.Emails) > 0 {
		return o.Emails[0]
	}
	return ""
}

// MatchedOpportunity pairs an opportunity with its relevance score for a
// profile. Scores are recomputed per query and never persisted.
type MatchedOpportunity struct {
	Opportunity
	Score int `json:"score"`
}

// SeedOpportunities is the initial opportunity catalog, inserted on first
// start when the table is empty.
func SeedOpportunities() []Opportunity {
	return []Opportunity{
		{
			ID:          "1",
			Title:       "Natural Language Processing Research Assistant",
			Focus:       "Large Language Models and Neural Machine Translation",
			Subfield:    "NLP",
			Emails:      []string{"prof.nlp@uw.edu", "nlp.lab@cs.washington.edu"},
			URL:         "https://nlp.cs.washington.edu/opportunities",
			Description: "Working on cutting-edge research in transformer architectures and multilingual models.",
			Professor:   "Dr. Sarah Chen",
			Department:  "Computer Science & Engineering",
		},
		{
			ID:          "2",
			Title:       "Human-Computer Interaction Lab Position",
			Focus:       "Accessible Computing and User Experience Research",
			Subfield:    "HCI",
			Emails:      []string{"hci.lab@uw.edu", "prof.ux@cs.washington.edu"},
			URL:         "https://hci.cs.washington.edu/research",
			Description: "Exploring innovative interfaces for users with diverse abilities and needs.",
			Professor:   "Dr. Michael Torres",
			Department:  "Human Centered Design & Engineering",
		},
		{
			ID:          "3",
			Title:       "Robotics and AI Integration Research",
			Focus:       "Autonomous Systems and Computer Vision for Robotics",
			Subfield:    "Robotics",
			Emails:      []string{"robotics@uw.edu", "prof.vision@cs.washington.edu"},
			URL:         "https://robotics.cs.washington.edu/join",
			Description: "Developing intelligent robots capable of real-world navigation and manipulation.",
			Professor:   "Dr. Jennifer Park",
			Department:  "Paul G. Allen School of Computer Science",
		},
		{
			ID:          "4",
			Title:       "Conversational AI and Dialogue Systems",
			Focus:       "Multi-turn dialogue and conversational understanding",
			Subfield:    "NLP",
			Emails:      []string{"dialogue.lab@uw.edu"},
			URL:         "https://dialogue.cs.washington.edu",
			Description: "Building next-generation conversational agents with context awareness.",
			Professor:   "Dr. Alex Martinez",
			Department:  "Linguistics & Computer Science",
		},
		{
			ID:          "5",
			Title:       "Human-Robot Interaction Research",
			Focus:       "Social robotics and collaborative systems",
			Subfield:    "HCI",
			Emails:      []string{"hri.lab@uw.edu", "social.robotics@cs.washington.edu"},
			URL:         "https://hri.cs.washington.edu",
			Description: "Investigating how humans and robots can work together effectively.",
			Professor:   "Dr. Emily Zhang",
			Department:  "Computer Science & Engineering",
		},
	}
}

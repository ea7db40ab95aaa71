package models

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// PresenceMap stores a set of keywords the way the profile row persists
// skills and interests: key present and true means the keyword applies.
type PresenceMap map[string]bool

// NewPresenceMap builds a presence map from a keyword list.
func NewPresenceMap(keys []string) PresenceMap {
	m := make(PresenceMap, len(keys))
	for _, k := range keys {
		m[k] = true
	}
	return m
}

// Keys returns the map's keywords in sorted order.
func (m PresenceMap) Keys() []string {
	keys := make([]string, 0, len(m))
	for k, ok := range m {
		if ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

type Profile struct {
	ID              uuid.UUID   `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	FullName        string      `gorm:"type:text" json:"full_name"`
	Email           string      `gorm:"type:text" json:"email"`
	Major           string      `gorm:"type:text" json:"major"`
	GPA             string      `gorm:"type:text" json:"gpa"`
	GradYear        int         `json:"grad_year"`
	ParsedSkills    PresenceMap `gorm:"serializer:json" json:"parsed_skills"`
	ParsedInterests PresenceMap `gorm:"serializer:json" json:"parsed_interests"`
	Bio             string      `gorm:"type:text" json:"bio"`
	ResumeText      string      `gorm:"type:text" json:"resume_text"`
	CreatedAt       time.Time   `gorm:"type:timestamp;default:now()" json:"created_at"`
	UpdatedAt       time.Time   `gorm:"type:timestamp;default:now()" json:"updated_at"`
}

func (p *Profile) TableName() string {
	return "profiles"
}

// Keywords returns the profile's skill keys followed by its interest keys,
// the keyword set the opportunity matcher scores against.
func (p *Profile) Keywords() []string {
	keywords := p.ParsedSkills.Keys()
	return append(keywords, p.ParsedInterests.Keys()...)
}

// ApplyResume folds freshly parsed resume fields into the stored profile.
// Only fields the parser actually found overwrite existing values.
func (p *Profile) ApplyResume(fields *ResumeFields, text string) {
	if fields.FullName != "" && fields.FullName != "Unknown" {
		p.FullName = fields.FullName
	}
	if fields.Email != "" {
		p.Email = fields.Email
	}
	if fields.Major != "" {
		p.Major = fields.Major
	}
	if fields.GPA != "" {
		p.GPA = fields.GPA
	}
	if fields.GraduationYear != "" {
		if year, err := parseYear(fields.GraduationYear); err == nil {
			p.GradYear = year
		}
	}
	if len(fields.Skills) > 0 {
		p.ParsedSkills = NewPresenceMap(fields.Skills)
	}
	if len(fields.Interests) > 0 {
		p.ParsedInterests = NewPresenceMap(fields.Interests)
	}
	if fields.Summary != "" {
		p.Bio = fields.Summary
	}
	p.ResumeText = text
}

func parseYear(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}

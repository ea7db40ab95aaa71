package services

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"seekr/backend/internal/models"

	"go.uber.org/zap"
)

// ExtractionStrategy turns plain resume text into structured fields.
type ExtractionStrategy interface {
	ExtractFields(ctx context.Context, text string) (models.ResumeFields, error)
}

// DefaultSkillsVocabulary is the fixed set of skill terms the heuristic
// extractor scans for. Matching is case-insensitive; results keep the
// canonical casing listed here, in this order.
var DefaultSkillsVocabulary = []string{
	"Python", "JavaScript", "Java", "C++", "React", "Node.js", "SQL", "Git",
	"Machine Learning", "Data Science", "Web Development", "Mobile Development",
	"Cloud Computing", "AWS", "Azure", "Docker", "Kubernetes", "MongoDB",
	"PostgreSQL", "Redis", "GraphQL", "REST API", "TypeScript", "Angular",
	"Vue.js", "Express.js", "Django", "Flask", "Spring Boot", "TensorFlow",
	"PyTorch", "Pandas", "NumPy", "Scikit-learn", "HTML", "CSS", "SASS",
	"Bootstrap", "Tailwind CSS", "Figma", "Photoshop", "Illustrator",
	"Data Structures", "Algorithms",
}

// fieldRule pairs a capture pattern with an optional validator. Rules are
// tried in order; the first match whose captured group passes validation
// wins.
type fieldRule struct {
	pattern  *regexp.Regexp
	validate func(value string) (string, bool)
}

type heuristicStrategy struct {
	gpaRules   []fieldRule
	majorRules []fieldRule
	yearRules  []fieldRule
	emailRe    *regexp.Regexp
	phoneRes   []*regexp.Regexp
	nameRe     *regexp.Regexp
	skills     []string
	now        func() time.Time
	logger     *zap.Logger
}

// NewHeuristicStrategy builds a rule-based extraction strategy over the
// default skills vocabulary.
func NewHeuristicStrategy(logger *zap.Logger) ExtractionStrategy {
	return NewHeuristicStrategyWithVocabulary(logger, DefaultSkillsVocabulary)
}

// NewHeuristicStrategyWithVocabulary is like NewHeuristicStrategy but scans
// for the given skill terms instead of the built-in vocabulary.
func NewHeuristicStrategyWithVocabulary(logger *zap.Logger, vocabulary []string) ExtractionStrategy {
	h := &heuristicStrategy{
		skills: vocabulary,
		now:    time.Now,
		logger: logger,
	}

	validGPA := func(value string) (string, bool) {
		gpa, err := strconv.ParseFloat(value, 64)
		if err != nil || gpa < 0 || gpa > 4.0 {
			return "", false
		}
		return fmt.Sprintf("%.2f", gpa), true
	}
	h.gpaRules = []fieldRule{
		{regexp.MustCompile(`(?i)GPA[:\s]*(\d+\.?\d*)`), validGPA},
		{regexp.MustCompile(`(?i)Grade Point Average[:\s]*(\d+\.?\d*)`), validGPA},
		{regexp.MustCompile(`(?i)(\d+\.\d+)\s*GPA`), validGPA},
		{regexp.MustCompile(`(?i)GPA[:\s]*(\d+\.?\d*)\s*/\s*4\.0`), validGPA},
	}

	validMajor := func(value string) (string, bool) {
		major := strings.TrimSpace(value)
		if len(major) > 3 && len(major) < 50 {
			return major, true
		}
		return "", false
	}
	// Captures stop at line ends so a major never swallows the lines
	// that follow it.
	h.majorRules = []fieldRule{
		{regexp.MustCompile(`(?i)Bachelor[^.\n]*in\s+([A-Za-z ]+)`), validMajor},
		{regexp.MustCompile(`(?i)Major[:\s]*([A-Za-z ]+)`), validMajor},
		{regexp.MustCompile(`(?i)Degree[:\s]*([A-Za-z ]+)`), validMajor},
		{regexp.MustCompile(`(?i)Studying[:\s]*([A-Za-z ]+)`), validMajor},
	}

	validYear := func(value string) (string, bool) {
		year, err := strconv.Atoi(value)
		if err != nil {
			return "", false
		}
		currentYear := h.now().Year()
		if year < currentYear-10 || year > currentYear+10 {
			return "", false
		}
		return strconv.Itoa(year), true
	}
	h.yearRules = []fieldRule{
		{regexp.MustCompile(`(?i)Graduat(?:ed|ion)[:\s]*(\d{4})`), validYear},
		{regexp.MustCompile(`(?i)Expected[:\s]*(\d{4})`), validYear},
		{regexp.MustCompile(`(?i)Class of (\d{4})`), validYear},
		{regexp.MustCompile(`(?i)(\d{4})[:\s]*Expected`), validYear},
	}

	h.emailRe = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	h.phoneRes = []*regexp.Regexp{
		regexp.MustCompile(`\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`),
		regexp.MustCompile(`\+?\d{1,3}[-.\s]?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`),
	}
	h.nameRe = regexp.MustCompile(`(?m)^[ \t]*([A-Za-z][A-Za-z ]*[A-Za-z])[ \t]*$`)

	return h
}

func (h *heuristicStrategy) ExtractFields(_ context.Context, text string) (models.ResumeFields, error) {
	fields := models.ResumeFields{
		GPA:            h.firstMatch(h.gpaRules, text),
		Major:          h.firstMatch(h.majorRules, text),
		GraduationYear: h.firstMatch(h.yearRules, text),
		Email:          h.emailRe.FindString(text),
		Skills:         h.scanSkills(text),
		FullName:       h.extractName(text),
	}

	for _, re := range h.phoneRes {
		if match := re.FindString(text); match != "" {
			fields.Phone = match
			break
		}
	}

	h.logger.Debug("heuristic extraction finished",
		zap.String("name", fields.FullName),
		zap.Int("skills", len(fields.Skills)))

	return fields, nil
}

func (h *heuristicStrategy) firstMatch(rules []fieldRule, text string) string {
	for _, rule := range rules {
		match := rule.pattern.FindStringSubmatch(text)
		if match == nil {
			continue
		}
		if value, ok := rule.validate(match[1]); ok {
			return value
		}
	}
	return ""
}

func (h *heuristicStrategy) scanSkills(text string) []string {
	lowerText := strings.ToLower(text)

	var found []string
	for _, skill := range h.skills {
		if strings.Contains(lowerText, strings.ToLower(skill)) {
			found = append(found, skill)
		}
	}
	return found
}

func (h *heuristicStrategy) extractName(text string) string {
	if match := h.nameRe.FindStringSubmatch(text); match != nil {
		return strings.TrimSpace(match[1])
	}
	return "Unknown"
}

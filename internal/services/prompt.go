package services

import (
	"fmt"
	"strings"

	"seekr/backend/internal/models"
)

const parseSystemPrompt = `You are an expert CV parser and career analyst. Analyze the resume text and extract comprehensive information.

IMPORTANT: Return ONLY valid JSON with these exact fields:

{
  "full_name": "Full name from resume",
  "email": "Email address if found",
  "phone": "Phone number if found",
  "location": "City, State/Country if mentioned",
  "gpa": "GPA if explicitly mentioned (format: X.XX)",
  "major": "Academic major/degree program",
  "graduationYear": "Expected graduation year (YYYY format)",
  "skills": ["Technical skills", "Programming languages", "Tools", "Frameworks"],
  "experience": ["Work experience entries with company and role"],
  "education": ["Education entries with institution and degree"],
  "projects": ["Notable projects with brief descriptions"],
  "summary": "Professional summary/bio (2-3 sentences highlighting key strengths and career goals)",
  "interests": ["Academic interests", "Career interests", "Hobbies if relevant"]
}

Guidelines:
- Extract ALL technical skills mentioned (programming languages, frameworks, tools, etc.)
- Create a compelling professional summary that highlights the person's strengths
- Include relevant interests that show career direction
- Be accurate to the resume content
- If information is missing, omit the field entirely
- Return ONLY the JSON object, no other text`

const draftSystemPrompt = `You are Seekr AI, an expert academic advisor. Generate a professional, personalized email for a student to reach out to a professor about a research opportunity.

Guidelines:
- Make it professional yet personable
- Highlight relevant skills and experiences from their profile
- Show genuine interest in the specific research area
- Include a clear call-to-action
- Keep it concise (200-250 words)
- Include a compelling subject line
- Be specific about the research opportunity

Format your response as:
Subject: [Subject Line]

Dear [Professor Name],

[Email Body]

Best regards,
[Student Name]
[Student Email]

---
Professor Contact: [Email Address]
Research Focus: [Focus Area]
Department: [Department]`

// PromptBuilder assembles the chat-completion prompts for resume parsing
// and email drafting.
type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

func (p *PromptBuilder) ParseMessages(text string) []ChatMessage {
	return []ChatMessage{
		{Role: "system", Content: parseSystemPrompt},
		{Role: "user", Content: "Analyze this resume text and extract the information:\n\n" + text},
	}
}

func (p *PromptBuilder) DraftMessages(profile *models.Profile, opp *models.Opportunity, intent DraftIntent) []ChatMessage {
	action := "Draft Email - Generate a professional outreach email"
	if intent == IntentQuickApply {
		action = "Quick Apply - Generate a compelling application email"
	}

	userPrompt := fmt.Sprintf(`Student Profile:
- Name: %s
- Email: %s
- Major: %s
- GPA: %s
- Expected Graduation: %s
- Skills: %s
- Interests: %s
- Bio: %s

Research Opportunity:
- Title: %s
- Professor: %s
- Department: %s
- Focus: %s
- Contact Email: %s

Action Requested: %s

Please generate a personalized email that highlights why this student is a great fit for this specific research opportunity.`,
		orDefault(profile.FullName, "Student"),
		orDefault(profile.Email, "student@uw.edu"),
		orDefault(profile.Major, "Computer Science"),
		orDefault(profile.GPA, "N/A"),
		gradYearOr(profile.GradYear, "N/A"),
		joinOr(profile.ParsedSkills.Keys(), ", ", "N/A"),
		joinOr(profile.ParsedInterests.Keys(), ", ", "N/A"),
		orDefault(profile.Bio, "N/A"),
		opp.Title,
		opp.Professor,
		opp.Department,
		opp.Focus,
		opp.ContactEmail(),
		action)

	return []ChatMessage{
		{Role: "system", Content: draftSystemPrompt},
		{Role: "user", Content: userPrompt},
	}
}

// FallbackEmail renders the canned outreach email used when the language
// model is unavailable. It always mentions the student's name and the
// opportunity's contact email.
func (p *PromptBuilder) FallbackEmail(profile *models.Profile, opp *models.Opportunity) string {
	name := orDefault(profile.FullName, "Student")

	interests := "this field"
	if keys := profile.ParsedInterests.Keys(); len(keys) > 0 {
		interests = strings.Join(firstN(keys, 2), " and ")
	}

	skills := "relevant technologies"
	if keys := profile.ParsedSkills.Keys(); len(keys) > 0 {
		skills = strings.Join(firstN(keys, 3), ", ")
	}

	bio := profile.Bio
	if bio == "" {
		bio = "I am passionate about pushing the boundaries of what's possible in this field."
	}

	return fmt.Sprintf(`Subject: Interest in %s Research Opportunity - %s

Dear %s,

My name is %s, and I'm currently a %s major at the University of Washington (GPA: %s, Expected graduation: %s).

I am writing to express my strong interest in joining your research group, specifically the work on %s. Your research aligns perfectly with my interests in %s.

I have experience with %s, and I'm eager to contribute to your lab's innovative work. %s

Would you have any availability in the coming weeks to discuss potential research opportunities? I would love to learn more about your current projects and how I might contribute.

Thank you for your time and consideration.

Best regards,
%s
%s

---
Professor Contact: %s
Research Focus: %s
Department: %s`,
		opp.Subfield, name,
		opp.Professor,
		name,
		orDefault(profile.Major, "Computer Science"),
		orDefault(profile.GPA, "N/A"),
		gradYearOr(profile.GradYear, "N/A"),
		opp.Focus,
		interests,
		skills,
		bio,
		name,
		orDefault(profile.Email, "student@uw.edu"),
		opp.ContactEmail(),
		opp.Focus,
		opp.Department)
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func gradYearOr(year int, fallback string) string {
	if year == 0 {
		return fallback
	}
	return fmt.Sprintf("%d", year)
}

func joinOr(values []string, sep, fallback string) string {
	if len(values) == 0 {
		return fallback
	}
	return strings.Join(values, sep)
}

func firstN(values []string, n int) []string {
	if len(values) <= n {
		return values
	}
	return values[:n]
}

package models

// ResumeFields holds the structured fields pulled out of a resume. Every
// attribute is optional; a zero value means "not found", never an error.
type ResumeFields struct {
	FullName       string   `json:"full_name,omitempty"`
	Email          string   `json:"email,omitempty"`
	Phone          string   `json:"phone,omitempty"`
	Location       string   `json:"location,omitempty"`
	GPA            string   `json:"gpa,omitempty"`
	Major          string   `json:"major,omitempty"`
	GraduationYear string   `json:"graduationYear,omitempty"`
	Skills         []string `json:"skills,omitempty"`
	Experience     []string `json:"experience,omitempty"`
	Education      []string `json:"education,omitempty"`
	Projects       []string `json:"projects,omitempty"`
	Summary        string   `json:"summary,omitempty"`
	Interests      []string `json:"interests,omitempty"`
}

// ParsedResume is the ingestion result: the extracted text plus the
// resolved fields, returned together as one payload.
type ParsedResume struct {
	ResumeFields
	Text string `json:"text"`
}

type ParseResumeResponse struct {
	Success bool         `json:"success"`
	Data    ParsedResume `json:"data"`
}

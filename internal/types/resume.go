// Package types provides type definitions for structured data used throughout the resume-analyzer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ContactInfo holds the contact details extracted from the top of a resume.
// All fields default to empty strings; extraction is best-effort.
type ContactInfo struct {
	Name           string            `json:"name"`
	Email          string            `json:"email"`
	Phone          string            `json:"phone"`
	Location       string            `json:"location"`
	SocialProfiles map[string]string `json:"social_profiles"` // platform name -> handle or URL
}

// ExperienceEntry represents one job entry from the experience section.
// Entries keep source-document order (most recent first by convention).
type ExperienceEntry struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

// EducationEntry represents one education record
type EducationEntry struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
	CGPA        string `json:"cgpa,omitempty"`
}

// ProjectEntry represents one project record
type ProjectEntry struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Technologies string `json:"technologies"`
	URL          string `json:"url,omitempty"`
}

// CertificationEntry represents one certification record
type CertificationEntry struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Date   string `json:"date"`
}

// ParsedResume is the structured record produced by parsing raw resume text.
// Every field is always present: consumers can rely on non-nil slices and maps
// and never need to distinguish "missing" from "empty".
type ParsedResume struct {
	ContactInfo    ContactInfo          `json:"contact_info"`
	Summary        string               `json:"summary"`
	Skills         []string             `json:"skills"`
	Experience     []ExperienceEntry    `json:"experience"`
	Education      []EducationEntry     `json:"education"`
	Projects       []ProjectEntry       `json:"projects"`
	Certifications []CertificationEntry `json:"certifications"`
}

// NewParsedResume returns a ParsedResume with all collections initialized.
func NewParsedResume() *ParsedResume {
	return &ParsedResume{
		ContactInfo: ContactInfo{
			SocialProfiles: make(map[string]string),
		},
		Skills:         []string{},
		Experience:     []ExperienceEntry{},
		Education:      []EducationEntry{},
		Projects:       []ProjectEntry{},
		Certifications: []CertificationEntry{},
	}
}

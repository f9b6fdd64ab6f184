package types

// CategoryKey identifies a keyword category in the scoring taxonomy
type CategoryKey string

// Keyword category keys. The taxonomy itself (keyword lists and weights)
// lives in the keywords package; these keys are the stable identifiers
// shared between matching, scoring, and persisted analysis artifacts.
const (
	CategoryFrontend        CategoryKey = "frontend"
	CategoryBackend         CategoryKey = "backend"
	CategoryMobile          CategoryKey = "mobile"
	CategoryDatabase        CategoryKey = "database"
	CategoryCloud           CategoryKey = "cloud"
	CategoryDataScience     CategoryKey = "datascience"
	CategorySecurity        CategoryKey = "security"
	CategoryTesting         CategoryKey = "testing"
	CategoryMethodologies   CategoryKey = "methodologies"
	CategorySoftSkills      CategoryKey = "soft"
	CategoryExperienceVerbs CategoryKey = "experience-verbs"
	CategoryEducationTerms  CategoryKey = "education-terms"
	CategoryFintech         CategoryKey = "fintech"
	CategoryHealthcare      CategoryKey = "healthcare"
	CategoryEcommerce       CategoryKey = "ecommerce"
)

// CategoryMatchResult holds the keywords found for one category and the
// weighted coverage percentage (0-100).
type CategoryMatchResult struct {
	FoundKeywords []string `json:"found_keywords"`
	Score         int      `json:"score"`
}

// StructuralFlags are boolean presence signals about the resume structure,
// distinct from keyword coverage scores.
type StructuralFlags struct {
	HasContactInfo       bool `json:"has_contact_info"`
	HasExperience        bool `json:"has_experience"`
	HasEducation         bool `json:"has_education"`
	HasSkills            bool `json:"has_skills"`
	HasProjects          bool `json:"has_projects"`
	HasCertifications    bool `json:"has_certifications"`
	HasMetrics           bool `json:"has_metrics"`
	HasActionVerbs       bool `json:"has_action_verbs"`
	StandardSectionCount int  `json:"standard_section_count"`
}

// Rating is a qualitative score tier
type Rating string

// Score tiers, from worst to best. VeryGood is only produced by rubric scoring.
const (
	RatingPoor      Rating = "Poor"
	RatingFair      Rating = "Fair"
	RatingGood      Rating = "Good"
	RatingVeryGood  Rating = "Very Good"
	RatingExcellent Rating = "Excellent"
)

// CategoryScore pairs a category with its coverage score, used for rankings
type CategoryScore struct {
	Category CategoryKey `json:"category"`
	Score    int         `json:"score"`
}

// ATSAnalysis is the keyword/structural analysis result (the exploratory
// "what's wrong with my resume" view).
type ATSAnalysis struct {
	OverallScore       int                                 `json:"overall_score"`
	Rating             Rating                              `json:"rating"`
	Structural         StructuralFlags                     `json:"structural"`
	Categories         map[CategoryKey]CategoryMatchResult `json:"categories"`
	TotalKeywordsFound int                                 `json:"total_keywords_found"`
	CriticalIssues     []string                            `json:"critical_issues"`
	Recommendations    []string                            `json:"recommendations"`
	TopCategories      []CategoryScore                     `json:"top_categories"`
	WeakCategories     []CategoryKey                       `json:"weak_categories"`
}

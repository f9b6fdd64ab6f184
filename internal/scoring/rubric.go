package scoring

import (
	"fmt"
	"strings"

	"github.com/applytrack/resume-analyzer/internal/types"
)

// Rubric bucket maximums. The seven buckets always sum to 100, so the total
// doubles as a percentage.
const (
	rubricContactMax    = 15
	rubricSummaryMax    = 15
	rubricSkillsMax     = 20
	rubricExperienceMax = 25
	rubricEducationMax  = 10
	rubricProjectsMax   = 10
	rubricFormattingMax = 5
)

// ScoreRubric computes the fixed 100-point checklist score from the
// structured record alone. Each bucket scores independent presence and
// quality checks; failed or partial checks append one suggestion each, in
// bucket order.
func ScoreRubric(parsed *types.ParsedResume) *types.RubricScore {
	result := &types.RubricScore{
		Buckets:     make([]types.RubricBucket, 0, 7),
		Suggestions: []string{},
	}

	add := func(bucket types.RubricBucket, suggestions []string) {
		result.Buckets = append(result.Buckets, bucket)
		result.Score += bucket.Score
		result.Suggestions = append(result.Suggestions, suggestions...)
	}

	add(scoreContact(parsed))
	add(scoreSummary(parsed))
	add(scoreSkills(parsed))
	add(scoreExperience(parsed))
	add(scoreEducation(parsed))
	add(scoreProjects(parsed))
	add(scoreFormatting(parsed))

	result.Rating = rateRubric(result.Score)
	return result
}

// rateRubric maps the rubric percentage onto the five-tier scale.
func rateRubric(score int) types.Rating {
	switch {
	case score >= 90:
		return types.RatingExcellent
	case score >= 80:
		return types.RatingVeryGood
	case score >= 70:
		return types.RatingGood
	case score >= 60:
		return types.RatingFair
	default:
		return types.RatingPoor
	}
}

func scoreContact(parsed *types.ParsedResume) (types.RubricBucket, []string) {
	c := parsed.ContactInfo
	score := 0
	var present, suggestions []string

	credit := func(ok bool, points int, label, suggestion string) {
		if ok {
			score += points
			present = append(present, label)
		} else {
			suggestions = append(suggestions, suggestion)
		}
	}
	credit(c.Name != "", 3, "name", "Add your full name at the top of the resume")
	credit(c.Email != "", 4, "email", "Add a professional email address")
	credit(c.Phone != "", 4, "phone", "Add a phone number")
	credit(c.Location != "", 2, "location", "Add your city and state")
	credit(len(c.SocialProfiles) > 0, 2, "profiles", "Link a LinkedIn or GitHub profile")

	return types.RubricBucket{
		Name:   "contact",
		Score:  score,
		Max:    rubricContactMax,
		Detail: detailList("contact fields found", present),
	}, suggestions
}

func scoreSummary(parsed *types.ParsedResume) (types.RubricBucket, []string) {
	words := len(strings.Fields(parsed.Summary))
	score := 0
	var suggestions []string

	if words > 0 {
		score += 7
	} else {
		suggestions = append(suggestions, "Add a professional summary of 2-4 sentences")
	}
	if words >= 30 && words <= 150 {
		score += 4
	} else if words > 0 {
		suggestions = append(suggestions, "Keep the summary between 30 and 150 words")
	}
	if HasActionVerbs(parsed.Summary) {
		score += 4
	} else if words > 0 {
		suggestions = append(suggestions, "Use action verbs in the summary (built, led, improved)")
	}

	return types.RubricBucket{
		Name:   "summary",
		Score:  score,
		Max:    rubricSummaryMax,
		Detail: fmt.Sprintf("summary of %d words", words),
	}, suggestions
}

func scoreSkills(parsed *types.ParsedResume) (types.RubricBucket, []string) {
	n := len(parsed.Skills)
	var score int
	var suggestions []string
	switch {
	case n >= 8:
		score = 20
	case n >= 5:
		score = 15
		suggestions = append(suggestions, "List at least 8 relevant skills")
	case n > 0:
		score = 8
		suggestions = append(suggestions, "List at least 8 relevant skills")
	default:
		score = 0
		suggestions = append(suggestions, "Add a skills section with your technical skills")
	}

	return types.RubricBucket{
		Name:   "skills",
		Score:  score,
		Max:    rubricSkillsMax,
		Detail: fmt.Sprintf("%d skills listed", n),
	}, suggestions
}

func scoreExperience(parsed *types.ParsedResume) (types.RubricBucket, []string) {
	n := len(parsed.Experience)
	var score int
	var suggestions []string
	switch {
	case n >= 3:
		score = 20
	case n == 2:
		score = 14
		suggestions = append(suggestions, "Include at least 3 work experience entries if you have them")
	case n == 1:
		score = 8
		suggestions = append(suggestions, "Include at least 3 work experience entries if you have them")
	default:
		suggestions = append(suggestions, "Add a work experience section")
	}

	hasMetrics := false
	for _, entry := range parsed.Experience {
		if HasMetrics(entry.Description) {
			hasMetrics = true
			break
		}
	}
	if hasMetrics {
		score += 5
	} else if n > 0 {
		suggestions = append(suggestions, "Quantify experience bullets with metrics (percentages, counts)")
	}

	return types.RubricBucket{
		Name:   "experience",
		Score:  score,
		Max:    rubricExperienceMax,
		Detail: fmt.Sprintf("%d entries, metrics present: %t", n, hasMetrics),
	}, suggestions
}

func scoreEducation(parsed *types.ParsedResume) (types.RubricBucket, []string) {
	n := len(parsed.Education)
	score := 0
	var suggestions []string

	if n > 0 {
		score = 6
		complete := false
		for _, entry := range parsed.Education {
			if entry.Degree != "" && entry.Institution != "" {
				complete = true
				break
			}
		}
		if complete {
			score += 4
		} else {
			suggestions = append(suggestions, "Include both degree and institution for each education entry")
		}
	} else {
		suggestions = append(suggestions, "Add an education section")
	}

	return types.RubricBucket{
		Name:   "education",
		Score:  score,
		Max:    rubricEducationMax,
		Detail: fmt.Sprintf("%d entries", n),
	}, suggestions
}

func scoreProjects(parsed *types.ParsedResume) (types.RubricBucket, []string) {
	n := len(parsed.Projects)
	var score int
	var suggestions []string
	switch {
	case n >= 2:
		score = 10
	case n == 1:
		score = 6
		suggestions = append(suggestions, "Showcase at least 2 projects with the technologies used")
	default:
		suggestions = append(suggestions, "Add a projects section to demonstrate hands-on work")
	}

	return types.RubricBucket{
		Name:   "projects",
		Score:  score,
		Max:    rubricProjectsMax,
		Detail: fmt.Sprintf("%d entries", n),
	}, suggestions
}

// scoreFormatting rewards a conventionally structured record: the three core
// sections all present, and contact info complete enough to be reachable.
func scoreFormatting(parsed *types.ParsedResume) (types.RubricBucket, []string) {
	score := 0
	var suggestions []string

	coreSections := len(parsed.Skills) > 0 && len(parsed.Experience) > 0 && len(parsed.Education) > 0
	if coreSections {
		score += 3
	} else {
		suggestions = append(suggestions, "Use the standard Skills, Experience, and Education sections")
	}
	if parsed.ContactInfo.Email != "" && parsed.ContactInfo.Phone != "" {
		score += 2
	}

	return types.RubricBucket{
		Name:   "formatting",
		Score:  score,
		Max:    rubricFormattingMax,
		Detail: fmt.Sprintf("core sections present: %t", coreSections),
	}, suggestions
}

func detailList(prefix string, items []string) string {
	if len(items) == 0 {
		return prefix + ": none"
	}
	return prefix + ": " + strings.Join(items, ", ")
}

// Package scoring turns parsed resumes and keyword match results into ATS
// compatibility scores. Two scoring modes coexist on purpose: Analyze is the
// keyword-density view used for exploratory feedback, ScoreRubric is the
// fixed-weight checklist behind the export-ready score card. They share only
// the ParsedResume input.
package scoring

import (
	"regexp"

	"github.com/applytrack/resume-analyzer/internal/types"
)

// metricsRe detects quantifiable achievements: percentages, multipliers,
// dollar amounts, or counted nouns ("10 microservices", "5 years").
var metricsRe = regexp.MustCompile(`(?i)\d+(?:\.\d+)?\s*%|\b\d+(?:\.\d+)?x\b|\$\s*\d+|\b\d+\+?\s*(?:users|customers|clients|requests|transactions|downloads|engineers|developers|people|team members|teams|projects|services|microservices|servers|endpoints|years|months|weeks)\b`)

var actionVerbRe = regexp.MustCompile(`(?i)\b(developed|implemented|designed|led|managed|built|created|improved|optimized|delivered|launched|architected|automated|reduced|increased|migrated|maintained|deployed)\b`)

// HasMetrics reports whether the text contains a quantifiable-achievement
// pattern.
func HasMetrics(text string) bool {
	return metricsRe.MatchString(text)
}

// HasActionVerbs reports whether the text uses resume action verbs.
func HasActionVerbs(text string) bool {
	return actionVerbRe.MatchString(text)
}

// BuildFlags derives the structural presence signals from the parsed record
// and the raw text.
func BuildFlags(parsed *types.ParsedResume, text string) types.StructuralFlags {
	flags := types.StructuralFlags{
		HasContactInfo:    parsed.ContactInfo.Email != "" || parsed.ContactInfo.Phone != "",
		HasExperience:     len(parsed.Experience) > 0,
		HasEducation:      len(parsed.Education) > 0,
		HasSkills:         len(parsed.Skills) > 0,
		HasProjects:       len(parsed.Projects) > 0,
		HasCertifications: len(parsed.Certifications) > 0,
		HasMetrics:        HasMetrics(text),
		HasActionVerbs:    HasActionVerbs(text),
	}

	for _, present := range []bool{
		parsed.Summary != "",
		flags.HasSkills,
		flags.HasExperience,
		flags.HasEducation,
		flags.HasProjects,
		flags.HasCertifications,
	} {
		if present {
			flags.StandardSectionCount++
		}
	}
	return flags
}

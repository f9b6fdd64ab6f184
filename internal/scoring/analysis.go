package scoring

import (
	"sort"

	"github.com/applytrack/resume-analyzer/internal/keywords"
	"github.com/applytrack/resume-analyzer/internal/types"
)

const (
	topCategoryLimit     = 3
	topCategoryThreshold = 20 // minimum score to count as a strength
	weakCategoryMinSize  = 5  // categories this small are never flagged weak
	minStandardSections  = 3
)

// Per-tier recommendation lists. These are fixed by tier, not generated from
// the individual findings; critical issues carry the per-resume specifics.
var tierRecommendations = map[types.Rating][]string{
	types.RatingExcellent: {
		"Tailor keywords to each specific job posting before applying",
		"Keep quantified achievements current as your impact grows",
		"Review formatting after every edit so parsing stays clean",
	},
	types.RatingGood: {
		"Add more quantifiable metrics to your experience bullets (percentages, counts, dollar amounts)",
		"Deepen keyword coverage in your strongest skill categories",
		"Add any missing standard sections such as Projects or Certifications",
	},
	types.RatingFair: {
		"Use standard section headings: Summary, Skills, Experience, Education",
		"List more role-relevant technical skills in a dedicated Skills section",
		"Quantify achievements with numbers instead of describing duties",
		"Start experience bullets with action verbs like 'built', 'led', or 'improved'",
	},
	types.RatingPoor: {
		"Add contact information (email and phone) at the top of the resume",
		"Organize content under standard headings: Summary, Skills, Experience, Education",
		"Use bullet points beginning with action verbs",
		"Include quantifiable metrics for your accomplishments",
		"List technical skills relevant to your target role",
	},
}

// Analyze combines keyword coverage and structural signals into the
// keyword-density analysis: an overall score gated into a rating tier,
// independent critical-issue checks, canned per-tier recommendations, and
// top/weak category rankings.
func Analyze(parsed *types.ParsedResume, results map[types.CategoryKey]types.CategoryMatchResult, flags types.StructuralFlags) *types.ATSAnalysis {
	overall := keywords.OverallScore(results)

	analysis := &types.ATSAnalysis{
		OverallScore:       overall,
		Rating:             rateAnalysis(overall, flags),
		Structural:         flags,
		Categories:         results,
		TotalKeywordsFound: keywords.TotalFound(results),
		CriticalIssues:     criticalIssues(flags),
		TopCategories:      topCategories(results),
		WeakCategories:     weakCategories(results),
	}
	analysis.Recommendations = append([]string{}, tierRecommendations[analysis.Rating]...)
	return analysis
}

// rateAnalysis gates the keyword score into a tier using structural flags.
// Keyword density alone never reaches the top tiers without the sections and
// metrics to back it up.
func rateAnalysis(overall int, flags types.StructuralFlags) types.Rating {
	switch {
	case overall >= 85 && flags.StandardSectionCount >= 4 && flags.HasMetrics:
		return types.RatingExcellent
	case overall >= 70 && flags.StandardSectionCount >= minStandardSections:
		return types.RatingGood
	case overall >= 50 && flags.HasContactInfo:
		return types.RatingFair
	default:
		return types.RatingPoor
	}
}

// criticalIssues runs the independent structural checks. Checks are not
// mutually exclusive; each failing check appends its own issue.
func criticalIssues(flags types.StructuralFlags) []string {
	issues := []string{}
	if !flags.HasContactInfo {
		issues = append(issues, "No contact information found (email or phone)")
	}
	if !flags.HasExperience {
		issues = append(issues, "No work experience section detected")
	}
	if !flags.HasSkills {
		issues = append(issues, "No skills section detected")
	}
	if !flags.HasMetrics {
		issues = append(issues, "No quantifiable metrics found (percentages, counts, dollar amounts)")
	}
	if flags.StandardSectionCount < minStandardSections {
		issues = append(issues, "Fewer than 3 standard resume sections detected")
	}
	return issues
}

// topCategories returns up to three categories scoring above the strength
// threshold, highest first. Order is stable on ties (taxonomy order).
func topCategories(results map[types.CategoryKey]types.CategoryMatchResult) []types.CategoryScore {
	scores := []types.CategoryScore{}
	for _, category := range keywords.Taxonomy() {
		if result := results[category.Key]; result.Score > topCategoryThreshold {
			scores = append(scores, types.CategoryScore{Category: category.Key, Score: result.Score})
		}
	}
	sort.SliceStable(scores, func(i, j int) bool { return scores[i].Score > scores[j].Score })
	if len(scores) > topCategoryLimit {
		scores = scores[:topCategoryLimit]
	}
	return scores
}

// weakCategories returns categories with zero coverage. Categories with only
// a handful of keywords are excluded so inherently small verticals are not
// penalized.
func weakCategories(results map[types.CategoryKey]types.CategoryMatchResult) []types.CategoryKey {
	weak := []types.CategoryKey{}
	for _, category := range keywords.Taxonomy() {
		if len(category.Keywords) <= weakCategoryMinSize {
			continue
		}
		if results[category.Key].Score == 0 {
			weak = append(weak, category.Key)
		}
	}
	return weak
}

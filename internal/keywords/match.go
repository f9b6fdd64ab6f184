package keywords

import (
	"math"
	"regexp"
	"strings"

	"github.com/applytrack/resume-analyzer/internal/types"
)

// boundaryPatterns caches one word-boundary regex per keyword. The taxonomy
// is immutable, so the cache is built once at package init.
var boundaryPatterns = buildBoundaryPatterns()

func buildBoundaryPatterns() map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp)
	for _, category := range taxonomy {
		for _, kw := range category.Keywords {
			patterns[kw] = regexp.MustCompile(`\b` + regexp.QuoteMeta(kw) + `\b`)
		}
	}
	return patterns
}

// MatchCategories scans the full text for every taxonomy keyword and returns
// per-category match results. A keyword counts as found when its
// word-boundary regex matches or a plain substring check matches; the
// redundancy catches keywords like "ci/cd" where \b behaves unreliably
// around punctuation.
func MatchCategories(text string) map[types.CategoryKey]types.CategoryMatchResult {
	lower := strings.ToLower(text)
	results := make(map[types.CategoryKey]types.CategoryMatchResult, len(taxonomy))

	for _, category := range taxonomy {
		found := []string{}
		for _, kw := range category.Keywords {
			if boundaryPatterns[kw].MatchString(lower) || strings.Contains(lower, kw) {
				found = append(found, kw)
			}
		}
		results[category.Key] = types.CategoryMatchResult{
			FoundKeywords: found,
			Score:         percent(float64(len(found))*category.Weight, float64(len(category.Keywords))*category.Weight),
		}
	}
	return results
}

// OverallScore aggregates match results into one weighted coverage
// percentage across the entire taxonomy. Every category's full keyword list
// dilutes the denominator, including categories irrelevant to the
// candidate's field, which makes this a much stricter signal than any single
// category score.
func OverallScore(results map[types.CategoryKey]types.CategoryMatchResult) int {
	var foundWeight, totalWeight float64
	for _, category := range taxonomy {
		result := results[category.Key]
		foundWeight += float64(len(result.FoundKeywords)) * category.Weight
		totalWeight += float64(len(category.Keywords)) * category.Weight
	}
	return percent(foundWeight, totalWeight)
}

// TotalFound counts all keywords found across categories.
func TotalFound(results map[types.CategoryKey]types.CategoryMatchResult) int {
	total := 0
	for _, result := range results {
		total += len(result.FoundKeywords)
	}
	return total
}

func percent(part, whole float64) int {
	if whole <= 0 {
		return 0
	}
	p := int(math.Round(part / whole * 100))
	if p < 0 {
		p = 0
	}
	if p > 100 {
		p = 100
	}
	return p
}

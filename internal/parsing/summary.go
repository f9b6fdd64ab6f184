package parsing

import (
	"strings"
	"unicode/utf8"

	"github.com/applytrack/resume-analyzer/internal/ingestion"
	"github.com/applytrack/resume-analyzer/internal/sections"
)

// Summaries longer than this are truncated; anything beyond is almost always
// bleed from a following section.
const maxSummaryLength = 500

// ParseSummary cleans a captured summary block: bullet markers are stripped,
// capture stops at any line that is itself a known section heading (a guard
// against heading-detection false negatives bleeding the next section into
// the summary), and the result is capped at 500 characters.
func ParseSummary(block string) string {
	if block == "" {
		return ""
	}

	var parts []string
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if sections.IsKnownHeading(line) {
			break
		}
		parts = append(parts, ingestion.StripBullet(line))
	}

	summary := strings.TrimSpace(strings.Join(parts, " "))
	if len(summary) > maxSummaryLength {
		// Back up to a rune boundary so the cut never splits a multibyte
		// character.
		cut := maxSummaryLength
		for cut > 0 && !utf8.RuneStart(summary[cut]) {
			cut--
		}
		summary = strings.TrimSpace(summary[:cut])
	}
	return summary
}

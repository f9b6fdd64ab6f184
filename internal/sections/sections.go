// Package sections locates named resume sections inside normalized text.
//
// Resumes have no fixed schema, so extraction is heading-driven: each target
// section owns an ordered list of heading aliases (most specific first), and
// the captured block runs from the matched heading to the next standalone
// heading line or end of document.
package sections

import (
	"regexp"
	"strings"
)

// Key identifies a resume section
type Key string

// Resume sections extracted by heading. Contact information has no reliable
// heading and is parsed from the whole document instead.
const (
	Summary        Key = "summary"
	Skills         Key = "skills"
	Experience     Key = "experience"
	Education      Key = "education"
	Projects       Key = "projects"
	Certifications Key = "certifications"
)

// MergeStrategy controls what happens when more than one alias for the same
// section matches in a document (for example both "SUMMARY" and "OBJECTIVE").
type MergeStrategy string

const (
	// FirstMatch keeps only the highest-priority alias match. This mirrors
	// the historical behavior and is the default.
	FirstMatch MergeStrategy = "first-match"
	// MergeAll concatenates the blocks captured by every matching alias.
	MergeAll MergeStrategy = "merge"
)

// sectionAliases maps each section to its heading aliases in priority order.
// More specific headings come first so a generic alias never swallows a
// specific one.
var sectionAliases = map[Key][]string{
	Summary:        {"PROFESSIONAL SUMMARY", "EXECUTIVE SUMMARY", "CAREER OBJECTIVE", "SUMMARY", "PROFILE", "OBJECTIVE", "ABOUT ME", "ABOUT"},
	Skills:         {"TECHNICAL SKILLS", "CORE COMPETENCIES", "SKILLS & ABILITIES", "KEY SKILLS", "SKILLS"},
	Experience:     {"PROFESSIONAL EXPERIENCE", "WORK EXPERIENCE", "EMPLOYMENT HISTORY", "WORK HISTORY", "EXPERIENCE"},
	Education:      {"EDUCATION & TRAINING", "ACADEMIC BACKGROUND", "EDUCATION", "QUALIFICATIONS"},
	Projects:       {"PERSONAL PROJECTS", "KEY PROJECTS", "ACADEMIC PROJECTS", "PROJECTS"},
	Certifications: {"CERTIFICATIONS & LICENSES", "CERTIFICATIONS", "CERTIFICATES", "LICENSES"},
}

// extractionOrder is the order sections appear in the result of Extract.
var extractionOrder = []Key{Summary, Skills, Experience, Education, Projects, Certifications}

// headingLine matches a standalone ALL-CAPS heading: uppercase words,
// optionally separated by & or /, optionally ending with a colon. This is the
// stop condition for greedy section capture.
var headingLine = regexp.MustCompile(`^[A-Z][A-Z &/]{2,49}:?$`)

// Aliases returns the heading aliases for a section in priority order.
func Aliases(key Key) []string {
	return sectionAliases[key]
}

// Extract locates every known section in the text. Absent sections are simply
// missing from the returned map; absence is a structural signal, not an error.
func Extract(text string, strategy MergeStrategy) map[Key]string {
	lines := strings.Split(text, "\n")
	result := make(map[Key]string, len(extractionOrder))
	for _, key := range extractionOrder {
		if block, ok := extractLines(lines, sectionAliases[key], strategy); ok {
			result[key] = block
		}
	}
	return result
}

// ExtractSection captures the block for one section given its alias list.
// Aliases are tried in order; the first one whose heading appears wins.
// Returns false when no alias matches.
func ExtractSection(text string, aliases []string, strategy MergeStrategy) (string, bool) {
	return extractLines(strings.Split(text, "\n"), aliases, strategy)
}

func extractLines(lines []string, aliases []string, strategy MergeStrategy) (string, bool) {
	var blocks []string
	seen := make(map[int]bool)

	for _, alias := range aliases {
		for i, line := range lines {
			if !matchesAlias(line, alias) || seen[i] {
				continue
			}
			seen[i] = true
			blocks = append(blocks, captureBlock(lines, i+1))
			break
		}
		if len(blocks) > 0 && strategy != MergeAll {
			break
		}
	}

	if len(blocks) == 0 {
		return "", false
	}
	return strings.TrimSpace(strings.Join(blocks, "\n")), true
}

// matchesAlias reports whether a line is the given heading, ignoring case and
// a trailing colon.
func matchesAlias(line, alias string) bool {
	trimmed := strings.TrimSuffix(strings.TrimSpace(line), ":")
	return strings.EqualFold(trimmed, alias)
}

// captureBlock collects lines from start until the next standalone heading or
// end of document.
func captureBlock(lines []string, start int) string {
	var b strings.Builder
	for i := start; i < len(lines); i++ {
		if IsHeadingLine(lines[i]) {
			break
		}
		b.WriteString(lines[i])
		b.WriteString("\n")
	}
	return strings.TrimSpace(b.String())
}

// IsHeadingLine reports whether a line looks like a standalone ALL-CAPS
// section heading.
func IsHeadingLine(line string) bool {
	return headingLine.MatchString(strings.TrimSpace(line))
}

// IsKnownHeading reports whether a line matches any alias of any section,
// ignoring case. Used by parsers to reject headings during name detection and
// to guard against content bleed.
func IsKnownHeading(line string) bool {
	for _, aliases := range sectionAliases {
		for _, alias := range aliases {
			if matchesAlias(line, alias) {
				return true
			}
		}
	}
	return false
}

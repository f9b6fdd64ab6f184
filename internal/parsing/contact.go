// Package parsing turns captured section text into the structured records of
// a parsed resume. Parsers never fail: absence of a recognizable pattern
// yields empty fields or empty lists, because a resume missing structure is
// valid input, not an error.
package parsing

import (
	"regexp"
	"strings"

	"github.com/applytrack/resume-analyzer/internal/sections"
	"github.com/applytrack/resume-analyzer/internal/types"
)

// Contact details cluster near the top of a resume, so secondary patterns
// only scan the leading lines.
const contactScanLines = 15

var (
	emailRe    = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	phoneRe    = regexp.MustCompile(`\+?\(?\d[\d\s().\-]{8,}\d`)
	linkedinRe = regexp.MustCompile(`(?i)linkedin\.com/in/[\w\-]+`)
	githubRe   = regexp.MustCompile(`(?i)github\.com/[\w.\-]+`)
	urlRe      = regexp.MustCompile(`(?i)https?://|www\.|\.com/|\.io/|\.dev\b`)

	locationLabelRe = regexp.MustCompile(`(?i)^(?:location|address|based in)\s*[:\-]\s*(.+)$`)
	locationShapeRe = regexp.MustCompile(`^[A-Z][A-Za-z .]+,\s*[A-Za-z .]{2,}$`)

	nameLabelRe = regexp.MustCompile(`(?i)^name\s*[:\-]\s*(.+)$`)
	nameShapeRe = regexp.MustCompile(`^[A-Za-z][A-Za-z.'\-]*(?: [A-Za-z][A-Za-z.'\-]*){0,2}$`)

	digitRe = regexp.MustCompile(`\d`)
)

// nameStrategy attempts one heuristic for extracting the candidate name from
// the leading lines. Strategies are tried in order; the first match wins.
type nameStrategy func(lines []string) (string, bool)

var nameStrategies = []nameStrategy{
	nameFromLabel,
	nameFromFirstLine,
	nameFromLeadingScan,
}

// ParseContact extracts contact details from the entire normalized text.
// Contact blocks have no heading, so the whole document is scanned.
func ParseContact(text string) types.ContactInfo {
	info := types.ContactInfo{
		SocialProfiles: make(map[string]string),
	}
	if text == "" {
		return info
	}

	info.Email = emailRe.FindString(text)
	info.Phone = findPhone(text)

	lines := strings.Split(text, "\n")
	head := lines
	if len(head) > contactScanLines {
		head = head[:contactScanLines]
	}
	headText := strings.Join(head, "\n")

	if m := linkedinRe.FindString(headText); m != "" {
		info.SocialProfiles["linkedin"] = m
	}
	if m := githubRe.FindString(headText); m != "" {
		info.SocialProfiles["github"] = m
	}
	info.Location = findLocation(head)

	for _, strategy := range nameStrategies {
		if name, ok := strategy(lines); ok {
			info.Name = name
			break
		}
	}

	return info
}

// findPhone returns the first digit/punctuation run carrying at least ten
// digits. The loose shape tolerates international prefixes and separators.
func findPhone(text string) string {
	for _, candidate := range phoneRe.FindAllString(text, -1) {
		digits := len(digitRe.FindAllString(candidate, -1))
		if digits >= 10 && digits <= 15 {
			return strings.TrimSpace(candidate)
		}
	}
	return ""
}

func findLocation(head []string) string {
	for _, line := range head {
		line = strings.TrimSpace(line)
		if m := locationLabelRe.FindStringSubmatch(line); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	for _, line := range head {
		line = strings.TrimSpace(line)
		if isContactArtifact(line) || sections.IsKnownHeading(line) {
			continue
		}
		if locationShapeRe.MatchString(line) {
			return line
		}
	}
	return ""
}

// nameFromLabel looks for an explicit "Name:" label in the leading lines.
func nameFromLabel(lines []string) (string, bool) {
	for _, line := range firstN(lines, 10) {
		if m := nameLabelRe.FindStringSubmatch(strings.TrimSpace(line)); m != nil {
			name := strings.TrimSpace(m[1])
			if name != "" {
				return name, true
			}
		}
	}
	return "", false
}

// nameFromFirstLine accepts the first non-empty line when it is short,
// alphabetic, and not a heading or contact artifact.
func nameFromFirstLine(lines []string) (string, bool) {
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if sections.IsKnownHeading(line) || isContactArtifact(line) {
			return "", false
		}
		if nameShapeRe.MatchString(line) && len(line) <= 40 {
			return line, true
		}
		return "", false
	}
	return "", false
}

// nameFromLeadingScan scans the first ten lines for a short, punctuation-free
// candidate that is neither a heading nor an email/phone/URL line. The scan
// stops at the first section heading: anything past it is body text, not a
// header block.
func nameFromLeadingScan(lines []string) (string, bool) {
	for _, line := range firstN(lines, 10) {
		line = strings.TrimSpace(line)
		if sections.IsKnownHeading(line) {
			break
		}
		if line == "" || isContactArtifact(line) {
			continue
		}
		if strings.ContainsAny(line[len(line)-1:], ".,;:!?") {
			continue
		}
		if len(strings.Fields(line)) <= 3 && nameShapeRe.MatchString(line) {
			return line, true
		}
	}
	return "", false
}

// isContactArtifact reports whether a line carries an email, phone, or URL
// and therefore cannot be a name or location.
func isContactArtifact(line string) bool {
	return emailRe.MatchString(line) ||
		urlRe.MatchString(line) ||
		linkedinRe.MatchString(line) ||
		githubRe.MatchString(line) ||
		findPhone(line) != ""
}

func firstN(lines []string, n int) []string {
	if len(lines) > n {
		return lines[:n]
	}
	return lines
}

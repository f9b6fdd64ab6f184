package parsing

import (
	"regexp"
	"strings"
)

// entryState tags the line-scanning state machines used by the experience,
// education, project, and certification parsers: either waiting for an entry
// header or accumulating continuation lines into the current entry.
type entryState int

const (
	stateIdle entryState = iota
	stateInEntry
)

var (
	yearRe      = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
	monthYearRe = regexp.MustCompile(`(?i)\b(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+(?:19|20)\d{2}\b`)
	cgpaRe      = regexp.MustCompile(`(?i)\b(?:cgpa|gpa)\s*[:\-]?\s*(\d(?:\.\d{1,2})?)\b`)
)

// splitPipe splits a header line on "|" and trims each part.
func splitPipe(line string) []string {
	raw := strings.Split(line, "|")
	parts := make([]string, 0, len(raw))
	for _, p := range raw {
		parts = append(parts, strings.TrimSpace(p))
	}
	return parts
}

// findDate returns the first month-year or bare-year token in a line.
func findDate(line string) string {
	if m := monthYearRe.FindString(line); m != "" {
		return m
	}
	return yearRe.FindString(line)
}

package parsing

import (
	"regexp"
	"strings"

	"github.com/applytrack/resume-analyzer/internal/types"
)

const maxEducationEntries = 4

// degreeRe marks a line as an education entry header.
var degreeRe = regexp.MustCompile(`(?i)\b(bachelor|master|ph\.?d|doctorate|mba|b\.?tech|m\.?tech|b\.?sc|m\.?sc|b\.?e|m\.?e|bca|mca|b\.?a|m\.?a|diploma|associate)\b`)

// ParseEducation scans the captured education block. Degree-keyword lines
// open a new entry; continuation lines fill in the institution and dates.
func ParseEducation(block string) []types.EducationEntry {
	entries := []types.EducationEntry{}
	if block == "" {
		return entries
	}

	state := stateIdle
	var current types.EducationEntry

	flush := func() {
		if state != stateInEntry {
			return
		}
		if current.Degree != "" && len(entries) < maxEducationEntries {
			entries = append(entries, current)
		}
		current = types.EducationEntry{}
		state = stateIdle
	}

	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if degreeRe.MatchString(line) {
			flush()
			parts := splitPipe(line)
			current.Degree = parts[0]
			if len(parts) > 1 {
				current.Institution = parts[1]
			}
			if len(parts) > 2 {
				current.Year = parts[2]
			} else if y := yearRe.FindString(line); y != "" {
				current.Year = y
			}
			if m := cgpaRe.FindStringSubmatch(line); m != nil {
				current.CGPA = m[1]
			}
			state = stateInEntry
			continue
		}

		if state != stateInEntry {
			continue
		}
		// Continuation lines: institution first, then dates and CGPA
		// wherever they appear.
		if current.Institution == "" && !yearOnly(line) {
			current.Institution = strings.TrimSuffix(splitPipe(line)[0], ",")
		}
		if current.Year == "" {
			if y := yearRe.FindString(line); y != "" {
				current.Year = y
			}
		}
		if current.CGPA == "" {
			if m := cgpaRe.FindStringSubmatch(line); m != nil {
				current.CGPA = m[1]
			}
		}
	}
	flush()

	return entries
}

// yearOnly reports whether a line is nothing but a date range.
func yearOnly(line string) bool {
	stripped := yearRe.ReplaceAllString(line, "")
	stripped = strings.Trim(stripped, " -–—to")
	return stripped == ""
}

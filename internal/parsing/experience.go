package parsing

import (
	"regexp"
	"strings"

	"github.com/applytrack/resume-analyzer/internal/ingestion"
	"github.com/applytrack/resume-analyzer/internal/types"
)

const maxExperienceEntries = 6

// jobTitleRe matches the role keywords that mark a pipe-delimited line as a
// job entry header rather than a stray table row.
var jobTitleRe = regexp.MustCompile(`(?i)\b(developer|engineer|manager|lead|architect|consultant|analyst|designer|administrator|specialist|intern|director|scientist|officer|coordinator)\b`)

// ParseExperience runs a line state machine over the captured experience
// block. A header line opens a new entry; everything else accumulates into
// the current entry's description.
func ParseExperience(block string) []types.ExperienceEntry {
	entries := []types.ExperienceEntry{}
	if block == "" {
		return entries
	}

	state := stateIdle
	var current types.ExperienceEntry
	var description []string

	flush := func() {
		if state != stateInEntry {
			return
		}
		current.Description = strings.TrimSpace(strings.Join(description, "\n"))
		if current.Title != "" && current.Company != "" && len(entries) < maxExperienceEntries {
			entries = append(entries, current)
		}
		current = types.ExperienceEntry{}
		description = nil
		state = stateIdle
	}

	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if isExperienceHeader(line) {
			flush()
			parts := splitPipe(line)
			current.Title = parts[0]
			if len(parts) > 1 {
				current.Company = parts[1]
			}
			if len(parts) > 2 {
				current.Duration = parts[2]
			} else if d := findDate(line); d != "" {
				current.Duration = d
			}
			state = stateInEntry
			continue
		}

		if state == stateInEntry {
			description = append(description, ingestion.StripBullet(line))
		}
	}
	flush()

	return entries
}

// isExperienceHeader reports whether a line opens a new job entry: it must be
// pipe-delimited and carry either a job-title keyword or a 4-digit year.
func isExperienceHeader(line string) bool {
	if !strings.Contains(line, "|") {
		return false
	}
	return jobTitleRe.MatchString(line) || yearRe.MatchString(line)
}

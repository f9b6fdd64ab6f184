package parsing

import (
	"regexp"
	"strings"

	"github.com/applytrack/resume-analyzer/internal/ingestion"
	"github.com/applytrack/resume-analyzer/internal/types"
)

const maxProjectEntries = 5

var projectURLRe = regexp.MustCompile(`(?i)\bhttps?://\S+|github\.com/\S+`)

// ParseProjects scans the captured projects block. A pipe-delimited line
// opens a new entry ("Title | Technologies"); bullet and continuation lines
// accumulate into the description, and any URL found is attached.
func ParseProjects(block string) []types.ProjectEntry {
	entries := []types.ProjectEntry{}
	if block == "" {
		return entries
	}

	state := stateIdle
	var current types.ProjectEntry
	var description []string

	flush := func() {
		if state != stateInEntry {
			return
		}
		current.Description = strings.TrimSpace(strings.Join(description, "\n"))
		if current.Title != "" && len(entries) < maxProjectEntries {
			entries = append(entries, current)
		}
		current = types.ProjectEntry{}
		description = nil
		state = stateIdle
	}

	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.Contains(line, "|") && !ingestion.IsBulletLine(line) {
			flush()
			parts := splitPipe(line)
			current.Title = parts[0]
			if len(parts) > 1 {
				current.Technologies = parts[1]
			}
			state = stateInEntry
			continue
		}

		if state != stateInEntry {
			continue
		}
		if current.URL == "" {
			if u := projectURLRe.FindString(line); u != "" {
				current.URL = strings.TrimRight(u, ").,")
			}
		}
		description = append(description, ingestion.StripBullet(line))
	}
	flush()

	return entries
}

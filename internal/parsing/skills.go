package parsing

import (
	"strings"

	"github.com/applytrack/resume-analyzer/internal/ingestion"
)

const (
	maxSkillCount  = 30
	maxSkillLength = 29 // tokens at or above 30 chars are extraction noise
)

// ParseSkills splits a captured skills block into individual skill tokens.
// Lines are split on bullets; a leading "Category:" label is dropped; the
// remainder splits on commas and inline separators. Tokens are deduplicated
// in order and capped.
func ParseSkills(block string) []string {
	skills := []string{}
	if block == "" {
		return skills
	}

	seen := make(map[string]bool)
	for _, line := range strings.Split(block, "\n") {
		line = ingestion.StripBullet(line)
		if line == "" {
			continue
		}

		// "Languages: Go, Python" -> keep only the value part
		if idx := strings.Index(line, ":"); idx >= 0 {
			line = line[idx+1:]
		}

		for _, token := range splitSkillTokens(line) {
			token = strings.TrimSpace(token)
			if len(token) == 0 || len(token) > maxSkillLength {
				continue
			}
			key := strings.ToLower(token)
			if seen[key] {
				continue
			}
			seen[key] = true
			skills = append(skills, token)
			if len(skills) >= maxSkillCount {
				return skills
			}
		}
	}
	return skills
}

// splitSkillTokens splits a skills line on the separators PDF extraction
// leaves behind: commas, bullets, pipes, and semicolons.
func splitSkillTokens(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		switch r {
		case ',', '•', '|', ';', '·':
			return true
		}
		return false
	})
}

package parsing

import (
	"strings"

	"github.com/applytrack/resume-analyzer/internal/ingestion"
	"github.com/applytrack/resume-analyzer/internal/types"
)

const maxCertificationEntries = 6

// ParseCertifications scans the captured certifications block. Certification
// lists rarely carry reliable structure, so every non-bullet line opens a new
// entry; bullet lines refine the current one.
func ParseCertifications(block string) []types.CertificationEntry {
	entries := []types.CertificationEntry{}
	if block == "" {
		return entries
	}

	state := stateIdle
	var current types.CertificationEntry

	flush := func() {
		if state != stateInEntry {
			return
		}
		if current.Name != "" && len(entries) < maxCertificationEntries {
			entries = append(entries, current)
		}
		current = types.CertificationEntry{}
		state = stateIdle
	}

	for _, line := range strings.Split(block, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if !ingestion.IsBulletLine(trimmed) || state == stateIdle {
			flush()
			current = parseCertificationHeader(ingestion.StripBullet(trimmed))
			state = stateInEntry
			continue
		}

		// Bullet continuation: pick up issuer or date detail.
		detail := ingestion.StripBullet(trimmed)
		if current.Issuer == "" && findDate(detail) == "" {
			current.Issuer = detail
		}
		if current.Date == "" {
			current.Date = findDate(detail)
		}
	}
	flush()

	return entries
}

// parseCertificationHeader splits "Name | Issuer | Date" (or the dash-
// separated equivalent) into its fields; the date may sit anywhere in the
// line.
func parseCertificationHeader(line string) types.CertificationEntry {
	var entry types.CertificationEntry

	parts := splitPipe(line)
	if len(parts) == 1 {
		for _, sep := range []string{" - ", " – ", " — "} {
			if strings.Contains(line, sep) {
				parts = []string{}
				for _, p := range strings.Split(line, sep) {
					parts = append(parts, strings.TrimSpace(p))
				}
				break
			}
		}
	}

	entry.Name = parts[0]
	if len(parts) > 1 {
		if findDate(parts[1]) == "" {
			entry.Issuer = parts[1]
		} else {
			entry.Date = findDate(parts[1])
		}
	}
	if len(parts) > 2 && entry.Date == "" {
		entry.Date = findDate(parts[2])
	}
	if entry.Date == "" {
		entry.Date = findDate(line)
	}
	// Strip a trailing date left inside the name
	if entry.Date != "" && strings.Contains(entry.Name, entry.Date) {
		entry.Name = strings.TrimSpace(strings.Trim(strings.ReplaceAll(entry.Name, entry.Date, ""), " -–—(),"))
	}
	return entry
}

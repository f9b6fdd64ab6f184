// Package ingestion provides text normalization and file ingestion for raw
// resume text produced by an external PDF/text extractor.
package ingestion

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

var (
	horizontalWS = regexp.MustCompile(`[ \t\x{00A0}]+`)
	blankLines   = regexp.MustCompile(`\n{2,}`)
)

// bulletMarkers are the leading glyphs PDF extraction commonly produces for
// list items.
var bulletMarkers = []string{"•", "●", "▪", "‣", "·", "◦", "-", "*", "–"}

// CleanText normalizes raw extracted text: horizontal whitespace runs collapse
// to a single space, runs of blank lines collapse away, and the whole text is
// trimmed. Single newlines are preserved because section boundary detection
// depends on line structure.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	// Normalize line endings (CRLF -> LF)
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = horizontalWS.ReplaceAllString(line, " ")
		cleaned = append(cleaned, strings.TrimSpace(line))
	}

	result := strings.Join(cleaned, "\n")
	result = blankLines.ReplaceAllString(result, "\n")
	return strings.TrimSpace(result)
}

// IsBulletLine reports whether a line starts with a list marker.
func IsBulletLine(line string) bool {
	trimmed := strings.TrimLeft(line, " \t")
	for _, marker := range bulletMarkers {
		if strings.HasPrefix(trimmed, marker) {
			return true
		}
	}
	return false
}

// StripBullet removes a single leading list marker (and the whitespace after
// it) from a line. Lines without a marker are returned trimmed.
func StripBullet(line string) string {
	trimmed := strings.TrimSpace(line)
	for _, marker := range bulletMarkers {
		if strings.HasPrefix(trimmed, marker) {
			return strings.TrimSpace(strings.TrimPrefix(trimmed, marker))
		}
	}
	return trimmed
}

// IngestFromFile reads a text file, cleans it, and returns the cleaned text
// with content metadata.
func IngestFromFile(path string) (string, *Metadata, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, fmt.Errorf("file not found: %w", err)
		}
		return "", nil, fmt.Errorf("failed to read file: %w", err)
	}

	cleaned := CleanText(string(content))
	return cleaned, NewMetadata(cleaned, path), nil
}

package parsing

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProjects_TitleAndTechnologies(t *testing.T) {
	block := `Job Tracker | Go, PostgreSQL, React
• Full-stack application for tracking job applications
• Deployed at https://tracker.example.com`

	entries := ParseProjects(block)
	require.Len(t, entries, 1)

	assert.Equal(t, "Job Tracker", entries[0].Title)
	assert.Equal(t, "Go, PostgreSQL, React", entries[0].Technologies)
	assert.Contains(t, entries[0].Description, "Full-stack application")
	assert.Equal(t, "https://tracker.example.com", entries[0].URL)
}

func TestParseProjects_MultipleEntries(t *testing.T) {
	block := `Tracker | Go
• CLI habit tracker
Visualizer | Python
• Data dashboard`

	entries := ParseProjects(block)
	require.Len(t, entries, 2)
	assert.Equal(t, "Tracker", entries[0].Title)
	assert.Equal(t, "Visualizer", entries[1].Title)
}

func TestParseProjects_GitHubURL(t *testing.T) {
	block := "Tracker | Go\n• Source at github.com/jane/tracker."
	entries := ParseProjects(block)

	require.Len(t, entries, 1)
	assert.Equal(t, "github.com/jane/tracker", entries[0].URL)
}

func TestParseProjects_BulletWithPipeIsNotHeader(t *testing.T) {
	block := "Tracker | Go\n• Parses input | output pairs"
	entries := ParseProjects(block)

	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].Description, "Parses input | output pairs")
}

func TestParseProjects_CapsAtFive(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 8; i++ {
		fmt.Fprintf(&b, "Project%d | Go\n• Bullet\n", i)
	}
	entries := ParseProjects(b.String())

	require.Len(t, entries, 5)
	assert.Equal(t, "Project4", entries[4].Title)
}

func TestParseProjects_EmptyBlock(t *testing.T) {
	entries := ParseProjects("")
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

package parsing

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExperience_SingleEntry(t *testing.T) {
	block := `Senior Software Engineer | Acme Corp | 2019 - 2023
• Built the payments platform serving 2M users
• Reduced deploy time by 40%`

	entries := ParseExperience(block)
	require.Len(t, entries, 1)

	assert.Equal(t, "Senior Software Engineer", entries[0].Title)
	assert.Equal(t, "Acme Corp", entries[0].Company)
	assert.Equal(t, "2019 - 2023", entries[0].Duration)
	assert.Contains(t, entries[0].Description, "payments platform")
	assert.Contains(t, entries[0].Description, "40%")
	assert.NotContains(t, entries[0].Description, "•")
}

func TestParseExperience_MultipleEntries(t *testing.T) {
	block := `Senior Engineer | Acme Corp | 2021 - 2023
• Led the platform team
Software Engineer | Initech | 2018 - 2021
• Built internal tools`

	entries := ParseExperience(block)
	require.Len(t, entries, 2)

	assert.Equal(t, "Acme Corp", entries[0].Company)
	assert.Equal(t, "Initech", entries[1].Company)
	assert.Equal(t, "Led the platform team", entries[0].Description)
}

func TestParseExperience_DurationFromYearInLine(t *testing.T) {
	block := "Engineer | Acme Corp 2020\n• Did things"
	entries := ParseExperience(block)

	require.Len(t, entries, 1)
	assert.Equal(t, "2020", entries[0].Duration)
}

func TestParseExperience_IgnoresLinesBeforeFirstHeader(t *testing.T) {
	block := "Stray continuation line\nEngineer | Acme | 2020\n• Real bullet"
	entries := ParseExperience(block)

	require.Len(t, entries, 1)
	assert.Equal(t, "Real bullet", entries[0].Description)
}

func TestParseExperience_DropsHeaderWithoutCompany(t *testing.T) {
	// A pipe-delimited header with no second field cannot form an entry.
	entries := ParseExperience("Senior Engineer |\n• Orphan bullet")
	assert.Empty(t, entries)
}

func TestParseExperience_NonHeaderLinesWithoutPipe(t *testing.T) {
	// Prose without pipe delimiters never opens an entry.
	entries := ParseExperience("Worked at various companies\nDid many things")
	assert.Empty(t, entries)
}

func TestParseExperience_CapsAtSix(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 9; i++ {
		fmt.Fprintf(&b, "Engineer | Company%d | 2020\n• Bullet\n", i)
	}
	entries := ParseExperience(b.String())

	require.Len(t, entries, 6)
	assert.Equal(t, "Company0", entries[0].Company)
	assert.Equal(t, "Company5", entries[5].Company)
}

func TestParseExperience_EmptyBlock(t *testing.T) {
	entries := ParseExperience("")
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

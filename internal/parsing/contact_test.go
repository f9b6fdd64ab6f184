package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseContact_TypicalHeader(t *testing.T) {
	text := `John Doe
Austin, TX
john.doe@example.com | 555-123-4567
linkedin.com/in/johndoe | github.com/johndoe

SUMMARY
Backend engineer.`

	info := ParseContact(text)

	assert.Equal(t, "John Doe", info.Name)
	assert.Equal(t, "john.doe@example.com", info.Email)
	assert.Equal(t, "555-123-4567", info.Phone)
	assert.Equal(t, "Austin, TX", info.Location)
	assert.Equal(t, "linkedin.com/in/johndoe", info.SocialProfiles["linkedin"])
	assert.Equal(t, "github.com/johndoe", info.SocialProfiles["github"])
}

func TestParseContact_NameLabel(t *testing.T) {
	info := ParseContact("Name: Jane Smith\njane@example.com")
	assert.Equal(t, "Jane Smith", info.Name)
}

func TestParseContact_FirstLineIsHeading(t *testing.T) {
	// A resume that opens with a section heading has no detectable name on
	// the first line; the leading scan must not promote the heading.
	text := "SUMMARY\nBackend engineer.\njane@example.com"
	info := ParseContact(text)

	assert.Empty(t, info.Name)
	assert.Equal(t, "jane@example.com", info.Email)
}

func TestParseContact_LeadingScanSkipsSentenceLines(t *testing.T) {
	// A short prose line ending in sentence punctuation is body text, not a
	// name, even when no heading precedes it.
	info := ParseContact("jane@example.com\nShips reliable code.")

	assert.Empty(t, info.Name)
	assert.Equal(t, "jane@example.com", info.Email)
}

func TestParseContact_FirstLineIsEmail(t *testing.T) {
	info := ParseContact("jane@example.com\nJane Smith")
	assert.Equal(t, "Jane Smith", info.Name)
}

func TestParseContact_InternationalPhone(t *testing.T) {
	info := ParseContact("Jane Smith\n+1 (555) 123-4567")
	assert.Equal(t, "+1 (555) 123-4567", info.Phone)
}

func TestParseContact_RejectsShortDigitRuns(t *testing.T) {
	// Year ranges look phone-like but carry too few digits.
	info := ParseContact("Jane Smith\n2019 - 2023")
	assert.Empty(t, info.Phone)
}

func TestParseContact_NoContactDetails(t *testing.T) {
	info := ParseContact("Some unstructured text without any contact details here")

	assert.Empty(t, info.Email)
	assert.Empty(t, info.Phone)
	assert.NotNil(t, info.SocialProfiles)
	assert.Empty(t, info.SocialProfiles)
}

func TestParseContact_EmptyText(t *testing.T) {
	info := ParseContact("")

	assert.Empty(t, info.Name)
	assert.NotNil(t, info.SocialProfiles)
}

func TestParseContact_LocationLabel(t *testing.T) {
	info := ParseContact("Jane Smith\nLocation: Berlin, Germany")
	assert.Equal(t, "Berlin, Germany", info.Location)
}

func TestParseContact_SocialOnlyNearTop(t *testing.T) {
	lines := "Jane Smith\n"
	for i := 0; i < 20; i++ {
		lines += "filler line of resume content\n"
	}
	lines += "github.com/janesmith"

	info := ParseContact(lines)
	assert.Empty(t, info.SocialProfiles["github"])
}

func TestParseContact_ThreeWordName(t *testing.T) {
	info := ParseContact("Mary Jane Watson\nmary@example.com")
	assert.Equal(t, "Mary Jane Watson", info.Name)
}

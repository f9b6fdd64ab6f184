package parsing

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSkills_CommaSeparated(t *testing.T) {
	skills := ParseSkills("Go, Python, PostgreSQL, Docker")
	assert.Equal(t, []string{"Go", "Python", "PostgreSQL", "Docker"}, skills)
}

func TestParseSkills_CategoryLabelsDropped(t *testing.T) {
	block := "Languages: Go, Python\nDatabases: PostgreSQL, Redis"
	skills := ParseSkills(block)

	assert.Equal(t, []string{"Go", "Python", "PostgreSQL", "Redis"}, skills)
	assert.NotContains(t, skills, "Languages")
}

func TestParseSkills_BulletLines(t *testing.T) {
	block := "• Go\n• Python\n• Kubernetes"
	skills := ParseSkills(block)

	assert.Equal(t, []string{"Go", "Python", "Kubernetes"}, skills)
}

func TestParseSkills_MixedSeparators(t *testing.T) {
	skills := ParseSkills("Go | Python; Rust • TypeScript")
	assert.Equal(t, []string{"Go", "Python", "Rust", "TypeScript"}, skills)
}

func TestParseSkills_DeduplicatesCaseInsensitive(t *testing.T) {
	skills := ParseSkills("Go, go, GO, Python")

	// First occurrence keeps its casing.
	assert.Equal(t, []string{"Go", "Python"}, skills)
}

func TestParseSkills_DropsOversizedTokens(t *testing.T) {
	noise := strings.Repeat("x", 40)
	skills := ParseSkills("Go, " + noise + ", Python")

	assert.Equal(t, []string{"Go", "Python"}, skills)
}

func TestParseSkills_CapsAtThirty(t *testing.T) {
	var tokens []string
	for i := 0; i < 40; i++ {
		tokens = append(tokens, fmt.Sprintf("skill%d", i))
	}
	skills := ParseSkills(strings.Join(tokens, ", "))

	require.Len(t, skills, 30)
	assert.Equal(t, "skill0", skills[0])
	assert.Equal(t, "skill29", skills[29])
}

func TestParseSkills_EmptyBlock(t *testing.T) {
	skills := ParseSkills("")
	assert.NotNil(t, skills)
	assert.Empty(t, skills)
}

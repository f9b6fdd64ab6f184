package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/applytrack/resume-analyzer/internal/schemas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var schemaFiles = []string{
	"parsed_resume.schema.json",
	"ats_analysis.schema.json",
	"rubric_score.schema.json",
}

func TestAllSchemaFiles_ValidJSON(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join(".", schemaFile))
			require.NoError(t, err, "should be able to read schema file")

			var v interface{}
			err = json.Unmarshal(data, &v)
			assert.NoError(t, err, "schema file should be valid JSON: %s", schemaFile)
		})
	}
}

func TestSchemaFiles_DeclareDraft07(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join(".", schemaFile))
			require.NoError(t, err)

			var schemaObj map[string]interface{}
			require.NoError(t, json.Unmarshal(data, &schemaObj))

			assert.Equal(t, "http://json-schema.org/draft-07/schema#", schemaObj["$schema"])
			assert.Equal(t, "object", schemaObj["type"])
			_, hasProps := schemaObj["properties"]
			assert.True(t, hasProps, "schema should declare properties")
		})
	}
}

func TestParsedResumeSchema_AcceptsMinimalRecord(t *testing.T) {
	data, err := os.ReadFile("parsed_resume.schema.json")
	require.NoError(t, err)

	record := `{
		"contact_info": {"name": "", "email": "", "phone": "", "location": "", "social_profiles": {}},
		"summary": "",
		"skills": [],
		"experience": [],
		"education": [],
		"projects": [],
		"certifications": []
	}`

	assert.NoError(t, schemas.ValidateJSONString(string(data), record))
}

func TestParsedResumeSchema_RejectsOverCapSkills(t *testing.T) {
	data, err := os.ReadFile("parsed_resume.schema.json")
	require.NoError(t, err)

	skills, err := json.Marshal(make([]string, 31))
	require.NoError(t, err)
	record := `{
		"contact_info": {"name": "", "email": "", "phone": "", "location": "", "social_profiles": {}},
		"summary": "",
		"skills": ` + string(skills) + `,
		"experience": [],
		"education": [],
		"projects": [],
		"certifications": []
	}`

	err = schemas.ValidateJSONString(string(data), record)
	require.Error(t, err)
	var validationErr *schemas.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

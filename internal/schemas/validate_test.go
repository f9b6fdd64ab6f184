package schemas

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const addressSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["city"],
	"properties": {
		"city": {"type": "string"},
		"zip": {"type": "string", "minLength": 5}
	}
}`

func TestValidateJSONString_Valid(t *testing.T) {
	err := ValidateJSONString(addressSchema, `{"city": "Austin", "zip": "78701"}`)
	assert.NoError(t, err)
}

func TestValidateJSONString_MissingRequiredField(t *testing.T) {
	err := ValidateJSONString(addressSchema, `{"zip": "78701"}`)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.NotEmpty(t, validationErr.Errors)
	assert.Contains(t, err.Error(), "city")
}

func TestValidateJSONString_WrongType(t *testing.T) {
	err := ValidateJSONString(addressSchema, `{"city": 42}`)
	require.Error(t, err)

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestValidateJSONString_BrokenSchema(t *testing.T) {
	err := ValidateJSONString(`{"type": 42}`, `{}`)
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestValidateJSON_Files(t *testing.T) {
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "schema.json")
	docPath := filepath.Join(dir, "doc.json")
	require.NoError(t, os.WriteFile(schemaPath, []byte(addressSchema), 0644))
	require.NoError(t, os.WriteFile(docPath, []byte(`{"city": "Austin"}`), 0644))

	assert.NoError(t, ValidateJSON(schemaPath, docPath))
}

func TestValidateJSON_MissingFiles(t *testing.T) {
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "schema.json")
	require.NoError(t, os.WriteFile(schemaPath, []byte(addressSchema), 0644))

	err := ValidateJSON(schemaPath, filepath.Join(dir, "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JSON file not found")

	err = ValidateJSON(filepath.Join(dir, "missing-schema.json"), schemaPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema file not found")
}

func TestResolveSchemaPath_FindsRepoSchemas(t *testing.T) {
	// Test binaries run from the package directory, two levels below the
	// repository root.
	path := ResolveSchemaPath(ParsedResumeSchema)
	require.NotEmpty(t, path)
	assert.FileExists(t, path)
}

func TestResolveSchemaPath_Unresolvable(t *testing.T) {
	assert.Empty(t, ResolveSchemaPath("schemas/does_not_exist.schema.json"))
}

func TestValidateArtifact_RoundTrip(t *testing.T) {
	artifact := map[string]any{
		"score":  87,
		"rating": "Very Good",
		"buckets": []map[string]any{
			{"name": "contact", "score": 15, "max": 15, "detail": ""},
			{"name": "summary", "score": 11, "max": 15, "detail": ""},
			{"name": "skills", "score": 20, "max": 20, "detail": ""},
			{"name": "experience", "score": 25, "max": 25, "detail": ""},
			{"name": "education", "score": 10, "max": 10, "detail": ""},
			{"name": "projects", "score": 6, "max": 10, "detail": ""},
			{"name": "formatting", "score": 5, "max": 5, "detail": ""},
		},
		"suggestions": []string{},
	}

	assert.NoError(t, ValidateArtifact(RubricScoreSchema, artifact))
}

func TestValidateArtifact_UnknownSchema(t *testing.T) {
	err := ValidateArtifact("schemas/does_not_exist.schema.json", map[string]any{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema file not found")
}

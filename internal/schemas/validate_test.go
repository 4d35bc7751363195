package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jordan/career-compass/internal/types"
)

func TestValidateResumeRecord_FromToRecord(t *testing.T) {
	resume := &types.ParsedResume{
		Contact:   types.ContactInfo{Name: "Jordan Smith", Email: "jordan@example.com"},
		Skills:    []string{"Go"},
		Education: []types.EducationEntry{{Degree: "BS: Computer Science", Institution: "Texas A&M University"}},
		Experience: []types.ExperienceEntry{
			{Title: "Intern", Company: "Acme", Description: []string{"Did work."}},
		},
		PageCount: 1,
	}

	data, err := json.Marshal(resume.ToRecord())
	require.NoError(t, err)

	assert.NoError(t, ValidateResumeRecord(string(data)))
}

func TestValidateResumeRecord_EmptyParse(t *testing.T) {
	// A parse that found nothing still produces a valid record.
	resume := &types.ParsedResume{}
	data, err := json.Marshal(resume.ToRecord())
	require.NoError(t, err)

	assert.NoError(t, ValidateResumeRecord(string(data)))
}

func TestValidateResumeRecord_WrongTypes(t *testing.T) {
	err := ValidateResumeRecord(`{
		"contact": {"name": 42},
		"skills": "not a list",
		"education": [],
		"experience": []
	}`)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.NotEmpty(t, validationErr.Errors)

	fields := make([]string, 0, len(validationErr.Errors))
	for _, fe := range validationErr.Errors {
		fields = append(fields, fe.Field)
	}
	assert.Contains(t, fields, "contact.name")
	assert.Contains(t, fields, "skills")
}

func TestValidateResumeRecord_MissingRequired(t *testing.T) {
	err := ValidateResumeRecord(`{"contact": {}}`)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestValidateResumeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.json")
	resume := &types.ParsedResume{}
	data, err := json.Marshal(resume.ToRecord())
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0644))

	assert.NoError(t, ValidateResumeFile(path))
	assert.Error(t, ValidateResumeFile(filepath.Join(t.TempDir(), "missing.json")))
}

func TestValidateJSONString_BadSchema(t *testing.T) {
	err := ValidateJSONString(`{`, `{}`)
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}

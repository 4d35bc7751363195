package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

const validResumeJSON = `{
  "contact": {
    "name": "Jordan Smith",
    "email": "jordan@example.com"
  },
  "skills": ["Go", "SQL"],
  "education": [
    {
      "degree": "B.S. Computer Science",
      "institution": "State University",
      "year": "2024"
    }
  ],
  "experience": [
    {
      "title": "Software Engineering Intern",
      "company": "Acme Robotics",
      "duration": "Jun 2023 - Aug 2023",
      "description": ["Built internal tooling"]
    }
  ],
  "pageCount": 1
}`

func TestValidateCommand_Success(t *testing.T) {
	binaryPath := getBinaryPath(t)

	jsonFile := filepath.Join(t.TempDir(), "resume_parsed.json")
	_ = os.WriteFile(jsonFile, []byte(validResumeJSON), 0644)

	cmd := exec.Command(binaryPath, "validate", "--in", jsonFile)
	output, err := cmd.CombinedOutput()

	assert.NoError(t, err)
	assert.Contains(t, string(output), "Valid:")
}

func TestValidateCommand_InvalidDocument(t *testing.T) {
	binaryPath := getBinaryPath(t)

	jsonFile := filepath.Join(t.TempDir(), "resume_parsed.json")
	_ = os.WriteFile(jsonFile, []byte(`{"skills": "not an array"}`), 0644)

	cmd := exec.Command(binaryPath, "validate", "--in", jsonFile)
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "validation failed")
}

func TestValidateCommand_MissingFlag(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "validate")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "--in is required")
}

package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunCommand_MissingFlags(t *testing.T) {
	binaryPath := getBinaryPath(t)

	// Missing all required flags for 'run'
	cmd := exec.Command(binaryPath, "run")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "--resume is required")
}

func TestRunCommand_MissingURL(t *testing.T) {
	binaryPath := getBinaryPath(t)

	tmpDir := t.TempDir()
	resumeFile := filepath.Join(tmpDir, "resume.pdf")
	_ = os.WriteFile(resumeFile, []byte("%PDF-1.4"), 0644)

	cmd := exec.Command(binaryPath, "run", "--resume", resumeFile)
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "--url is required")
}

func TestRunCommand_MissingAPIKey(t *testing.T) {
	binaryPath := getBinaryPath(t)

	tmpDir := t.TempDir()
	resumeFile := filepath.Join(tmpDir, "resume.pdf")
	_ = os.WriteFile(resumeFile, []byte("%PDF-1.4"), 0644)

	cmd := exec.Command(binaryPath, "run",
		"--resume", resumeFile,
		"--url", "https://fair.example.com/employers/acme")

	// Filter out GEMINI_API_KEY so the key requirement trips
	var env []string
	for _, e := range os.Environ() {
		if !strings.HasPrefix(e, "GEMINI_API_KEY=") {
			env = append(env, e)
		}
	}
	cmd.Env = env

	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "GEMINI_API_KEY environment variable or --api-key flag is required")
}

func TestRunCommand_MissingResumeFile(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "run",
		"--resume", filepath.Join(t.TempDir(), "does_not_exist.pdf"),
		"--url", "https://fair.example.com/employers/acme",
		"--api-key", "dummy")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "resume file not found")
}

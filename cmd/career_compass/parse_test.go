package main

import (
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCommand_MissingFlag(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "parse")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "--in is required")
}

func TestParseCommand_MissingInputFile(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "parse", "--in", "does_not_exist.pdf")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "failed to parse resume")
}

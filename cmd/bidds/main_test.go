package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	args := []string{"-h"}
	out := &bytes.Buffer{}

	// --- Act ---
	// The run function should see `shouldExit=true` and return a nil error.
	err := run(out, io.Discard, args)

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// Providing an unknown flag will cause cli.Parse to return an error.
	args := []string{"--this-is-not-a-valid-flag"}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, io.Discard, args)

	// --- Assert ---
	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_ValidateEndToEnd(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "model.json")
	content := `{"network": {"generators": [{"uid": "G1", "bus": "B1"}]}, "scenario": {}}`
	require.NoError(t, os.WriteFile(filePath, []byte(content), 0o600))
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, io.Discard, []string{"validate", filePath})

	// --- Assert ---
	require.NoError(t, err)
	require.Contains(t, out.String(), "ok")
}

func TestRun_ValidateRejectsUnknownField(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "model.json")
	content := `{"network": {"generators": []}, "scenario": {}, "weather": {}}`
	require.NoError(t, os.WriteFile(filePath, []byte(content), 0o600))
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, io.Discard, []string{"validate", filePath})

	// --- Assert ---
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown field")
	require.Contains(t, err.Error(), "weather")
}

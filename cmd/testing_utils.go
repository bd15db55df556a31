// Package cmd contains testing utilities shared between integration tests.
// This file provides common functions for pointing passbox at temporary
// directories and capturing command output.
package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/PolarWolf314/passbox/internal/configs"
)

// setupTestEnvironment points all passbox paths at temporary directories and
// restores the originals when the test finishes.
func setupTestEnvironment(t *testing.T) (storePath, keysPath string) {
	t.Helper()

	tempDir := t.TempDir()
	storePath = filepath.Join(tempDir, "store.pbx")
	keysPath = filepath.Join(tempDir, "keys")

	originalSettings := configs.UserPassboxSettings
	t.Cleanup(func() {
		configs.UserPassboxSettings = originalSettings
	})

	configs.UserPassboxSettings = &configs.UserSettings{
		StorePath:       storePath,
		KeysPath:        keysPath,
		UserConfigsPath: filepath.Join(tempDir, "config"),
	}

	t.Setenv(configs.EnvLocation, storePath)
	return storePath, keysPath
}

// captureOutput captures both stdout and stderr during function execution.
func captureOutput(fn func() error) (string, error) {
	originalStdout := os.Stdout
	originalStderr := os.Stderr

	stdoutReader, stdoutWriter, _ := os.Pipe()
	stderrReader, stderrWriter, _ := os.Pipe()

	os.Stdout = stdoutWriter
	os.Stderr = stderrWriter

	err := fn()

	stdoutWriter.Close()
	stderrWriter.Close()
	os.Stdout = originalStdout
	os.Stderr = originalStderr

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, stdoutReader)
	_, _ = io.Copy(&buf, stderrReader)
	return buf.String(), err
}

// runCommand executes the root command with the given arguments and returns
// everything it wrote.
func runCommand(args ...string) (string, error) {
	return captureOutput(func() error {
		rootCmd.SetArgs(args)
		return rootCmd.Execute()
	})
}

// resetCommandState resets per-command flag globals between test runs.
func resetCommandState() {
	verbose = false
	debug = false
	getCopy = false
	deleteYes = false
	generateLength = 0
	keygenRecipient = ""
}

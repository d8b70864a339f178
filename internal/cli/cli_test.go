package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvp-joe/osstatus-generator/internal/config"
	"github.com/mvp-joe/osstatus-generator/internal/extraction"
)

// Test Plan for the CLI:
// - inputPath prefers the positional argument over the configured header
// - writeOutput prints to stdout or writes the file, creating directories
// - staleDiff ignores the generation date and diffs real changes
// - checkGenerated passes for a fresh file, fails with ErrStale and a diff otherwise
// - checkGenerated reports an unreadable file
// - writeRecords emits YAML with null descriptions for comment-less statuses
// - Executing the root command prints a newline-terminated Go file
// - Flags select the target and filters
// - --output followed by --check succeeds, and fails after the file is edited
// - --watch without --output and --watch with --check are rejected
// - records and version subcommands print their output
// - A missing header is an error

const headerFixture = "../../testdata/headers/SecBase.h"

// executeCommand runs rootCmd with args after resetting flags left over from
// earlier runs.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			require.NoError(t, sv.Replace(nil))
		} else {
			require.NoError(t, f.Value.Set(f.DefValue))
		}
		f.Changed = false
	}
	rootCmd.Flags().VisitAll(reset)
	rootCmd.PersistentFlags().VisitAll(reset)

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return stdout.String(), err
}

func TestInputPath(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Input.Path = "configured.h"

	assert.Equal(t, "arg.h", inputPath([]string{"arg.h"}, cfg))
	assert.Equal(t, "configured.h", inputPath(nil, cfg))
}

func TestWriteOutput(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	require.NoError(t, writeOutput(&stdout, "", "package osstatus\n"))
	assert.Equal(t, "package osstatus\n", stdout.String())

	path := filepath.Join(t.TempDir(), "nested", "osstatus_gen.go")
	stdout.Reset()
	require.NoError(t, writeOutput(&stdout, path, "package osstatus\n"))
	assert.Empty(t, stdout.String())

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "package osstatus\n", string(written))
}

func TestStaleDiff(t *testing.T) {
	t.Parallel()

	existing := "// Code generated by osstatus-generator on 2025-01-01. DO NOT EDIT.\npackage osstatus\n"
	same := "// Code generated by osstatus-generator on 2026-10-16. DO NOT EDIT.\npackage osstatus\n"
	changed := "// Code generated by osstatus-generator on 2026-10-16. DO NOT EDIT.\npackage secstatus\n"

	diff, err := staleDiff(existing, same, "osstatus_gen.go")
	require.NoError(t, err)
	assert.Empty(t, diff, "only the date differs")

	diff, err = staleDiff(existing, changed, "osstatus_gen.go")
	require.NoError(t, err)
	assert.Contains(t, diff, "--- osstatus_gen.go")
	assert.Contains(t, diff, "+++ generated")
	assert.Contains(t, diff, "-package osstatus")
	assert.Contains(t, diff, "+package secstatus")
}

func TestCheckGenerated(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "osstatus_gen.go")
	require.NoError(t, os.WriteFile(path, []byte("package osstatus\n"), 0644))

	var out bytes.Buffer
	require.NoError(t, checkGenerated(&out, "package osstatus\n", path))
	assert.Empty(t, out.String())

	err := checkGenerated(&out, "package secstatus\n", path)
	assert.ErrorIs(t, err, ErrStale)
	assert.Contains(t, out.String(), "+package secstatus")

	err = checkGenerated(&out, "package osstatus\n", filepath.Join(t.TempDir(), "missing.go"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrStale)
}

func TestWriteRecords(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	require.NoError(t, writeRecords(&out, []extraction.Status{
		{Name: "errSecSuccess", Code: 0, Description: extraction.StringPtr("No error."), Line: 1},
		{Name: "errSecInternalComponent", Code: -2070, Line: 2},
	}))

	text := out.String()
	assert.Contains(t, text, "- name: errSecSuccess\n")
	assert.Contains(t, text, "  description: No error.\n")
	assert.Contains(t, text, "  code: -2070\n")
	assert.Contains(t, text, "  description: null\n")
}

func TestExecute_GeneratesGo(t *testing.T) {
	out, err := executeCommand(t, headerFixture)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "// Code generated by osstatus-generator on "))
	assert.True(t, strings.HasSuffix(out, "\n"))
	assert.Contains(t, out, "package osstatus")
	assert.Contains(t, out, "ErrSecSuccess")
}

func TestExecute_FlagsSelectTargetAndFilter(t *testing.T) {
	out, err := executeCommand(t, headerFixture, "--target", "swift", "--include", "errSecSuccess")
	require.NoError(t, err)

	assert.Contains(t, out, "case errSecSuccess\n")
	assert.NotContains(t, out, "errSecUnimplemented")
}

func TestExecute_OutputThenCheck(t *testing.T) {
	path := filepath.Join(t.TempDir(), "osstatus_gen.go")

	out, err := executeCommand(t, headerFixture, "-o", path)
	require.NoError(t, err)
	assert.Empty(t, out)

	_, err = executeCommand(t, headerFixture, "--check", path)
	require.NoError(t, err)

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	edited := strings.Replace(string(written), "No error.", "Edited by hand.", 1)
	require.NoError(t, os.WriteFile(path, []byte(edited), 0644))

	out, err = executeCommand(t, headerFixture, "--check", path)
	assert.ErrorIs(t, err, ErrStale)
	assert.Contains(t, out, "Edited by hand.")
}

func TestExecute_WatchFlagValidation(t *testing.T) {
	_, err := executeCommand(t, headerFixture, "--watch")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--watch requires --output")

	_, err = executeCommand(t, headerFixture, "--watch", "--check", "x.go")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be used together")
}

func TestExecute_MissingHeader(t *testing.T) {
	_, err := executeCommand(t, filepath.Join(t.TempDir(), "missing.h"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read header")
}

func TestExecute_Records(t *testing.T) {
	out, err := executeCommand(t, "records", headerFixture, "--exclude", "errSecD*")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "- name: errSecSuccess\n"))
	assert.NotContains(t, out, "errSecDiskFull")
}

func TestExecute_Version(t *testing.T) {
	out, err := executeCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "osstatus-generator dev")
}

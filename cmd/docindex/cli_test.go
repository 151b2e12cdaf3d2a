package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/n2code/docindex/internal/config"
)

func setupRoot(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "sub"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.md"), []byte("# Alpha\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "sub", "b.md"), []byte("# Beta\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "sub", "notes.txt"), []byte("not indexed"), 0644))
	return root
}

func runCli(args ...string) (exitCode int, stdout string, stderr string) {
	var out, errOut bytes.Buffer
	exitCode = run(args, &out, &errOut)
	return exitCode, out.String(), errOut.String()
}

const expectedIndex = "# Project Index\n\nWelcome! Click any link below to open the corresponding topic.\n\n" +
	"- [a](a.md)\n\n## sub\n- [b](sub/b.md)\n\n"

func TestGenerateWritesIndex(t *testing.T) {
	root := setupRoot(t)

	code, stdout, stderr := runCli(root)
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "Index.md has been generated successfully!")
	assert.NotContains(t, stdout, "\x1B[", "escape sequences must not be written to a non-terminal")

	content, err := os.ReadFile(filepath.Join(root, "Index.md"))
	require.NoError(t, err)
	assert.Equal(t, expectedIndex, string(content))
}

func TestQuietGenerate(t *testing.T) {
	code, stdout, _ := runCli("-q", setupRoot(t))
	assert.Equal(t, 0, code)
	assert.Empty(t, stdout)
}

func TestStdoutDoesNotWrite(t *testing.T) {
	root := setupRoot(t)

	code, stdout, _ := runCli("--stdout", root)
	require.Equal(t, 0, code)
	assert.Equal(t, expectedIndex, stdout)
	_, err := os.Stat(filepath.Join(root, "Index.md"))
	assert.True(t, os.IsNotExist(err))
}

func TestCheckExitCodes(t *testing.T) {
	root := setupRoot(t)

	code, _, stderr := runCli("--check", root)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "out of date")

	code, _, _ = runCli("-q", root)
	require.Equal(t, 0, code)

	code, _, _ = runCli("--check", root)
	assert.Equal(t, 0, code)
}

func TestFlagsOverrideSettingsFile(t *testing.T) {
	root := setupRoot(t)
	require.NoError(t, os.WriteFile(filepath.Join(root, config.DefaultFileName), []byte("output = \"TOC.md\"\ntitle = \"Contents\"\n"), 0644))

	code, stdout, stderr := runCli("--stdout", "--headings", "--exclude", "sub", root)
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "# Contents\n\nWelcome! Click any link below to open the corresponding topic.\n\n- [Alpha](a.md)\n\n", stdout)

	code, _, stderr = runCli("-o", "Overview.md", root)
	require.Equal(t, 0, code, stderr)
	_, err := os.Stat(filepath.Join(root, "Overview.md"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(root, "TOC.md"))
	assert.True(t, os.IsNotExist(err))
}

func TestExplicitSettingsFileMustExist(t *testing.T) {
	root := setupRoot(t)
	code, _, stderr := runCli("-c", filepath.Join(root, "absent.toml"), root)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "settings file unavailable")
}

func TestTree(t *testing.T) {
	code, stdout, _ := runCli("--tree", "-p", setupRoot(t))
	require.Equal(t, 0, code)
	assert.Contains(t, stdout, "[index root]")
	assert.Contains(t, stdout, "b.md")
	assert.NotContains(t, stdout, "notes.txt")
}

func TestMissingRootFails(t *testing.T) {
	code, _, stderr := runCli(filepath.Join(t.TempDir(), "absent"))
	assert.Equal(t, 1, code)
	assert.NotEmpty(t, stderr)
}

func TestUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "UnknownFlag", args: []string{"--bogus"}},
		{name: "QuietAndVerbose", args: []string{"-q", "-v"}},
		{name: "TwoRoots", args: []string{"a", "b"}},
		{name: "ConflictingActions", args: []string{"--check", "--tree"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, stderr := runCli(tt.args...)
			assert.Equal(t, 2, code)
			assert.Contains(t, stderr, "Usage help")
		})
	}
}

func TestInvalidSettingsFail(t *testing.T) {
	code, _, stderr := runCli("--order", "random", setupRoot(t))
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "invalid settings")
}

func TestHelp(t *testing.T) {
	code, stdout, _ := runCli("-h")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "docindex [FLAGS] [ROOT]")
}

package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PolarWolf314/seedxor/internal/audit"
	"github.com/PolarWolf314/seedxor/internal/configs"
	kerrors "github.com/PolarWolf314/seedxor/internal/errors"
	"github.com/PolarWolf314/seedxor/internal/mnemonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGen_Stdout(t *testing.T) {
	setupTestEnvironment(t, "")

	stdout, _, err := runCLI(t, "gen", "--lines", "3")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 3)
	for _, l := range lines {
		_, err := mnemonic.Decode(l)
		assert.NoError(t, err)
	}
}

func TestGen_DefaultLinesFromConfig(t *testing.T) {
	setupTestEnvironment(t, "[gen]\nlines = 4\n")

	stdout, _, err := runCLI(t, "gen")
	require.NoError(t, err)
	assert.Equal(t, 4, strings.Count(stdout, "\n"))
}

func TestGen_Files(t *testing.T) {
	dir := setupTestEnvironment(t, "")
	a, b := filepath.Join(dir, "a.txt"), filepath.Join(dir, "b.txt")

	stdout, stderr, err := runCLI(t, "gen", "-l", "2", a, b)
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Generated '2' mnemonics")
	assert.Contains(t, stderr, a)

	assert.Equal(t, 2, strings.Count(readTestFile(t, a), "\n"))
	assert.Equal(t, 2, strings.Count(readTestFile(t, b), "\n"))
}

func TestGen_NegativeLines(t *testing.T) {
	setupTestEnvironment(t, "")
	_, _, err := runCLI(t, "gen", "-l", "-1")
	assert.Error(t, err)
}

func TestSplitAndXor(t *testing.T) {
	dir := setupTestEnvironment(t, "")
	src := filepath.Join(dir, "secrets.txt")
	want := writeSecretsFile(t, src, 5)
	shares := []string{filepath.Join(dir, "share-1.txt"), filepath.Join(dir, "share-2.txt"), filepath.Join(dir, "share-3.txt")}

	_, stderr, err := runCLI(t, append([]string{"split", src}, shares...)...)
	require.NoError(t, err)
	assert.Contains(t, stderr, "Split '5' secrets")

	stdout, _, err := runCLI(t, "xor", shares[1], shares[2], shares[0])
	require.NoError(t, err)
	assert.Equal(t, want, stdout)

	out := filepath.Join(dir, "recovered.txt")
	_, stderr, err = runCLI(t, "xor", filepath.Join(dir, "share-*.txt"), "-o", out)
	require.NoError(t, err)
	assert.Contains(t, stderr, "Combined '3' files")
	assert.Equal(t, want, readTestFile(t, out))
}

func TestSplit_RequiresTwoDestinations(t *testing.T) {
	dir := setupTestEnvironment(t, "")
	src := filepath.Join(dir, "secrets.txt")
	writeSecretsFile(t, src, 1)

	_, _, err := runCLI(t, "split", src, filepath.Join(dir, "only"))
	assert.Error(t, err)
	_, statErr := os.Stat(filepath.Join(dir, "only"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestSplit_RefusesOverwrite(t *testing.T) {
	dir := setupTestEnvironment(t, "")
	src := filepath.Join(dir, "secrets.txt")
	writeSecretsFile(t, src, 1)
	existing := filepath.Join(dir, "b")
	require.NoError(t, os.WriteFile(existing, []byte("keep\n"), 0o600))

	_, _, err := runCLI(t, "split", src, filepath.Join(dir, "a"), existing)
	assert.ErrorIs(t, err, kerrors.ErrDestinationExists)
	assert.Equal(t, "keep\n", readTestFile(t, existing))
	_, statErr := os.Stat(filepath.Join(dir, "a"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestXor_LengthMismatchReportsFileAndLine(t *testing.T) {
	dir := setupTestEnvironment(t, "")
	a, b := filepath.Join(dir, "a"), filepath.Join(dir, "b")
	writeSecretsFile(t, a, 3)
	writeSecretsFile(t, b, 2)

	_, _, err := runCLI(t, "xor", a, b)
	require.ErrorIs(t, err, kerrors.ErrFileEndedEarly)
	assert.Contains(t, err.Error(), "file 2")
	assert.Contains(t, err.Error(), "line 3")
}

func TestXor_SingleSourceAfterExpansion(t *testing.T) {
	dir := setupTestEnvironment(t, "")
	a := filepath.Join(dir, "a")
	writeSecretsFile(t, a, 1)

	_, _, err := runCLI(t, "xor", a)
	assert.ErrorIs(t, err, kerrors.ErrTooFewSources)
}

func TestCheck(t *testing.T) {
	dir := setupTestEnvironment(t, "")
	a, b := filepath.Join(dir, "a"), filepath.Join(dir, "b")
	writeSecretsFile(t, a, 2)
	writeSecretsFile(t, b, 3)

	stdout, _, err := runCLI(t, "check", a, b)
	require.NoError(t, err)
	assert.Contains(t, stdout, "(2 lines)")
	assert.Contains(t, stdout, "(3 lines)")
	assert.Contains(t, stdout, "different line counts")

	require.NoError(t, os.WriteFile(b, []byte("zoo zoo\n"), 0o600))
	_, _, err = runCLI(t, "check", a, b)
	assert.ErrorIs(t, err, kerrors.ErrBadLength)
}

func TestAuditLogFromConfig(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "audit.jsonl")
	work := setupTestEnvironment(t, "[audit]\npath = \""+filepath.ToSlash(logPath)+"\"\n")

	_, _, err := runCLI(t, "gen", "-l", "1", filepath.Join(work, "a"))
	require.NoError(t, err)

	entries, err := audit.ReadEntries(logPath)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "gen", entries[0].Operation)
	assert.Equal(t, 1, entries[0].Lines)
}

func TestConfigInitAndShow(t *testing.T) {
	setupTestEnvironment(t, "")

	_, stderr, err := runCLI(t, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Wrote default configuration")

	_, _, err = runCLI(t, "config", "init")
	assert.ErrorIs(t, err, kerrors.ErrConfigExists)

	_, _, err = runCLI(t, "config", "init", "--force")
	require.NoError(t, err)

	stdout, _, err := runCLI(t, "config", "show", "--json")
	require.NoError(t, err)
	var shown configs.Config
	require.NoError(t, json.Unmarshal([]byte(stdout), &shown))
	assert.Equal(t, configs.DefaultGenLines, shown.Gen.Lines)
	assert.True(t, shown.Xor.AtomicOutput)

	stdout, _, err = runCLI(t, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, stdout, "gen.lines:")
	assert.Contains(t, stdout, "(disabled)")
}

func TestInvalidConfigFailsCommands(t *testing.T) {
	setupTestEnvironment(t, "[gen]\nlines = -5\n")
	_, _, err := runCLI(t, "gen")
	assert.ErrorIs(t, err, kerrors.ErrInvalidConfig)
}

func TestRootPrintsBanner(t *testing.T) {
	setupTestEnvironment(t, "")
	stdout, _, err := runCLI(t)
	require.NoError(t, err)
	assert.Contains(t, stdout, "seedxor --help")
}

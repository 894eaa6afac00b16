package utils

import (
	"os"
	"path/filepath"
	"testing"

	kerrors "github.com/PolarWolf314/seedxor/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPaths(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"share-2.txt", "share-1.txt", "other.log"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o600))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "share-dir.txt"), 0o700))

	literal := filepath.Join(dir, "other.log")
	got, err := ExpandPaths([]string{filepath.Join(dir, "share-*.txt"), literal})
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(dir, "share-1.txt"),
		filepath.Join(dir, "share-2.txt"),
		literal,
	}, got)
}

func TestExpandPaths_KeepsMissingLiteral(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.txt")
	got, err := ExpandPaths([]string{missing})
	require.NoError(t, err)
	assert.Equal(t, []string{missing}, got)
}

func TestExpandPaths_NoMatches(t *testing.T) {
	_, err := ExpandPaths([]string{filepath.Join(t.TempDir(), "*.txt")})
	assert.ErrorIs(t, err, kerrors.ErrNoFilesFound)
}

func TestPathExists(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "f")

	exists, err := PathExists(p)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, os.WriteFile(p, nil, 0o600))
	exists, err = PathExists(p)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestFormatPaths(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, "\n    - a\n    - b\n", FormatPaths([]string{"a", "b"}))
}

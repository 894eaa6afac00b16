package cmd

import (
	"bytes"
	"crypto/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PolarWolf314/seedxor/internal/configs"
	"github.com/PolarWolf314/seedxor/internal/mnemonic"
	"github.com/stretchr/testify/require"
)

// setupTestEnvironment points the config at a fresh temporary file, disables
// colors and returns a working directory for test files.
func setupTestEnvironment(t *testing.T, config string) string {
	t.Helper()
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.toml")
	if config != "" {
		require.NoError(t, os.WriteFile(configPath, []byte(config), 0o600))
	}
	t.Setenv(configs.EnvConfigPath, configPath)
	t.Setenv("NO_COLOR", "1")

	ResetGlobalState()
	t.Cleanup(ResetGlobalState)
	return dir
}

// runCLI executes the root command with args and captures its output streams.
func runCLI(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetErr(&errOut)
	RootCmd.SetArgs(args)
	t.Cleanup(func() {
		RootCmd.SetOut(nil)
		RootCmd.SetErr(nil)
		RootCmd.SetArgs(nil)
	})

	err = RootCmd.Execute()
	ResetGlobalState()
	return out.String(), errOut.String(), err
}

// writeSecretsFile writes n random mnemonics to path and returns the content.
func writeSecretsFile(t *testing.T, path string, n int) string {
	t.Helper()
	var b strings.Builder
	for i := 0; i < n; i++ {
		var s mnemonic.Secret
		_, err := rand.Read(s[:])
		require.NoError(t, err)
		b.WriteString(mnemonic.Encode(&s) + "\n")
	}
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0o600))
	return b.String()
}

func readTestFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

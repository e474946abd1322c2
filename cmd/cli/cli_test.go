package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kcaldas/dbgconsole/pkg/config"
	"github.com/kcaldas/dbgconsole/pkg/logging"
	"github.com/kcaldas/dbgconsole/pkg/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cliResult struct {
	stdout  string
	stderr  string
	logFile string
	err     error
	session *session.Session
}

// runCLI executes the command tree with an empty config file and a recording
// TUI runner.
func runCLI(t *testing.T, stdin string, args ...string) cliResult {
	t.Helper()

	original := logging.GetGlobalLogger()
	t.Cleanup(func() { logging.SetGlobalLogger(original) })

	for _, key := range []string{config.EnvHistoryCapacity, config.EnvOutputCapacity, config.EnvPrompt, config.EnvLogLevel} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	logFile := filepath.Join(t.TempDir(), "debug.log")
	t.Setenv("DBGCONSOLE_DEBUG_FILE", logFile)
	t.Setenv("DBGCONSOLE_DEBUG_LEVEL", "")

	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, nil, 0o644))

	res := cliResult{logFile: logFile}
	cmd := NewRootCommand(func(s *session.Session) error {
		res.session = s
		return nil
	})

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--config", cfgPath}, args...))

	res.err = cmd.Execute()
	res.stdout = stdout.String()
	res.stderr = stderr.String()
	return res
}

func TestExec_Arguments(t *testing.T) {
	res := runCLI(t, "", "exec", "echo", "hello", "world")
	require.NoError(t, res.err)
	assert.Equal(t, "hello world\n", res.stdout)
}

func TestExec_UnknownCommand(t *testing.T) {
	res := runCLI(t, "", "exec", "frobnicate")
	require.NoError(t, res.err)
	assert.Equal(t, "Unknown command\n", res.stdout)
}

func TestExec_PipedLinesShareOneConsole(t *testing.T) {
	res := runCLI(t, "echo a\n\necho b\nhist\n", "exec")
	require.NoError(t, res.err)

	assert.Equal(t, "a\nb\n  1  echo a\n  2  echo b\n", res.stdout)
}

func TestExec_HistoryFlag(t *testing.T) {
	res := runCLI(t, "echo a\necho b\nhist\n", "exec", "--history", "1")
	require.NoError(t, res.err)

	assert.Equal(t, "a\nb\n  1  echo b\n", res.stdout)
}

func TestExec_InvalidFlag(t *testing.T) {
	res := runCLI(t, "", "exec", "--output", "0", "echo", "x")
	assert.ErrorContains(t, res.err, "output capacity")
	assert.Empty(t, res.stdout)
	assert.NotContains(t, res.stderr, "Usage:")
}

func TestCommands(t *testing.T) {
	res := runCLI(t, "", "commands")
	require.NoError(t, res.err)

	assert.Equal(t, "echo\nlistcmds @lc\nloremipsum @lor\nhistory @hist\n", res.stdout)
}

func TestRoot_StartsTUI(t *testing.T) {
	res := runCLI(t, "", "--prompt", "$ ", "--output", "7")
	require.NoError(t, res.err)
	require.NotNil(t, res.session)

	assert.Equal(t, "$ ", res.session.Prompt())
	assert.Equal(t, 7, res.session.Console().OutputCapacity())
}

func TestRoot_RejectsArguments(t *testing.T) {
	res := runCLI(t, "", "stray")
	assert.Error(t, res.err)
	assert.Nil(t, res.session)
	assert.Empty(t, res.stdout)
}

func TestRoot_LogLevelReachesDebugFile(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		written bool
	}{
		{"verbose", []string{"-v"}, true},
		{"default level", nil, false},
		{"quiet", []string{"-q"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := runCLI(t, "", tt.args...)
			require.NoError(t, res.err)
			require.NotNil(t, res.session)

			data, _ := os.ReadFile(res.logFile)
			assert.Equal(t, tt.written, strings.Contains(string(data), "console created"))
		})
	}
}

func TestReadStdinLines(t *testing.T) {
	lines, err := readStdinLines(strings.NewReader("one\ntwo\n\nthree"))
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two", "", "three"}, lines)
}

func TestHasStdinInput_NonFileReader(t *testing.T) {
	assert.True(t, hasStdinInput(strings.NewReader("")))
}

func TestRoot_Version(t *testing.T) {
	res := runCLI(t, "", "--version")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "dbgconsole version dev")
	assert.Nil(t, res.session)
}

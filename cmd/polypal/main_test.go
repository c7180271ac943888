package main

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/polypal/internal/testutil"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

// runCommand executes the root command with the given config file and stdin
// and returns what it printed.
func runCommand(t *testing.T, cfgPath, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("GEMINI_API_KEY", "")

	cmd := newRootCommand()
	stdout := &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetErr(stdout)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--config", cfgPath}, args...))
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), err
}

func setupBrokenConfigFile(t *testing.T) string {
	t.Helper()
	cfgPath := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("storage: [\n"), 0644))
	return cfgPath
}

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		debugMode bool
		wantDebug bool
		wantInfo  bool
	}{
		{
			name:      "debug mode enabled",
			debugMode: true,
			wantDebug: true,
			wantInfo:  true,
		},
		{
			name:      "debug mode disabled",
			debugMode: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupLogger(tt.debugMode)
			logger := slog.Default()
			assert.Equal(t, tt.wantDebug, logger.Enabled(context.Background(), slog.LevelDebug))
			assert.Equal(t, tt.wantInfo, logger.Enabled(context.Background(), slog.LevelInfo))
			assert.True(t, logger.Enabled(context.Background(), slog.LevelWarn))
		})
	}
}

func TestNewRootCommand(t *testing.T) {
	cmd := newRootCommand()

	assert.Equal(t, "polypal", cmd.Use)
	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.ElementsMatch(t, []string{"chat", "translate", "cards", "quiz", "errors", "settings", "scenarios"}, names)
}

func TestCommands_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "chat", args: []string{"chat"}},
		{name: "translate", args: []string{"translate", "bonjour"}},
		{name: "cards list", args: []string{"cards", "list"}},
		{name: "quiz", args: []string{"quiz"}},
		{name: "errors list", args: []string{"errors", "list"}},
		{name: "settings show", args: []string{"settings", "show"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCommand(t, setupBrokenConfigFile(t), "", tt.args...)
			assert.Error(t, err)
			assert.Contains(t, err.Error(), "configuration")
		})
	}
}

func TestTranslateCommand(t *testing.T) {
	cfgPath := testutil.SetupTestConfig(t, t.TempDir())

	output, err := runCommand(t, cfgPath, "", "translate", "Bonjour", "zxqv")
	require.NoError(t, err)
	assert.Equal(t, "bonjour → hola\nzxqv: no translation available\n", output)
}

func TestScenariosCommand(t *testing.T) {
	cfgPath := testutil.SetupTestConfig(t, t.TempDir())

	output, err := runCommand(t, cfgPath, "", "scenarios", "list")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(output), "\n")
	assert.Len(t, lines, 10)
	assert.Contains(t, lines[0], "cafe")
}

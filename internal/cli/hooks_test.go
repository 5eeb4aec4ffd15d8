package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariel-frischer/claude-notify/internal/claude"
)

func TestHooksCmd_PrintSnippet(t *testing.T) {
	t.Parallel()

	res := execute(t, testEnv(t, "", &recordingDisplayer{}), "hooks", "--binary", "claude-notify", "--strategy", "popup")
	require.Equal(t, ExitSuccess, res.code, res.stderr)

	var snippet map[string]map[string][]map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &snippet))
	require.Len(t, snippet["hooks"]["Notification"], 2)
	require.Len(t, snippet["hooks"]["Stop"], 1)
	assert.Equal(t, "permission_prompt", snippet["hooks"]["Notification"][0]["matcher"])
	assert.Contains(t, res.stdout, "claude-notify stop --strategy popup")
}

func TestHooksCmd_DefaultBinary(t *testing.T) {
	t.Parallel()

	res := execute(t, testEnv(t, "", &recordingDisplayer{}), "hooks")
	require.Equal(t, ExitSuccess, res.code, res.stderr)
	assert.Contains(t, res.stdout, "/usr/local/bin/claude-notify idle_prompt")
}

func TestHooksCmd_WriteAndCheck(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	claudeDir := filepath.Join(dir, claude.SettingsDir)
	require.NoError(t, os.MkdirAll(claudeDir, 0755))
	settingsPath := filepath.Join(claudeDir, claude.SettingsFileName)
	require.NoError(t, os.WriteFile(settingsPath, []byte(`{"permissions": {"allow": ["Read"]}}`), 0644))

	env := testEnv(t, "", &recordingDisplayer{})

	res := execute(t, env, "hooks", "--check", dir, "--binary", "claude-notify")
	assert.Equal(t, ExitFailure, res.code)
	assert.Contains(t, res.stdout, "NeedsHooks")
	assert.Contains(t, res.stderr, "hooks --write")

	res = execute(t, env, "hooks", "--write", dir, "--binary", "claude-notify")
	require.Equal(t, ExitSuccess, res.code, res.stderr)
	assert.Contains(t, res.stdout, "Added Notification/permission_prompt hook")
	assert.Contains(t, res.stdout, "Added Stop hook")

	res = execute(t, env, "hooks", "--write", dir, "--binary", "claude-notify")
	require.Equal(t, ExitSuccess, res.code, res.stderr)
	assert.Contains(t, res.stdout, "already installed")

	res = execute(t, env, "hooks", "--check", dir, "--binary", "claude-notify")
	assert.Equal(t, ExitSuccess, res.code, res.stderr)
	assert.Contains(t, res.stdout, "Configured")

	data, err := os.ReadFile(settingsPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"Read"`)
}

func TestHooksCmd_Errors(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		args       []string
		wantStderr string
	}{
		"bad strategy": {
			args:       []string{"hooks", "--strategy", "banner"},
			wantStderr: "unknown display strategy",
		},
		"write and check together": {
			args:       []string{"hooks", "--write", ".", "--check", "."},
			wantStderr: "none of the others can be",
		},
		"positional argument": {
			args:       []string{"hooks", "extra"},
			wantStderr: "unknown command",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			res := execute(t, testEnv(t, "", &recordingDisplayer{}), tt.args...)
			assert.Equal(t, ExitFailure, res.code)
			assert.Contains(t, res.stderr, tt.wantStderr)
		})
	}
}

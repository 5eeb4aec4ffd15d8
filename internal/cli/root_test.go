// Package cli_test tests the notifier entry point end to end with a recording displayer.
// Related: internal/cli/root.go, internal/cli/notify.go
// Tags: cli, notify, exit-codes, stdin, flags
package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariel-frischer/claude-notify/internal/notify"
	"github.com/ariel-frischer/claude-notify/internal/stdin"
)

// recordingDisplayer captures requests instead of showing them
type recordingDisplayer struct {
	mu       sync.Mutex
	err      error
	strategy notify.Strategy
	calls    []notify.Request
}

func (r *recordingDisplayer) Display(_ context.Context, req notify.Request) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, req)
	return r.err
}

// testEnv builds an environment whose stdin holds payload.
// An empty payload means nothing is piped.
func testEnv(t *testing.T, payload string, rec *recordingDisplayer) *environment {
	t.Helper()

	probe := stdin.Never
	var f *os.File
	if payload != "" {
		path := filepath.Join(t.TempDir(), "stdin.json")
		require.NoError(t, os.WriteFile(path, []byte(payload), 0644))
		var err error
		f, err = os.Open(path)
		require.NoError(t, err)
		t.Cleanup(func() { f.Close() })
		probe = stdin.Always
	}

	return &environment{
		stdin: f,
		probe: probe,
		newDisplayer: func(strategy notify.Strategy, _ zerolog.Logger) notify.Displayer {
			rec.strategy = strategy
			return rec
		},
		executable: func() (string, error) { return "/usr/local/bin/claude-notify", nil },
		lookPath:   func(string) (string, error) { return "/usr/bin/claude", nil },
	}
}

type runResult struct {
	code   int
	stdout string
	stderr string
}

func execute(t *testing.T, env *environment, args ...string) runResult {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), newRootCmd(env), args, &stdout, &stderr)
	return runResult{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func TestNotify(t *testing.T) {
	t.Parallel()

	assets := filepath.Join("opt", "assets")

	tests := map[string]struct {
		args         []string
		stdin        string
		displayErr   error
		wantCode     int
		wantCalls    int
		wantTitle    string
		wantMessage  string
		wantTimeout  time.Duration
		wantIcon     string
		wantStrategy notify.Strategy
		wantStderr   []string
	}{
		"stop with defaults": {
			args:         []string{"stop"},
			wantCalls:    1,
			wantTitle:    "Claude Code: Stopped",
			wantMessage:  "Claude has stopped execution.",
			wantTimeout:  10 * time.Second,
			wantStrategy: notify.StrategyToast,
		},
		"timeout flag and stdin message": {
			args:        []string{"idle_prompt", "--timeout", "5"},
			stdin:       `{"message":"hi"}`,
			wantCalls:   1,
			wantTitle:   "Claude Code: Waiting for Input",
			wantMessage: "hi",
			wantTimeout: 5 * time.Second,
		},
		"message flag beats stdin": {
			args:        []string{"permission_prompt", "--message", "from flag"},
			stdin:       `{"message":"from stdin"}`,
			wantCalls:   1,
			wantTitle:   "Claude Code: Permission Required",
			wantMessage: "from flag",
			wantTimeout: 10 * time.Second,
		},
		"whitespace message falls back to stdin": {
			args:        []string{"stop", "--message", "   "},
			stdin:       `{"message":"from stdin"}`,
			wantCalls:   1,
			wantTitle:   "Claude Code: Stopped",
			wantMessage: "from stdin",
			wantTimeout: 10 * time.Second,
		},
		"permission_request synonym": {
			args:        []string{"permission_request"},
			wantCalls:   1,
			wantTitle:   "Claude Code: Permission Required",
			wantMessage: "Claude is requesting permission to perform an action.",
			wantTimeout: 10 * time.Second,
		},
		"malformed stdin is a warning": {
			args:        []string{"stop"},
			stdin:       `{not json`,
			wantCalls:   1,
			wantTitle:   "Claude Code: Stopped",
			wantMessage: "Claude has stopped execution.",
			wantTimeout: 10 * time.Second,
			wantStderr:  []string{"Could not parse stdin JSON"},
		},
		"non-string stdin message ignored": {
			args:        []string{"idle_prompt"},
			stdin:       `{"message": 42}`,
			wantCalls:   1,
			wantTitle:   "Claude Code: Waiting for Input",
			wantMessage: "Claude is idle and waiting for your response.",
			wantTimeout: 10 * time.Second,
		},
		"popup strategy": {
			args:         []string{"permission_prompt", "--strategy", "popup", "--assets-dir", assets},
			wantCalls:    1,
			wantTitle:    "Claude Code: Permission Required",
			wantMessage:  "Claude is requesting permission to perform an action.",
			wantTimeout:  60 * time.Second,
			wantIcon:     filepath.Join(assets, "zunmon_3015.png"),
			wantStrategy: notify.StrategyPopup,
		},
		"toast icon from assets dir": {
			args:        []string{"idle_prompt", "--assets-dir", assets},
			wantCalls:   1,
			wantTitle:   "Claude Code: Waiting for Input",
			wantMessage: "Claude is idle and waiting for your response.",
			wantTimeout: 10 * time.Second,
			wantIcon:    filepath.Join(assets, "zunmon_3016.ico"),
		},
		"unknown hook type": {
			args:       []string{"bogus"},
			wantCode:   ExitFailure,
			wantStderr: []string{"Argument Error", `unknown hook type: "bogus"`, "permission_prompt"},
		},
		"missing hook type": {
			args:       []string{},
			wantCode:   ExitFailure,
			wantStderr: []string{"missing hook type"},
		},
		"too many arguments": {
			args:       []string{"stop", "extra"},
			wantCode:   ExitFailure,
			wantStderr: []string{"too many arguments"},
		},
		"negative timeout": {
			args:       []string{"stop", "--timeout", "-3"},
			wantCode:   ExitFailure,
			wantStderr: []string{"invalid timeout: -3"},
		},
		"non-numeric timeout": {
			args:       []string{"stop", "--timeout", "soon"},
			wantCode:   ExitFailure,
			wantStderr: []string{"Argument Error"},
		},
		"unknown strategy": {
			args:       []string{"stop", "--strategy", "banner"},
			wantCode:   ExitFailure,
			wantStderr: []string{`unknown display strategy: "banner"`},
		},
		"display failure": {
			args:       []string{"stop"},
			displayErr: errors.New("dbus down"),
			wantCode:   ExitFailure,
			wantCalls:  1,
			wantTitle:  "Claude Code: Stopped",
			wantStderr: []string{"dbus down"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			rec := &recordingDisplayer{err: tt.displayErr}
			res := execute(t, testEnv(t, tt.stdin, rec), tt.args...)

			assert.Equal(t, tt.wantCode, res.code, "stderr: %s", res.stderr)
			require.Len(t, rec.calls, tt.wantCalls)
			for _, want := range tt.wantStderr {
				assert.Contains(t, res.stderr, want)
			}
			if tt.wantCalls == 0 {
				return
			}

			req := rec.calls[0]
			assert.Equal(t, tt.wantTitle, req.Title)
			assert.Equal(t, "Claude Code", req.AppName)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, req.Message)
			}
			if tt.wantTimeout != 0 {
				assert.Equal(t, tt.wantTimeout, req.Timeout)
			}
			if tt.wantIcon != "" {
				assert.Equal(t, tt.wantIcon, req.IconPath)
			}
			if tt.wantStrategy != "" {
				assert.Equal(t, tt.wantStrategy, rec.strategy)
			}
		})
	}
}

func TestNotify_DryRun(t *testing.T) {
	t.Parallel()

	rec := &recordingDisplayer{}
	res := execute(t, testEnv(t, `{"message":"hi"}`, rec), "idle_prompt", "--dry-run", "--timeout", "7")

	require.Equal(t, ExitSuccess, res.code, res.stderr)
	assert.Empty(t, rec.calls, "dry run must not display")

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &got))
	assert.Equal(t, "idle_prompt", got["event"])
	assert.Equal(t, "Claude Code: Waiting for Input", got["title"])
	assert.Equal(t, "hi", got["message"])
	assert.Equal(t, float64(7), got["timeout_seconds"])
}

func TestNotify_ConfigFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "notify.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"strategy": "popup",
		"timeout": 20,
		"app_name": "Claude",
		"events": {"stop": {"title": "Done", "message": "All finished."}}
	}`), 0644))

	tests := map[string]struct {
		args        []string
		wantTitle   string
		wantMessage string
		wantTimeout time.Duration
		wantApp     string
		wantStrat   notify.Strategy
	}{
		"file values": {
			args:        []string{"stop", "--config", path},
			wantTitle:   "Done",
			wantMessage: "All finished.",
			wantTimeout: 20 * time.Second,
			wantApp:     "Claude",
			wantStrat:   notify.StrategyPopup,
		},
		"flags beat file": {
			args:        []string{"stop", "--config", path, "--timeout", "3", "--strategy", "toast", "--message", "flag"},
			wantTitle:   "Done",
			wantMessage: "flag",
			wantTimeout: 3 * time.Second,
			wantApp:     "Claude",
			wantStrat:   notify.StrategyToast,
		},
		"file text only for its event": {
			args:        []string{"idle_prompt", "--config", path},
			wantTitle:   "Claude Code: Waiting for Input",
			wantMessage: "Claude is idle and waiting for your response.",
			wantTimeout: 20 * time.Second,
			wantApp:     "Claude",
			wantStrat:   notify.StrategyPopup,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			rec := &recordingDisplayer{}
			res := execute(t, testEnv(t, "", rec), tt.args...)

			require.Equal(t, ExitSuccess, res.code, res.stderr)
			require.Len(t, rec.calls, 1)
			req := rec.calls[0]
			assert.Equal(t, tt.wantTitle, req.Title)
			assert.Equal(t, tt.wantMessage, req.Message)
			assert.Equal(t, tt.wantTimeout, req.Timeout)
			assert.Equal(t, tt.wantApp, req.AppName)
			assert.Equal(t, tt.wantStrat, rec.strategy)
		})
	}
}

func TestNotify_BadConfigFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	invalid := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(invalid, []byte(`{"strategy": "banner"}`), 0644))

	tests := map[string]struct {
		path       string
		wantStderr string
	}{
		"missing file":   {path: filepath.Join(dir, "missing.json"), wantStderr: "Configuration Error"},
		"invalid values": {path: invalid, wantStderr: "config validation failed"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			rec := &recordingDisplayer{}
			res := execute(t, testEnv(t, "", rec), "stop", "--config", tt.path)

			assert.Equal(t, ExitFailure, res.code)
			assert.Empty(t, rec.calls)
			assert.Contains(t, res.stderr, tt.wantStderr)
		})
	}
}

func TestExitCode(t *testing.T) {
	t.Parallel()
	assert.Equal(t, ExitSuccess, ExitCode(nil))
	assert.Equal(t, ExitFailure, ExitCode(errors.New("boom")))
}

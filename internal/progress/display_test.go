// Package progress_test tests case progress rendering, counters and failure lines.
// Related: internal/progress/display.go
// Tags: progress, display, selftest, spinner
package progress_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariel-frischer/claude-notify/internal/progress"
)

func TestDisplay_NonTTY(t *testing.T) {
	t.Parallel()

	var out, spin bytes.Buffer
	d := progress.NewDisplay(progress.TerminalCapabilities{}, &out, &spin)
	c := progress.CaseInfo{Name: "stop with JSON input", Number: 3, Total: 5}

	require.NoError(t, d.StartCase(c))
	d.PassCase(c)

	assert.Equal(t, "[3/5] Running stop with JSON input\n[OK] [3/5] stop with JSON input\n", out.String())
	assert.Empty(t, spin.String(), "spinner must not run without a terminal")
}

func TestDisplay_FailCase(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	d := progress.NewDisplay(progress.TerminalCapabilities{}, &out, &bytes.Buffer{})
	c := progress.CaseInfo{Name: "custom message", Number: 5, Total: 5}

	d.FailCase(c, errors.New("exit status 1"))

	assert.Equal(t, "[FAIL] [5/5] custom message: exit status 1\n", out.String())
}

func TestDisplay_StartCaseInvalid(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	d := progress.NewDisplay(progress.TerminalCapabilities{}, &out, &bytes.Buffer{})

	err := d.StartCase(progress.CaseInfo{Name: "x", Number: 2, Total: 1})
	assert.Error(t, err)
	assert.Empty(t, out.String())
}

func TestDisplay_StopSpinnerIdempotent(t *testing.T) {
	t.Parallel()

	d := progress.NewDisplay(progress.TerminalCapabilities{}, &bytes.Buffer{}, &bytes.Buffer{})
	d.StopSpinner()
	d.StopSpinner()
}

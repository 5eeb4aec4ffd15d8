// Package progress renders per-case progress for the self-test harness.
// It shows a spinner on stderr while a case runs and prints a one-line
// result once the case finishes.
package progress

import clierrors "github.com/ariel-frischer/claude-notify/internal/errors"

// CaseStatus represents the execution state of a self-test case
type CaseStatus int

const (
	// CasePending indicates the case has not started yet
	CasePending CaseStatus = iota
	// CaseRunning indicates the case is currently running
	CaseRunning
	// CasePassed indicates the case exited with status 0
	CasePassed
	// CaseFailed indicates the case exited nonzero or could not be started
	CaseFailed
)

// String returns the string representation of CaseStatus
func (s CaseStatus) String() string {
	switch s {
	case CasePending:
		return "pending"
	case CaseRunning:
		return "running"
	case CasePassed:
		return "passed"
	case CaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// CaseInfo represents one case for progress display
type CaseInfo struct {
	// Name is the human-readable case name (e.g., "permission_prompt with JSON input")
	Name string
	// Number is the current case number (1-based index)
	Number int
	// Total is the number of cases in the run
	Total int
}

// Validate checks that all CaseInfo fields meet validation requirements
func (c CaseInfo) Validate() error {
	if c.Name == "" {
		return clierrors.NewArgumentError("case name cannot be empty")
	}
	if c.Number <= 0 {
		return clierrors.NewArgumentError("case number must be > 0")
	}
	if c.Total <= 0 {
		return clierrors.NewArgumentError("total cases must be > 0")
	}
	if c.Number > c.Total {
		return clierrors.NewArgumentError("case number cannot exceed total cases")
	}
	return nil
}

// TerminalCapabilities encapsulates detected terminal features
type TerminalCapabilities struct {
	// IsTTY indicates whether the spinner stream is a terminal (vs pipe/redirect)
	IsTTY bool
	// SupportsColor indicates whether terminal supports ANSI color codes
	SupportsColor bool
	// SupportsUnicode indicates whether terminal supports Unicode characters
	SupportsUnicode bool
}

// Symbols defines the character set for visual indicators
type Symbols struct {
	// Checkmark is the success indicator ("✓" or "[OK]")
	Checkmark string
	// Failure is the failure indicator ("✗" or "[FAIL]")
	Failure string
	// SpinnerSet is the index into spinner.CharSets
	SpinnerSet int
}

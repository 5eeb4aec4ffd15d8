// Package errors provides structured CLI errors for claude-notify.
//
// Every failure the notifier can hit is classified into one ErrorCategory and
// carries optional usage text and remediation steps, so the entry point can
// print a uniform message to stderr and map it to an exit code.
package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCategory classifies a CLIError
type ErrorCategory int

const (
	// Argument is a usage error: unknown or missing hook type, bad flag value
	Argument ErrorCategory = iota
	// Configuration is a problem with the optional config file or the default table
	Configuration
	// Input is a hook input parse problem; it is reported but never fatal
	Input
	// Display is a failure of the toast or popup display primitive
	Display
	// Runtime is anything else
	Runtime
)

// String returns the heading printed above the error message
func (c ErrorCategory) String() string {
	switch c {
	case Argument:
		return "Argument Error"
	case Configuration:
		return "Configuration Error"
	case Input:
		return "Input Warning"
	case Display:
		return "Display Error"
	case Runtime:
		return "Runtime Error"
	default:
		return "Error"
	}
}

// CLIError is an error with a category, optional usage line and remediation steps
type CLIError struct {
	Category    ErrorCategory
	Message     string
	Usage       string
	Remediation []string
	Err         error
}

func (e *CLIError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause, if any
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewArgumentError creates an Argument error
func NewArgumentError(message string, remediation ...string) *CLIError {
	return &CLIError{Category: Argument, Message: message, Remediation: remediation}
}

// NewArgumentErrorWithUsage creates an Argument error that prints a usage line
func NewArgumentErrorWithUsage(message, usage string, remediation ...string) *CLIError {
	return &CLIError{Category: Argument, Message: message, Usage: usage, Remediation: remediation}
}

// NewConfigError creates a Configuration error
func NewConfigError(message string, remediation ...string) *CLIError {
	return &CLIError{Category: Configuration, Message: message, Remediation: remediation}
}

// NewInputError creates an Input warning
func NewInputError(message string, remediation ...string) *CLIError {
	return &CLIError{Category: Input, Message: message, Remediation: remediation}
}

// NewDisplayError creates a Display error
func NewDisplayError(message string, remediation ...string) *CLIError {
	return &CLIError{Category: Display, Message: message, Remediation: remediation}
}

// NewRuntimeError creates a Runtime error
func NewRuntimeError(message string, remediation ...string) *CLIError {
	return &CLIError{Category: Runtime, Message: message, Remediation: remediation}
}

// Wrap converts err into a CLIError of the given category.
// Returns nil if err is nil.
func Wrap(err error, category ErrorCategory, remediation ...string) *CLIError {
	if err == nil {
		return nil
	}
	return &CLIError{Category: category, Message: err.Error(), Remediation: remediation, Err: err}
}

// WrapWithMessage wraps err with a leading message ("message: err").
// Returns nil if err is nil.
func WrapWithMessage(err error, category ErrorCategory, message string, remediation ...string) *CLIError {
	if err == nil {
		return nil
	}
	return &CLIError{
		Category:    category,
		Message:     fmt.Sprintf("%s: %s", message, err.Error()),
		Remediation: remediation,
		Err:         err,
	}
}

// IsCLIError reports whether err is (or wraps) a CLIError
func IsCLIError(err error) bool {
	return AsCLIError(err) != nil
}

// AsCLIError returns the CLIError in err's chain, or nil
func AsCLIError(err error) *CLIError {
	var cliErr *CLIError
	if stderrors.As(err, &cliErr) {
		return cliErr
	}
	return nil
}

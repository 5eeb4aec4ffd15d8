package errors

import (
	"fmt"
	"strings"
)

const usageLine = "claude-notify <hook_type> [--timeout seconds] [--message text]"

// UnknownEventType is returned when the hook type argument is not in the closed set
func UnknownEventType(got string, valid []string) *CLIError {
	msg := fmt.Sprintf("unknown hook type: %q", got)
	if got == "" {
		msg = "missing hook type"
	}
	return NewArgumentErrorWithUsage(msg, usageLine,
		fmt.Sprintf("use one of: %s", strings.Join(valid, ", ")))
}

// MissingConfigEntry is returned when an event type has no default table entry
func MissingConfigEntry(eventType string) *CLIError {
	return NewConfigError(fmt.Sprintf("Unknown hook type: %s", eventType),
		"this is a bug: every hook type must have a default table entry")
}

// InvalidTimeout is returned for negative or out of range --timeout values
func InvalidTimeout(seconds int) *CLIError {
	return NewArgumentErrorWithUsage(fmt.Sprintf("invalid timeout: %d", seconds), usageLine,
		"pass a positive number of seconds, or omit --timeout for the default")
}

// InvalidStrategy is returned for an unknown --strategy value
func InvalidStrategy(got string) *CLIError {
	return NewArgumentError(fmt.Sprintf("unknown display strategy: %q", got),
		"use --strategy toast or --strategy popup")
}

// StdinParseError wraps a hook input decode failure
func StdinParseError(err error) *CLIError {
	return &CLIError{
		Category: Input,
		Message:  fmt.Sprintf("Could not parse stdin JSON: %v", err),
		Err:      err,
	}
}

// IconNotFound is returned by the popup strategy when its image is missing
func IconNotFound(path string) *CLIError {
	return NewDisplayError(fmt.Sprintf("image not found: %s", path),
		"check --assets-dir points at the directory holding the popup images")
}

// DisplayFailed wraps a failure of the underlying notification primitive
func DisplayFailed(strategy string, err error) *CLIError {
	return &CLIError{
		Category: Display,
		Message:  fmt.Sprintf("Error sending notification (%s): %v", strategy, err),
		Err:      err,
	}
}

// ConfigParseError wraps a failure loading the optional config file
func ConfigParseError(path string, err error) *CLIError {
	return &CLIError{
		Category:    Configuration,
		Message:     fmt.Sprintf("failed to load config %s: %v", path, err),
		Remediation: []string{"check the file is valid JSON", "run without --config to use the built-in defaults"},
		Err:         err,
	}
}

// ConfigValidationError wraps a validator failure
func ConfigValidationError(err error) *CLIError {
	return &CLIError{
		Category: Configuration,
		Message:  fmt.Sprintf("config validation failed: %v", err),
		Err:      err,
	}
}

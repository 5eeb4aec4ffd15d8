package errors

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// FormatError renders err with coloured headings.
// Non-CLIError values are rendered as Runtime errors.
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	return format(toCLIError(err, Runtime), true)
}

// FormatErrorPlain renders err without ANSI colour codes
func FormatErrorPlain(err error) string {
	if err == nil {
		return ""
	}
	return format(toCLIError(err, Runtime), false)
}

// FormatSimpleError renders any error under the given category
func FormatSimpleError(err error, category ErrorCategory) string {
	if err == nil {
		return ""
	}
	return format(&CLIError{Category: category, Message: err.Error()}, true)
}

// PrintError writes the formatted error to stderr
func PrintError(err error) {
	FprintError(os.Stderr, err)
}

// FprintError writes the formatted error to w.
// Colour is only used when w is a colour-capable terminal.
func FprintError(w io.Writer, err error) {
	if err == nil {
		return
	}
	useColor := w == os.Stderr && !color.NoColor
	fmt.Fprint(w, format(toCLIError(err, Runtime), useColor))
}

func toCLIError(err error, fallback ErrorCategory) *CLIError {
	if cliErr := AsCLIError(err); cliErr != nil {
		return cliErr
	}
	return &CLIError{Category: fallback, Message: err.Error(), Err: err}
}

func format(e *CLIError, useColor bool) string {
	heading := e.Category.String()
	usageLabel := "Usage:"
	fixLabel := "To fix this:"
	if useColor {
		red := color.New(color.FgRed, color.Bold).SprintFunc()
		yellow := color.New(color.FgYellow).SprintFunc()
		if e.Category == Input {
			heading = yellow(heading)
		} else {
			heading = red(heading)
		}
		usageLabel = yellow(usageLabel)
		fixLabel = yellow(fixLabel)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s\n", heading, e.Message)
	if e.Usage != "" {
		fmt.Fprintf(&b, "\n%s %s\n", usageLabel, e.Usage)
	}
	if len(e.Remediation) > 0 {
		fmt.Fprintf(&b, "\n%s\n", fixLabel)
		for _, step := range e.Remediation {
			fmt.Fprintf(&b, "  - %s\n", step)
		}
	}
	return b.String()
}

package progress

import (
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"
)

// Display orchestrates the display of case progress.
// Results go to out; the spinner only ever writes to spin.
type Display struct {
	capabilities TerminalCapabilities
	out          io.Writer
	spin         io.Writer
	spinner      *spinner.Spinner
	symbols      Symbols
}

// NewDisplay creates a display writing results to out and the spinner to spin
func NewDisplay(caps TerminalCapabilities, out, spin io.Writer) *Display {
	return &Display{
		capabilities: caps,
		out:          out,
		spin:         spin,
		symbols:      SelectSymbols(caps),
	}
}

// StartCase begins displaying progress for a case
func (d *Display) StartCase(c CaseInfo) error {
	if err := c.Validate(); err != nil {
		return err
	}

	msg := buildCaseMessage(c, "Running")

	if d.capabilities.IsTTY {
		d.spinner = spinner.New(
			spinner.CharSets[d.symbols.SpinnerSet],
			100*time.Millisecond,
			spinner.WithWriter(d.spin),
		)
		d.spinner.Suffix = " " + msg
		d.spinner.Start()
	} else {
		fmt.Fprintln(d.out, msg)
	}

	return nil
}

// PassCase stops the spinner and prints a success line
func (d *Display) PassCase(c CaseInfo) {
	d.StopSpinner()
	mark := checkmark(d.symbols, d.capabilities.SupportsColor)
	fmt.Fprintf(d.out, "%s %s %s\n", mark, formatCaseCounter(c.Number, c.Total), c.Name)
}

// FailCase stops the spinner and prints a failure line with the reason
func (d *Display) FailCase(c CaseInfo, reason error) {
	d.StopSpinner()
	mark := failureMark(d.symbols, d.capabilities.SupportsColor)
	fmt.Fprintf(d.out, "%s %s %s: %v\n", mark, formatCaseCounter(c.Number, c.Total), c.Name, reason)
}

// StopSpinner stops the spinner without printing a result
func (d *Display) StopSpinner() {
	if d.spinner != nil {
		d.spinner.Stop()
		d.spinner = nil
	}
}

package progress

import "fmt"

// formatCaseCounter returns the [N/Total] case counter string
func formatCaseCounter(number, total int) string {
	return fmt.Sprintf("[%d/%d]", number, total)
}

// buildCaseMessage constructs the message shown while a case runs
func buildCaseMessage(c CaseInfo, action string) string {
	return fmt.Sprintf("%s %s %s", formatCaseCounter(c.Number, c.Total), action, c.Name)
}

// checkmark returns the appropriate checkmark symbol
func checkmark(symbols Symbols, supportsColor bool) string {
	mark := symbols.Checkmark
	if supportsColor && symbols.Checkmark == "✓" {
		mark = "\033[32m" + mark + "\033[0m" // Green
	}
	return mark
}

// failureMark returns the appropriate failure symbol
func failureMark(symbols Symbols, supportsColor bool) string {
	mark := symbols.Failure
	if supportsColor && symbols.Failure == "✗" {
		mark = "\033[31m" + mark + "\033[0m" // Red
	}
	return mark
}

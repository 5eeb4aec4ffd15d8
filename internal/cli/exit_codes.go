package cli

// Exit codes for claude-notify. Every failure maps to ExitFailure;
// a malformed stdin payload is only a warning and keeps ExitSuccess.
const (
	// ExitSuccess indicates the notification was displayed
	ExitSuccess = 0
	// ExitFailure indicates an argument, configuration or display failure
	ExitFailure = 1
)

// ExitCode returns the exit code for an error returned by a command
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	return ExitFailure
}

// claude-notify - desktop notifications for Claude Code hooks

package main

import (
	"os"

	"github.com/ariel-frischer/claude-notify/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}

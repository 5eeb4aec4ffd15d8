//go:build !unix

package stdin

import (
	"os"

	"golang.org/x/term"
)

// Name identifies the backend compiled into this binary
const Name = "isatty"

type platformProbe struct{}

// Ready reports true when f is redirected from a pipe or file.
// A console handle never has a hook payload behind it.
func (platformProbe) Ready(f *os.File) bool {
	if f == nil {
		return false
	}
	return !term.IsTerminal(int(f.Fd()))
}

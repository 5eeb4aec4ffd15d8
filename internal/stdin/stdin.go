// Package stdin answers one question: is there input on a stream that can be
// read right now without waiting.
//
// Hook runners pipe a JSON payload to the notifier, but the same binary is
// also run by hand from a terminal with nothing piped to it. The check must
// return immediately in both cases. The backend is picked at build time:
//
//   - unix: poll(2) with a zero timeout (ready_poll.go)
//   - everything else: ready iff the stream is not a terminal (ready_tty.go)
package stdin

import "os"

// Probe reports whether f has input available immediately
type Probe interface {
	Ready(f *os.File) bool
}

// ProbeFunc adapts a plain function to Probe
type ProbeFunc func(f *os.File) bool

// Ready calls fn(f)
func (fn ProbeFunc) Ready(f *os.File) bool {
	return fn(f)
}

// Default returns the platform backend
func Default() Probe {
	return platformProbe{}
}

// Always is a Probe that reports every stream as ready
var Always Probe = ProbeFunc(func(*os.File) bool { return true })

// Never is a Probe that reports every stream as empty
var Never Probe = ProbeFunc(func(*os.File) bool { return false })

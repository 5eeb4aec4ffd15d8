//go:build unix

package stdin

import (
	"os"

	"golang.org/x/sys/unix"
)

// Name identifies the backend compiled into this binary
const Name = "poll"

type platformProbe struct{}

// Ready polls the descriptor with a zero timeout.
// POLLHUP counts as ready so a closed pipe or /dev/null is read (and found empty)
// instead of being reported as "no input".
func (platformProbe) Ready(f *os.File) bool {
	if f == nil {
		return false
	}
	fds := []unix.PollFd{{Fd: int32(f.Fd()), Events: unix.POLLIN}}
	for {
		n, err := unix.Poll(fds, 0)
		if err == unix.EINTR {
			continue
		}
		if err != nil || n == 0 {
			return false
		}
		return fds[0].Revents&(unix.POLLIN|unix.POLLHUP) != 0
	}
}

// Package hookinput decodes the optional JSON payload Claude Code writes to a
// hook's standard input.
//
// The payload is best effort. A missing, empty or malformed payload produces
// a zero Input; malformed input additionally returns an Input-category error
// that the caller reports as a warning and then ignores.
package hookinput

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	clierrors "github.com/ariel-frischer/claude-notify/internal/errors"
	"github.com/ariel-frischer/claude-notify/internal/stdin"
)

// Input is the subset of the hook payload the notifier looks at.
// Only Message affects the notification; the rest is logged at debug level.
type Input struct {
	Message          string `json:"-"`
	Title            string `json:"-"`
	SessionID        string `json:"session_id"`
	TranscriptPath   string `json:"transcript_path"`
	CWD              string `json:"cwd"`
	HookEventName    string `json:"hook_event_name"`
	NotificationType string `json:"notification_type"`
}

// payload keeps message and title loose so a non-string value is ignored
// rather than failing the whole decode.
type payload struct {
	Input
	Message json.RawMessage `json:"message"`
	Title   json.RawMessage `json:"title"`
}

// Empty reports whether no payload field was set
func (in Input) Empty() bool {
	return in == Input{}
}

// Read decodes one JSON object from r
func Read(r io.Reader) (Input, error) {
	if r == nil {
		return Input{}, nil
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return Input{}, clierrors.StdinParseError(err)
	}
	return Parse(data)
}

// Parse decodes data. Blank data is not an error.
func Parse(data []byte) (Input, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return Input{}, nil
	}
	if data[0] != '{' {
		if !json.Valid(data) {
			var v interface{}
			return Input{}, clierrors.StdinParseError(json.Unmarshal(data, &v))
		}
		// Valid JSON of another shape carries nothing we use.
		return Input{}, nil
	}

	var p payload
	if err := json.Unmarshal(data, &p); err != nil {
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) {
			return Input{}, clierrors.StdinParseError(err)
		}
		// A wrong-typed informational field: keep what decoded.
	}

	in := p.Input
	in.Message = stringField(p.Message)
	in.Title = stringField(p.Title)
	return in, nil
}

// ReadAvailable reads f only when probe says data is ready now
func ReadAvailable(f *os.File, probe stdin.Probe) (Input, error) {
	if f == nil || probe == nil || !probe.Ready(f) {
		return Input{}, nil
	}
	return Read(f)
}

func stringField(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

// String renders the informational fields for debug logging
func (in Input) String() string {
	return fmt.Sprintf("event=%q session=%q cwd=%q type=%q", in.HookEventName, in.SessionID, in.CWD, in.NotificationType)
}

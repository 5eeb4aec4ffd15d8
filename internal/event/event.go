// Package event defines the closed set of Claude Code hook types the notifier
// reacts to, and the read-only table of per-type defaults.
package event

import (
	"sort"

	clierrors "github.com/ariel-frischer/claude-notify/internal/errors"
)

// Type is the hook type passed as the first positional argument
type Type string

const (
	// PermissionPrompt fires when Claude asks for permission to use a tool
	PermissionPrompt Type = "permission_prompt"
	// PermissionRequest is accepted as a synonym of PermissionPrompt
	PermissionRequest Type = "permission_request"
	// IdlePrompt fires when Claude has been waiting for input
	IdlePrompt Type = "idle_prompt"
	// Stop fires when Claude finishes responding
	Stop Type = "stop"
)

// Defaults holds the title, message and asset filenames used for one hook type
// when nothing overrides them.
type Defaults struct {
	Title   string
	Message string
	// ToastIcon is the icon filename used by the native toast strategy
	ToastIcon string
	// PopupImage is the background image filename used by the popup strategy
	PopupImage string
}

var permissionDefaults = Defaults{
	Title:      "Claude Code: Permission Required",
	Message:    "Claude is requesting permission to perform an action.",
	ToastIcon:  "zunmon_3015.ico",
	PopupImage: "zunmon_3015.png",
}

// table is never handed out; callers get copies through Lookup.
var table = map[Type]Defaults{
	PermissionPrompt:  permissionDefaults,
	PermissionRequest: permissionDefaults,
	IdlePrompt: {
		Title:      "Claude Code: Waiting for Input",
		Message:    "Claude is idle and waiting for your response.",
		ToastIcon:  "zunmon_3016.ico",
		PopupImage: "zunmon_3016.png",
	},
	Stop: {
		Title:      "Claude Code: Stopped",
		Message:    "Claude has stopped execution.",
		ToastIcon:  "zunmon_3001.ico",
		PopupImage: "zunmon_3001.png",
	},
}

// Lookup returns the defaults for t
func Lookup(t Type) (Defaults, bool) {
	d, ok := table[t]
	return d, ok
}

// Types returns every known hook type in sorted order
func Types() []Type {
	types := make([]Type, 0, len(table))
	for t := range table {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

// Names returns Types as plain strings, for cobra ValidArgs and help text
func Names() []string {
	types := Types()
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}
	return names
}

// Valid reports whether t is in the closed set
func (t Type) Valid() bool {
	_, ok := table[t]
	return ok
}

// Parse converts a command-line argument into a Type
func Parse(s string) (Type, error) {
	t := Type(s)
	if !t.Valid() {
		return "", clierrors.UnknownEventType(s, Names())
	}
	return t, nil
}

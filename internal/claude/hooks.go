package claude

import (
	"fmt"
	"strings"
)

// Hook is one command hook registered under a Claude Code hook event.
type Hook struct {
	// Event is the settings key, e.g. "Notification" or "Stop"
	Event string
	// Matcher filters the event; empty matches everything
	Matcher string
	Command string
}

// NotifierHooks returns the hooks that run binary for each supported event.
// Notification events are split by matcher so each gets its own defaults.
func NotifierHooks(binary string, extraArgs ...string) []Hook {
	cmd := func(hookType string) string {
		parts := append([]string{quote(binary), hookType}, extraArgs...)
		return strings.Join(parts, " ")
	}
	return []Hook{
		{Event: "Notification", Matcher: "permission_prompt", Command: cmd("permission_prompt")},
		{Event: "Notification", Matcher: "idle_prompt", Command: cmd("idle_prompt")},
		{Event: "Stop", Command: cmd("stop")},
	}
}

// quote wraps paths containing spaces for the shell Claude Code runs hooks in.
func quote(s string) string {
	if strings.ContainsAny(s, " \t") {
		return fmt.Sprintf("%q", s)
	}
	return s
}

// Snippet returns a settings fragment holding only hooks.
func Snippet(hooks []Hook) map[string]interface{} {
	s := &Settings{data: make(map[string]interface{})}
	s.AddHooks(hooks)
	return s.data
}

// getHooks returns the hooks object, creating it if necessary.
func (s *Settings) getHooks() map[string]interface{} {
	hooks, ok := s.data["hooks"].(map[string]interface{})
	if !ok {
		hooks = make(map[string]interface{})
		s.data["hooks"] = hooks
	}
	return hooks
}

// matcherGroups returns the matcher groups registered for event.
func (s *Settings) matcherGroups(event string) []interface{} {
	groups, _ := s.getHooks()[event].([]interface{})
	return groups
}

// HasHook reports whether h's command is registered for its event and matcher.
func (s *Settings) HasHook(h Hook) bool {
	for _, g := range s.matcherGroups(h.Event) {
		group, ok := g.(map[string]interface{})
		if !ok {
			continue
		}
		matcher, _ := group["matcher"].(string)
		if matcher != h.Matcher {
			continue
		}
		entries, _ := group["hooks"].([]interface{})
		for _, e := range entries {
			entry, ok := e.(map[string]interface{})
			if !ok {
				continue
			}
			if command, _ := entry["command"].(string); command == h.Command {
				return true
			}
		}
	}
	return false
}

// AddHook registers h if it is not already present.
// Returns true when the settings changed.
func (s *Settings) AddHook(h Hook) bool {
	if s.HasHook(h) {
		return false
	}

	entry := map[string]interface{}{
		"type":    "command",
		"command": h.Command,
	}

	groups := s.matcherGroups(h.Event)
	for _, g := range groups {
		group, ok := g.(map[string]interface{})
		if !ok {
			continue
		}
		if matcher, _ := group["matcher"].(string); matcher == h.Matcher {
			entries, _ := group["hooks"].([]interface{})
			group["hooks"] = append(entries, entry)
			return true
		}
	}

	group := map[string]interface{}{"hooks": []interface{}{entry}}
	if h.Matcher != "" {
		group["matcher"] = h.Matcher
	}
	s.getHooks()[h.Event] = append(groups, group)
	return true
}

// AddHooks adds multiple hooks, skipping duplicates.
// Returns the hooks that were actually added.
func (s *Settings) AddHooks(hooks []Hook) []Hook {
	var added []Hook
	for _, h := range hooks {
		if s.AddHook(h) {
			added = append(added, h)
		}
	}
	return added
}

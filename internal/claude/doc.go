// Package claude manages the hooks section of Claude Code settings files so
// that claude-notify runs on Notification and Stop events.
//
// The package supports:
//   - Loading and parsing .claude/settings.local.json
//   - Rendering the hooks snippet for the current binary
//   - Adding notifier hooks while preserving every other setting
//   - Atomic file writes to prevent corruption
package claude

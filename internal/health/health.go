// Package health runs the checks behind `claude-notify doctor`: are the
// notification assets in place and can this build show every strategy.
package health

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/ariel-frischer/claude-notify/internal/event"
	"github.com/ariel-frischer/claude-notify/internal/popup"
)

// CheckResult represents the result of a single health check
type CheckResult struct {
	Name    string
	Passed  bool
	Message string
	// Optional checks are reported but never fail the report
	Optional bool
}

// HealthReport contains all health check results
type HealthReport struct {
	Checks []CheckResult
	Passed bool
}

// Options configure RunHealthChecks
type Options struct {
	AssetsDir string
	// LookPath finds executables; nil means exec.LookPath
	LookPath func(file string) (string, error)
	// PopupAvailable overrides the build's popup support; nil means popup.Available
	PopupAvailable *bool
}

// RunHealthChecks runs all health checks and returns a report
func RunHealthChecks(opts Options) *HealthReport {
	report := &HealthReport{
		Checks: make([]CheckResult, 0),
		Passed: true,
	}
	add := func(c CheckResult) {
		report.Checks = append(report.Checks, c)
		if !c.Passed && !c.Optional {
			report.Passed = false
		}
	}

	add(CheckAssetsDir(opts.AssetsDir))

	for _, name := range assetNames() {
		toast := strings.HasSuffix(name, ".ico")
		add(CheckAsset(opts.AssetsDir, name, !toast))
	}

	available := popup.Available
	if opts.PopupAvailable != nil {
		available = *opts.PopupAvailable
	}
	add(CheckPopupSupport(available))

	lookPath := opts.LookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	add(CheckClaudeCLI(lookPath))

	return report
}

// assetNames lists each distinct asset filename once, in table order
func assetNames() []string {
	seen := make(map[string]bool)
	var names []string
	for _, t := range event.Types() {
		d, _ := event.Lookup(t)
		for _, name := range []string{d.ToastIcon, d.PopupImage} {
			if name != "" && !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	return names
}

// CheckAssetsDir checks that the assets directory exists
func CheckAssetsDir(dir string) CheckResult {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return CheckResult{
			Name:    "Assets directory",
			Passed:  false,
			Message: fmt.Sprintf("assets directory not found: %s", dir),
		}
	}
	return CheckResult{
		Name:    "Assets directory",
		Passed:  true,
		Message: dir,
	}
}

// CheckAsset checks one asset file.
// Toast icons are optional since a missing icon is dropped; popup images must decode.
func CheckAsset(dir, name string, required bool) CheckResult {
	path := filepath.Join(dir, name)
	result := CheckResult{Name: name, Optional: !required}

	if required {
		if _, err := popup.LoadImage(path); err != nil {
			result.Message = err.Error()
			return result
		}
	} else if info, err := os.Stat(path); err != nil || info.IsDir() {
		result.Message = fmt.Sprintf("icon not found, toasts will show without it: %s", path)
		return result
	}

	result.Passed = true
	result.Message = path
	return result
}

// CheckPopupSupport reports whether the popup strategy was compiled in
func CheckPopupSupport(available bool) CheckResult {
	if !available {
		return CheckResult{
			Name:     "Popup support",
			Passed:   false,
			Optional: true,
			Message:  "built with nopopup; only --strategy toast works",
		}
	}
	return CheckResult{
		Name:    "Popup support",
		Passed:  true,
		Message: "popup strategy available",
	}
}

// CheckClaudeCLI checks if the Claude CLI is available.
// The notifier runs without it, so the check is optional.
func CheckClaudeCLI(lookPath func(string) (string, error)) CheckResult {
	path, err := lookPath("claude")
	if err != nil {
		return CheckResult{
			Name:     "Claude CLI",
			Passed:   false,
			Optional: true,
			Message:  "Claude CLI not found in PATH",
		}
	}

	return CheckResult{
		Name:    "Claude CLI",
		Passed:  true,
		Message: path,
	}
}

// FormatReport formats the health report for console output
func FormatReport(report *HealthReport) string {
	var b strings.Builder

	for _, check := range report.Checks {
		switch {
		case check.Passed:
			fmt.Fprintf(&b, "✓ %s: %s\n", check.Name, check.Message)
		case check.Optional:
			fmt.Fprintf(&b, "! %s: %s\n", check.Name, check.Message)
		default:
			fmt.Fprintf(&b, "✗ Error: %s: %s\n", check.Name, check.Message)
		}
	}

	return b.String()
}

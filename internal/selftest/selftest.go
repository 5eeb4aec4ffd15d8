// Package selftest re-runs the claude-notify binary against canned hook
// inputs so a user can check every hook type on their desktop at once.
package selftest

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/ariel-frischer/claude-notify/internal/progress"
)

// Case is one canned invocation
type Case struct {
	Name string
	Args []string
	// Stdin is piped to the process; empty means no input
	Stdin string
}

// Cases returns the canned invocations in run order
func Cases() []Case {
	return []Case{
		{
			Name:  "permission_prompt with JSON input",
			Args:  []string{"permission_prompt"},
			Stdin: `{"message": "Claude is requesting permission to run: git status", "type": "permission_prompt"}`,
		},
		{
			Name:  "idle_prompt with JSON input",
			Args:  []string{"idle_prompt"},
			Stdin: `{"message": "Claude has been idle for 30 seconds and is waiting for your response.", "type": "idle_prompt"}`,
		},
		{
			Name:  "stop with JSON input",
			Args:  []string{"stop"},
			Stdin: `{"message": "Claude execution has been stopped by the user.", "type": "stop"}`,
		},
		{
			Name: "default message (no stdin input)",
			Args: []string{"permission_prompt"},
		},
		{
			Name: "--message argument",
			Args: []string{"idle_prompt", "--message", "Custom test message"},
		},
	}
}

// Result is the outcome of one case
type Result struct {
	Case     Case
	Stdout   string
	Stderr   string
	ExitCode int
	// Err is set when the process could not be run at all
	Err error
}

// Passed reports whether the case ran and exited 0
func (r Result) Passed() bool {
	return r.Err == nil && r.ExitCode == 0
}

// Runner executes one case
type Runner interface {
	Run(ctx context.Context, c Case) Result
}

// ExecRunner runs each case as a child process of Binary
type ExecRunner struct {
	Binary string
	// ExtraArgs are appended to every case, e.g. --dry-run
	ExtraArgs []string
}

// Run executes c and captures its output
func (r ExecRunner) Run(ctx context.Context, c Case) Result {
	args := append(append([]string{}, c.Args...), r.ExtraArgs...)
	cmd := exec.CommandContext(ctx, r.Binary, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if c.Stdin != "" {
		cmd.Stdin = strings.NewReader(c.Stdin)
	}

	res := Result{Case: c}
	err := cmd.Run()
	res.Stdout = stdout.String()
	res.Stderr = stderr.String()

	var exitErr *exec.ExitError
	switch {
	case err == nil:
	case errors.As(err, &exitErr):
		res.ExitCode = exitErr.ExitCode()
	default:
		res.ExitCode = -1
		res.Err = err
	}
	return res
}

// Harness runs cases in order and reports each one
type Harness struct {
	runner  Runner
	display *progress.Display
	out     io.Writer
}

// New creates a harness. Per-case reports are written to out.
func New(runner Runner, display *progress.Display, out io.Writer) *Harness {
	return &Harness{runner: runner, display: display, out: out}
}

// Run executes every case. A failing case never stops the run.
func (h *Harness) Run(ctx context.Context, cases []Case) []Result {
	results := make([]Result, 0, len(cases))
	for i, c := range cases {
		info := progress.CaseInfo{Name: c.Name, Number: i + 1, Total: len(cases)}
		if err := h.display.StartCase(info); err != nil {
			results = append(results, Result{Case: c, ExitCode: -1, Err: err})
			continue
		}

		res := h.runner.Run(ctx, c)
		if res.Passed() {
			h.display.PassCase(info)
		} else {
			h.display.FailCase(info, failureReason(res))
		}
		h.report(res)
		results = append(results, res)

		if ctx.Err() != nil {
			break
		}
	}
	return results
}

func (h *Harness) report(res Result) {
	fmt.Fprintf(h.out, "STDOUT: %s\n", strings.TrimRight(res.Stdout, "\n"))
	if res.Stderr != "" {
		fmt.Fprintf(h.out, "STDERR: %s\n", strings.TrimRight(res.Stderr, "\n"))
	}
	fmt.Fprintf(h.out, "Return code: %d\n\n", res.ExitCode)
}

func failureReason(res Result) error {
	if res.Err != nil {
		return res.Err
	}
	return fmt.Errorf("exit status %d", res.ExitCode)
}

// Failed counts the results that did not pass
func Failed(results []Result) int {
	n := 0
	for _, r := range results {
		if !r.Passed() {
			n++
		}
	}
	return n
}

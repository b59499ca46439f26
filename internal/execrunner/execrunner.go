// internal/execrunner/execrunner.go
// Package execrunner is the single place the application spawns external
// processes. Everything that touches docker goes through the Runner
// interface so the command surface can be exercised in tests without a
// container runtime present.
package execrunner

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Result captures the outcome of a single external command invocation.
type Result struct {
	// ExitCode is the process exit status; 0 on success.
	ExitCode int
	// Stdout is the captured standard output of the process.
	Stdout string
	// Stderr is the captured standard error of the process.
	Stderr string
}

// Runner executes a single external command and reports its outcome.
// A non-zero exit is returned both in Result.ExitCode and as a non-nil
// error so callers can short-circuit without inspecting the code.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (Result, error)
}

// ExecRunner runs commands with os/exec. An optional Prefix is prepended
// to every invocation, which is how the tool reaches a runtime living
// behind a shell bridge (for example Prefix = ["wsl"] on a Windows host
// whose docker daemon runs inside WSL).
type ExecRunner struct {
	// Prefix is prepended to every command line before execution.
	Prefix []string
}

// NewExecRunner returns an ExecRunner with the given bridge prefix.
// A nil or empty prefix runs commands directly on the host.
func NewExecRunner(prefix []string) *ExecRunner {
	return &ExecRunner{Prefix: prefix}
}

// Run executes the command and waits for it to finish. Stdout and stderr
// are captured in full. If the process exits non-zero the returned error
// includes the command line and a trimmed copy of stderr.
func (e *ExecRunner) Run(ctx context.Context, name string, args ...string) (Result, error) {
	argv := append(append([]string{}, e.Prefix...), name)
	argv = append(argv, args...)

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			res.ExitCode = exitErr.ExitCode()
			return res, fmt.Errorf("%s exited with status %d: %s",
				strings.Join(argv, " "), res.ExitCode, strings.TrimSpace(res.Stderr))
		}
		// Spawn failure: the binary is missing or the context was canceled.
		res.ExitCode = -1
		return res, fmt.Errorf("could not run %s: %w", strings.Join(argv, " "), err)
	}

	return res, nil
}

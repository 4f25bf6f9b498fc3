package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// CommandResult captures the outcome of one external process invocation.
type CommandResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// CommandRunner executes an external command and captures its output.
// Implementations return a non-nil error when the process could not be started
// or exited unsuccessfully; the result is populated as far as possible either way.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) (CommandResult, error)
}

// ExecRunner runs commands via os/exec. Env entries are appended to the
// current process environment.
type ExecRunner struct {
	Env []string
}

// Run executes one command and captures stdout/stderr and exit code.
func (r ExecRunner) Run(ctx context.Context, name string, args ...string) (CommandResult, error) {
	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec
	if len(r.Env) > 0 {
		cmd.Env = append(os.Environ(), r.Env...)
	}
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := CommandResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	if err != nil {
		result.ExitCode = -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
		}
		return result, err
	}
	return result, nil
}

// RunTool executes a command through runner and converts an unsuccessful exit
// into a *ToolExecutionError. Context cancellation is reported as-is so callers
// can tell an interrupted run from a failing tool.
func RunTool(ctx context.Context, runner CommandRunner, name string, args ...string) (CommandResult, error) {
	if runner == nil {
		runner = ExecRunner{}
	}
	result, err := runner.Run(ctx, name, args...)
	if err == nil && result.ExitCode == 0 {
		return result, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return result, fmt.Errorf("%s: %w", name, ctxErr)
	}
	exitCode := result.ExitCode
	if exitCode == 0 {
		exitCode = -1
	}
	return result, &ToolExecutionError{
		Tool:     name,
		Args:     append([]string(nil), args...),
		ExitCode: exitCode,
		Stderr:   result.Stderr,
		Err:      err,
	}
}

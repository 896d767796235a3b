// Package runner runs external processes on behalf of the generator.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/opmodel/sire/internal/output"
)

// Command describes one process invocation.
type Command struct {
	Name string
	Args []string

	// Dir is the working directory. Empty means the current directory.
	Dir string
}

// String renders the command line for logs.
func (c Command) String() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

// Result is the outcome of a process that ran to completion.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// OK reports whether the process exited zero.
func (r Result) OK() bool {
	return r.ExitCode == 0
}

// Runner runs commands. A non-zero exit is reported in Result, not as an
// error; the error is reserved for processes that could not run at all.
type Runner interface {
	Run(ctx context.Context, cmd Command) (Result, error)
}

// Func adapts a function to the Runner interface.
type Func func(ctx context.Context, cmd Command) (Result, error)

// Run calls f.
func (f Func) Run(ctx context.Context, cmd Command) (Result, error) {
	return f(ctx, cmd)
}

// Exec runs commands with os/exec.
type Exec struct{}

// Run starts the process and waits for it. Output is captured.
func (Exec) Run(ctx context.Context, cmd Command) (Result, error) {
	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	c.Dir = cmd.Dir

	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr

	output.Debug("running command", "cmd", cmd.String(), "dir", cmd.Dir)

	err := c.Run()
	res := Result{Stdout: stdout.String(), Stderr: stderr.String()}
	if err == nil {
		return res, nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return res, fmt.Errorf("running %s: %w", cmd.Name, ctxErr)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		res.ExitCode = exitErr.ExitCode()
		output.Debug("command exited non-zero", "cmd", cmd.String(), "code", res.ExitCode)
		return res, nil
	}

	return res, fmt.Errorf("running %s: %w", cmd.Name, err)
}

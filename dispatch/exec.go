package dispatch

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
)

// ExecInvoker runs the tool as a child process with its streams attached to the
// given files, normally the controlling terminal.
type ExecInvoker struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecInvoker returns an invoker bound to the process's own stdio.
func NewExecInvoker() *ExecInvoker {
	return &ExecInvoker{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

// Invoke implements Invoker.
func (e *ExecInvoker) Invoke(ctx context.Context, argv []string) error {
	if len(argv) == 0 {
		return errors.New("empty command")
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdin = e.Stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr

	err := cmd.Run()

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		failure := &ToolFailure{Argv: argv, ExitCode: exitErr.ExitCode()}
		// -1 means the child was killed by a signal; keep the reason.
		if failure.ExitCode == -1 {
			failure.Detail = exitErr.Error()
		}
		return failure
	}
	return err
}

package utils

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

var (
	ErrCommandFailed   = errors.New("command failed")
	ErrCommandNotFound = errors.New("command not found")
	ErrEmptyCommand    = errors.New("empty command")
)

// Runner is the only place where external processes are started.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (string, error)
	Shell(ctx context.Context, command string) (string, error)
}

type ExecRunner struct {
	ShellPath string        // defaults to "sh"
	Timeout   time.Duration // zero means wait forever
}

func NewExecRunner(timeout time.Duration) *ExecRunner {
	return &ExecRunner{ShellPath: "sh", Timeout: timeout}
}

// Run executes name with args and returns its stdout with trailing whitespace removed.
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	if name == "" {
		return "", ErrEmptyCommand
	}
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	var stdout bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	// a killed shell can leave children holding the pipe open
	cmd.WaitDelay = time.Second

	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		switch {
		case errors.As(err, &exitErr):
			return "", fmt.Errorf("%w: %s exited with code %d", ErrCommandFailed, name, exitErr.ExitCode())
		case errors.Is(err, exec.ErrNotFound):
			return "", fmt.Errorf("%w: %s", ErrCommandNotFound, name)
		default:
			return "", fmt.Errorf("running %s: %w", name, err)
		}
	}
	return strings.TrimRight(stdout.String(), " \t\r\n"), nil
}

// Shell runs command through the shell, so pipes and globs work as typed in the config.
func (r *ExecRunner) Shell(ctx context.Context, command string) (string, error) {
	if strings.TrimSpace(command) == "" {
		return "", ErrEmptyCommand
	}
	shell := r.ShellPath
	if shell == "" {
		shell = "sh"
	}
	return r.Run(ctx, shell, "-c", command)
}

// CommandExists reports whether name is an executable file somewhere in PATH.
func CommandExists(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

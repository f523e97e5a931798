// Package shell runs external programs and maps their failures to typed errors.
package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"unicode/utf8"
)

// Runner executes an external program and captures its standard output.
type Runner interface {
	// Execute runs name with args, using dir as the working directory when
	// non-empty. On success it returns the captured stdout verbatim.
	Execute(ctx context.Context, name string, args []string, dir string) (string, error)
}

// Finder locates an external program on the search path.
type Finder interface {
	LookPath(name string) (string, error)
}

// RunError reports a command that could not be started at all.
type RunError struct {
	Name string
	Args []string
	Err  error
}

func (e *RunError) Error() string {
	return fmt.Sprintf("command execution failed: %v\nCommand: %s", e.Err, commandLine(e.Name, e.Args))
}

func (e *RunError) Unwrap() error { return e.Err }

// ExitError reports a command that ran and exited with a non-zero status.
// Code is -1 when the process was terminated by a signal. Stdout and Stderr
// hold the captured streams, lossily decoded for diagnostics.
type ExitError struct {
	Name   string
	Args   []string
	Code   int
	Stdout string
	Stderr string
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("command returned non-zero exit code (exit code: %d)\nCommand: %s\nstdout: %s\nstderr: %s",
		e.Code, commandLine(e.Name, e.Args), e.Stdout, e.Stderr)
}

// InvalidOutputError reports a command that exited successfully but wrote
// stdout that is not valid UTF-8.
type InvalidOutputError struct {
	Name string
	Args []string
}

func (e *InvalidOutputError) Error() string {
	return fmt.Sprintf("command output is not valid UTF-8\nCommand: %s", commandLine(e.Name, e.Args))
}

func commandLine(name string, args []string) string {
	if len(args) == 0 {
		return name
	}
	return name + " " + strings.Join(args, " ")
}

// OSRunner runs programs through os/exec. The child environment is reduced
// to PATH alone so invoked commands never see inherited secrets.
type OSRunner struct{}

// New returns a Runner backed by the operating system.
func New() *OSRunner {
	return &OSRunner{}
}

// Execute implements Runner. It spawns exactly one child process and blocks
// until it exits; no timeout is imposed here.
func (r *OSRunner) Execute(ctx context.Context, name string, args []string, dir string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = []string{"PATH=" + os.Getenv("PATH")}
	if dir != "" {
		cmd.Dir = dir
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", &ExitError{
				Name:   name,
				Args:   args,
				Code:   exitErr.ExitCode(),
				Stdout: lossyString(stdout.Bytes()),
				Stderr: lossyString(stderr.Bytes()),
			}
		}
		return "", &RunError{Name: name, Args: args, Err: err}
	}

	out := stdout.Bytes()
	if !utf8.Valid(out) {
		return "", &InvalidOutputError{Name: name, Args: args}
	}
	return string(out), nil
}

// LookPath implements Finder.
func (r *OSRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

func lossyString(b []byte) string {
	return strings.ToValidUTF8(string(b), "�")
}

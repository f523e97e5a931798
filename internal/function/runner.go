package function

import (
	"context"
	"errors"
	"strings"
)

// InputPlaceholder is the literal token replaced by the run-time input value.
const InputPlaceholder = "$input"

// ErrMissingInput is returned when a command contains the placeholder and no
// input was supplied for the run.
var ErrMissingInput = errors.New("missing required input variable: command contains $input but no input was provided")

// CommandRunner executes a single raw command line.
type CommandRunner interface {
	Execute(ctx context.Context, command string) (string, error)
}

// Runner replays a function's commands in order through a CommandRunner.
type Runner struct {
	cmd CommandRunner
}

// NewRunner returns a Runner that delegates each command to cmd.
func NewRunner(cmd CommandRunner) *Runner {
	return &Runner{cmd: cmd}
}

// Run executes fn's commands sequentially and returns their outputs in
// command order, one per command.
//
// input substitutes every occurrence of the placeholder; nil means no input
// was supplied, and the first placeholder-bearing command aborts the run
// before executing anything further. Substitution is literal: the value is
// not escaped, so whitespace in it splits into separate arguments
// downstream, and the replaced text is not rescanned for placeholders.
// The first command failure aborts the run with that failure alone.
func (r *Runner) Run(ctx context.Context, fn *Function, input *string) ([]string, error) {
	outputs := make([]string, 0, len(fn.Commands))
	for _, command := range fn.Commands {
		if strings.Contains(command, InputPlaceholder) {
			if input == nil {
				return nil, ErrMissingInput
			}
			command = strings.ReplaceAll(command, InputPlaceholder, *input)
		}

		out, err := r.cmd.Execute(ctx, command)
		if err != nil {
			return nil, err
		}
		outputs = append(outputs, out)
	}
	return outputs, nil
}

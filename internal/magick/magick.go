// Package magick invokes the ImageMagick command-line tool.
package magick

import (
	"context"
	"strings"

	"github.com/magickmcp/magick-mcp/internal/shell"
)

// Program is the name of the ImageMagick binary this package invokes.
const Program = "magick"

// Runner executes raw ImageMagick command lines.
type Runner struct {
	shell     shell.Runner
	workspace string
}

// NewRunner returns a Runner that executes commands in workspace when
// non-empty, otherwise in the caller's working directory.
func NewRunner(sh shell.Runner, workspace string) *Runner {
	return &Runner{shell: sh, workspace: workspace}
}

// Execute splits command on whitespace and runs the magick binary with the
// resulting tokens as arguments. There is no quoting or escaping: an
// argument containing spaces cannot be expressed. Tokens are never
// interpreted here, flag-shaped or not.
func (r *Runner) Execute(ctx context.Context, command string) (string, error) {
	args := strings.Fields(command)
	return r.shell.Execute(ctx, Program, args, r.workspace)
}

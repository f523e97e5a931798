package magick

import (
	"context"
	"fmt"
	"runtime"

	"github.com/magickmcp/magick-mcp/internal/shell"
)

const downloadURL = "https://imagemagick.org/script/download.php"

// Checker reports whether the ImageMagick binary is available.
type Checker struct {
	shell  shell.Runner
	finder shell.Finder
}

// NewChecker returns a Checker that looks up and invokes the magick binary.
func NewChecker(sh shell.Runner, finder shell.Finder) *Checker {
	return &Checker{shell: sh, finder: finder}
}

// Check looks up the magick binary on the search path. When present it
// returns the tool's --version output, and a mis-invocation is an error.
// When absent it returns installation guidance for the current platform;
// absence itself is never an error.
func (c *Checker) Check(ctx context.Context) (string, error) {
	if _, err := c.finder.LookPath(Program); err != nil {
		return notInstalledMessage(runtime.GOOS), nil
	}

	out, err := c.shell.Execute(ctx, Program, []string{"--version"}, "")
	if err != nil {
		return "", fmt.Errorf("failed to get ImageMagick version: %w", err)
	}
	return out, nil
}

func notInstalledMessage(goos string) string {
	return fmt.Sprintf("ImageMagick is not installed.\n\n%s\n\nFor more details, visit: %s",
		installInstructions(goos), downloadURL)
}

func installInstructions(goos string) string {
	switch goos {
	case "darwin":
		return "Install ImageMagick using Homebrew:\n  brew install imagemagick"
	case "linux":
		return "Install ImageMagick using your package manager:\n  sudo apt install imagemagick\n  or\n  sudo dnf install ImageMagick"
	case "windows":
		return "Download and install ImageMagick from the official website.\n  Use winget: winget install ImageMagick.Q16-HDRI"
	default:
		return "Install ImageMagick using your system's package manager."
	}
}

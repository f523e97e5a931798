package magick

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckNotInstalled(t *testing.T) {
	sh := &fakeShell{}
	c := NewChecker(sh, &fakeFinder{err: errors.New("not found")})

	msg, err := c.Check(context.Background())
	require.NoError(t, err, "absence must not be an error")

	assert.Contains(t, msg, "ImageMagick is not installed.")
	assert.Contains(t, msg, "For more details, visit: https://imagemagick.org/script/download.php")
	assert.Empty(t, sh.calls, "no process may be spawned when the binary is absent")
}

func TestCheckReturnsVersionOutput(t *testing.T) {
	sh := &fakeShell{out: "Version: ImageMagick 7.1.1-47 Q16-HDRI\n"}
	c := NewChecker(sh, &fakeFinder{})

	msg, err := c.Check(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Version: ImageMagick 7.1.1-47 Q16-HDRI\n", msg)

	require.Len(t, sh.calls, 1)
	assert.Equal(t, Program, sh.calls[0].name)
	assert.Equal(t, []string{"--version"}, sh.calls[0].args)
}

func TestCheckVersionFailure(t *testing.T) {
	sh := &fakeShell{err: errors.New("exec blew up")}
	c := NewChecker(sh, &fakeFinder{})

	_, err := c.Check(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to get ImageMagick version:")
	assert.Contains(t, err.Error(), "exec blew up")
}

func TestInstallInstructionsPerPlatform(t *testing.T) {
	tests := []struct {
		goos string
		want []string
	}{
		{"darwin", []string{"Homebrew", "brew install imagemagick"}},
		{"linux", []string{"sudo apt install imagemagick", "sudo dnf install ImageMagick"}},
		{"windows", []string{"winget install ImageMagick.Q16-HDRI"}},
		{"freebsd", []string{"system's package manager"}},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			got := installInstructions(tt.goos)
			for _, want := range tt.want {
				assert.Contains(t, got, want)
			}
		})
	}
}

func TestNotInstalledMessageLinux(t *testing.T) {
	msg := notInstalledMessage("linux")

	assert.Contains(t, msg, "not installed")
	assert.Contains(t, msg, "apt install")
	assert.Contains(t, msg, "dnf install")
}

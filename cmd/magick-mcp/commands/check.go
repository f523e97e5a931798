package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/magickmcp/magick-mcp/internal/magick"
	"github.com/magickmcp/magick-mcp/internal/shell"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check whether ImageMagick is installed",
	Long: `Check whether the ImageMagick 'magick' binary is available on PATH.

Prints the installed version, or installation instructions for this
platform when the binary is missing.`,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	sh := shell.New()
	checker := magick.NewChecker(sh, sh)

	msg, err := checker.Check(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Println(msg)
	return nil
}

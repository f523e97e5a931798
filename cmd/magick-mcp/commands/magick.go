package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/magickmcp/magick-mcp/internal/magick"
	"github.com/magickmcp/magick-mcp/internal/shell"
)

var magickWorkspace string

var magickCmd = &cobra.Command{
	Use:   "magick [command]",
	Short: "Run a single ImageMagick command",
	Long: `Run one ImageMagick command and print its output.

The command is the argument string passed to the 'magick' binary, without
the program name itself.

Examples:
  magick-mcp magick "input.png -resize 50% output.png"
  magick-mcp magick --workspace ./images "photo.jpg -strip photo_clean.jpg"`,
	Args: cobra.ExactArgs(1),
	RunE: runMagick,
}

func init() {
	magickCmd.Flags().StringVarP(&magickWorkspace, "workspace", "w", "", "Directory to run the command in")
}

func runMagick(cmd *cobra.Command, args []string) error {
	workDir, err := GetWorkDir(magickWorkspace)
	if err != nil {
		return err
	}

	runner := magick.NewRunner(shell.New(), workDir)
	out, err := runner.Execute(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	fmt.Print(out)
	return nil
}

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/magickmcp/magick-mcp/internal/install"
)

var installType string

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Register magick-mcp with MCP clients",
	Long: `Register this binary as an MCP server in client configuration files.

Cursor reads ~/.cursor/mcp.json and Claude reads ~/.claude.json. Existing
entries in those files are preserved; only the magick-mcp entry is written.`,
	RunE: runInstall,
}

func init() {
	installCmd.Flags().StringVarP(&installType, "type", "t", "both", "Client to install for (cursor|claude|both)")
}

func runInstall(cmd *cobra.Command, args []string) error {
	client, err := install.ParseClientType(installType)
	if err != nil {
		return err
	}

	paths, err := install.DefaultConfigPaths()
	if err != nil {
		return err
	}

	installer := install.NewInstaller(paths)
	if err := installer.Install(client); err != nil {
		return err
	}

	fmt.Println("Successfully installed magick-mcp to MCP configuration")
	return nil
}

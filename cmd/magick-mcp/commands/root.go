// Package commands provides the CLI commands for magick-mcp.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/magickmcp/magick-mcp/internal/logging"
)

var (
	// Version information set at build time
	Version   = "0.1.0"
	BuildTime = "dev"
)

// Global flags
var logLevel string

var rootCmd = &cobra.Command{
	Use:   "magick-mcp",
	Short: "magick-mcp - ImageMagick command server",
	Long: `magick-mcp exposes the ImageMagick command-line tool to MCP clients
and to the terminal.

Run 'magick-mcp mcp' to start the stdio MCP server, or 'magick-mcp magick'
to run a single ImageMagick command directly.`,
	Version: Version,
	// Errors are reported once by main; cobra must not print them again.
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg := logging.DefaultConfig()
		cfg.Level = logging.ParseLevel(logLevel)
		logging.Init(cfg)
	},
	Run: func(cmd *cobra.Command, args []string) {
		// If no subcommand, show help
		cmd.Help()
	},
}

func init() {
	// Global flags available to all commands
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug|info|warn|error)")

	// Version template
	rootCmd.SetVersionTemplate(fmt.Sprintf("magick-mcp %s (%s)\n", Version, BuildTime))

	// Add subcommands
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(magickCmd)
	rootCmd.AddCommand(funcCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// GetWorkDir returns the working directory from flag or current directory.
func GetWorkDir(dir string) (string, error) {
	if dir != "" {
		return dir, nil
	}
	return os.Getwd()
}

package commands

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/magickmcp/magick-mcp/internal/function"
	"github.com/magickmcp/magick-mcp/internal/logging"
	"github.com/magickmcp/magick-mcp/internal/mcpserver"
	"github.com/magickmcp/magick-mcp/internal/shell"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the stdio MCP server",
	Long: `Start magick-mcp as a Model Context Protocol server on stdin/stdout.

This is the entry point MCP clients such as Cursor and Claude launch.
All logging goes to stderr so the protocol stream stays clean.`,
	RunE: runMCP,
}

func runMCP(cmd *cobra.Command, args []string) error {
	sh := shell.New()
	srv := mcpserver.NewServer(mcpserver.Deps{
		Shell:  sh,
		Finder: sh,
		Store:  function.NewStore(),
	})

	logging.Info().Str("version", Version).Msg("starting MCP server")
	return server.ServeStdio(srv)
}

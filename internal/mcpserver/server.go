// Package mcpserver exposes magick-mcp's capabilities as an MCP server.
// It registers tools for the ImageMagick check, raw command execution, and
// stored-function management, plus a help resource. The server is meant to
// run over stdio.
package mcpserver

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/magickmcp/magick-mcp/internal/function"
	"github.com/magickmcp/magick-mcp/internal/shell"
)

const (
	// ServerName is the identity announced during MCP initialization and
	// the key used in client configuration files.
	ServerName = "magick-mcp"
	// Version is announced during MCP initialization.
	Version = "0.1.0"

	serverInstructions = "A Model Context Protocol server for checking ImageMagick installation."
)

// Deps bundles the collaborators the server's tools use.
type Deps struct {
	Shell  shell.Runner
	Finder shell.Finder
	Store  *function.Store
}

// NewServer creates the magick-mcp MCP server with all tools and resources
// registered.
func NewServer(deps Deps) *server.MCPServer {
	s := server.NewMCPServer(
		ServerName,
		Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, true),
		server.WithInstructions(serverInstructions),
	)

	h := &handlers{shell: deps.Shell, finder: deps.Finder, store: deps.Store}
	registerTools(s, h)
	registerResources(s, h)

	return s
}

// handlers holds the dependencies shared by every tool and resource handler.
type handlers struct {
	shell  shell.Runner
	finder shell.Finder
	store  *function.Store
}

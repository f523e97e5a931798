package mcpserver

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/magickmcp/magick-mcp/internal/magick"
)

const helpURI = "magick://help"

func registerResources(s *server.MCPServer, h *handlers) {
	helpResource := mcp.NewResource(
		helpURI,
		"ImageMagick Help",
		mcp.WithResourceDescription("Help documentation for ImageMagick command-line tool. Use this to learn about the available commands and options."),
		mcp.WithMIMEType("text/plain"),
	)
	s.AddResource(helpResource, h.handleHelpResource)
}

// handleHelpResource serves the output of `magick --help`.
func (h *handlers) handleHelpResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	out, err := h.shell.Execute(ctx, magick.Program, []string{"--help"}, "")
	if err != nil {
		return nil, fmt.Errorf("failed to get ImageMagick help: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      helpURI,
			MIMEType: "text/plain",
			Text:     out,
		},
	}, nil
}

// Package main provides the entry point for the magick-mcp CLI.
package main

import (
	"fmt"
	"os"

	"github.com/magickmcp/magick-mcp/cmd/magick-mcp/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

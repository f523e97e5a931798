// Package install writes the magick-mcp server registration into MCP client
// configuration files.
package install

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
)

// ServerName is the key magick-mcp registers itself under.
const ServerName = "magick-mcp"

// ClientType selects which client configuration files to target.
type ClientType string

// Supported client selections.
const (
	ClientCursor ClientType = "cursor"
	ClientClaude ClientType = "claude"
	ClientBoth   ClientType = "both"
)

// ParseClientType parses s case-insensitively into a ClientType.
func ParseClientType(s string) (ClientType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cursor":
		return ClientCursor, nil
	case "claude":
		return ClientClaude, nil
	case "both":
		return ClientBoth, nil
	default:
		return "", fmt.Errorf("invalid client type %q (expected cursor, claude, or both)", s)
	}
}

var (
	// ErrHomeNotFound is returned when the home directory cannot be determined.
	ErrHomeNotFound = errors.New("home directory not found")
	// ErrInvalidConfig is returned when an existing config carries an
	// mcpServers value that is not an object.
	ErrInvalidConfig = errors.New("mcpServers is not an object")
)

// ConfigPaths holds the client configuration file locations.
type ConfigPaths struct {
	Cursor string // <home>/.cursor/mcp.json
	Claude string // <home>/.claude.json
}

// DefaultConfigPaths resolves the conventional client config locations
// under the user's home directory.
func DefaultConfigPaths() (ConfigPaths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return ConfigPaths{}, ErrHomeNotFound
	}
	return ConfigPaths{
		Cursor: filepath.Join(home, ".cursor", "mcp.json"),
		Claude: filepath.Join(home, ".claude.json"),
	}, nil
}

// Installer merges a server-registration stanza into client config files.
type Installer struct {
	paths      ConfigPaths
	executable func() (string, error)
}

// NewInstaller returns an Installer targeting the given config paths. The
// registered command is the current executable.
func NewInstaller(paths ConfigPaths) *Installer {
	return &Installer{paths: paths, executable: os.Executable}
}

// Install writes the registration stanza into the files selected by client,
// preserving every unrelated entry already present.
func (i *Installer) Install(client ClientType) error {
	exe, err := i.executable()
	if err != nil {
		return fmt.Errorf("failed to get executable path: %w", err)
	}

	var targets []string
	switch client {
	case ClientCursor:
		targets = []string{i.paths.Cursor}
	case ClientClaude:
		targets = []string{i.paths.Claude}
	case ClientBoth:
		targets = []string{i.paths.Cursor, i.paths.Claude}
	default:
		return fmt.Errorf("invalid client type %q (expected cursor, claude, or both)", client)
	}

	for _, path := range targets {
		if err := updateConfig(path, exe); err != nil {
			return fmt.Errorf("failed to update %s: %w", path, err)
		}
	}
	return nil
}

// updateConfig loads path (an absent or blank file starts an empty
// document), upserts the mcpServers entry for magick-mcp, and writes the
// document back pretty-printed.
func updateConfig(path, exe string) error {
	root := map[string]any{}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if len(strings.TrimSpace(string(data))) > 0 {
			if err := json.Unmarshal(jsonc.ToJSON(data), &root); err != nil {
				return fmt.Errorf("failed to parse JSON: %w", err)
			}
		}
	case os.IsNotExist(err):
		// Start from an empty document.
	default:
		return fmt.Errorf("failed to read file: %w", err)
	}

	servers, err := serversMap(root)
	if err != nil {
		return err
	}
	servers[ServerName] = map[string]any{
		"command": exe,
		"args":    []string{"mcp"},
	}
	root["mcpServers"] = servers

	out, err := json.MarshalIndent(root, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal: %w", err)
	}
	out = append(out, '\n')

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

func serversMap(root map[string]any) (map[string]any, error) {
	raw, ok := root["mcpServers"]
	if !ok || raw == nil {
		return map[string]any{}, nil
	}
	servers, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("invalid config: %w", ErrInvalidConfig)
	}
	return servers, nil
}

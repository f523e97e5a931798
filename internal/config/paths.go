// Package config resolves the platform-conventional paths used by magick-mcp.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// AppName is the directory name used under the platform data directory.
const AppName = "magick-mcp"

// DataDir returns the platform data directory, reporting false when it
// cannot be determined (no home directory on unix-like systems, no APPDATA
// on Windows).
//
//	linux:   $XDG_DATA_HOME or ~/.local/share
//	darwin:  ~/Library/Application Support
//	windows: %APPDATA%
func DataDir() (string, bool) {
	switch runtime.GOOS {
	case "windows":
		if dir := os.Getenv("APPDATA"); dir != "" {
			return dir, true
		}
		return "", false
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", false
		}
		return filepath.Join(home, "Library", "Application Support"), true
	default:
		if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
			return dir, true
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", false
		}
		return filepath.Join(home, ".local", "share"), true
	}
}

// FunctionsDir returns the directory where stored functions live, reporting
// false when the data directory cannot be determined. The location is
// computed fresh on every call, never cached.
func FunctionsDir() (string, bool) {
	dir, ok := DataDir()
	if !ok {
		return "", false
	}
	return filepath.Join(dir, AppName, "functions"), true
}

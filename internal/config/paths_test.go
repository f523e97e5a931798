package config

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataDirRespectsXDGDataHome(t *testing.T) {
	if runtime.GOOS == "windows" || runtime.GOOS == "darwin" {
		t.Skip("XDG_DATA_HOME applies to other unix-like platforms")
	}

	t.Setenv("XDG_DATA_HOME", "/custom/share")

	dir, ok := DataDir()
	require.True(t, ok)
	assert.Equal(t, "/custom/share", dir)
}

func TestDataDirHomeFallback(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("windows resolves via APPDATA")
	}

	t.Setenv("XDG_DATA_HOME", "")
	t.Setenv("HOME", "/fake/home")

	dir, ok := DataDir()
	require.True(t, ok)

	if runtime.GOOS == "darwin" {
		assert.Equal(t, filepath.Join("/fake/home", "Library", "Application Support"), dir)
	} else {
		assert.Equal(t, filepath.Join("/fake/home", ".local", "share"), dir)
	}
}

func TestDataDirUnresolvable(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("windows resolves via APPDATA")
	}

	t.Setenv("XDG_DATA_HOME", "")
	t.Setenv("HOME", "")

	_, ok := DataDir()
	assert.False(t, ok)
}

func TestFunctionsDir(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("windows resolves via APPDATA")
	}

	t.Setenv("XDG_DATA_HOME", "")
	t.Setenv("HOME", "/fake/home")

	dir, ok := FunctionsDir()
	require.True(t, ok)

	base, _ := DataDir()
	assert.Equal(t, filepath.Join(base, AppName, "functions"), dir)
}

func TestFunctionsDirUnresolvable(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("windows resolves via APPDATA")
	}

	t.Setenv("XDG_DATA_HOME", "")
	t.Setenv("HOME", "")

	_, ok := FunctionsDir()
	assert.False(t, ok)
}

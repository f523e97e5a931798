package function

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDefinition(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadDefinitionYAML(t *testing.T) {
	path := writeDefinition(t, "shrink.yaml", `name: shrink
commands:
  - "$input -resize 50% out.png"
  - identify out.png
`)

	fn, err := LoadDefinition(path)
	require.NoError(t, err)
	assert.Equal(t, "shrink", fn.Name)
	assert.Equal(t, []string{"$input -resize 50% out.png", "identify out.png"}, fn.Commands)
}

func TestLoadDefinitionJSON(t *testing.T) {
	path := writeDefinition(t, "shrink.json", `{
  "name": "shrink",
  "commands": ["$input -resize 50% out.png"]
}`)

	fn, err := LoadDefinition(path)
	require.NoError(t, err)
	assert.Equal(t, "shrink", fn.Name)
	assert.Equal(t, []string{"$input -resize 50% out.png"}, fn.Commands)
}

func TestLoadDefinitionJSONWithComments(t *testing.T) {
	path := writeDefinition(t, "shrink.json", `{
  // halves the image
  "name": "shrink",
  "commands": ["$input -resize 50% out.png"],
}`)

	fn, err := LoadDefinition(path)
	require.NoError(t, err)
	assert.Equal(t, "shrink", fn.Name)
}

func TestLoadDefinitionInvalidName(t *testing.T) {
	path := writeDefinition(t, "bad.yaml", `name: "a/b"
commands: []
`)

	_, err := LoadDefinition(path)
	assert.ErrorIs(t, err, ErrInvalidName)
}

func TestLoadDefinitionMissingFile(t *testing.T) {
	_, err := LoadDefinition(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read definition")
}

func TestLoadDefinitionMalformedYAML(t *testing.T) {
	path := writeDefinition(t, "bad.yaml", "name: [unclosed")

	_, err := LoadDefinition(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

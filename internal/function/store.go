package function

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/magickmcp/magick-mcp/internal/config"
)

const fileExt = ".json"

var (
	// ErrNotFound is returned when no stored function has the requested name.
	ErrNotFound = errors.New("not found")
	// ErrNoDataDir is returned when the platform data directory cannot be resolved.
	ErrNoDataDir = errors.New("functions directory not found")
	// ErrInvalidName is returned when a function name cannot serve as a file stem.
	ErrInvalidName = errors.New("invalid function name")
)

// Store persists functions as one JSON file per function.
type Store struct {
	resolve func() (string, bool)
}

// NewStore returns a Store backed by the platform functions directory.
func NewStore() *Store {
	return &Store{resolve: config.FunctionsDir}
}

// NewStoreAt returns a Store backed by a fixed directory.
func NewStoreAt(dir string) *Store {
	return &Store{resolve: func() (string, bool) { return dir, true }}
}

// Save writes fn to <dir>/<name>.json, creating the directory as needed and
// overwriting any existing file of the same name.
func (s *Store) Save(fn *Function) error {
	if err := validateName(fn.Name); err != nil {
		return err
	}

	dir, ok := s.resolve()
	if !ok {
		return ErrNoDataDir
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	data, err := json.MarshalIndent(fn, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, fn.Name+fileExt), data, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// Load reads the stored function named name.
func (s *Store) Load(name string) (*Function, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	dir, ok := s.resolve()
	if !ok {
		return nil, ErrNoDataDir
	}

	data, err := os.ReadFile(filepath.Join(dir, name+fileExt))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("function '%s' %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var fn Function
	if err := json.Unmarshal(data, &fn); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return &fn, nil
}

// List returns the names of all stored functions. A missing functions
// directory is an empty result, not an error. Callers must not rely on
// the ordering.
func (s *Store) List() ([]string, error) {
	dir, ok := s.resolve()
	if !ok {
		return nil, ErrNoDataDir
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	names := []string{}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, fileExt) {
			continue
		}
		names = append(names, strings.TrimSuffix(name, fileExt))
	}
	return names, nil
}

// Delete removes the stored function named name.
func (s *Store) Delete(name string) error {
	if err := validateName(name); err != nil {
		return err
	}

	dir, ok := s.resolve()
	if !ok {
		return ErrNoDataDir
	}

	if err := os.Remove(filepath.Join(dir, name+fileExt)); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("function '%s' %w", name, ErrNotFound)
		}
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// validateName rejects names that cannot serve as a file stem.
func validateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name is empty", ErrInvalidName)
	}
	if name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// ThemeStore persists the theme preference in a plain local file. The theme
// deliberately lives outside the vocabulary database so it survives imports
// and dataset replacement.
type ThemeStore struct {
	path string
}

// NewThemeStore creates a store writing to the given file path.
func NewThemeStore(path string) *ThemeStore {
	return &ThemeStore{path: path}
}

// Load returns the saved theme, defaulting to light when nothing was saved.
func (s *ThemeStore) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return ThemeLight, nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read theme file: %w", err)
	}
	theme := strings.TrimSpace(string(data))
	if theme != ThemeLight && theme != ThemeDark {
		return ThemeLight, nil
	}
	return theme, nil
}

// Save persists the theme. Only "light" and "dark" are accepted.
func (s *ThemeStore) Save(theme string) error {
	if theme != ThemeLight && theme != ThemeDark {
		return fmt.Errorf("unknown theme %q", theme)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create theme directory: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(theme+"\n"), 0o644); err != nil {
		return fmt.Errorf("failed to write theme file: %w", err)
	}
	return nil
}

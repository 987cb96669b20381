// Package prefs persists the operator's display preferences in
// ~/.config/missionctl/prefs.toml.
package prefs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/missionctl/internal/config"
)

// Prefs holds user preferences.
type Prefs struct {
	Theme string `toml:"theme"`
}

const (
	defaultPrefsPath = "~/.config/missionctl/prefs.toml"
	// DefaultTheme is used when nothing is stored.
	DefaultTheme = "Deep Space"
)

// File is a preferences file on disk.
type File struct {
	path string
}

// Open returns the preferences file at path, or the default location when
// path is blank. The file need not exist yet.
func Open(path string) (File, error) {
	if strings.TrimSpace(path) == "" {
		path = defaultPrefsPath
	}
	resolved, err := config.ExpandPath(path)
	if err != nil {
		return File{}, fmt.Errorf("resolve prefs path: %w", err)
	}
	return File{path: resolved}, nil
}

// Path returns the resolved file path.
func (f File) Path() string {
	return f.path
}

// Load reads the stored preferences. A missing, unreadable or malformed file
// yields the defaults; preferences are never worth failing startup over.
func (f File) Load() Prefs {
	p := Prefs{Theme: DefaultTheme}
	if f.path == "" {
		return p
	}
	data, err := os.ReadFile(f.path)
	if err != nil {
		return p
	}
	if err := toml.Unmarshal(data, &p); err != nil {
		return Prefs{Theme: DefaultTheme}
	}
	if strings.TrimSpace(p.Theme) == "" {
		p.Theme = DefaultTheme
	}
	return p
}

// Save writes p, creating parent directories as needed.
func (f File) Save(p Prefs) error {
	if f.path == "" {
		return fmt.Errorf("prefs path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}
	data, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}
	if err := os.WriteFile(f.path, data, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}

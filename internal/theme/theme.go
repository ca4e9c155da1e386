// Package theme maps semantic color roles to terminal colors. Built-in
// themes ship embedded in the binary; a user themes.toml can add to or
// override them.
package theme

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"
)

//go:embed themes.toml
var themesTOML []byte

// DefaultName is used when the configured theme does not exist.
const DefaultName = "dusk"

// Theme holds the color roles the TUI styles are built from.
type Theme struct {
	Description   string `toml:"description"`
	Primary       string `toml:"primary"`
	Secondary     string `toml:"secondary"`
	Accent        string `toml:"accent"`
	Text          string `toml:"text"`
	Muted         string `toml:"muted"`
	Error         string `toml:"error"`
	Success       string `toml:"success"`
	ProgressStart string `toml:"progress_start"`
	ProgressEnd   string `toml:"progress_end"`
}

type themesFile struct {
	Themes map[string]Theme `toml:"themes"`
}

// Registry manages the available themes.
type Registry struct {
	themes map[string]Theme
}

// NewRegistry parses the embedded themes and merges any user-defined
// ones on top.
func NewRegistry() (*Registry, error) {
	var file themesFile
	if err := toml.Unmarshal(themesTOML, &file); err != nil {
		return nil, fmt.Errorf("parsing themes.toml: %w", err)
	}

	r := &Registry{themes: file.Themes}
	r.loadUserThemes()
	return r, nil
}

// loadUserThemes merges ~/.config/postcard/themes.toml if present.
// Parse errors are ignored so a broken user file never blocks startup.
func (r *Registry) loadUserThemes() {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	path := filepath.Join(home, ".config", "postcard", "themes.toml")
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}

	var file themesFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return
	}
	for name, t := range file.Themes {
		r.themes[name] = t
	}
}

// Get returns the named theme, falling back to the default when the
// name is unknown.
func (r *Registry) Get(name string) Theme {
	if t, ok := r.themes[name]; ok {
		return t
	}
	return r.themes[DefaultName]
}

// Has reports whether a theme with the given name exists.
func (r *Registry) Has(name string) bool {
	_, ok := r.themes[name]
	return ok
}

// Names lists the available theme names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.themes))
	for name := range r.themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

package themes

import (
	"embed"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Names of the builtin themes, always present in a registry.
const (
	DefaultLightName = "Default Light"
	DefaultDarkName  = "Default Dark"
)

// themeGlob matches theme definition files under the watched directory.
const themeGlob = "**/*.{yaml,yml}"

var builtins = sync.OnceValue(func() map[string]*Config {
	themes := make(map[string]*Config)

	entries, err := builtinFS.ReadDir("builtin")
	if err != nil {
		// The builtin directory is embedded at compile time.
		panic(fmt.Sprintf("read embedded themes: %v", err))
	}
	for _, entry := range entries {
		data, err := builtinFS.ReadFile("builtin/" + entry.Name())
		if err != nil {
			panic(fmt.Sprintf("read embedded theme %s: %v", entry.Name(), err))
		}
		cfg, err := ParseConfig(data)
		if err != nil {
			panic(fmt.Sprintf("parse embedded theme %s: %v", entry.Name(), err))
		}
		themes[cfg.Name] = cfg
	}
	return themes
})

// Registry holds every known theme, keyed by name: the embedded builtin
// themes plus whatever the loaded directory currently contains. A file theme
// with a builtin's name shadows the builtin until the file goes away.
type Registry struct {
	mu     sync.RWMutex
	themes map[string]*Config

	watchMu  sync.Mutex
	watcher  *fsnotify.Watcher
	stopChan chan struct{}
}

// NewRegistry returns a registry containing the builtin themes.
func NewRegistry() *Registry {
	r := &Registry{}
	r.reset(nil)
	return r
}

// Lookup returns the theme named name. Names are case-sensitive.
func (r *Registry) Lookup(name string) (*Config, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cfg, ok := r.themes[name]
	return cfg, ok
}

// Sorted returns every known theme ordered by name, case-insensitively.
func (r *Registry) Sorted() []*Config {
	r.mu.RLock()
	configs := make([]*Config, 0, len(r.themes))
	for _, cfg := range r.themes {
		configs = append(configs, cfg)
	}
	r.mu.RUnlock()

	sort.Slice(configs, func(i, j int) bool {
		a, b := strings.ToLower(configs[i].Name), strings.ToLower(configs[j].Name)
		if a == b {
			return configs[i].Name < configs[j].Name
		}
		return a < b
	})
	return configs
}

// Names returns every known theme name in sorted order.
func (r *Registry) Names() []string {
	configs := r.Sorted()
	names := make([]string, len(configs))
	for i, cfg := range configs {
		names[i] = cfg.Name
	}
	return names
}

// Len returns the number of known themes.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.themes)
}

// DefaultForMode returns the registry's default theme for the given mode.
func (r *Registry) DefaultForMode(mode Mode) *Config {
	name := DefaultDarkName
	if mode == ModeLight {
		name = DefaultLightName
	}
	if cfg, ok := r.Lookup(name); ok {
		return cfg
	}
	return builtins()[name]
}

// LoadDir rescans dir, replacing every previously loaded file theme.
// Builtins are always retained. Files that cannot be read or parsed are
// skipped with a warning. A missing directory leaves the builtins only and
// reports an error.
func (r *Registry) LoadDir(dir string) error {
	var configs []*Config
	var scanErr error

	if _, err := os.Stat(dir); err != nil {
		scanErr = err
	} else {
		matches, err := doublestar.FilepathGlob(filepath.Join(dir, themeGlob))
		if err != nil {
			scanErr = fmt.Errorf("scan %s: %w", dir, err)
		}
		for _, path := range matches {
			cfg, err := loadFile(path)
			if err != nil {
				slog.Warn("Skipping theme file", "path", path, "error", err)
				continue
			}
			configs = append(configs, cfg)
		}
	}

	r.reset(configs)
	return scanErr
}

func (r *Registry) reset(fileConfigs []*Config) {
	themes := make(map[string]*Config, len(builtins())+len(fileConfigs))
	for name, cfg := range builtins() {
		themes[name] = cfg
	}
	for _, cfg := range fileConfigs {
		themes[cfg.Name] = cfg
	}

	r.mu.Lock()
	r.themes = themes
	r.mu.Unlock()
}

// loadFile reads one theme file and fills its unset colors from the builtin
// palette of its mode, so partial themes stay renderable.
func loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, err
	}

	base := builtins()[DefaultDarkName]
	if cfg.Mode == ModeLight {
		base = builtins()[DefaultLightName]
	}
	merged := mergeConfig(base, cfg)
	merged.Path = path
	return merged, nil
}

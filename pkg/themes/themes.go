package themes

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// Mode is a theme's color scheme kind.
type Mode string

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
)

// Toggle returns the opposite mode.
func (m Mode) Toggle() Mode {
	if m == ModeLight {
		return ModeDark
	}
	return ModeLight
}

// ScrollbarShow says when scrollbars are drawn.
type ScrollbarShow string

const (
	ScrollbarAlways    ScrollbarShow = "always"
	ScrollbarScrolling ScrollbarShow = "scrolling"
	ScrollbarHover     ScrollbarShow = "hover"
	ScrollbarNever     ScrollbarShow = "never"
)

var scrollbarShows = []ScrollbarShow{
	ScrollbarAlways,
	ScrollbarScrolling,
	ScrollbarHover,
	ScrollbarNever,
}

// Valid reports whether s is one of the known values.
func (s ScrollbarShow) Valid() bool {
	for _, v := range scrollbarShows {
		if s == v {
			return true
		}
	}
	return false
}

// Next returns the value after s in cycle order, for UI toggles.
func (s ScrollbarShow) Next() ScrollbarShow {
	for i, v := range scrollbarShows {
		if s == v {
			return scrollbarShows[(i+1)%len(scrollbarShows)]
		}
	}
	return scrollbarShows[0]
}

// Colors is a theme palette. Use hex color strings (e.g. "#61AFEF").
type Colors struct {
	Background string `yaml:"background,omitempty"` // Main background
	Foreground string `yaml:"foreground,omitempty"` // Primary text
	Surface    string `yaml:"surface,omitempty"`    // Panels, cards, popups
	Border     string `yaml:"border,omitempty"`
	Primary    string `yaml:"primary,omitempty"`   // Primary interactive color
	Secondary  string `yaml:"secondary,omitempty"` // Secondary text
	Accent     string `yaml:"accent,omitempty"`
	Selection  string `yaml:"selection,omitempty"` // Selected row/text background
	Cursor     string `yaml:"cursor,omitempty"`
	Muted      string `yaml:"muted,omitempty"` // Faint text, decorations
	Error      string `yaml:"error,omitempty"`
	Warning    string `yaml:"warning,omitempty"`
	Success    string `yaml:"success,omitempty"`
	Info       string `yaml:"info,omitempty"`
}

// Config is one theme definition as read from a YAML file. Name is the
// registry key. Colors left unset fall back to the builtin palette of the
// theme's mode; an unset ScrollbarShow means the theme states no preference.
type Config struct {
	Name          string        `yaml:"name"`
	Mode          Mode          `yaml:"mode,omitempty"`
	ScrollbarShow ScrollbarShow `yaml:"scrollbar_show,omitempty"`
	Colors        Colors        `yaml:"colors,omitempty"`

	// Path is the file the config was read from; empty for builtin themes.
	Path string `yaml:"-"`
}

// ParseConfig parses a single theme definition. Themes without a name are
// rejected; an unset mode defaults to dark.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse theme: %w", err)
	}
	if cfg.Name == "" {
		return nil, errors.New("theme has no name")
	}
	if cfg.Mode == "" {
		cfg.Mode = ModeDark
	}
	if cfg.Mode != ModeLight && cfg.Mode != ModeDark {
		return nil, fmt.Errorf("theme %q: unknown mode %q", cfg.Name, cfg.Mode)
	}
	if cfg.ScrollbarShow != "" && !cfg.ScrollbarShow.Valid() {
		return nil, fmt.Errorf("theme %q: unknown scrollbar_show %q", cfg.Name, cfg.ScrollbarShow)
	}
	return &cfg, nil
}

// mergeConfig fills override's unset colors from base, so partial themes
// only need to state the colors they change. Name, mode and scrollbar
// preference always come from override.
func mergeConfig(base, override *Config) *Config {
	result := *override
	result.Colors = mergeColors(base.Colors, override.Colors)
	return &result
}

func mergeColors(base, override Colors) Colors {
	result := base
	if override.Background != "" {
		result.Background = override.Background
	}
	if override.Foreground != "" {
		result.Foreground = override.Foreground
	}
	if override.Surface != "" {
		result.Surface = override.Surface
	}
	if override.Border != "" {
		result.Border = override.Border
	}
	if override.Primary != "" {
		result.Primary = override.Primary
	}
	if override.Secondary != "" {
		result.Secondary = override.Secondary
	}
	if override.Accent != "" {
		result.Accent = override.Accent
	}
	if override.Selection != "" {
		result.Selection = override.Selection
	}
	if override.Cursor != "" {
		result.Cursor = override.Cursor
	}
	if override.Muted != "" {
		result.Muted = override.Muted
	}
	if override.Error != "" {
		result.Error = override.Error
	}
	if override.Warning != "" {
		result.Warning = override.Warning
	}
	if override.Success != "" {
		result.Success = override.Success
	}
	if override.Info != "" {
		result.Info = override.Info
	}
	return result
}

package appearance

import (
	"log/slog"

	"github.com/o0x0o/pigment/pkg/app"
	"github.com/o0x0o/pigment/pkg/paths"
	"github.com/o0x0o/pigment/pkg/themes"
)

// SwitchTheme asks for the named theme to become active. Names that are not
// in the registry are dropped.
type SwitchTheme struct {
	Name string
}

// SwitchThemeMode asks for the default theme of the given color mode.
type SwitchThemeMode struct {
	Mode themes.Mode
}

// Init restores the persisted theme selection and keeps it alive: it starts
// the theme-directory watch, applies the saved selection, installs the
// save-on-change observer and registers the theme actions. Init never fails;
// every degraded condition (first run, unreadable state, missing themes
// directory) costs a feature, not startup.
func Init(a *app.App) {
	InitDirs(a, paths.ConfigDir(), paths.ThemesDir())
}

// InitDirs is Init with explicit directories.
func InitDirs(a *app.App, configDir, themesDir string) {
	store := NewStore(configDir)
	state := store.Load()

	// The name loaded here deliberately stays frozen inside the callback:
	// every rescan resolves the same saved selection against the refreshed
	// registry, and the initial synchronous scan applies it at startup.
	savedName := state.Theme
	registry := a.Registry()
	err := registry.Watch(themesDir, func() {
		if cfg, ok := registry.Lookup(savedName); ok {
			a.ApplyThemeConfig(cfg)
		}
	})
	if err != nil {
		slog.Error("Theme hot reload unavailable", "dir", themesDir, "error", err)
	}

	if state.ScrollbarShow != nil {
		a.SetScrollbarShow(*state.ScrollbarShow)
	}

	a.RefreshWindows()

	// Installed after the saved selection has been applied, so startup
	// itself never writes state.json.
	a.ObserveTheme(func(th app.Theme) {
		if err := store.Save(State{Theme: th.Name, ScrollbarShow: th.ScrollbarShow}); err != nil {
			slog.Debug("Could not persist appearance state", "error", err)
		}
	})

	app.OnAction(a, func(action SwitchTheme) {
		cfg, ok := registry.Lookup(action.Name)
		if !ok {
			slog.Debug("Ignoring switch to unknown theme", "name", action.Name)
			return
		}
		a.ApplyThemeConfig(cfg)
		a.RefreshWindows()
	})
	app.OnAction(a, func(action SwitchThemeMode) {
		a.SetMode(action.Mode)
		a.RefreshWindows()
	})
}

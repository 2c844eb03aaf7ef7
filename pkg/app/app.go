package app

import (
	"context"
	"reflect"
	"slices"
	"sync"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/o0x0o/pigment/pkg/themes"
)

// Theme is the single mutable theme the UI reads when rendering. It is owned
// by the App: mutations go through App methods, and every committed change
// is published to the installed observers.
type Theme struct {
	Name   string
	Mode   themes.Mode
	Colors themes.Colors

	// ScrollbarShow is nil until some mutation states a preference. The
	// pointee is never written after publication, so snapshots stay valid.
	ScrollbarShow *themes.ScrollbarShow
}

// Scrollbar returns the explicit preference, or the rendering default when
// none was ever set.
func (t Theme) Scrollbar() themes.ScrollbarShow {
	if t.ScrollbarShow == nil {
		return themes.ScrollbarScrolling
	}
	return *t.ScrollbarShow
}

// Window is anything that can be asked to repaint.
type Window interface {
	Refresh()
}

// App ties the pieces of a running pigment instance together: the theme
// registry, the active theme with its observers, the action bus, and the
// open windows. All methods are safe for concurrent use; observers and
// action handlers run synchronously on the calling goroutine, one at a
// time, after the change they report has been committed.
type App struct {
	registry *themes.Registry
	events   chan tea.Msg

	mu        sync.Mutex
	theme     Theme
	observers []func(Theme)
	actions   map[reflect.Type][]func(any)
	windows   map[uuid.UUID]Window
}

// New returns an app whose active theme is the builtin light default.
func New(registry *themes.Registry) *App {
	a := &App{
		registry: registry,
		events:   make(chan tea.Msg, 128),
		actions:  make(map[reflect.Type][]func(any)),
		windows:  make(map[uuid.UUID]Window),
	}
	cfg := registry.DefaultForMode(themes.ModeLight)
	a.theme = Theme{Name: cfg.Name, Mode: cfg.Mode, Colors: cfg.Colors}
	return a
}

// Registry returns the process-wide theme registry.
func (a *App) Registry() *themes.Registry {
	return a.registry
}

// Theme returns a snapshot of the active theme.
func (a *App) Theme() Theme {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.theme
}

// ApplyThemeConfig makes cfg the active theme and notifies observers. The
// scrollbar preference is only touched when cfg states one; otherwise the
// current value carries over. A nil cfg is ignored.
func (a *App) ApplyThemeConfig(cfg *themes.Config) {
	if cfg == nil {
		return
	}
	a.commit(func() {
		a.theme.Name = cfg.Name
		a.theme.Mode = cfg.Mode
		a.theme.Colors = cfg.Colors
		if cfg.ScrollbarShow != "" {
			s := cfg.ScrollbarShow
			a.theme.ScrollbarShow = &s
		}
	})
}

// SetScrollbarShow records an explicit scrollbar preference.
func (a *App) SetScrollbarShow(show themes.ScrollbarShow) {
	a.commit(func() {
		s := show
		a.theme.ScrollbarShow = &s
	})
}

// SetMode switches the color mode by applying the registry's default theme
// for that mode.
func (a *App) SetMode(mode themes.Mode) {
	a.ApplyThemeConfig(a.registry.DefaultForMode(mode))
}

// ObserveTheme installs fn as a detached theme observer: it runs after every
// committed mutation, with a fresh snapshot, for the lifetime of the app.
// Observers cannot be uninstalled.
func (a *App) ObserveTheme(fn func(Theme)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.observers = append(a.observers, fn)
}

// commit runs mutate under the lock, then notifies observers outside it so
// they can call back into the app.
func (a *App) commit(mutate func()) {
	a.mu.Lock()
	mutate()
	snapshot := a.theme
	observers := slices.Clone(a.observers)
	a.mu.Unlock()

	for _, fn := range observers {
		fn(snapshot)
	}
}

// OnAction registers a handler for actions of type A. Handlers for the same
// type run in registration order.
func OnAction[A any](a *App, fn func(A)) {
	key := reflect.TypeFor[A]()
	a.mu.Lock()
	defer a.mu.Unlock()
	a.actions[key] = append(a.actions[key], func(v any) { fn(v.(A)) })
}

// Dispatch delivers action to every handler registered for its type.
// Actions nobody handles are dropped.
func Dispatch[A any](a *App, action A) {
	key := reflect.TypeFor[A]()
	a.mu.Lock()
	handlers := slices.Clone(a.actions[key])
	a.mu.Unlock()

	for _, fn := range handlers {
		fn(action)
	}
}

// OpenWindow registers w and returns its id.
func (a *App) OpenWindow(w Window) uuid.UUID {
	id := uuid.New()
	a.mu.Lock()
	defer a.mu.Unlock()
	a.windows[id] = w
	return id
}

// CloseWindow forgets the window with the given id.
func (a *App) CloseWindow(id uuid.UUID) {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.windows, id)
}

// RefreshWindows asks every open window to repaint.
func (a *App) RefreshWindows() {
	a.mu.Lock()
	windows := make([]Window, 0, len(a.windows))
	for _, w := range a.windows {
		windows = append(windows, w)
	}
	a.mu.Unlock()

	for _, w := range windows {
		w.Refresh()
	}
}

// Send queues msg for the TUI program. A stalled UI never blocks theme
// callbacks: when the queue is full the message is dropped.
func (a *App) Send(msg tea.Msg) {
	select {
	case a.events <- msg:
	default:
	}
}

// Subscribe pumps queued events into program until ctx is done.
func (a *App) Subscribe(ctx context.Context, program *tea.Program) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-a.events:
			if !ok {
				return
			}
			program.Send(msg)
		}
	}
}

// Package tui provides the top-level terminal UI: the theme preview pane,
// the status bar with the theme switcher chip, and the dialog overlay.
package tui

import (
	"path/filepath"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/atotto/clipboard"
	"github.com/goccy/go-yaml"
	"github.com/google/uuid"

	"github.com/o0x0o/pigment/pkg/app"
	"github.com/o0x0o/pigment/pkg/appearance"
	"github.com/o0x0o/pigment/pkg/themes"
	"github.com/o0x0o/pigment/pkg/tui/components/notification"
	"github.com/o0x0o/pigment/pkg/tui/components/statusbar"
	"github.com/o0x0o/pigment/pkg/tui/core"
	"github.com/o0x0o/pigment/pkg/tui/dialog"
	"github.com/o0x0o/pigment/pkg/tui/messages"
	"github.com/o0x0o/pigment/pkg/tui/page/preview"
	"github.com/o0x0o/pigment/pkg/tui/styles"
)

type keyMap struct {
	Picker    key.Binding
	Mode      key.Binding
	Scrollbar key.Binding
	Yank      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Picker:    key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "themes")),
		Mode:      key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "mode")),
		Scrollbar: key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "scrollbar")),
		Yank:      key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy yaml")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// Model is the top-level TUI model.
type Model struct {
	application *app.App
	windowID    uuid.UUID

	page         *preview.Page
	dialogMgr    dialog.Manager
	statusBar    statusbar.StatusBar
	notification notification.Manager

	keyMap keyMap

	wWidth, wHeight int
	width, height   int
	ready           bool
}

// New builds the TUI model, registers it as a window on the app, and hooks
// the theme observer that turns global Theme changes into repaints. Style
// mutation stays on the UI goroutine: the observer only queues a message.
func New(a *app.App) *Model {
	m := &Model{
		application:  a,
		page:         preview.New(),
		dialogMgr:    dialog.New(),
		notification: notification.New(),
		keyMap:       defaultKeyMap(),
	}
	m.statusBar = statusbar.New(m)

	styles.Apply(a.Theme())
	theme := a.Theme()
	m.statusBar.SetTheme(theme.Name, theme.Mode)

	a.ObserveTheme(func(app.Theme) {
		a.Send(messages.ThemeChangedMsg{})
	})
	m.windowID = a.OpenWindow(appWindow{a})

	return m
}

// appWindow adapts the TUI to the app's window registry: a refresh request
// becomes a queued repaint.
type appWindow struct {
	a *app.App
}

func (w appWindow) Refresh() {
	w.a.Send(messages.ThemeChangedMsg{})
}

func (m *Model) Init() tea.Cmd {
	return m.dialogMgr.Init()
}

// Help implements core.KeyMapHelp for the status bar: the preview page's
// bindings first, then the global ones.
func (m *Model) Help() help.KeyMap {
	bindings := m.page.Bindings()
	bindings = append(bindings,
		m.keyMap.Picker,
		m.keyMap.Mode,
		m.keyMap.Scrollbar,
		m.keyMap.Yank,
		m.keyMap.Quit,
	)
	return core.NewSimpleHelp(bindings)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m, m.handleResize(msg.Width, msg.Height)

	case messages.ThemeChangedMsg:
		return m, m.handleThemeChanged()

	case messages.OpenThemePickerMsg:
		return m, m.openThemePicker()

	case messages.ChangeThemeMsg:
		app.Dispatch(m.application, appearance.SwitchTheme{Name: msg.Name})
		return m, nil

	case dialog.OpenDialogMsg, dialog.CloseDialogMsg, dialog.CloseAllDialogsMsg:
		u, cmd := m.dialogMgr.Update(msg)
		m.dialogMgr = u.(dialog.Manager)
		return m, cmd

	case notification.ShowMsg, notification.HideMsg:
		var cmd tea.Cmd
		m.notification, cmd = m.notification.Update(msg)
		return m, cmd

	case tea.KeyPressMsg:
		return m.handleKey(msg)

	case tea.MouseClickMsg:
		return m.handleMouseClick(msg)
	}

	return m, m.forward(msg)
}

func (m *Model) handleResize(width, height int) tea.Cmd {
	m.wWidth, m.wHeight = width, height
	m.width = width
	m.height = height
	m.ready = m.width > 0 && m.height > 0

	m.statusBar.SetWidth(m.width)
	m.notification.SetSize(m.width, m.height)

	var cmds []tea.Cmd
	// Header and status bar take one row each; the page padding one column
	// on each side.
	cmds = append(cmds, m.page.SetSize(max(0, m.width-2), max(0, m.height-2)))

	u, cmd := m.dialogMgr.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
	m.dialogMgr = u.(dialog.Manager)
	cmds = append(cmds, cmd)

	return tea.Batch(cmds...)
}

// handleThemeChanged re-derives every package-level style from the app's
// current theme, then lets each component drop its cached renders.
func (m *Model) handleThemeChanged() tea.Cmd {
	theme := m.application.Theme()
	styles.Apply(theme)

	m.statusBar.SetTheme(theme.Name, theme.Mode)
	m.statusBar.InvalidateCache()

	return m.forward(messages.ThemeChangedMsg{})
}

// forward hands msg to the page and, when open, the dialog stack.
func (m *Model) forward(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd

	u, cmd := m.page.Update(msg)
	m.page = u.(*preview.Page)
	cmds = append(cmds, cmd)

	if m.dialogMgr.Open() {
		ud, cmd := m.dialogMgr.Update(msg)
		m.dialogMgr = ud.(dialog.Manager)
		cmds = append(cmds, cmd)
	}

	return tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, m.quit()
	}

	// An open dialog owns the keyboard.
	if m.dialogMgr.Open() {
		u, cmd := m.dialogMgr.Update(msg)
		m.dialogMgr = u.(dialog.Manager)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keyMap.Quit):
		return m, m.quit()

	case key.Matches(msg, m.keyMap.Picker):
		return m, m.openThemePicker()

	case key.Matches(msg, m.keyMap.Mode):
		app.Dispatch(m.application, appearance.SwitchThemeMode{
			Mode: m.application.Theme().Mode.Toggle(),
		})
		return m, nil

	case key.Matches(msg, m.keyMap.Scrollbar):
		m.application.SetScrollbarShow(m.application.Theme().Scrollbar().Next())
		return m, nil

	case key.Matches(msg, m.keyMap.Yank):
		return m, m.yankTheme()
	}

	u, cmd := m.page.Update(msg)
	m.page = u.(*preview.Page)
	return m, cmd
}

func (m *Model) handleMouseClick(msg tea.MouseClickMsg) (tea.Model, tea.Cmd) {
	if m.dialogMgr.Open() {
		u, cmd := m.dialogMgr.Update(msg)
		m.dialogMgr = u.(dialog.Manager)
		return m, cmd
	}

	// The theme switcher chip lives on the status bar's last row.
	if msg.Y == m.height-1 && m.statusBar.ClickedSwitcher(msg.X) {
		return m, core.CmdHandler(messages.OpenThemePickerMsg{})
	}

	u, cmd := m.page.Update(msg)
	m.page = u.(*preview.Page)
	return m, cmd
}

func (m *Model) quit() tea.Cmd {
	m.application.CloseWindow(m.windowID)
	return tea.Quit
}

// openThemePicker builds the picker rows from the registry's sorted order,
// re-read on every open so hot-reloaded themes show up without restart.
func (m *Model) openThemePicker() tea.Cmd {
	current := m.application.Theme().Name

	configs := m.application.Registry().Sorted()
	choices := make([]dialog.ThemeChoice, 0, len(configs))
	for _, cfg := range configs {
		source := ""
		if cfg.Path != "" {
			source = filepath.Base(cfg.Path)
		}
		choices = append(choices, dialog.ThemeChoice{
			Name:    cfg.Name,
			Mode:    cfg.Mode,
			Source:  source,
			Current: cfg.Name == current,
		})
	}

	return core.CmdHandler(dialog.OpenDialogMsg{Model: dialog.NewThemePicker(choices)})
}

// yankTheme copies the active theme as a YAML theme file to the clipboard.
func (m *Model) yankTheme() tea.Cmd {
	theme := m.application.Theme()
	cfg := themes.Config{
		Name:   theme.Name,
		Mode:   theme.Mode,
		Colors: theme.Colors,
	}
	if theme.ScrollbarShow != nil {
		cfg.ScrollbarShow = *theme.ScrollbarShow
	}

	data, err := yaml.Marshal(cfg)
	if err == nil {
		err = clipboard.WriteAll(string(data))
	}
	if err != nil {
		return core.CmdHandler(notification.ShowMsg{Text: "Copy failed: " + err.Error(), Error: true})
	}
	return core.CmdHandler(notification.ShowMsg{Text: "Copied " + theme.Name + " as YAML"})
}

func (m *Model) View() tea.View {
	if !m.ready {
		return fullscreenView(styles.MutedStyle.Render("Loading…"))
	}

	header := m.renderHeader()
	pageView := lipgloss.NewStyle().Padding(0, 1).Render(m.page.View())
	statusBarView := m.statusBar.View()

	baseView := lipgloss.JoinVertical(lipgloss.Top, header, pageView, statusBarView)

	if m.dialogMgr.Open() || m.notification.Open() {
		layers := []*lipgloss.Layer{lipgloss.NewLayer(baseView)}
		layers = append(layers, m.dialogMgr.GetLayers()...)
		if m.notification.Open() {
			layers = append(layers, m.notification.GetLayer())
		}
		canvas := lipgloss.NewCanvas(m.width, m.height)
		for _, layer := range layers {
			canvas.Compose(layer)
		}
		return fullscreenView(canvas.Render())
	}

	return fullscreenView(baseView)
}

func (m *Model) renderHeader() string {
	title := styles.HeaderTitleStyle.Render("pigment")
	name := styles.HeaderStyle.Render(" " + m.application.Theme().Name)

	line := title + name
	gap := m.width - lipgloss.Width(line)
	if gap > 0 {
		line += styles.HeaderStyle.Render(padSpaces(gap))
	}
	return line
}

func padSpaces(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}

func fullscreenView(content string) tea.View {
	view := tea.NewView(content)
	view.AltScreen = true
	view.MouseMode = tea.MouseModeCellMotion
	view.BackgroundColor = styles.Background
	view.WindowTitle = "pigment"
	return view
}

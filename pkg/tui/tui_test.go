package tui

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/o0x0o/pigment/pkg/app"
	"github.com/o0x0o/pigment/pkg/appearance"
	"github.com/o0x0o/pigment/pkg/themes"
	"github.com/o0x0o/pigment/pkg/tui/dialog"
	"github.com/o0x0o/pigment/pkg/tui/messages"
)

// newTestModel wires a real registry and appearance controller against
// scratch directories, sized like a normal terminal.
func newTestModel(t *testing.T) (*Model, *app.App, string) {
	t.Helper()

	configDir := t.TempDir()
	themesDir := filepath.Join(t.TempDir(), "themes")

	registry := themes.NewRegistry()
	t.Cleanup(registry.Close)

	a := app.New(registry)
	appearance.InitDirs(a, configDir, themesDir)

	m := New(a)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return m, a, configDir
}

func TestQuitKey(t *testing.T) {
	t.Parallel()

	m, _, _ := newTestModel(t)

	_, cmd := m.Update(tea.KeyPressMsg{Code: 'q', Text: "q"})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestCtrlCQuitsEvenWithDialogOpen(t *testing.T) {
	t.Parallel()

	m, _, _ := newTestModel(t)
	m.Update(dialog.OpenDialogMsg{Model: dialog.NewThemePicker(nil)})
	require.True(t, m.dialogMgr.Open())

	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestPickerKeyOpensDialog(t *testing.T) {
	t.Parallel()

	m, _, _ := newTestModel(t)
	require.False(t, m.dialogMgr.Open())

	_, cmd := m.Update(tea.KeyPressMsg{Code: 't', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)

	var opened bool
	for _, msg := range collectMsgs(cmd) {
		if open, ok := msg.(dialog.OpenDialogMsg); ok {
			opened = true
			m.Update(open)
		}
	}
	require.True(t, opened, "ctrl+t should produce an open-dialog message")
	assert.True(t, m.dialogMgr.Open())
}

func TestModeKeyTogglesAndPersists(t *testing.T) {
	t.Parallel()

	m, a, configDir := newTestModel(t)
	require.Equal(t, themes.ModeLight, a.Theme().Mode)

	m.Update(tea.KeyPressMsg{Code: 'm', Text: "m"})

	theme := a.Theme()
	assert.Equal(t, themes.ModeDark, theme.Mode)
	assert.Equal(t, "Default Dark", theme.Name)

	// The save-on-change observer wrote the selection
	data, err := os.ReadFile(filepath.Join(configDir, "state.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Default Dark")
}

func TestScrollbarKeyCyclesPolicy(t *testing.T) {
	t.Parallel()

	m, a, _ := newTestModel(t)
	require.Equal(t, themes.ScrollbarScrolling, a.Theme().Scrollbar())

	m.Update(tea.KeyPressMsg{Code: 'b', Text: "b"})
	assert.Equal(t, themes.ScrollbarHover, a.Theme().Scrollbar())

	m.Update(tea.KeyPressMsg{Code: 'b', Text: "b"})
	assert.Equal(t, themes.ScrollbarNever, a.Theme().Scrollbar())

	m.Update(tea.KeyPressMsg{Code: 'b', Text: "b"})
	assert.Equal(t, themes.ScrollbarAlways, a.Theme().Scrollbar())
}

func TestChangeThemeMsgSwitchesTheme(t *testing.T) {
	t.Parallel()

	m, a, _ := newTestModel(t)

	m.Update(messages.ChangeThemeMsg{Name: "Default Dark"})
	assert.Equal(t, "Default Dark", a.Theme().Name)

	// Unknown names are dropped, the active theme stays
	m.Update(messages.ChangeThemeMsg{Name: "no-such-theme"})
	assert.Equal(t, "Default Dark", a.Theme().Name)
}

func TestOpenThemePickerMsgOpensDialog(t *testing.T) {
	t.Parallel()

	m, _, _ := newTestModel(t)

	_, cmd := m.Update(messages.OpenThemePickerMsg{})
	require.NotNil(t, cmd)
	for _, msg := range collectMsgs(cmd) {
		if open, ok := msg.(dialog.OpenDialogMsg); ok {
			m.Update(open)
		}
	}
	assert.True(t, m.dialogMgr.Open())
}

func TestModelImplementsTeaModel(t *testing.T) {
	t.Parallel()

	m, _, _ := newTestModel(t)

	var _ tea.Model = m
}

func TestViewComposesDialogOverlay(t *testing.T) {
	t.Parallel()

	m, _, _ := newTestModel(t)
	m.Update(dialog.OpenDialogMsg{Model: dialog.NewThemePicker([]dialog.ThemeChoice{
		{Name: "Default Light", Mode: themes.ModeLight, Current: true},
	})})
	require.True(t, m.dialogMgr.Open())

	view := m.View()
	assert.Contains(t, view.Content, "Switch Theme")
	assert.Contains(t, view.Content, "pigment")
}

func TestViewRendersHeaderAndStatusBar(t *testing.T) {
	t.Parallel()

	m, a, _ := newTestModel(t)

	view := m.View()
	assert.True(t, view.AltScreen)
	assert.Equal(t, "pigment", view.WindowTitle)

	header := m.renderHeader()
	assert.Contains(t, header, "pigment")
	assert.Contains(t, header, a.Theme().Name)
}

// collectMsgs executes a command (or batch/sequence of commands) and collects
// all returned messages.
func collectMsgs(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}

	msg := cmd()
	if msg == nil {
		return nil
	}

	if batchMsg, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, innerCmd := range batchMsg {
			if innerCmd != nil {
				msgs = append(msgs, collectMsgs(innerCmd)...)
			}
		}
		return msgs
	}

	// tea.Sequence returns a func that returns a sequenceMsg which is []tea.Cmd
	msgValue := reflect.ValueOf(msg)
	if msgValue.Kind() == reflect.Slice {
		var msgs []tea.Msg
		for i := range msgValue.Len() {
			elem := msgValue.Index(i)
			if elem.CanInterface() {
				if innerCmd, ok := elem.Interface().(tea.Cmd); ok && innerCmd != nil {
					msgs = append(msgs, collectMsgs(innerCmd)...)
				}
			}
		}
		if len(msgs) > 0 {
			return msgs
		}
	}

	return []tea.Msg{msg}
}

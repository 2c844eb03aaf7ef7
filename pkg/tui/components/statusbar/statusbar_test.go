package statusbar

import (
	"testing"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"

	"github.com/o0x0o/pigment/pkg/themes"
	"github.com/o0x0o/pigment/pkg/tui/core"
)

type helpProvider struct {
	bindings []key.Binding
}

func (h helpProvider) Help() help.KeyMap {
	return core.NewSimpleHelp(h.bindings)
}

func testHelp() core.KeyMapHelp {
	return helpProvider{[]key.Binding{
		key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "themes")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}}
}

func TestViewShowsHelpChipAndVersion(t *testing.T) {
	s := New(testHelp())
	s.SetWidth(100)
	s.SetTheme("Ocean", themes.ModeDark)

	plain := ansi.Strip(s.View())
	assert.Contains(t, plain, "ctrl+t themes")
	assert.Contains(t, plain, "Ocean")
	assert.Contains(t, plain, "pigment ")
	assert.Equal(t, 100, lipgloss.Width(s.View()))
}

func TestClickedSwitcherHitbox(t *testing.T) {
	s := New(nil)
	s.SetWidth(80)
	s.SetTheme("Default Light", themes.ModeLight)
	s.View()

	assert.True(t, s.ClickedSwitcher(s.switcherStartX))
	assert.True(t, s.ClickedSwitcher(s.switcherEndX-1))
	assert.False(t, s.ClickedSwitcher(s.switcherStartX-1))
	assert.False(t, s.ClickedSwitcher(s.switcherEndX))
}

func TestThemeChangeInvalidatesRender(t *testing.T) {
	s := New(nil)
	s.SetWidth(80)
	s.SetTheme("Ocean", themes.ModeDark)
	before := ansi.Strip(s.View())

	s.SetTheme("Solar", themes.ModeLight)
	after := ansi.Strip(s.View())

	assert.Contains(t, before, "Ocean")
	assert.Contains(t, after, "Solar")
	assert.NotContains(t, after, "Ocean")
}

func TestNarrowWidthStillRenders(t *testing.T) {
	s := New(testHelp())
	s.SetWidth(10)
	s.SetTheme("Ocean", themes.ModeDark)

	assert.NotPanics(t, func() { s.View() })
	assert.NotEmpty(t, s.View())
}

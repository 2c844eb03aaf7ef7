package preview

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/require"

	"github.com/o0x0o/pigment/pkg/tui/core"
	"github.com/o0x0o/pigment/pkg/tui/messages"
)

var _ core.Model = (*Page)(nil)

func newTestPage() *Page {
	p := New()
	p.SetSize(100, 40)
	return p
}

func TestPreviewTabSwitching(t *testing.T) {
	t.Parallel()

	p := newTestPage()
	require.Equal(t, TabPalette, p.Active(), "palette should be the initial tab")

	tabKey := tea.KeyPressMsg{Code: tea.KeyTab}

	p.Update(tabKey)
	require.Equal(t, TabUI, p.Active())

	p.Update(tabKey)
	require.Equal(t, TabCode, p.Active())

	p.Update(tabKey)
	require.Equal(t, TabDocs, p.Active())

	// Tab wraps around at the end
	p.Update(tabKey)
	require.Equal(t, TabPalette, p.Active())

	shiftTab := tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}
	p.Update(shiftTab)
	require.Equal(t, TabDocs, p.Active(), "shift+tab should wrap backwards")
}

func TestPreviewNumberKeys(t *testing.T) {
	t.Parallel()

	p := newTestPage()

	p.Update(tea.KeyPressMsg{Text: "3"})
	require.Equal(t, TabCode, p.Active())

	p.Update(tea.KeyPressMsg{Text: "1"})
	require.Equal(t, TabPalette, p.Active())

	p.Update(tea.KeyPressMsg{Text: "4"})
	require.Equal(t, TabDocs, p.Active())

	p.Update(tea.KeyPressMsg{Text: "2"})
	require.Equal(t, TabUI, p.Active())
}

func TestPreviewViewRendersTabBar(t *testing.T) {
	t.Parallel()

	p := newTestPage()
	view := p.View()

	require.Contains(t, view, "1 palette")
	require.Contains(t, view, "2 ui")
	require.Contains(t, view, "3 code")
	require.Contains(t, view, "4 docs")
	require.Contains(t, view, "mode:")
	require.Contains(t, view, "scrollbar:")
}

func TestPreviewPaletteTab(t *testing.T) {
	t.Parallel()

	p := newTestPage()
	view := p.View()

	require.Contains(t, view, "primary")
	require.Contains(t, view, "background")
	require.Contains(t, view, "#", "palette rows should show hex values")
}

func TestPreviewCodeTab(t *testing.T) {
	t.Parallel()

	p := newTestPage()
	p.Update(tea.KeyPressMsg{Text: "3"})
	view := p.View()

	require.Contains(t, view, "func")
	require.Contains(t, view, "   1 ", "code view should carry line numbers")
}

func TestPreviewEmptyWithoutSize(t *testing.T) {
	t.Parallel()

	p := New()
	require.Empty(t, p.View())
}

func TestPreviewCacheClearedOnThemeChange(t *testing.T) {
	t.Parallel()

	p := newTestPage()
	p.View()
	require.NotEmpty(t, p.cache, "rendering should fill the cache")

	p.Update(messages.ThemeChangedMsg{})
	require.Empty(t, p.cache, "a theme change should drop cached renders")
}

func TestPreviewCacheClearedOnResize(t *testing.T) {
	t.Parallel()

	p := newTestPage()
	p.View()
	require.NotEmpty(t, p.cache)

	p.SetSize(80, 30)
	require.Empty(t, p.cache)

	// Same size again keeps the cache
	p.View()
	p.SetSize(80, 30)
	require.NotEmpty(t, p.cache)
}

func TestPreviewWheelOnlyScrollsUITab(t *testing.T) {
	t.Parallel()

	p := newTestPage()
	p.View()

	wheel := tea.MouseWheelMsg{Button: tea.MouseWheelDown}

	// On the palette tab the wheel is ignored
	p.Update(wheel)
	require.Equal(t, 0, p.demoScroll.GetScrollOffset())

	p.Update(tea.KeyPressMsg{Text: "2"})
	p.View()
	p.Update(wheel)
	require.Equal(t, 1, p.demoScroll.GetScrollOffset())
}

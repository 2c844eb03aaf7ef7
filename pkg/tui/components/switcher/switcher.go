// Package switcher renders the status bar chip showing the active theme.
// Clicking the chip opens the theme picker; the chip itself is a passive
// ghost-style label and leaves hit testing to its container.
package switcher

import (
	"charm.land/lipgloss/v2"

	"github.com/o0x0o/pigment/pkg/themes"
	"github.com/o0x0o/pigment/pkg/tui/styles"
)

// Mode glyphs: a mostly-dark circle for dark themes, mostly-light for light.
const (
	glyphDark  = "◐"
	glyphLight = "◑"
)

type Model struct {
	name string
	mode themes.Mode

	cached     string
	cacheDirty bool
}

func New() Model {
	return Model{
		mode:       themes.ModeLight,
		cacheDirty: true,
	}
}

// SetTheme updates the chip's theme name and mode.
func (m *Model) SetTheme(name string, mode themes.Mode) {
	if m.name != name || m.mode != mode {
		m.name = name
		m.mode = mode
		m.cacheDirty = true
	}
}

// InvalidateCache clears the cached render (palette change).
func (m *Model) InvalidateCache() {
	m.cacheDirty = true
}

// Width returns the rendered chip width in cells.
func (m *Model) Width() int {
	return lipgloss.Width(m.View())
}

func (m *Model) View() string {
	if m.cacheDirty {
		m.cacheDirty = false
		glyph := glyphDark
		if m.mode == themes.ModeLight {
			glyph = glyphLight
		}
		m.cached = styles.ChipGlyphStyle.Render(" "+glyph+" ") +
			styles.ChipStyle.Render(m.name+" ")
	}
	return m.cached
}

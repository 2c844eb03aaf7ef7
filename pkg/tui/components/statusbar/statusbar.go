// Package statusbar renders the bottom line of the TUI: key-binding help on
// the left, the theme switcher chip and version info on the right.
package statusbar

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/o0x0o/pigment/pkg/themes"
	"github.com/o0x0o/pigment/pkg/tui/components/switcher"
	"github.com/o0x0o/pigment/pkg/tui/core"
	"github.com/o0x0o/pigment/pkg/tui/styles"
	"github.com/o0x0o/pigment/pkg/version"
)

// StatusBar displays key-binding help on the left and the clickable theme
// switcher chip plus version info on the right.
type StatusBar struct {
	width int
	help  core.KeyMapHelp

	switcher       switcher.Model
	switcherStartX int
	switcherEndX   int

	cached     string
	cacheDirty bool
}

// New creates a new StatusBar instance
func New(help core.KeyMapHelp) StatusBar {
	return StatusBar{
		help:       help,
		switcher:   switcher.New(),
		cacheDirty: true,
	}
}

// SetWidth sets the width of the status bar
func (s *StatusBar) SetWidth(width int) {
	if s.width != width {
		s.width = width
		s.cacheDirty = true
	}
}

// SetHelp sets the help provider for the status bar
func (s *StatusBar) SetHelp(help core.KeyMapHelp) {
	s.help = help
	s.cacheDirty = true
}

// SetTheme updates the switcher chip with the active theme.
func (s *StatusBar) SetTheme(name string, mode themes.Mode) {
	s.switcher.SetTheme(name, mode)
	s.cacheDirty = true
}

// ClickedSwitcher returns true if the given X coordinate hits the theme chip.
func (s *StatusBar) ClickedSwitcher(x int) bool {
	return x >= s.switcherStartX && x < s.switcherEndX
}

// Height returns the rendered height of the status bar (always 1).
func (s *StatusBar) Height() int {
	return 1
}

// InvalidateCache clears all cached values.
func (s *StatusBar) InvalidateCache() {
	s.switcher.InvalidateCache()
	s.cacheDirty = true
}

// rebuild renders the full status bar line and computes click hitboxes.
func (s *StatusBar) rebuild() {
	s.cacheDirty = false

	// Build the styled right side: switcher chip + version.
	chip := s.switcher.View()
	chipW := lipgloss.Width(chip)
	ver := styles.MutedStyle.Render("pigment " + version.Version)
	right := chip + "  " + ver
	rightW := lipgloss.Width(right)

	// Build the styled left side: help bindings (possibly truncated).
	const pad = 1
	maxHelpW := s.width - rightW - 2*pad - 1

	var left string
	var leftW int
	if s.help != nil {
		if help := s.help.Help(); help != nil {
			var parts []string
			for _, b := range help.ShortHelp() {
				if b.Help().Key != "" && b.Help().Desc != "" {
					parts = append(parts,
						styles.HighlightWhiteStyle.Render(b.Help().Key)+
							" "+
							styles.SecondaryStyle.Render(b.Help().Desc))
				}
			}
			if len(parts) > 0 && maxHelpW > 0 {
				helpStr := strings.Join(parts, "  ")
				helpW := lipgloss.Width(helpStr)
				if helpW > maxHelpW {
					helpStr = ansi.Truncate(helpStr, maxHelpW, "...")
					helpW = lipgloss.Width(helpStr)
				}
				left = " " + helpStr
				leftW = pad + helpW
			}
		}
	}

	gap := max(1, s.width-leftW-rightW-pad)

	s.switcherStartX = leftW + gap
	s.switcherEndX = s.switcherStartX + chipW

	s.cached = left + strings.Repeat(" ", gap) + right + " "
}

// View renders the status bar.
//
// Layout: [ help text ...            ◐ Theme Name  pigment VERSION ]
func (s *StatusBar) View() string {
	if s.cacheDirty {
		s.rebuild()
	}
	return s.cached
}

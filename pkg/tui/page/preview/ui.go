package preview

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/o0x0o/pigment/pkg/tui/styles"
)

// The scrollbar demo pretends to page through this many rows.
const demoTotalRows = 40

var sampleRows = []string{
	"default-dark.yaml",
	"default-light.yaml",
	"ocean.yaml",
	"solar.yaml",
	"gruvbox.yaml",
	"nord.yaml",
}

// renderSampleUI draws a handful of widgets so every style of the theme is
// visible at once: a list with a selected row, status lines, an input field
// mock and the scrollbar demo.
func (p *Page) renderSampleUI(width, height int) string {
	listHeight := len(sampleRows)
	p.demoScroll.SetDimensions(listHeight, demoTotalRows)

	left := p.renderList(listHeight)
	right := p.renderStatusPanel()

	top := lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)

	input := styles.PanelStyle.Width(min(width, 44)).Render(
		styles.MutedStyle.Render("search: ") +
			styles.BaseStyle.Render("gruv") +
			styles.CursorStyle.Render("▋"),
	)

	caption := styles.MutedStyle.Render(
		"scrollbar " + string(styles.Current().Scrollbar()) + ": " +
			scrollbarShowLabel(styles.Current().Scrollbar()) +
			"  (wheel to scroll the list)")

	return lipgloss.JoinVertical(lipgloss.Left, top, "", input, "", caption)
}

// renderList shows a file-picker-like panel with the demo scrollbar glued to
// its right edge.
func (p *Page) renderList(listHeight int) string {
	offset := p.demoScroll.GetScrollOffset()

	rows := make([]string, 0, listHeight)
	for i, name := range sampleRows {
		row := fmt.Sprintf("%3d  %s", offset+i+1, name)
		if i == 1 {
			rows = append(rows, styles.SelectionStyle.Render("▸ "+row))
		} else {
			rows = append(rows, styles.BaseStyle.Render("  "+row))
		}
	}
	list := strings.Join(rows, "\n")

	bar := p.demoScroll.View()
	if bar == "" {
		bar = strings.Repeat(" \n", listHeight-1) + " "
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, list, " ", bar)
	return styles.PanelStyle.Render(
		styles.PanelTitleStyle.Render("themes/") + "\n" + body,
	)
}

func (p *Page) renderStatusPanel() string {
	lines := []string{
		styles.SuccessStyle.Render("✓ theme loaded"),
		styles.InfoStyle.Render("ℹ 6 themes in registry"),
		styles.WarningStyle.Render("⚠ partial palette, using defaults"),
		styles.ErrorStyle.Render("✗ watch failed: no such directory"),
		"",
		styles.HighlightStyle.Render("accent text") + " " +
			styles.SecondaryStyle.Render("secondary text") + " " +
			styles.MutedStyle.Render("muted text"),
		styles.BoldStyle.Render("bold") + " " + styles.ItalicStyle.Render("italic"),
	}
	return styles.PanelStyle.Render(
		styles.PanelTitleStyle.Render("status") + "\n" + strings.Join(lines, "\n"),
	)
}

package preview

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/o0x0o/pigment/pkg/themes"
	"github.com/o0x0o/pigment/pkg/tui/styles"
)

// swatchEntry pairs a palette field with its display label, in the order the
// palette tab lists them.
type swatchEntry struct {
	label string
	hex   func(themes.Colors) string
}

var swatchEntries = []swatchEntry{
	{"background", func(c themes.Colors) string { return c.Background }},
	{"foreground", func(c themes.Colors) string { return c.Foreground }},
	{"surface", func(c themes.Colors) string { return c.Surface }},
	{"border", func(c themes.Colors) string { return c.Border }},
	{"primary", func(c themes.Colors) string { return c.Primary }},
	{"secondary", func(c themes.Colors) string { return c.Secondary }},
	{"accent", func(c themes.Colors) string { return c.Accent }},
	{"selection", func(c themes.Colors) string { return c.Selection }},
	{"cursor", func(c themes.Colors) string { return c.Cursor }},
	{"muted", func(c themes.Colors) string { return c.Muted }},
	{"error", func(c themes.Colors) string { return c.Error }},
	{"warning", func(c themes.Colors) string { return c.Warning }},
	{"success", func(c themes.Colors) string { return c.Success }},
	{"info", func(c themes.Colors) string { return c.Info }},
}

const (
	swatchLabelWidth = 11
	swatchBlockWidth = 8
)

// renderPalette draws one row per palette color: label, a filled block in
// that color, and the hex value.
func renderPalette(width int) string {
	theme := styles.Current()
	colors := theme.Colors

	var b strings.Builder
	b.WriteString(styles.PanelTitleStyle.Render(theme.Name))
	b.WriteString("\n\n")

	for _, entry := range swatchEntries {
		hex := entry.hex(colors)
		label := styles.SwatchLabelStyle.Render(pad(entry.label, swatchLabelWidth))
		block := lipgloss.NewStyle().
			Background(lipgloss.Color(hex)).
			Render(strings.Repeat(" ", swatchBlockWidth))
		row := label + " " + block + "  " + styles.SwatchHexStyle.Render(hex)

		if lipgloss.Width(row) > width {
			row = label + " " + styles.SwatchHexStyle.Render(hex)
		}
		b.WriteString(row)
		b.WriteString("\n")
	}

	return strings.TrimSuffix(b.String(), "\n")
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

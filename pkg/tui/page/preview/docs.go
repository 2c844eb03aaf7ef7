package preview

import (
	"strings"

	"charm.land/glamour/v2"

	"github.com/o0x0o/pigment/pkg/tui/styles"
)

const docsSample = `# Pigment

A **terminal theme studio**: drop YAML palettes into the themes directory and
watch every widget recolor itself *live*.

## Highlights

- Hot reload on file changes
- ` + "`state.json`" + ` remembers your last pick
- Works over [SSH](https://example.com) too

> The best theme is the one you stop noticing.

` + "```go" + `
cfg, ok := registry.Lookup("Ocean")
if ok {
	app.ApplyThemeConfig(cfg)
}
` + "```" + `

1. Pick a theme
2. Tweak the palette
3. Ship it
`

// renderDocs renders the markdown sample through glamour with styles derived
// from the active theme.
func renderDocs(width int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithWordWrap(min(width, 100)),
		glamour.WithStyles(styles.MarkdownStyle()),
	)
	if err != nil {
		return docsSample
	}

	out, err := r.Render(docsSample)
	if err != nil {
		return docsSample
	}
	return strings.TrimRight(out, "\n")
}

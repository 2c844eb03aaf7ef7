package preview

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"

	"github.com/o0x0o/pigment/pkg/tui/styles"
)

const codeSample = `package main

import (
	"fmt"
	"os"
)

// Theme names a palette and where it came from.
type Theme struct {
	Name string
	Path string
}

func main() {
	themes := []Theme{
		{Name: "Default Dark"},
		{Name: "Ocean", Path: "themes/ocean.yaml"},
	}

	for i, t := range themes {
		fmt.Printf("%2d %q\n", i+1, t.Name)
	}

	if len(themes) == 0 {
		fmt.Fprintln(os.Stderr, "no themes")
		os.Exit(1)
	}
}
`

// renderCode highlights the Go sample with a chroma style derived from the
// active theme and prefixes line numbers like a diff view would.
func renderCode(width int) string {
	lexer := chroma.Coalesce(lexers.Get("go"))
	style := styles.ChromaStyle()

	iterator, err := lexer.Tokenise(nil, codeSample)
	if err != nil {
		return codeSample
	}

	var highlighted strings.Builder
	for _, token := range iterator.Tokens() {
		if token.Value == "" {
			continue
		}
		highlighted.WriteString(tokenStyle(token.Type, style).Render(token.Value))
	}

	var b strings.Builder
	for i, line := range strings.Split(strings.TrimSuffix(highlighted.String(), "\n"), "\n") {
		num := styles.LineNumberStyle.Render(fmt.Sprintf("%4d ", i+1))
		b.WriteString(num + " " + line + "\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func tokenStyle(tokenType chroma.TokenType, style *chroma.Style) lipgloss.Style {
	entry := style.Get(tokenType)
	s := lipgloss.NewStyle()

	if entry.Colour.IsSet() {
		s = s.Foreground(lipgloss.Color(entry.Colour.String()))
	}
	if entry.Bold == chroma.Yes {
		s = s.Bold(true)
	}
	if entry.Italic == chroma.Yes {
		s = s.Italic(true)
	}
	if entry.Underline == chroma.Yes {
		s = s.Underline(true)
	}
	return s
}

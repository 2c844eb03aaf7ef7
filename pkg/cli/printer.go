// Package cli renders pigment's command-line output: plain text helpers,
// aligned tables and inline color swatches.
package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

var (
	bold   = color.New(color.Bold).SprintfFunc()
	red    = color.New(color.FgRed).SprintfFunc()
	faint  = color.New(color.Faint).SprintfFunc()
	header = color.New(color.Bold, color.Underline).SprintfFunc()
)

// Printer writes human-oriented CLI output. Colors and swatches are only
// emitted when the destination is a terminal.
type Printer struct {
	out      io.Writer
	colorize bool
	width    int
}

func NewPrinter(out io.Writer) *Printer {
	p := &Printer{out: out, width: 80}

	if f, ok := out.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		p.colorize = !color.NoColor
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			p.width = w
		}
	}
	return p
}

func (p *Printer) Println(a ...any) {
	fmt.Fprintln(p.out, a...)
}

func (p *Printer) Printf(format string, a ...any) {
	fmt.Fprintf(p.out, format, a...)
}

// Width returns the usable terminal width, or 80 when the destination is
// not a terminal.
func (p *Printer) Width() int {
	return p.width
}

// PrintError prints an error message the way every pigment command reports
// failure.
func (p *Printer) PrintError(err error) {
	if p.colorize {
		p.Printf("%s %s\n", red("✗"), err)
		return
	}
	p.Printf("✗ %s\n", err)
}

// Bold emphasizes s when colors are enabled.
func (p *Printer) Bold(s string) string {
	if p.colorize {
		return bold("%s", s)
	}
	return s
}

// Faint de-emphasizes s when colors are enabled.
func (p *Printer) Faint(s string) string {
	if p.colorize {
		return faint("%s", s)
	}
	return s
}

// PrintTable writes rows as left-aligned columns, two spaces apart, with an
// underlined header row on terminals.
func (p *Printer) PrintTable(headers []string, rows [][]string) {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	headerLine := make([]string, len(headers))
	for i, h := range headers {
		cell := pad(h, widths[i])
		if p.colorize {
			cell = header("%s", cell)
		}
		headerLine[i] = cell
	}
	p.Println(strings.TrimRight(strings.Join(headerLine, "  "), " "))

	for _, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = pad(cell, widths[i])
		}
		p.Println(strings.TrimRight(strings.Join(cells, "  "), " "))
	}
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// Swatch returns a colored block for the given hex color, falling back to
// the bare hex string when colors are off or the value does not parse.
func (p *Printer) Swatch(hex string) string {
	r, g, b, ok := parseHex(hex)
	if !p.colorize || !ok {
		return hex
	}
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm    \x1b[0m %s", r, g, b, hex)
}

func parseHex(hex string) (r, g, b uint8, ok bool) {
	h, found := strings.CutPrefix(hex, "#")
	if !found {
		return 0, 0, 0, false
	}
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), true
}

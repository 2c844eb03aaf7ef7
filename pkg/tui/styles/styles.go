// Package styles holds the package-level color and style variables the TUI
// renders with. Apply rebuilds all of them from a theme; components read the
// variables directly and must drop any cached renders when they receive
// messages.ThemeChangedMsg.
package styles

import (
	"image/color"
	"sync/atomic"
	"time"

	"charm.land/bubbles/v2/textinput"
	"charm.land/lipgloss/v2"

	"github.com/o0x0o/pigment/pkg/app"
	"github.com/o0x0o/pigment/pkg/themes"
)

// DoubleClickThreshold is the maximum delay between two clicks on the same
// element for them to count as a double click.
const DoubleClickThreshold = 400 * time.Millisecond

// Picker dialog sizing.
const (
	PickerWidthPercent = 50
	PickerMinWidth     = 44
	PickerMaxWidth     = 72
	// PickerMaxListHeight caps the scrollable theme list.
	PickerMaxListHeight = 30
)

// Palette, assigned by Apply.
var (
	Background color.Color
	Foreground color.Color
	Surface    color.Color
	Border     color.Color
	Primary    color.Color
	Secondary  color.Color
	Accent     color.Color
	Selection  color.Color
	Cursor     color.Color
	Muted      color.Color
	Error      color.Color
	Warning    color.Color
	Success    color.Color
	Info       color.Color

	// White is the stronger of pure white/black against the background,
	// used for emphasized text such as key names in help lines.
	White color.Color
	// OnPrimary is the best-contrast text color on a Primary background.
	OnPrimary color.Color
)

// Styles, rebuilt from the palette by Apply.
var (
	// Base styles
	BaseStyle lipgloss.Style
	AppStyle  lipgloss.Style

	// Text styles
	HighlightStyle      lipgloss.Style
	HighlightWhiteStyle lipgloss.Style
	MutedStyle          lipgloss.Style
	SecondaryStyle      lipgloss.Style
	BoldStyle           lipgloss.Style
	ItalicStyle         lipgloss.Style

	// Status styles
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	InfoStyle    lipgloss.Style

	// Header, tab and chip styles
	HeaderStyle      lipgloss.Style
	HeaderTitleStyle lipgloss.Style
	TabActiveStyle   lipgloss.Style
	TabInactiveStyle lipgloss.Style
	ChipStyle        lipgloss.Style
	ChipGlyphStyle   lipgloss.Style

	// Dialog styles
	DialogStyle          lipgloss.Style
	DialogTitleStyle     lipgloss.Style
	DialogContentStyle   lipgloss.Style
	DialogSeparatorStyle lipgloss.Style
	DialogQuestionStyle  lipgloss.Style
	DialogHelpStyle      lipgloss.Style
	DialogInputStyle     textinput.Styles

	// List styles (picker rows)
	PaletteUnselectedActionStyle lipgloss.Style
	PaletteSelectedActionStyle   lipgloss.Style
	PaletteUnselectedDescStyle   lipgloss.Style
	PaletteSelectedDescStyle     lipgloss.Style

	// Badge styles
	BadgeModeStyle    lipgloss.Style
	BadgeCurrentStyle lipgloss.Style

	// Scrollbar styles
	TrackStyle       lipgloss.Style
	ThumbStyle       lipgloss.Style
	ThumbActiveStyle lipgloss.Style

	// Notification styles
	NotificationStyle      lipgloss.Style
	NotificationErrorStyle lipgloss.Style

	// Sample widget styles (preview ui tab)
	SelectionStyle  lipgloss.Style
	CursorStyle     lipgloss.Style
	PanelStyle      lipgloss.Style
	PanelTitleStyle lipgloss.Style

	// Code tab styles
	LineNumberStyle lipgloss.Style
	SeparatorStyle  lipgloss.Style

	// Swatch styles (preview palette tab)
	SwatchHexStyle   lipgloss.Style
	SwatchLabelStyle lipgloss.Style
)

// currentTheme stores the last applied theme for derived-style rebuilds.
var currentTheme atomic.Pointer[app.Theme]

// Current returns the last applied theme.
func Current() app.Theme {
	return *currentTheme.Load()
}

// Apply updates every color and style variable from the given theme. After
// calling this, send messages.ThemeChangedMsg so components drop renders
// cached under the previous palette.
func Apply(theme app.Theme) {
	currentTheme.Store(&theme)

	c := theme.Colors
	Background = lipgloss.Color(c.Background)
	Foreground = lipgloss.Color(c.Foreground)
	Surface = lipgloss.Color(c.Surface)
	Border = lipgloss.Color(c.Border)
	Primary = lipgloss.Color(c.Primary)
	Secondary = lipgloss.Color(c.Secondary)
	Accent = lipgloss.Color(c.Accent)
	Selection = lipgloss.Color(c.Selection)
	Cursor = lipgloss.Color(c.Cursor)
	Muted = lipgloss.Color(c.Muted)
	Error = lipgloss.Color(c.Error)
	Warning = lipgloss.Color(c.Warning)
	Success = lipgloss.Color(c.Success)
	Info = lipgloss.Color(c.Info)

	White = lipgloss.Color(bestForegroundHex(c.Background, "#FFFFFF", "#000000"))
	OnPrimary = lipgloss.Color(bestForegroundHex(
		c.Primary,
		c.Foreground,
		c.Background,
		"#000000",
		"#FFFFFF",
	))

	rebuildStyles()
}

// rebuildStyles rebuilds all derived lipgloss.Style variables from the
// current color values.
func rebuildStyles() {
	// Base styles
	BaseStyle = lipgloss.NewStyle().Foreground(Foreground)
	AppStyle = BaseStyle.Padding(0, 1)

	// Text styles
	HighlightStyle = BaseStyle.Foreground(Accent)
	HighlightWhiteStyle = BaseStyle.Foreground(White).Bold(true)
	MutedStyle = BaseStyle.Foreground(Muted)
	SecondaryStyle = BaseStyle.Foreground(Secondary)
	BoldStyle = BaseStyle.Bold(true)
	ItalicStyle = BaseStyle.Italic(true)

	// Status styles
	SuccessStyle = BaseStyle.Foreground(Success)
	ErrorStyle = BaseStyle.Foreground(Error)
	WarningStyle = BaseStyle.Foreground(Warning)
	InfoStyle = BaseStyle.Foreground(Info)

	// Header, tab and chip styles
	HeaderStyle = BaseStyle.Background(Surface)
	HeaderTitleStyle = BaseStyle.Background(Surface).Foreground(Accent).Bold(true).Padding(0, 1)
	TabActiveStyle = BaseStyle.Foreground(OnPrimary).Background(Primary).Bold(true).Padding(0, 1)
	TabInactiveStyle = BaseStyle.Foreground(Secondary).Background(Surface).Padding(0, 1)
	ChipStyle = BaseStyle.Foreground(Secondary).Background(Surface)
	ChipGlyphStyle = BaseStyle.Foreground(Accent).Background(Surface)

	// Dialog styles
	DialogStyle = BaseStyle.
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Foreground(Foreground).
		Padding(1, 2).
		Align(lipgloss.Left)

	DialogTitleStyle = BaseStyle.
		Bold(true).
		Foreground(Secondary).
		Align(lipgloss.Center)

	DialogContentStyle = BaseStyle.Foreground(Foreground)

	DialogSeparatorStyle = BaseStyle.Foreground(Border)

	DialogQuestionStyle = BaseStyle.
		Bold(true).
		Foreground(Foreground).
		Align(lipgloss.Center)

	DialogHelpStyle = BaseStyle.
		Foreground(Muted).
		Italic(true)

	DialogInputStyle = textinput.Styles{
		Focused: textinput.StyleState{
			Text:        BaseStyle,
			Placeholder: BaseStyle.Foreground(Muted),
		},
		Blurred: textinput.StyleState{
			Text:        BaseStyle,
			Placeholder: BaseStyle.Foreground(Muted),
		},
		Cursor: textinput.CursorStyle{
			Color: Cursor,
		},
	}

	// List styles
	PaletteUnselectedActionStyle = BaseStyle.
		Foreground(Foreground).
		Bold(true)

	PaletteSelectedActionStyle = PaletteUnselectedActionStyle.
		Background(Primary).
		Foreground(OnPrimary)

	PaletteUnselectedDescStyle = BaseStyle.Foreground(Secondary)

	PaletteSelectedDescStyle = PaletteUnselectedDescStyle.
		Background(Primary).
		Foreground(OnPrimary)

	// Badge styles
	BadgeModeStyle = BaseStyle.Foreground(Info)
	BadgeCurrentStyle = BaseStyle.Foreground(Success)

	// Scrollbar styles
	TrackStyle = lipgloss.NewStyle().Foreground(Border)
	ThumbStyle = lipgloss.NewStyle().Foreground(Info).Background(Surface).Bold(true)
	ThumbActiveStyle = lipgloss.NewStyle().Foreground(White).Background(Surface).Bold(true)

	// Notification styles
	NotificationStyle = BaseStyle.
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Success).
		Padding(0, 1)

	NotificationErrorStyle = BaseStyle.
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Error).
		Padding(0, 1)

	// Sample widget styles
	SelectionStyle = BaseStyle.Background(Selection).Foreground(Foreground)
	CursorStyle = BaseStyle.Foreground(Cursor)
	PanelStyle = BaseStyle.
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 1)
	PanelTitleStyle = BaseStyle.Foreground(Secondary).Bold(true)

	// Code tab styles
	LineNumberStyle = BaseStyle.Foreground(Muted).Background(Surface)
	SeparatorStyle = BaseStyle.Foreground(Border).Background(Surface)

	// Swatch styles
	SwatchHexStyle = BaseStyle.Foreground(Muted)
	SwatchLabelStyle = BaseStyle.Foreground(Secondary)
}

// init applies the builtin light theme so color variables are set before any
// code uses them, including tests that never call Apply.
func init() {
	cfg := themes.NewRegistry().DefaultForMode(themes.ModeLight)
	Apply(app.Theme{Name: cfg.Name, Mode: cfg.Mode, Colors: cfg.Colors})
}

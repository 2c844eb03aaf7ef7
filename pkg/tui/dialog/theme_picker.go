package dialog

import (
	"slices"
	"sort"
	"strings"
	"time"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/junegunn/fzf/src/algo"
	"github.com/junegunn/fzf/src/util"
	"github.com/mattn/go-runewidth"

	"github.com/o0x0o/pigment/pkg/themes"
	"github.com/o0x0o/pigment/pkg/tui/components/scrollbar"
	"github.com/o0x0o/pigment/pkg/tui/core"
	"github.com/o0x0o/pigment/pkg/tui/messages"
	"github.com/o0x0o/pigment/pkg/tui/styles"
)

// Picker sizing and layout. The list is capped at 30 rows; the offsets
// locate the list and its scrollbar inside the rendered dialog frame for
// mouse hit testing.
const (
	pickerWidthPercent  = 50
	pickerMinWidth      = 44
	pickerMaxWidth      = 72
	pickerHeightPercent = 70
	pickerMaxListHeight = 30

	// Rows around the list: border 2, padding 2, title, space above the
	// input, input, separator, space below the list, help line.
	pickerListVerticalOverhead = 10
	// List start relative to the dialog's top row: border, padding, title,
	// space, input, separator.
	pickerListStartOffset  = 6
	pickerScrollbarYOffset = 6
	pickerScrollbarXInset  = 1
	pickerScrollbarGap     = 1
	pickerDialogPadding    = 4
)

// ThemeChoice is one selectable row in the theme picker.
type ThemeChoice struct {
	Name    string      // Theme name, the registry key
	Mode    themes.Mode // Light/dark badge
	Source  string      // Base filename for file themes, empty for builtins
	Current bool        // Marks the active theme with a check
}

// themePicker lets the user pick a theme from the registry. Rows keep the
// registry's sorted order until a filter query reorders them by match score.
// Enter emits messages.ChangeThemeMsg for the highlighted theme; nothing is
// applied before that.
type themePicker struct {
	BaseDialog
	textInput        textinput.Model
	themes           []ThemeChoice
	filtered         []ThemeChoice
	selected         int
	keyMap           pickerKeyMap
	scrollbar        *scrollbar.Model
	needsScrollToSel bool

	// Double-click detection
	lastClickTime  time.Time
	lastClickIndex int
}

type pickerKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Enter    key.Binding
	Escape   key.Binding
}

func defaultPickerKeyMap() pickerKeyMap {
	return pickerKeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "ctrl+p")),
		Down:     key.NewBinding(key.WithKeys("down", "ctrl+n")),
		PageUp:   key.NewBinding(key.WithKeys("pgup")),
		PageDown: key.NewBinding(key.WithKeys("pgdown")),
		Enter:    key.NewBinding(key.WithKeys("enter")),
		Escape:   key.NewBinding(key.WithKeys("esc")),
	}
}

// NewThemePicker creates the theme picker dialog. Choices are shown in the
// given order; the current theme starts selected.
func NewThemePicker(choices []ThemeChoice) Dialog {
	ti := textinput.New()
	ti.Placeholder = "Type to filter themes…"
	ti.Focus()
	ti.CharLimit = 100
	ti.SetWidth(50)
	ti.SetStyles(styles.DialogInputStyle)

	d := &themePicker{
		textInput: ti,
		themes:    slices.Clone(choices),
		keyMap:    defaultPickerKeyMap(),
		scrollbar: scrollbar.New(),
	}
	// Dialog lists always show their scrollbar while overflowing,
	// independent of the theme's scrollbar preference.
	d.scrollbar.SetShow(themes.ScrollbarAlways)
	d.filterThemes()

	for i, t := range d.filtered {
		if t.Current {
			d.selected = i
			d.needsScrollToSel = true
			break
		}
	}

	return d
}

func (d *themePicker) Init() tea.Cmd {
	return textinput.Blink
}

func (d *themePicker) Update(msg tea.Msg) (core.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		cmd := d.SetSize(msg.Width, msg.Height)
		return d, cmd

	case messages.ThemeChangedMsg:
		// The input caches its styles; re-derive them from the new palette.
		d.textInput.SetStyles(styles.DialogInputStyle)
		return d, nil

	case tea.PasteMsg:
		var cmd tea.Cmd
		d.textInput, cmd = d.textInput.Update(msg)
		if d.filterThemes() {
			d.needsScrollToSel = true
		}
		return d, cmd

	case tea.MouseClickMsg:
		return d.handleMouseClick(msg)

	case tea.MouseMotionMsg:
		if d.scrollbar.IsDragging() {
			sb, cmd := d.scrollbar.Update(msg)
			d.scrollbar = sb
			return d, cmd
		}
		return d, nil

	case tea.MouseReleaseMsg:
		if d.scrollbar.IsDragging() {
			sb, cmd := d.scrollbar.Update(msg)
			d.scrollbar = sb
			return d, cmd
		}
		return d, nil

	case tea.MouseWheelMsg:
		return d.handleMouseWheel(msg)

	case tea.KeyPressMsg:
		if cmd := HandleQuit(msg); cmd != nil {
			return d, cmd
		}

		switch {
		case key.Matches(msg, d.keyMap.Escape):
			return d, core.CmdHandler(CloseDialogMsg{})

		case key.Matches(msg, d.keyMap.Up):
			if d.selected > 0 {
				d.selected--
				d.needsScrollToSel = true
			}
			return d, nil

		case key.Matches(msg, d.keyMap.Down):
			if d.selected < len(d.filtered)-1 {
				d.selected++
				d.needsScrollToSel = true
			}
			return d, nil

		case key.Matches(msg, d.keyMap.PageUp):
			d.selected = max(0, d.selected-d.pageSize())
			d.needsScrollToSel = true
			return d, nil

		case key.Matches(msg, d.keyMap.PageDown):
			d.selected = min(max(0, len(d.filtered)-1), d.selected+d.pageSize())
			d.needsScrollToSel = true
			return d, nil

		case key.Matches(msg, d.keyMap.Enter):
			return d, d.handleSelection()

		default:
			var cmd tea.Cmd
			d.textInput, cmd = d.textInput.Update(msg)
			if d.filterThemes() {
				d.needsScrollToSel = true
			}
			return d, cmd
		}
	}

	return d, nil
}

func (d *themePicker) handleMouseClick(msg tea.MouseClickMsg) (core.Model, tea.Cmd) {
	if d.isMouseOnScrollbar(msg.X, msg.Y) {
		sb, cmd := d.scrollbar.Update(msg)
		d.scrollbar = sb
		return d, cmd
	}

	if msg.Button == tea.MouseLeft {
		if themeIdx := d.mouseYToThemeIndex(msg.Y); themeIdx >= 0 {
			now := time.Now()

			if themeIdx == d.lastClickIndex && now.Sub(d.lastClickTime) < styles.DoubleClickThreshold {
				d.selected = themeIdx
				d.lastClickTime = time.Time{}
				return d, d.handleSelection()
			}

			d.selected = themeIdx
			d.lastClickTime = now
			d.lastClickIndex = themeIdx
		}
	}
	return d, nil
}

func (d *themePicker) handleMouseWheel(msg tea.MouseWheelMsg) (core.Model, tea.Cmd) {
	if !d.isMouseInDialog(msg.X, msg.Y) {
		return d, nil
	}

	switch msg.Button.String() {
	case "wheelup":
		d.scrollbar.ScrollUp()
		d.scrollbar.ScrollUp()
	case "wheeldown":
		d.scrollbar.ScrollDown()
		d.scrollbar.ScrollDown()
	}
	return d, nil
}

func (d *themePicker) isMouseInDialog(x, y int) bool {
	dialogRow, dialogCol := d.Position()
	dialogWidth, maxHeight, _ := d.dialogSize()
	return x >= dialogCol && x < dialogCol+dialogWidth &&
		y >= dialogRow && y < dialogRow+maxHeight
}

func (d *themePicker) isMouseOnScrollbar(x, y int) bool {
	dialogWidth, maxHeight, _ := d.dialogSize()
	maxItems := max(1, maxHeight-pickerListVerticalOverhead)

	// If the list fits, there is no scrollbar.
	if len(d.filtered) <= maxItems {
		return false
	}

	dialogRow, dialogCol := d.Position()
	scrollbarX := dialogCol + dialogWidth - pickerScrollbarXInset - scrollbar.Width
	scrollbarY := dialogRow + pickerScrollbarYOffset

	return x >= scrollbarX && x < scrollbarX+scrollbar.Width &&
		y >= scrollbarY && y < scrollbarY+maxItems
}

func (d *themePicker) mouseYToThemeIndex(y int) int {
	dialogRow, _ := d.Position()
	_, maxHeight, _ := d.dialogSize()
	maxItems := max(1, maxHeight-pickerListVerticalOverhead)

	listStartY := dialogRow + pickerListStartOffset
	if y < listStartY || y >= listStartY+maxItems {
		return -1
	}

	idx := d.scrollbar.GetScrollOffset() + (y - listStartY)
	if idx < 0 || idx >= len(d.filtered) {
		return -1
	}
	return idx
}

func (d *themePicker) handleSelection() tea.Cmd {
	if d.selected >= 0 && d.selected < len(d.filtered) {
		selected := d.filtered[d.selected]
		return tea.Sequence(
			core.CmdHandler(CloseDialogMsg{}),
			core.CmdHandler(messages.ChangeThemeMsg{Name: selected.Name}),
		)
	}
	return nil
}

func (d *themePicker) pageSize() int {
	_, maxHeight, _ := d.dialogSize()
	return max(1, maxHeight-pickerListVerticalOverhead)
}

func (d *themePicker) dialogSize() (dialogWidth, maxHeight, contentWidth int) {
	dialogWidth = max(min(d.Width()*pickerWidthPercent/100, pickerMaxWidth), pickerMinWidth)
	maxHeight = min(d.Height()*pickerHeightPercent/100, pickerMaxListHeight+pickerListVerticalOverhead)
	contentWidth = dialogWidth - pickerDialogPadding - scrollbar.Width - pickerScrollbarGap
	return dialogWidth, maxHeight, contentWidth
}

func (d *themePicker) Position() (row, col int) {
	dialogWidth, maxHeight, _ := d.dialogSize()
	return CenterPosition(d.Width(), d.Height(), dialogWidth, maxHeight)
}

// filterThemes rebuilds the filtered list from the query. An empty query
// keeps every theme in the given order; otherwise rows are fuzzy matched
// and ordered by score. Reports whether the highlighted theme changed.
func (d *themePicker) filterThemes() (selectionChanged bool) {
	query := strings.TrimSpace(d.textInput.Value())

	prevName := ""
	if d.selected >= 0 && d.selected < len(d.filtered) {
		prevName = d.filtered[d.selected].Name
	}

	if query == "" {
		d.filtered = slices.Clone(d.themes)
	} else {
		pattern := []rune(strings.ToLower(query))

		type match struct {
			choice ThemeChoice
			score  int
		}
		var matches []match
		for _, theme := range d.themes {
			chars := util.ToChars([]byte(theme.Name + " " + theme.Source))
			result, _ := algo.FuzzyMatchV1(
				false, // caseSensitive
				false, // normalize
				true,  // forward
				&chars,
				pattern,
				false, // withPos
				nil,   // slab
			)
			if result.Start >= 0 {
				matches = append(matches, match{choice: theme, score: result.Score})
			}
		}

		sort.SliceStable(matches, func(i, j int) bool {
			return matches[i].score > matches[j].score
		})

		d.filtered = make([]ThemeChoice, 0, len(matches))
		for _, m := range matches {
			d.filtered = append(d.filtered, m.choice)
		}
	}

	// Keep the previous highlight if it survived the filter.
	d.selected = 0
	if prevName != "" {
		for i, t := range d.filtered {
			if t.Name == prevName {
				d.selected = i
				break
			}
		}
	}

	d.scrollbar.SetScrollOffset(0)

	newName := ""
	if d.selected >= 0 && d.selected < len(d.filtered) {
		newName = d.filtered[d.selected].Name
	}
	return newName != prevName
}

func (d *themePicker) View() string {
	dialogWidth, maxHeight, contentWidth := d.dialogSize()
	d.textInput.SetWidth(contentWidth)
	maxItems := max(1, maxHeight-pickerListVerticalOverhead)

	allLines := make([]string, 0, len(d.filtered))
	for i, theme := range d.filtered {
		allLines = append(allLines, d.renderTheme(theme, i == d.selected, contentWidth))
	}

	totalLines := len(allLines)
	visibleLines := maxItems

	d.scrollbar.SetDimensions(visibleLines, totalLines)

	// Auto-scroll to the highlight after keyboard navigation.
	if d.needsScrollToSel {
		scrollOffset := d.scrollbar.GetScrollOffset()
		if d.selected < scrollOffset {
			d.scrollbar.SetScrollOffset(d.selected)
		} else if d.selected >= scrollOffset+visibleLines {
			d.scrollbar.SetScrollOffset(d.selected - visibleLines + 1)
		}
		d.needsScrollToSel = false
	}

	scrollOffset := d.scrollbar.GetScrollOffset()
	visibleEnd := min(scrollOffset+visibleLines, totalLines)
	visibleThemeLines := allLines[scrollOffset:visibleEnd]

	// Pad with empty lines if content is shorter than visible area
	for len(visibleThemeLines) < visibleLines {
		visibleThemeLines = append(visibleThemeLines, "")
	}

	if len(d.filtered) == 0 {
		visibleThemeLines = []string{"", styles.DialogContentStyle.
			Italic(true).
			Align(lipgloss.Center).
			Width(contentWidth).
			Render("No themes match")}
		for len(visibleThemeLines) < visibleLines {
			visibleThemeLines = append(visibleThemeLines, "")
		}
	}

	// Build theme list with fixed width
	themeListStyle := lipgloss.NewStyle().Width(contentWidth)
	fixedWidthLines := make([]string, 0, len(visibleThemeLines))
	for _, line := range visibleThemeLines {
		fixedWidthLines = append(fixedWidthLines, themeListStyle.Render(line))
	}
	themeListContent := strings.Join(fixedWidthLines, "\n")

	// Set scrollbar position for mouse hit testing
	dialogRow, dialogCol := d.Position()
	scrollbarX := dialogCol + dialogWidth - pickerScrollbarXInset - scrollbar.Width
	scrollbarY := dialogRow + pickerScrollbarYOffset
	d.scrollbar.SetPosition(scrollbarX, scrollbarY)

	scrollbarView := d.scrollbar.View()

	var scrollableContent string
	gap := strings.Repeat(" ", pickerScrollbarGap)
	if scrollbarView != "" {
		scrollableContent = lipgloss.JoinHorizontal(lipgloss.Top, themeListContent, gap, scrollbarView)
	} else {
		scrollbarPlaceholder := strings.Repeat(" ", scrollbar.Width)
		scrollableContent = lipgloss.JoinHorizontal(lipgloss.Top, themeListContent, gap, scrollbarPlaceholder)
	}

	content := NewContent(contentWidth + pickerScrollbarGap + scrollbar.Width).
		AddTitle("Switch Theme").
		AddSpace().
		AddContent(d.textInput.View()).
		AddSeparator().
		AddContent(scrollableContent).
		AddSpace().
		AddHelpKeys("↑/↓", "navigate", "enter", "apply", "esc", "close").
		Build()

	return styles.DialogStyle.Width(dialogWidth).Render(content)
}

func (d *themePicker) renderTheme(theme ThemeChoice, selected bool, maxWidth int) string {
	nameStyle, descStyle := styles.PaletteUnselectedActionStyle, styles.PaletteUnselectedDescStyle
	markStyle := styles.BadgeCurrentStyle
	badgeStyle := styles.BadgeModeStyle
	if selected {
		nameStyle, descStyle = styles.PaletteSelectedActionStyle, styles.PaletteSelectedDescStyle
		markStyle = markStyle.Background(styles.Primary)
		badgeStyle = badgeStyle.Background(styles.Primary)
	}

	mark := "  "
	if theme.Current {
		mark = "✓ "
	}

	badge := " (" + string(theme.Mode) + ")"
	desc := theme.Source

	separatorWidth := 0
	if desc != "" {
		separatorWidth = lipgloss.Width(" • ")
	}

	maxNameWidth := maxWidth - lipgloss.Width(mark) - lipgloss.Width(badge)
	if desc != "" {
		minDescWidth := min(10, lipgloss.Width(desc))
		maxNameWidth -= separatorWidth + minDescWidth
	}

	displayName := runewidth.Truncate(theme.Name, max(1, maxNameWidth), "…")

	line := markStyle.Render(mark) + nameStyle.Render(displayName) + badgeStyle.Render(badge)

	if desc != "" {
		remainingWidth := maxWidth - lipgloss.Width(line) - separatorWidth
		if remainingWidth > 0 {
			return line + descStyle.Render(" • "+runewidth.Truncate(desc, remainingWidth, "…"))
		}
	}

	return line
}

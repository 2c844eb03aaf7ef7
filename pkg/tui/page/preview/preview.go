// Package preview renders the theme preview pane: a tab bar plus one of the
// palette, ui, code and docs sample views, all drawn with the active theme.
package preview

import (
	"strings"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/o0x0o/pigment/pkg/themes"
	"github.com/o0x0o/pigment/pkg/tui/components/scrollbar"
	"github.com/o0x0o/pigment/pkg/tui/core"
	"github.com/o0x0o/pigment/pkg/tui/messages"
	"github.com/o0x0o/pigment/pkg/tui/styles"
)

// Tab identifies one preview view.
type Tab int

const (
	TabPalette Tab = iota
	TabUI
	TabCode
	TabDocs
)

var tabTitles = map[Tab]string{
	TabPalette: "palette",
	TabUI:      "ui",
	TabCode:    "code",
	TabDocs:    "docs",
}

var tabOrder = []Tab{TabPalette, TabUI, TabCode, TabDocs}

type keyMap struct {
	NextTab key.Binding
	PrevTab key.Binding
	Tab1    key.Binding
	Tab2    key.Binding
	Tab3    key.Binding
	Tab4    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		NextTab: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next view")),
		PrevTab: key.NewBinding(key.WithKeys("shift+tab")),
		Tab1:    key.NewBinding(key.WithKeys("1")),
		Tab2:    key.NewBinding(key.WithKeys("2")),
		Tab3:    key.NewBinding(key.WithKeys("3")),
		Tab4:    key.NewBinding(key.WithKeys("4")),
	}
}

// Page is the preview pane model. Rendered tab content is cached until the
// size or the theme changes; the ui tab's scrollbar demo keeps its own state
// so the visibility policies behave like they would in a real list.
type Page struct {
	width, height int
	active        Tab
	keyMap        keyMap

	demoScroll *scrollbar.Model

	cache map[Tab]string
}

func New() *Page {
	sb := scrollbar.New()
	sb.SetShow(styles.Current().Scrollbar())
	return &Page{
		keyMap:     defaultKeyMap(),
		demoScroll: sb,
		cache:      make(map[Tab]string),
	}
}

// Active returns the selected tab.
func (p *Page) Active() Tab {
	return p.active
}

func (p *Page) Init() tea.Cmd {
	return nil
}

func (p *Page) SetSize(width, height int) tea.Cmd {
	if p.width != width || p.height != height {
		p.width = width
		p.height = height
		clear(p.cache)
	}
	return nil
}

func (p *Page) Update(msg tea.Msg) (core.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case messages.ThemeChangedMsg:
		p.demoScroll.SetShow(styles.Current().Scrollbar())
		clear(p.cache)
		return p, nil

	case scrollbar.FadeMsg:
		delete(p.cache, TabUI)
		sb, cmd := p.demoScroll.Update(msg)
		p.demoScroll = sb
		return p, cmd

	case tea.MouseWheelMsg:
		if p.active == TabUI {
			return p, p.scrollDemo(msg)
		}
		return p, nil

	case tea.MouseClickMsg, tea.MouseMotionMsg, tea.MouseReleaseMsg:
		if p.active == TabUI {
			delete(p.cache, TabUI)
			sb, cmd := p.demoScroll.Update(msg)
			p.demoScroll = sb
			return p, cmd
		}
		return p, nil

	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, p.keyMap.NextTab):
			p.selectTab((p.active + 1) % Tab(len(tabOrder)))
		case key.Matches(msg, p.keyMap.PrevTab):
			p.selectTab((p.active + Tab(len(tabOrder)) - 1) % Tab(len(tabOrder)))
		case key.Matches(msg, p.keyMap.Tab1):
			p.selectTab(TabPalette)
		case key.Matches(msg, p.keyMap.Tab2):
			p.selectTab(TabUI)
		case key.Matches(msg, p.keyMap.Tab3):
			p.selectTab(TabCode)
		case key.Matches(msg, p.keyMap.Tab4):
			p.selectTab(TabDocs)
		}
		return p, nil
	}

	return p, nil
}

func (p *Page) selectTab(tab Tab) {
	p.active = tab
}

func (p *Page) scrollDemo(msg tea.MouseWheelMsg) tea.Cmd {
	delete(p.cache, TabUI)
	switch msg.Button.String() {
	case "wheelup":
		return p.demoScroll.ScrollUp()
	case "wheeldown":
		return p.demoScroll.ScrollDown()
	}
	return nil
}

// Bindings implements core.Help for the status bar.
func (p *Page) Bindings() []key.Binding {
	return []key.Binding{p.keyMap.NextTab}
}

func (p *Page) Help() help.KeyMap {
	return core.NewSimpleHelp(p.Bindings())
}

func (p *Page) View() string {
	if p.width <= 0 || p.height <= 0 {
		return ""
	}

	content, ok := p.cache[p.active]
	if !ok {
		content = p.renderTab(p.active)
		p.cache[p.active] = content
	}

	body := lipgloss.NewStyle().
		Width(p.width).
		Height(max(0, p.height-2)).
		MaxHeight(max(0, p.height-2)).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, p.renderTabBar(), "", body)
}

func (p *Page) renderTab(tab Tab) string {
	contentWidth := max(10, p.width-2)
	contentHeight := max(1, p.height-2)

	switch tab {
	case TabPalette:
		return renderPalette(contentWidth)
	case TabUI:
		return p.renderSampleUI(contentWidth, contentHeight)
	case TabCode:
		return renderCode(contentWidth)
	case TabDocs:
		return renderDocs(contentWidth)
	}
	return ""
}

// renderTabBar draws the numbered tab row, active tab highlighted.
func (p *Page) renderTabBar() string {
	parts := make([]string, 0, len(tabOrder))
	for i, tab := range tabOrder {
		label := tabTitles[tab]
		num := string(rune('1' + i))
		if tab == p.active {
			parts = append(parts, styles.TabActiveStyle.Render(num+" "+label))
		} else {
			parts = append(parts, styles.TabInactiveStyle.Render(num+" "+label))
		}
	}
	bar := strings.Join(parts, " ")

	mode := styles.MutedStyle.Render("mode: " + string(styles.Current().Mode) +
		"  scrollbar: " + string(styles.Current().Scrollbar()))
	gap := p.width - lipgloss.Width(bar) - lipgloss.Width(mode)
	if gap > 0 {
		return bar + strings.Repeat(" ", gap) + mode
	}
	return bar
}

// scrollbarShowLabel spells the policy out for the demo caption.
func scrollbarShowLabel(s themes.ScrollbarShow) string {
	switch s {
	case themes.ScrollbarAlways:
		return "always shown while content overflows"
	case themes.ScrollbarScrolling:
		return "shown around scroll activity"
	case themes.ScrollbarHover:
		return "shown while hovered or dragged"
	case themes.ScrollbarNever:
		return "never shown"
	}
	return string(s)
}

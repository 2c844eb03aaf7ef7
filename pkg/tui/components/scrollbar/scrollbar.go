// Package scrollbar renders a one-column vertical scrollbar with mouse
// support. Whether the bar is drawn at all follows the active theme's
// scrollbar visibility setting.
package scrollbar

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/o0x0o/pigment/pkg/themes"
	"github.com/o0x0o/pigment/pkg/tui/styles"
)

// Width is the intrinsic width of the scrollbar component in terminal columns.
const Width = 1

// scrollLinger is how long a scrolling-visibility bar stays on screen after
// the last scroll step.
const scrollLinger = time.Second

// FadeMsg requests a repaint after the scrolling linger elapsed, so a bar
// with scrolling visibility disappears without further input. Parents only
// need to route it back into Update.
type FadeMsg struct{}

type Model struct {
	totalHeight  int
	viewHeight   int
	scrollOffset int

	width  int
	height int

	xPos int
	yPos int

	show       themes.ScrollbarShow
	hovered    bool
	lastScroll time.Time

	dragging        bool
	dragStartY      int
	dragStartOffset int

	trackChar string
	thumbChar string
}

func New() *Model {
	return &Model{
		width:     Width,
		show:      themes.ScrollbarScrolling,
		trackChar: "│",
		thumbChar: "│",
	}
}

// SetShow sets the visibility policy. ScrollbarAlways draws the bar whenever
// the content overflows, ScrollbarScrolling only around scroll activity,
// ScrollbarHover while the pointer is on the bar or dragging it, and
// ScrollbarNever not at all.
func (m *Model) SetShow(show themes.ScrollbarShow) {
	m.show = show
}

func (m *Model) SetDimensions(viewHeight, totalHeight int) {
	m.viewHeight = viewHeight
	m.height = viewHeight
	m.totalHeight = totalHeight
	// Clamp scroll offset to valid range after dimension change
	m.scrollOffset = max(0, min(m.scrollOffset, m.maxScrollOffset()))
}

func (m *Model) SetScrollOffset(offset int) {
	m.scrollOffset = max(0, min(offset, m.maxScrollOffset()))
}

func (m *Model) SetPosition(x, y int) {
	m.xPos = x
	m.yPos = y
}

func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseClickMsg:
		if msg.Button == tea.MouseLeft && m.isMouseOnScrollbar(msg.X, msg.Y) {
			return m.handleClick(msg.Y)
		}

	case tea.MouseMotionMsg:
		m.hovered = m.isMouseOnScrollbar(msg.X, msg.Y)
		if m.dragging {
			m.updateScrollFromDrag(msg.Y - m.dragStartY)
		}

	case tea.MouseReleaseMsg:
		if msg.Button == tea.MouseLeft {
			m.dragging = false
		}

	case FadeMsg:
		// Repaint only; View consults lastScroll.
	}

	return m, nil
}

func (m *Model) handleClick(y int) (*Model, tea.Cmd) {
	thumbTop, thumbHeight := m.calculateThumbPosition()
	relativeY := y - m.yPos

	switch {
	case relativeY >= thumbTop && relativeY < thumbTop+thumbHeight:
		m.dragging = true
		m.dragStartY = y
		m.dragStartOffset = m.scrollOffset
		return m, nil
	case relativeY < thumbTop:
		cmd := m.PageUp()
		return m, cmd
	default:
		cmd := m.PageDown()
		return m, cmd
	}
}

// Visible reports whether the bar would be drawn right now.
func (m *Model) Visible() bool {
	if m.height <= 0 || m.totalHeight <= m.viewHeight {
		return false
	}

	switch m.show {
	case themes.ScrollbarNever:
		return false
	case themes.ScrollbarHover:
		return m.hovered || m.dragging
	case themes.ScrollbarScrolling:
		return m.dragging || time.Since(m.lastScroll) < scrollLinger
	default: // themes.ScrollbarAlways
		return true
	}
}

func (m *Model) View() string {
	if !m.Visible() {
		return ""
	}

	thumbTop, thumbHeight := m.calculateThumbPosition()
	lines := make([]string, m.height)

	for i := range m.height {
		var style lipgloss.Style
		var char string

		if i >= thumbTop && i < thumbTop+thumbHeight {
			if m.dragging {
				style = styles.ThumbActiveStyle
			} else {
				style = styles.ThumbStyle
			}
			char = m.thumbChar
		} else {
			style = styles.TrackStyle
			char = m.trackChar
		}

		lines[i] = style.Render(strings.Repeat(char, m.width))
	}

	return strings.Join(lines, "\n")
}

func (m *Model) calculateThumbPosition() (top, height int) {
	if m.totalHeight <= m.viewHeight || m.height <= 0 {
		return 0, 0
	}

	thumbHeight := max(1, (m.viewHeight*m.height)/m.totalHeight)

	maxScroll := m.maxScrollOffset()
	if maxScroll == 0 {
		return 0, thumbHeight
	}

	scrollableTrackHeight := m.height - thumbHeight
	thumbTop := (m.scrollOffset * scrollableTrackHeight) / maxScroll

	return thumbTop, thumbHeight
}

func (m *Model) isMouseOnScrollbar(x, y int) bool {
	return x >= m.xPos &&
		x < m.xPos+m.width &&
		y >= m.yPos &&
		y < m.yPos+m.height
}

func (m *Model) updateScrollFromDrag(deltaY int) {
	if m.height <= 0 {
		return
	}

	_, thumbHeight := m.calculateThumbPosition()
	scrollableTrackHeight := m.height - thumbHeight

	if scrollableTrackHeight <= 0 {
		return
	}

	maxScroll := m.maxScrollOffset()
	deltaScroll := (deltaY * maxScroll) / scrollableTrackHeight

	newOffset := m.dragStartOffset + deltaScroll
	m.scrollOffset = max(0, min(newOffset, maxScroll))
}

func (m *Model) maxScrollOffset() int {
	return max(0, m.totalHeight-m.viewHeight)
}

// markScrolled stamps scroll activity and, under scrolling visibility,
// schedules the repaint that lets the bar fade out again.
func (m *Model) markScrolled() tea.Cmd {
	m.lastScroll = time.Now()
	if m.show != themes.ScrollbarScrolling {
		return nil
	}
	return tea.Tick(scrollLinger+50*time.Millisecond, func(time.Time) tea.Msg {
		return FadeMsg{}
	})
}

func (m *Model) ScrollUp() tea.Cmd {
	m.scrollOffset = max(0, m.scrollOffset-1)
	return m.markScrolled()
}

func (m *Model) ScrollDown() tea.Cmd {
	m.scrollOffset = min(m.scrollOffset+1, m.maxScrollOffset())
	return m.markScrolled()
}

func (m *Model) PageUp() tea.Cmd {
	m.scrollOffset = max(0, m.scrollOffset-m.viewHeight)
	return m.markScrolled()
}

func (m *Model) PageDown() tea.Cmd {
	m.scrollOffset = min(m.scrollOffset+m.viewHeight, m.maxScrollOffset())
	return m.markScrolled()
}

func (m *Model) GetScrollOffset() int {
	return m.scrollOffset
}

func (m *Model) IsDragging() bool {
	return m.dragging
}

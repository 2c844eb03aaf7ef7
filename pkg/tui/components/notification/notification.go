// Package notification shows transient flash messages stacked in the bottom
// right corner, used for clipboard feedback and similar one-shot notices.
package notification

import (
	"sync/atomic"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/o0x0o/pigment/pkg/tui/styles"
)

const (
	defaultDuration     = 3 * time.Second
	notificationPadding = 2
)

var nextID atomic.Uint64

// ShowMsg displays a flash message. Error switches to the error border.
type ShowMsg struct {
	Text  string
	Error bool
}

// HideMsg removes one flash by id, or all of them when ID is 0.
type HideMsg struct {
	ID uint64
}

// notificationItem represents a single notification
type notificationItem struct {
	ID    uint64
	Text  string
	Error bool
}

// Manager displays multiple stacked flash messages in the bottom right
// corner of the screen.
type Manager struct {
	width, height int
	items         []notificationItem
}

func New() Manager {
	return Manager{
		items: make([]notificationItem, 0),
	}
}

func (n *Manager) SetSize(width, height int) {
	n.width = width
	n.height = height
}

func (n *Manager) Update(msg tea.Msg) (Manager, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		n.width = msg.Width
		n.height = msg.Height
		return *n, nil

	case ShowMsg:
		id := nextID.Add(1)
		item := notificationItem{
			ID:    id,
			Text:  msg.Text,
			Error: msg.Error,
		}

		n.items = append([]notificationItem{item}, n.items...)

		return *n, tea.Tick(defaultDuration, func(time.Time) tea.Msg {
			return HideMsg{ID: id}
		})

	case HideMsg:
		if msg.ID == 0 {
			n.items = nil
			return *n, nil
		}

		newItems := make([]notificationItem, 0, len(n.items))
		for _, item := range n.items {
			if item.ID != msg.ID {
				newItems = append(newItems, item)
			}
		}
		n.items = newItems
		return *n, nil
	}

	return *n, nil
}

func (n *Manager) View() string {
	if len(n.items) == 0 {
		return ""
	}

	var views []string
	for i := len(n.items) - 1; i >= 0; i-- {
		item := n.items[i]
		style := styles.NotificationStyle
		if item.Error {
			style = styles.NotificationErrorStyle
		}
		views = append(views, style.Render(item.Text))
	}

	return lipgloss.JoinVertical(lipgloss.Right, views...)
}

func (n *Manager) GetLayer() *lipgloss.Layer {
	if len(n.items) == 0 {
		return nil
	}

	view := n.View()
	row, col := n.position()

	return lipgloss.NewLayer(view).X(col).Y(row)
}

func (n *Manager) position() (row, col int) {
	notificationView := n.View()
	viewHeight := lipgloss.Height(notificationView)
	viewWidth := lipgloss.Width(notificationView)

	// Position in bottom right corner with padding
	row = max(0, n.height-viewHeight-notificationPadding)
	col = max(0, n.width-viewWidth-notificationPadding)

	return row, col
}

func (n *Manager) Open() bool {
	return len(n.items) > 0
}

package notification

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNotificationInitialState(t *testing.T) {
	n := New()

	require.Empty(t, n.items)
	require.False(t, n.Open())
	require.Nil(t, n.GetLayer())
}

func TestNotificationShow(t *testing.T) {
	n := New()

	updated, cmd := n.Update(ShowMsg{Text: "Theme: Default Dark"})

	require.Len(t, updated.items, 1)
	require.Equal(t, "Theme: Default Dark", updated.items[0].Text)
	require.False(t, updated.items[0].Error)
	require.True(t, updated.Open())
	require.NotNil(t, cmd, "show schedules an auto hide")
	require.Contains(t, updated.View(), "Theme: Default Dark")
}

func TestNotificationStacksNewestFirst(t *testing.T) {
	n := New()

	updated, _ := n.Update(ShowMsg{Text: "first"})
	updated, _ = updated.Update(ShowMsg{Text: "second"})

	require.Len(t, updated.items, 2)
	require.Equal(t, "second", updated.items[0].Text)
	require.Equal(t, "first", updated.items[1].Text)
}

func TestNotificationHideByID(t *testing.T) {
	n := New()

	updated, _ := n.Update(ShowMsg{Text: "keep"})
	updated, _ = updated.Update(ShowMsg{Text: "drop"})
	dropID := updated.items[0].ID

	updated, _ = updated.Update(HideMsg{ID: dropID})

	require.Len(t, updated.items, 1)
	require.Equal(t, "keep", updated.items[0].Text)
	require.True(t, updated.Open())
}

func TestNotificationHideAll(t *testing.T) {
	n := New()

	updated, _ := n.Update(ShowMsg{Text: "one"})
	updated, _ = updated.Update(ShowMsg{Text: "two"})

	updated, _ = updated.Update(HideMsg{})

	require.Empty(t, updated.items)
	require.False(t, updated.Open())
	require.Empty(t, updated.View())
}

func TestNotificationErrorVariant(t *testing.T) {
	n := New()

	updated, _ := n.Update(ShowMsg{Text: "theme not found", Error: true})

	require.Len(t, updated.items, 1)
	require.True(t, updated.items[0].Error)
	require.Contains(t, updated.View(), "theme not found")
}

func TestNotificationPosition(t *testing.T) {
	n := New()
	n.SetSize(100, 50)
	updated, _ := n.Update(ShowMsg{Text: "Test"})
	row, col := updated.position()

	require.Equal(t, 45, row)
	require.Equal(t, 90, col)
}

func TestNotificationGetLayer(t *testing.T) {
	n := New()
	n.SetSize(80, 24)

	updated, _ := n.Update(ShowMsg{Text: "Yanked #1a1b26"})
	layer := updated.GetLayer()

	require.NotNil(t, layer)
}

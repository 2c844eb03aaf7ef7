// Package dialog implements the modal dialog stack and the dialogs shown
// over the main view.
package dialog

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/o0x0o/pigment/pkg/tui/core"
	"github.com/o0x0o/pigment/pkg/tui/messages"
)

// OpenDialogMsg is sent to open a new dialog
type OpenDialogMsg struct {
	Model Dialog
}

// CloseDialogMsg is sent to close the current (topmost) dialog
type CloseDialogMsg struct{}

// CloseAllDialogsMsg is sent to close all dialogs in the stack
type CloseAllDialogsMsg struct{}

// Dialog defines the interface that all dialogs must implement
type Dialog interface {
	core.Model
	Position() (int, int) // Returns (row, col) for dialog placement
}

// Manager manages the dialog stack and rendering
type Manager interface {
	core.Model

	GetLayers() []*lipgloss.Layer
	Open() bool
}

// manager implements Manager
type manager struct {
	width, height int
	dialogStack   []Dialog
}

// New creates a new dialog component manager
func New() Manager {
	return &manager{
		dialogStack: make([]Dialog, 0),
	}
}

// Init initializes the dialog component
func (d *manager) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates dialog state
func (d *manager) Update(msg tea.Msg) (core.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		d.width = msg.Width
		d.height = msg.Height
		return d, d.broadcast(msg)

	case messages.ThemeChangedMsg:
		// Every dialog in the stack re-derives its styles.
		return d, d.broadcast(msg)

	case OpenDialogMsg:
		return d.handleOpen(msg)

	case CloseDialogMsg:
		if len(d.dialogStack) > 0 {
			d.dialogStack = d.dialogStack[:len(d.dialogStack)-1]
		}
		return d, nil

	case CloseAllDialogsMsg:
		d.dialogStack = make([]Dialog, 0)
		return d, nil
	}

	// Only the topmost dialog receives input to prevent conflicts.
	if len(d.dialogStack) > 0 {
		topIndex := len(d.dialogStack) - 1
		u, cmd := d.dialogStack[topIndex].Update(msg)
		d.dialogStack[topIndex] = u.(Dialog)
		return d, cmd
	}
	return d, nil
}

// broadcast forwards msg to every dialog in the stack.
func (d *manager) broadcast(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for i := range d.dialogStack {
		u, cmd := d.dialogStack[i].Update(msg)
		d.dialogStack[i] = u.(Dialog)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// View renders the top dialog (actual rendering uses GetLayers)
func (d *manager) View() string {
	if len(d.dialogStack) == 0 {
		return ""
	}
	return d.dialogStack[len(d.dialogStack)-1].View()
}

// handleOpen pushes the dialog onto the stack and sizes it.
func (d *manager) handleOpen(msg OpenDialogMsg) (core.Model, tea.Cmd) {
	d.dialogStack = append(d.dialogStack, msg.Model)

	var cmds []tea.Cmd
	cmd := msg.Model.Init()
	cmds = append(cmds, cmd)

	_, cmd = msg.Model.Update(tea.WindowSizeMsg{
		Width:  d.width,
		Height: d.height,
	})
	cmds = append(cmds, cmd)

	return d, tea.Batch(cmds...)
}

// Open returns true if there is at least one active dialog
func (d *manager) Open() bool {
	return len(d.dialogStack) > 0
}

func (d *manager) SetSize(width, height int) tea.Cmd {
	d.width = width
	d.height = height
	return nil
}

// CenterPosition calculates the centered position for a dialog given screen and dialog dimensions.
// Returns (row, col) suitable for use in Dialog.Position().
func CenterPosition(screenWidth, screenHeight, dialogWidth, dialogHeight int) (row, col int) {
	col = max(0, (screenWidth-dialogWidth)/2)
	row = max(0, (screenHeight-dialogHeight)/2)

	// Ensure dialog fits on screen
	col = min(col, max(0, screenWidth-dialogWidth))
	row = min(row, max(0, screenHeight-dialogHeight))

	return row, col
}

// GetLayers returns lipgloss layers for rendering all dialogs in the stack
// Dialogs are returned in order from bottom to top (index 0 is bottom-most)
func (d *manager) GetLayers() []*lipgloss.Layer {
	if len(d.dialogStack) == 0 {
		return nil
	}

	layers := make([]*lipgloss.Layer, 0, len(d.dialogStack))
	for _, dialog := range d.dialogStack {
		dialogView := dialog.View()
		row, col := dialog.Position()
		layers = append(layers, lipgloss.NewLayer(dialogView).X(col).Y(row))
	}

	return layers
}

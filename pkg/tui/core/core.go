// Package core holds the small contracts shared by every TUI component:
// the model interfaces, help plumbing, and command helpers.
package core

import (
	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
)

// Sizeable represents components that can be resized.
type Sizeable interface {
	SetSize(width, height int) tea.Cmd
}

// Model is the base interface for all TUI components. Unlike tea.Model it
// renders to a plain string; only the top-level model produces a tea.View.
type Model interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Model, tea.Cmd)
	View() string
	Sizeable
}

// Help represents components that contribute key bindings to the status bar.
type Help interface {
	Bindings() []key.Binding
	Help() help.KeyMap
}

// KeyMapHelp interface for components that provide help.
type KeyMapHelp interface {
	Help() help.KeyMap
}

// simpleHelp implements help.KeyMap with a flat binding list.
type simpleHelp struct {
	list []key.Binding
}

// NewSimpleHelp creates a help.KeyMap from a flat binding list.
func NewSimpleHelp(list []key.Binding) help.KeyMap {
	return &simpleHelp{
		list,
	}
}

// ShortHelp implements help.KeyMap.
func (s *simpleHelp) ShortHelp() []key.Binding {
	return s.list
}

// FullHelp implements help.KeyMap.
func (s *simpleHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{}
}

// CmdHandler creates a command that returns the given message.
func CmdHandler(msg tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return msg
	}
}

// Package messages defines the messages exchanged between the root model
// and its components.
package messages

// OpenThemePickerMsg asks the root model to open the theme picker dialog.
type OpenThemePickerMsg struct{}

// ChangeThemeMsg is emitted when the user commits a theme selection in the
// picker. Name is the theme's registry key.
type ChangeThemeMsg struct {
	Name string
}

// ThemeChangedMsg is broadcast after the active theme changed so components
// can drop renders cached under the previous palette.
type ThemeChangedMsg struct{}

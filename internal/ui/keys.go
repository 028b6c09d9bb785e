package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/five82/plantview/internal/session"
)

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	Cancel     key.Binding
	Downloads  key.Binding
	Expand     key.Binding
	ThemeMenu  key.Binding
	CycleTheme key.Binding

	// Menus
	Up      key.Binding
	Down    key.Binding
	Confirm key.Binding
	Copy    key.Binding

	// Overlay
	ZoomIn    key.Binding
	ZoomOut   key.Binding
	ZoomReset key.Binding
	Close     key.Binding
}

// DefaultKeyMap returns the default key bindings. Printable keys are only
// bound where the editor does not have input.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "Help"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Close menus"),
		),
		Downloads: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "Downloads"),
		),
		Expand: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "Expand diagram"),
		),
		ThemeMenu: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "Theme"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("f2"),
			key.WithHelp("f2", "Cycle theme"),
		),

		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("up", "Previous"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("down", "Next"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Select"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "Copy link"),
		),

		ZoomIn: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "Zoom in"),
		),
		ZoomOut: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "Zoom out"),
		),
		ZoomReset: key.NewBinding(
			key.WithKeys("0"),
			key.WithHelp("0", "Reset zoom"),
		),
		Close: key.NewBinding(
			key.WithKeys("x", "q"),
			key.WithHelp("x", "Close"),
		),
	}
}

// ShortHelp returns key bindings for the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Downloads, k.Expand, k.ThemeMenu, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Downloads, k.Up, k.Down, k.Confirm, k.Copy},
		{k.Expand, k.ZoomIn, k.ZoomOut, k.ZoomReset, k.Close},
		{k.ThemeMenu, k.CycleTheme},
		{k.Cancel, k.Help, k.Quit},
	}
}

// contextHelp narrows the footer bindings to whatever currently has input.
func (k keyMap) contextHelp(s *session.State, clipboard bool) []key.Binding {
	switch {
	case s.Overlay.Shown():
		return []key.Binding{k.ZoomIn, k.ZoomOut, k.ZoomReset, k.Close}
	case s.ThemeMenu.IsOpen():
		return []key.Binding{k.Up, k.Down, k.Confirm, k.Cancel}
	case s.Downloads.IsOpen():
		out := []key.Binding{k.Up, k.Down, k.Confirm}
		if clipboard {
			out = append(out, k.Copy)
		}
		return append(out, k.Cancel)
	case s.Downloads.Visible():
		return k.ShortHelp()
	default:
		return []key.Binding{k.ThemeMenu, k.Help, k.Quit}
	}
}

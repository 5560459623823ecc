package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the keyboard stand-ins for the terminal's hardware keys.
type keyMap struct {
	LSKLeft  key.Binding // F1-F6
	LSKRight key.Binding // F7-F12
	CLR      key.Binding
	Exec     key.Binding
	Quit     key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.LSKLeft, k.LSKRight, k.CLR, k.Exec, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.LSKLeft, k.LSKRight},
		{k.CLR, k.Exec, k.Quit},
	}
}

func defaultKeyMap() keyMap {
	return keyMap{
		LSKLeft: key.NewBinding(
			key.WithKeys("f1", "f2", "f3", "f4", "f5", "f6"),
			key.WithHelp("F1-F6", "left keys"),
		),
		LSKRight: key.NewBinding(
			key.WithKeys("f7", "f8", "f9", "f10", "f11", "f12"),
			key.WithHelp("F7-F12", "right keys"),
		),
		CLR: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", "CLR"),
		),
		Exec: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "EXEC"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// lskRow maps an F-key name to its 1-based line-select row, or 0 when the
// key is not an F-key.
func lskRow(name string) int {
	switch name {
	case "f1", "f7":
		return 1
	case "f2", "f8":
		return 2
	case "f3", "f9":
		return 3
	case "f4", "f10":
		return 4
	case "f5", "f11":
		return 5
	case "f6", "f12":
		return 6
	}
	return 0
}

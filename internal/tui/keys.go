package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Key bindings of the terminal remote
type keyMap struct {
	Menu     key.Binding
	Forward  key.Binding
	Backward key.Binding
	Down     key.Binding
	Center   key.Binding
	Quit     key.Binding
}

var keys = keyMap{
	Menu: key.NewBinding(
		key.WithKeys("m", "esc", "backspace"),
		key.WithHelp("m/esc", "menu"),
	),
	Forward: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "forward"),
	),
	Backward: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "backward"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j", " "),
		key.WithHelp("↓/space", "play/pause"),
	),
	Center: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "confirm"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func (k keyMap) bindings() []key.Binding {
	return []key.Binding{k.Menu, k.Forward, k.Backward, k.Down, k.Center, k.Quit}
}

// button returns the remote button bound to msg, if any.
func (k keyMap) button(msg tea.KeyMsg) (string, bool) {
	switch {
	case key.Matches(msg, k.Menu):
		return "menu", true
	case key.Matches(msg, k.Forward):
		return "forward", true
	case key.Matches(msg, k.Backward):
		return "backward", true
	case key.Matches(msg, k.Down):
		return "down", true
	case key.Matches(msg, k.Center):
		return "center", true
	}
	return "", false
}

package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the editor's keyboard shortcuts.
type KeyMap struct {
	Randomize key.Binding
	Clear     key.Binding
	Remove    key.Binding
	Wiggle    key.Binding
	Tone      key.Binding
	Quit      key.Binding
}

// DefaultKeyMap is the default set of key bindings.
var DefaultKeyMap = KeyMap{
	Randomize: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "randomize"),
	),
	Clear: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "clear"),
	),
	Remove: key.NewBinding(
		key.WithKeys("x", "delete"),
		key.WithHelp("x", "remove"),
	),
	Wiggle: key.NewBinding(
		key.WithKeys("w"),
		key.WithHelp("w", "wiggle"),
	),
	Tone: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "tone"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c", "q"),
		key.WithHelp("q", "quit"),
	),
}

func (k KeyMap) bindings() []key.Binding {
	return []key.Binding{k.Randomize, k.Clear, k.Remove, k.Wiggle, k.Tone, k.Quit}
}

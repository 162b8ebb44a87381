package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap binds the flashcard controls.
type keyMap struct {
	Next     key.Binding
	Previous key.Binding
	Random   key.Binding
	Show     key.Binding
	Replay   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("n", "right"),
			key.WithHelp("n/→", "next"),
		),
		Previous: key.NewBinding(
			key.WithKeys("p", "left"),
			key.WithHelp("p/←", "previous"),
		),
		Random: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "random"),
		),
		Show: key.NewBinding(
			key.WithKeys("s", " "),
			key.WithHelp("s/space", "show"),
		),
		Replay: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "replay audio"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Previous, k.Next, k.Show, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Previous, k.Next, k.Random},
		{k.Show, k.Replay},
		{k.Help, k.Quit},
	}
}

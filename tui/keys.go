package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Place   key.Binding
	NewGame key.Binding
	Quit    key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Place, k.NewGame, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var keys = keyMap{
	Place: key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
		key.WithHelp("1-9/click", "place mark"),
	),
	NewGame: key.NewBinding(
		key.WithKeys("enter", "n"),
		key.WithHelp("enter", "new game"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

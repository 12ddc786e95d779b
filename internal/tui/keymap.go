package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the picker keybindings. Plain letters stay free for
// the query input; actions sit behind alt, matching the rofi picker's
// bindings.
type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Switch key.Binding
	Move   key.Binding
	Close  key.Binding
	Yank   key.Binding
	Fuzzy  key.Binding
	Quit   key.Binding
}

var defaultKeyMap = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "ctrl+k"),
		key.WithHelp("↑", "previous"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "ctrl+j"),
		key.WithHelp("↓", "next"),
	),
	Switch: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "switch"),
	),
	Move: key.NewBinding(
		key.WithKeys("alt+m"),
		key.WithHelp("alt+m", "move here"),
	),
	Close: key.NewBinding(
		key.WithKeys("alt+x"),
		key.WithHelp("alt+x", "close"),
	),
	Yank: key.NewBinding(
		key.WithKeys("alt+y"),
		key.WithHelp("alt+y", "yank address"),
	),
	Fuzzy: key.NewBinding(
		key.WithKeys("alt+f"),
		key.WithHelp("alt+f", "toggle fuzzy"),
	),
	Quit: key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "quit"),
	),
}

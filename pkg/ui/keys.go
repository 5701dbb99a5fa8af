package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the picker keybindings. It satisfies help.KeyMap so the
// bubbles help view can render it.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Decr    key.Binding
	Incr    key.Binding
	BigDecr key.Binding
	BigIncr key.Binding

	Hex      key.Binding
	Copy     key.Binding
	Favorite key.Binding
	Mode     key.Binding
	Palette  key.Binding

	Confirm key.Binding
	Cancel  key.Binding
	Help    key.Binding
}

// DefaultKeyMap returns the default picker bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous slider"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next slider"),
		),
		Decr: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "decrease"),
		),
		Incr: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "increase"),
		),
		BigDecr: key.NewBinding(
			key.WithKeys("shift+left", "H"),
			key.WithHelp("shift+←", "decrease 10×"),
		),
		BigIncr: key.NewBinding(
			key.WithKeys("shift+right", "L"),
			key.WithHelp("shift+→", "increase 10×"),
		),
		Hex: key.NewBinding(
			key.WithKeys("x", "#"),
			key.WithHelp("x", "edit hex"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy hex"),
		),
		Favorite: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "save favorite"),
		),
		Mode: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "color mode"),
		),
		Palette: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "palette"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "q"),
			key.WithHelp("esc/q", "cancel"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Decr, k.Incr, k.Hex, k.Copy, k.Help}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Decr, k.Incr, k.BigDecr, k.BigIncr},
		{k.Hex, k.Copy, k.Favorite, k.Mode, k.Palette},
		{k.Confirm, k.Cancel, k.Help},
	}
}

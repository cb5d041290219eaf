package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Tab      key.Binding
	ShiftTab key.Binding
	Quit     key.Binding
	Up       key.Binding
	Down     key.Binding
	Toggle   key.Binding
	Add      key.Binding
	Lock     key.Binding
	Bump     key.Binding
	Drop     key.Binding
	Help     key.Binding
	Quick1   key.Binding
	Quick2   key.Binding
	Quick3   key.Binding
	Quick4   key.Binding
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Quit, k.Help}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.ShiftTab, k.Quit, k.Help},
		{k.Up, k.Down, k.Toggle, k.Add, k.Lock},
		{k.Bump, k.Drop, k.Quick1, k.Quick2, k.Quick3, k.Quick4},
	}
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next tab"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev tab"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "toggle"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Lock: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "seal day"),
		),
		Bump: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "progress up"),
		),
		Drop: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "progress down"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quick1: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "log cigarettes"),
		),
		Quick2: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "log food"),
		),
		Quick3: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "log coffee"),
		),
		Quick4: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "log travel"),
		),
	}
}

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Primary   key.Binding
	Secondary key.Binding
	Toggle    key.Binding
	Left      key.Binding
	Right     key.Binding
	Settings  key.Binding
	Help      key.Binding
	Back      key.Binding
	Quit      key.Binding
}

var keys = keyMap{
	Primary: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "pregnancy"),
	),
	Secondary: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "nausea"),
	),
	Toggle: key.NewBinding(
		key.WithKeys("t", "tab"),
		key.WithHelp("t", "switch"),
	),
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "pregnancy"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "nausea"),
	),
	Settings: key.NewBinding(
		key.WithKeys("s", ","),
		key.WithHelp("s", "settings"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Settings, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Primary, k.Secondary, k.Toggle},
		{k.Left, k.Right},
		{k.Settings, k.Back, k.Help, k.Quit},
	}
}

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Pane     key.Binding
	NextKind key.Binding
	PrevKind key.Binding
	Toggle   key.Binding
	Remove   key.Binding
	Add      key.Binding
	Edit     key.Binding
	Reset    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Pane:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "todo/done")),
		NextKind: key.NewBinding(key.WithKeys("right", "l", "]"), key.WithHelp("→/l", "next list")),
		PrevKind: key.NewBinding(key.WithKeys("left", "h", "["), key.WithHelp("←/h", "prev list")),
		Toggle:   key.NewBinding(key.WithKeys("d", " "), key.WithHelp("d", "done/undo")),
		Remove:   key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "remove")),
		Add:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Edit:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Reset:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset"), key.WithDisabled()),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Add, k.Remove, k.Pane, k.NextKind, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Pane, k.NextKind, k.PrevKind},
		{k.Toggle, k.Remove, k.Add, k.Edit, k.Reset},
		{k.Help, k.Quit},
	}
}

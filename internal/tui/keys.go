package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up           key.Binding
	Down         key.Binding
	Switch       key.Binding
	Toggle       key.Binding
	Filter       key.Binding
	ClearFilter  key.Binding
	ApplyFilter  key.Binding
	History      key.Binding
	ClearHistory key.Binding
	Refresh      key.Binding
	Theme        key.Binding
	Help         key.Binding
	Quit         key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:           key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:         key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Switch:       key.NewBinding(key.WithKeys("tab", "shift+tab", "left", "right"), key.WithHelp("tab", "switch list")),
		Toggle:       key.NewBinding(key.WithKeys("enter", " ", "x"), key.WithHelp("enter", "move")),
		Filter:       key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		ClearFilter:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear filter")),
		ApplyFilter:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply filter")),
		History:      key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "history")),
		ClearHistory: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear history"), key.WithDisabled()),
		Refresh:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh"), key.WithDisabled()),
		Theme:        key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Help:         key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:         key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Switch, k.Filter, k.History, k.ClearHistory, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Switch, k.Toggle},
		{k.Filter, k.ClearFilter, k.Theme},
		{k.History, k.Refresh, k.ClearHistory},
		{k.Help, k.Quit},
	}
}

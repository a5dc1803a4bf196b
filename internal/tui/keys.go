package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next    key.Binding
	Prev    key.Binding
	Up      key.Binding
	Down    key.Binding
	Today   key.Binding
	Clear   key.Binding
	Overlay key.Binding
	Native  key.Binding
	Done    key.Binding
	Cancel  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		Prev:    key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
		Up:      key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑", "increment")),
		Down:    key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓", "decrement")),
		Today:   key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "today")),
		Clear:   key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "clear")),
		Overlay: key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "calendar")),
		Native:  key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("ctrl+e", "iso entry")),
		Done:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "done")),
		Cancel:  key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "cancel")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Up, k.Down, k.Today, k.Done, k.Cancel}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Up, k.Down},
		{k.Today, k.Clear, k.Overlay, k.Native},
		{k.Done, k.Cancel},
	}
}

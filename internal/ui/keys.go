package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit     key.Binding
	Sound    key.Binding
	Down     key.Binding
	Up       key.Binding
	PageDown key.Binding
	PageUp   key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Scroll1  key.Binding
	Scroll2  key.Binding
	Gate     key.Binding
	Clone    key.Binding
	Trail    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
		Sound:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sound")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll")),
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll")),
		PageDown: key.NewBinding(key.WithKeys("pgdown", " "), key.WithHelp("pgdn", "page")),
		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page")),
		Top:      key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "top")),
		Bottom:   key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "bottom")),
		Scroll1:  key.NewBinding(key.WithKeys("1"), key.WithHelp("1/2", "unroll")),
		Scroll2:  key.NewBinding(key.WithKeys("2")),
		Gate:     key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "gate")),
		Clone:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clone")),
		Trail:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "trail")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Down, k.PageDown, k.Scroll1, k.Gate, k.Clone, k.Trail, k.Sound, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Down, k.Up, k.PageDown, k.PageUp, k.Top, k.Bottom},
		{k.Scroll1, k.Gate, k.Clone, k.Trail, k.Sound, k.Quit},
	}
}

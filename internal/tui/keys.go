package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up          key.Binding
	down        key.Binding
	enter       key.Binding
	esc         key.Binding
	tab         key.Binding
	reload      key.Binding
	more        key.Binding
	older       key.Binding
	fingerprint key.Binding
	logout      key.Binding
	version     key.Binding
}

var keys = keyMap{
	up:          key.NewBinding(key.WithKeys("up", "k")),
	down:        key.NewBinding(key.WithKeys("down", "j")),
	enter:       key.NewBinding(key.WithKeys("enter")),
	esc:         key.NewBinding(key.WithKeys("esc")),
	tab:         key.NewBinding(key.WithKeys("tab")),
	reload:      key.NewBinding(key.WithKeys("r")),
	more:        key.NewBinding(key.WithKeys("m")),
	older:       key.NewBinding(key.WithKeys("ctrl+o")),
	fingerprint: key.NewBinding(key.WithKeys("ctrl+f")),
	logout:      key.NewBinding(key.WithKeys("ctrl+l")),
	version:     key.NewBinding(key.WithKeys("v")),
}

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up         key.Binding
	down       key.Binding
	enter      key.Binding
	esc        key.Binding
	tab        key.Binding
	backtab    key.Binding
	quit       key.Binding
	switchView key.Binding
	logout     key.Binding
	copy       key.Binding
	buildInfo  key.Binding
}

var keys = keyMap{
	up:         key.NewBinding(key.WithKeys("up", "pgup")),
	down:       key.NewBinding(key.WithKeys("down", "pgdown")),
	enter:      key.NewBinding(key.WithKeys("enter")),
	esc:        key.NewBinding(key.WithKeys("esc")),
	tab:        key.NewBinding(key.WithKeys("tab")),
	backtab:    key.NewBinding(key.WithKeys("shift+tab")),
	quit:       key.NewBinding(key.WithKeys("ctrl+c")),
	switchView: key.NewBinding(key.WithKeys("ctrl+n")),
	logout:     key.NewBinding(key.WithKeys("ctrl+l")),
	copy:       key.NewBinding(key.WithKeys("ctrl+y")),
	buildInfo:  key.NewBinding(key.WithKeys("ctrl+v")),
}

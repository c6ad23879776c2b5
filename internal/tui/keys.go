package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	signIn    key.Binding
	signUp    key.Binding
	logout    key.Binding
	confirm   key.Binding
	copy      key.Binding
	retry     key.Binding
	buildInfo key.Binding
}

var keys = keyMap{
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	quit:      key.NewBinding(key.WithKeys("ctrl+c")),
	signIn:    key.NewBinding(key.WithKeys("ctrl+s")),
	signUp:    key.NewBinding(key.WithKeys("ctrl+u")),
	logout:    key.NewBinding(key.WithKeys("ctrl+l")),
	confirm:   key.NewBinding(key.WithKeys("ctrl+d")),
	copy:      key.NewBinding(key.WithKeys("ctrl+y")),
	retry:     key.NewBinding(key.WithKeys("ctrl+r")),
	buildInfo: key.NewBinding(key.WithKeys("ctrl+b")),
}

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up          key.Binding
	down        key.Binding
	pageUp      key.Binding
	pageDown    key.Binding
	enter       key.Binding
	esc         key.Binding
	tab         key.Binding
	backtab     key.Binding
	quit        key.Binding
	forceQuit   key.Binding
	logout      key.Binding
	newItem     key.Binding
	edit        key.Binding
	delete      key.Binding
	renew       key.Binding
	history     key.Binding
	search      key.Binding
	filter      key.Binding
	sort        key.Binding
	remind      key.Binding
	summary     key.Binding
	command     key.Binding
	save        key.Binding
	genPassword key.Binding
	recovery    key.Binding
	resetApp    key.Binding
	yes         key.Binding
	no          key.Binding
}

var keys = keyMap{
	up:          key.NewBinding(key.WithKeys("up", "k")),
	down:        key.NewBinding(key.WithKeys("down", "j")),
	pageUp:      key.NewBinding(key.WithKeys("pgup")),
	pageDown:    key.NewBinding(key.WithKeys("pgdown")),
	enter:       key.NewBinding(key.WithKeys("enter")),
	esc:         key.NewBinding(key.WithKeys("esc")),
	tab:         key.NewBinding(key.WithKeys("tab", "down")),
	backtab:     key.NewBinding(key.WithKeys("shift+tab", "up")),
	quit:        key.NewBinding(key.WithKeys("q")),
	forceQuit:   key.NewBinding(key.WithKeys("ctrl+c")),
	logout:      key.NewBinding(key.WithKeys("l")),
	newItem:     key.NewBinding(key.WithKeys("n")),
	edit:        key.NewBinding(key.WithKeys("e", "enter")),
	delete:      key.NewBinding(key.WithKeys("d")),
	renew:       key.NewBinding(key.WithKeys("r")),
	history:     key.NewBinding(key.WithKeys("h")),
	search:      key.NewBinding(key.WithKeys("/")),
	filter:      key.NewBinding(key.WithKeys("f")),
	sort:        key.NewBinding(key.WithKeys("o")),
	remind:      key.NewBinding(key.WithKeys("a")),
	summary:     key.NewBinding(key.WithKeys("s")),
	command:     key.NewBinding(key.WithKeys(":")),
	save:        key.NewBinding(key.WithKeys("ctrl+s")),
	genPassword: key.NewBinding(key.WithKeys("ctrl+g")),
	recovery:    key.NewBinding(key.WithKeys("ctrl+r")),
	resetApp:    key.NewBinding(key.WithKeys("ctrl+x")),
	yes:         key.NewBinding(key.WithKeys("y", "s", "enter")),
	no:          key.NewBinding(key.WithKeys("n", "esc")),
}

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up          key.Binding
	Down        key.Binding
	PrevSection key.Binding
	NextSection key.Binding
	Top         key.Binding
	Bottom      key.Binding
	Search      key.Binding
	Open        key.Binding
	Language    key.Binding
	Quit        key.Binding
	ForceQuit   key.Binding

	Commit     key.Binding
	Cancel     key.Binding
	Toggle     key.Binding
	ListUp     key.Binding
	ListDown   key.Binding
	ConfirmYes key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:          key.NewBinding(key.WithKeys("up", "k")),
		Down:        key.NewBinding(key.WithKeys("down", "j")),
		PrevSection: key.NewBinding(key.WithKeys("left", "h", "shift+tab")),
		NextSection: key.NewBinding(key.WithKeys("right", "l", "tab")),
		Top:         key.NewBinding(key.WithKeys("home", "g")),
		Bottom:      key.NewBinding(key.WithKeys("end", "G")),
		Search:      key.NewBinding(key.WithKeys("/")),
		Open:        key.NewBinding(key.WithKeys("enter")),
		Language:    key.NewBinding(key.WithKeys("L")),
		Quit:        key.NewBinding(key.WithKeys("q")),
		ForceQuit:   key.NewBinding(key.WithKeys("ctrl+c")),

		Commit: key.NewBinding(key.WithKeys("enter")),
		Cancel: key.NewBinding(key.WithKeys("esc", "ctrl+g")),
		Toggle: key.NewBinding(key.WithKeys("tab")),
		// Inside text-entry pickers letters belong to the input.
		ListUp:     key.NewBinding(key.WithKeys("up", "ctrl+p")),
		ListDown:   key.NewBinding(key.WithKeys("down", "ctrl+n")),
		ConfirmYes: key.NewBinding(key.WithKeys("y")),
	}
}

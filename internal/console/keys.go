package console

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Add     key.Binding
	Edit    key.Binding
	Delete  key.Binding
	Refresh key.Binding
	Logout  key.Binding
	Quit    key.Binding

	// Form bindings.
	NextField key.Binding
	PrevField key.Binding
	CycleOpt  key.Binding
	Upload    key.Binding
	Submit    key.Binding
	Cancel    key.Binding

	// Confirmation bindings.
	Confirm key.Binding
	Deny    key.Binding
}

var keys = keyMap{
	Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Add:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add product")),
	Edit:    key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit")),
	Delete:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
	Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	Logout:  key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "logout")),
	Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

	NextField: key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
	PrevField: key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev field")),
	CycleOpt:  key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "choose")),
	Upload:    key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "upload file at path")),
	Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
	Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),

	Confirm: key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "yes, delete")),
	Deny:    key.NewBinding(key.WithKeys("n", "esc"), key.WithHelp("n", "cancel")),
}

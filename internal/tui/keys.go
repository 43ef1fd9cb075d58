package tui

import "github.com/charmbracelet/bubbles/key"

// GlobalKeys are always active.
type GlobalKeys struct {
	Quit key.Binding
	Help key.Binding
}

var globalKeys = GlobalKeys{
	Quit: key.NewBinding(
		key.WithKeys("ctrl+q"),
		key.WithHelp("Ctrl+q", "quit"),
	),
	Help: key.NewBinding(
		key.WithKeys("ctrl+h"),
		key.WithHelp("Ctrl+h", "help"),
	),
}

// MenuKeys are active on the main menu.
type MenuKeys struct {
	Up    key.Binding
	Down  key.Binding
	Enter key.Binding
	Exit  key.Binding
}

var menuKeys = MenuKeys{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("j/k", "navigate"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("j/k", "navigate"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "select"),
	),
	Exit: key.NewBinding(
		key.WithKeys("q", "esc"),
		key.WithHelp("q", "exit"),
	),
}

// ViewerKeys are active in the log and triangle views.
type ViewerKeys struct {
	Back key.Binding
}

var viewerKeys = ViewerKeys{
	Back: key.NewBinding(
		key.WithKeys("esc", "q"),
		key.WithHelp("Esc", "back"),
	),
}

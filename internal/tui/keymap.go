package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the notes TUI.
type KeyMap struct {
	// Navigation in the note list.
	Up   key.Binding
	Down key.Binding

	// Focus cycling between title, content and the list.
	NextFocus key.Binding
	PrevFocus key.Binding
	Compose   key.Binding // Jump from the list to the title field.
	Leave     key.Binding // Leave the draft fields for the list.

	// Mutations.
	Submit    key.Binding
	Save      key.Binding
	Delete    key.Binding
	Summarize key.Binding

	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap is the built-in key binding set.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	NextFocus: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next field"),
	),
	PrevFocus: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "prev field"),
	),
	Compose: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new note"),
	),
	Leave: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "to list"),
	),
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "add note"),
	),
	Save: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("ctrl+s", "add note"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete"),
	),
	Summarize: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "summarize"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
	ForceQuit: key.NewBinding(
		key.WithKeys("ctrl+c"),
	),
}

// listHelp returns the bindings shown in the footer while the list is focused.
func (k KeyMap) listHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Summarize, k.Delete, k.Compose, k.Quit}
}

// draftHelp returns the bindings shown in the footer while a draft field is focused.
func (k KeyMap) draftHelp() []key.Binding {
	return []key.Binding{k.Submit, k.NextFocus, k.Leave}
}

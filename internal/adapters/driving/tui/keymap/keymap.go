// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Back closes the active overlay.
	Back key.Binding

	// Up navigates up in a list.
	Up key.Binding

	// Down navigates down in a list.
	Down key.Binding

	// Select confirms a selection or reads the selected subject.
	Select key.Binding

	// Notes opens the notes manager for the selected subject.
	Notes key.Binding

	// PDFs opens the PDF manager for the selected subject.
	PDFs key.Binding

	// Menu toggles the floating action menu.
	Menu key.Binding

	// Settings opens the settings panel.
	Settings key.Binding

	// Theme toggles dark mode.
	Theme key.Binding

	// PrevSemester and NextSemester cycle the semester selection.
	PrevSemester key.Binding
	NextSemester key.Binding

	// Add creates an item in the active panel.
	Add key.Binding

	// Edit edits the selected item.
	Edit key.Binding

	// Delete removes the selected item.
	Delete key.Binding

	// Rename renames the subject in the reader.
	Rename key.Binding

	// Credits changes the credit value in the reader.
	Credits key.Binding

	// NewNote writes a note from the reader.
	NewNote key.Binding

	// NextField and PrevField move focus inside a form.
	NextField key.Binding
	PrevField key.Binding

	// Submit saves a form.
	Submit key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "read"),
		),
		Notes: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "notes"),
		),
		PDFs: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pdfs"),
		),
		Menu: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "menu"),
		),
		Settings: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "settings"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		PrevSemester: key.NewBinding(
			key.WithKeys("[", "left", "h"),
			key.WithHelp("[", "prev semester"),
		),
		NextSemester: key.NewBinding(
			key.WithKeys("]", "right", "l"),
			key.WithHelp("]", "next semester"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Rename: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "rename"),
		),
		Credits: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "credits"),
		),
		NewNote: key.NewBinding(
			key.WithKeys("N"),
			key.WithHelp("N", "new note"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev field"),
		),
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save"),
		),
	}
}

// ListHelp returns keybindings for the subject list.
func (k *KeyMap) ListHelp() []key.Binding {
	return []key.Binding{k.Select, k.Notes, k.PDFs, k.Menu, k.Settings, k.Theme, k.Quit}
}

// ReaderHelp returns keybindings for the syllabus reader.
func (k *KeyMap) ReaderHelp() []key.Binding {
	return []key.Binding{k.Add, k.Edit, k.Delete, k.Rename, k.Credits, k.NewNote, k.Back}
}

// ManagerHelp returns keybindings for the notes and PDF managers.
func (k *KeyMap) ManagerHelp() []key.Binding {
	return []key.Binding{k.Select, k.Add, k.Edit, k.Delete, k.Back}
}

// FormHelp returns keybindings while a form is open.
func (k *KeyMap) FormHelp() []key.Binding {
	return []key.Binding{k.NextField, k.Submit, k.Back}
}

// FullHelp returns the full list of keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select, k.Back},
		{k.Notes, k.PDFs, k.Menu, k.Settings, k.Theme},
		{k.Add, k.Edit, k.Delete, k.Rename, k.Credits, k.NewNote},
		{k.PrevSemester, k.NextSemester, k.Quit},
	}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}

// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/syllabus-cli/internal/core/coordinator"
)

// Dispatch asks the app to reduce a coordinator event.
type Dispatch struct {
	Event coordinator.Event
}

// Send returns a command that emits a Dispatch for ev.
func Send(ev coordinator.Event) tea.Cmd {
	return func() tea.Msg { return Dispatch{Event: ev} }
}

// OpenNote asks the app to open the note reader for a note ID.
type OpenNote struct {
	ID string
}

// Mutated reports the outcome of a store mutation started by a view.
type Mutated struct {
	// Status is shown on success.
	Status string
	Err    error
}

// FormSubmitted carries the field values of a submitted form.
type FormSubmitted struct {
	// ID identifies which form was submitted to the view that opened it.
	ID     string
	Values []string
}

// FormCancelled signals a form was dismissed without saving.
type FormCancelled struct {
	ID string
}

// ConfigChanged signals the config file was edited outside the app.
type ConfigChanged struct{}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}

// Mutate performs fn immediately, on the caller's goroutine, and returns a
// command that reports the outcome as Mutated. Views call it from Update so
// mutations land in key order.
func Mutate(status string, fn func() error) tea.Cmd {
	msg := Mutated{Status: status}
	if err := fn(); err != nil {
		msg = Mutated{Err: err}
	}
	return func() tea.Msg { return msg }
}

// Package status provides status bar components for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/syllabus-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/syllabus-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/syllabus-cli/internal/core/coordinator"
)

// State represents the current application state for display.
type State string

const (
	StateReady State = "ready"
	StateInfo  State = "info"
	StateError State = "error"
)

// Bar displays application status and keybinding hints.
type Bar struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	state   State
	message string
	mode    coordinator.Mode
	editing bool
	width   int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		state:  StateReady,
		mode:   coordinator.ModeIdle,
		width:  80,
	}
}

// Init initialises the status bar.
func (s *Bar) Init() tea.Cmd {
	return nil
}

// Update handles status bar messages.
func (s *Bar) Update(msg tea.Msg) (*Bar, tea.Cmd) {
	// Bar is passive, updated via Set methods
	return s, nil
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	padding := s.width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

func (s *Bar) renderLeft() string {
	switch s.state {
	case StateError:
		if s.message != "" {
			return s.styles.Error.Render(fmt.Sprintf("Error: %s", s.message))
		}
		return s.styles.Error.Render("Error")
	case StateInfo:
		return s.styles.Success.Render(s.message)
	case StateReady:
	}
	return s.styles.Muted.Render("Ready")
}

// renderRight renders keybinding hints for the current mode.
func (s *Bar) renderRight() string {
	var bindings []key.Binding
	switch {
	case s.editing:
		bindings = s.keymap.FormHelp()
	case s.mode == coordinator.ModeReadingSubject:
		bindings = s.keymap.ReaderHelp()
	case s.mode == coordinator.ModeReadingNote:
		bindings = []key.Binding{s.keymap.Edit, s.keymap.Delete, s.keymap.Back}
	case s.mode == coordinator.ModeManagingNotes, s.mode == coordinator.ModeManagingPDFs:
		bindings = s.keymap.ManagerHelp()
	default:
		bindings = s.keymap.ListHelp()
	}

	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return s.styles.Help.Render(strings.Join(hints, " | "))
}

// SetState sets the current state.
func (s *Bar) SetState(state State) {
	s.state = state
}

// State returns the current state.
func (s *Bar) State() State {
	return s.state
}

// SetMessage sets a custom message.
func (s *Bar) SetMessage(message string) {
	s.message = message
}

// Message returns the current message.
func (s *Bar) Message() string {
	return s.message
}

// Info shows a transient confirmation.
func (s *Bar) Info(message string) {
	s.state = StateInfo
	s.message = message
}

// Fail shows an error.
func (s *Bar) Fail(err error) {
	s.state = StateError
	s.message = err.Error()
}

// SetMode selects which keybinding hints are shown.
func (s *Bar) SetMode(mode coordinator.Mode, editing bool) {
	s.mode = mode
	s.editing = editing
}

// SetStyles swaps the palette.
func (s *Bar) SetStyles(st *styles.Styles) {
	s.styles = st
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}

// Clear resets the status bar to default state.
func (s *Bar) Clear() {
	s.state = StateReady
	s.message = ""
}

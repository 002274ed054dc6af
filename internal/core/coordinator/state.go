package coordinator

import "github.com/custodia-labs/syllabus-cli/internal/core/domain"

// PanelKind identifies the exclusive overlay slot.
type PanelKind int

// Panel kinds. Only one is active at a time.
const (
	PanelNone PanelKind = iota
	PanelReader
	PanelNotes
	PanelPDFs
)

// String returns the panel name used in logs.
func (k PanelKind) String() string {
	switch k {
	case PanelNone:
		return "none"
	case PanelReader:
		return "reader"
	case PanelNotes:
		return "notes"
	case PanelPDFs:
		return "pdfs"
	default:
		return "unknown"
	}
}

// Panel is the overlay currently taking focus over the subject list.
type Panel struct {
	Kind       PanelKind
	SemesterID int
	Code       string
	Name       string

	// Subject is the snapshot shown by the reader. Set only for PanelReader.
	Subject domain.Subject
}

// IsOpen reports whether any panel is active.
func (p Panel) IsOpen() bool {
	return p.Kind != PanelNone
}

// Mode names the state machine position derived from a State.
type Mode string

// Modes.
const (
	ModeIdle           Mode = "idle"
	ModeReadingSubject Mode = "reading_subject"
	ModeManagingNotes  Mode = "managing_notes"
	ModeReadingNote    Mode = "reading_note"
	ModeManagingPDFs   Mode = "managing_pdfs"
)

// State is an immutable snapshot of the view. Treat values as read-only;
// Reduce always returns a fresh copy.
type State struct {
	SelectedSemester int
	DarkMode         bool
	Panel            Panel

	// NoteReader is non-nil only while Panel.Kind is PanelNotes.
	NoteReader *domain.Note
}

// Initial returns the idle state.
func Initial(semester int, dark bool) State {
	return State{SelectedSemester: semester, DarkMode: dark}
}

// Mode returns the state machine position.
func (s State) Mode() Mode {
	switch s.Panel.Kind {
	case PanelReader:
		return ModeReadingSubject
	case PanelNotes:
		if s.NoteReader != nil {
			return ModeReadingNote
		}
		return ModeManagingNotes
	case PanelPDFs:
		return ModeManagingPDFs
	default:
		return ModeIdle
	}
}

// Theme returns the theme matching DarkMode.
func (s State) Theme() domain.Theme {
	return domain.ThemeFromDark(s.DarkMode)
}

package coordinator

import "github.com/custodia-labs/syllabus-cli/internal/core/domain"

// Event is an input to Reduce.
type Event interface {
	event()
}

// SelectSemester switches the subject list to another semester.
type SelectSemester struct{ ID int }

// ToggleTheme flips between the light and dark palettes.
type ToggleTheme struct{}

// SetTheme sets the palette explicitly.
type SetTheme struct{ Dark bool }

// ReadSubject opens the syllabus reader for a subject row.
type ReadSubject struct {
	Code       string
	SemesterID int
}

// ViewNotes opens the notes manager for a subject row.
type ViewNotes struct {
	Code       string
	SemesterID int
}

// ViewPDFs opens the PDF manager for a subject row.
type ViewPDFs struct {
	Code       string
	SemesterID int
}

// ReadNote opens the note reader on top of the notes manager. The note must
// belong to the subject the manager shows.
type ReadNote struct{ Note domain.Note }

// OpenSyllabus is the floating menu action for the reader.
type OpenSyllabus struct{}

// OpenNotes is the floating menu action for the notes manager.
type OpenNotes struct{}

// OpenPDFs is the floating menu action for the PDF manager.
type OpenPDFs struct{}

// ClosePanel closes the active panel and any note reader above it.
type ClosePanel struct{}

// CloseNoteReader returns to the notes manager.
type CloseNoteReader struct{}

// RefreshSubject re-reads the open panel's subject after a mutation.
type RefreshSubject struct{}

func (SelectSemester) event()  {}
func (ToggleTheme) event()     {}
func (SetTheme) event()        {}
func (ReadSubject) event()     {}
func (ViewNotes) event()       {}
func (ViewPDFs) event()        {}
func (ReadNote) event()        {}
func (OpenSyllabus) event()    {}
func (OpenNotes) event()       {}
func (OpenPDFs) event()        {}
func (ClosePanel) event()      {}
func (CloseNoteReader) event() {}
func (RefreshSubject) event()  {}

package coordinator

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/custodia-labs/syllabus-cli/internal/core/domain"
	"github.com/custodia-labs/syllabus-cli/internal/core/ports/driving"
)

// Row is one subject line of the list with live attachment counts.
type Row struct {
	Subject    domain.Subject
	SemesterID int
	NoteCount  int
	PDFCount   int
}

// Coordinator holds the current State and mediates between the stores and
// the presentation layer.
type Coordinator struct {
	mu       sync.RWMutex
	syllabus driving.SyllabusStore
	notes    driving.NotesStore
	pdfs     driving.PDFStore
	settings driving.SettingsService
	logger   *zap.Logger
	state    State
}

// New creates a coordinator. settings may be nil, in which case the default
// theme and the first semester are used and changes are not persisted.
func New(
	ctx context.Context,
	syllabus driving.SyllabusStore,
	notes driving.NotesStore,
	pdfs driving.PDFStore,
	settings driving.SettingsService,
	logger *zap.Logger,
) (*Coordinator, error) {
	if syllabus == nil || notes == nil || pdfs == nil {
		return nil, domain.ErrNotImplemented
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	prefs := domain.DefaultAppSettings().UI
	if settings != nil {
		stored, err := settings.Get()
		if err != nil {
			return nil, fmt.Errorf("loading settings: %w", err)
		}
		prefs = stored.UI
	}

	semesters, err := syllabus.Semesters(ctx)
	if err != nil {
		return nil, err
	}
	selected := prefs.Semester
	if _, ok := domain.FindSemester(semesters, selected); !ok && len(semesters) > 0 {
		selected = semesters[0].ID
	}

	return &Coordinator{
		syllabus: syllabus,
		notes:    notes,
		pdfs:     pdfs,
		settings: settings,
		logger:   logger,
		state:    Initial(selected, prefs.Theme.IsDark()),
	}, nil
}

// State returns the current snapshot.
func (c *Coordinator) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Dispatch reduces ev into the current state. Theme and semester changes are
// persisted through the settings service when one is configured; if that
// fails the previous state is kept and returned with the error.
func (c *Coordinator) Dispatch(ctx context.Context, ev Event) (State, error) {
	semesters, err := c.syllabus.Semesters(ctx)
	if err != nil {
		return c.State(), err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	prev := c.state
	next := Reduce(prev, ev, semesters)
	if err := c.persist(prev, next); err != nil {
		c.logger.Debug("preference not saved, view unchanged", zap.Error(err))
		return prev, err
	}
	c.state = next

	if next.Mode() != prev.Mode() || next.Panel.Code != prev.Panel.Code {
		c.logger.Debug("view changed",
			zap.String("mode", string(next.Mode())),
			zap.String("subject", next.Panel.Code))
	}
	return next, nil
}

// persist writes the preferences that differ between prev and next.
func (c *Coordinator) persist(prev, next State) error {
	if c.settings == nil {
		return nil
	}
	if next.DarkMode != prev.DarkMode {
		if err := c.settings.SetTheme(next.Theme()); err != nil {
			return fmt.Errorf("saving theme: %w", err)
		}
	}
	if next.SelectedSemester != prev.SelectedSemester {
		if err := c.settings.SetSemester(next.SelectedSemester); err != nil {
			return fmt.Errorf("saving semester: %w", err)
		}
	}
	return nil
}

// Apply adopts theme and semester preferences changed outside the app,
// for example by editing the config file. Overlays are untouched.
func (c *Coordinator) Apply(ctx context.Context, ui domain.UISettings) (State, error) {
	semesters, err := c.syllabus.Semesters(ctx)
	if err != nil {
		return c.State(), err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = Reduce(c.state, SetTheme{Dark: ui.Theme.IsDark()}, semesters)
	c.state = Reduce(c.state, SelectSemester{ID: ui.Semester}, semesters)
	return c.state, nil
}

// Semesters returns all semesters.
func (c *Coordinator) Semesters(ctx context.Context) ([]domain.Semester, error) {
	return c.syllabus.Semesters(ctx)
}

// CurrentSemester returns the selected semester.
func (c *Coordinator) CurrentSemester(ctx context.Context) (*domain.Semester, error) {
	return c.syllabus.Semester(ctx, c.State().SelectedSemester)
}

// Rows derives the subject list of the selected semester.
func (c *Coordinator) Rows(ctx context.Context) ([]Row, error) {
	sem, err := c.CurrentSemester(ctx)
	if err != nil {
		return nil, err
	}
	return RowsFor(ctx, sem, c.notes, c.pdfs)
}

// RowsFor derives subject rows for any semester.
func RowsFor(
	ctx context.Context, sem *domain.Semester, notes driving.NotesStore, pdfs driving.PDFStore,
) ([]Row, error) {
	rows := make([]Row, 0, len(sem.Subjects))
	for _, subj := range sem.Subjects {
		n, err := notes.NotesForSubject(ctx, subj.Code, sem.ID)
		if err != nil {
			return nil, fmt.Errorf("notes for %s: %w", subj.Code, err)
		}
		p, err := pdfs.PDFsForSubject(ctx, subj.Code, sem.ID)
		if err != nil {
			return nil, fmt.Errorf("pdfs for %s: %w", subj.Code, err)
		}
		rows = append(rows, Row{
			Subject:    subj,
			SemesterID: sem.ID,
			NoteCount:  len(n),
			PDFCount:   len(p),
		})
	}
	return rows, nil
}

// PanelNotes returns the notes of the subject in the notes panel.
func (c *Coordinator) PanelNotes(ctx context.Context) ([]domain.Note, error) {
	p := c.State().Panel
	if p.Kind != PanelNotes {
		return nil, nil
	}
	return c.notes.NotesForSubject(ctx, p.Code, p.SemesterID)
}

// PanelPDFs returns the references of the subject in the PDF panel.
func (c *Coordinator) PanelPDFs(ctx context.Context) ([]domain.PDFResource, error) {
	p := c.State().Panel
	if p.Kind != PanelPDFs {
		return nil, nil
	}
	return c.pdfs.PDFsForSubject(ctx, p.Code, p.SemesterID)
}

// ReadNote opens the note reader for id.
func (c *Coordinator) ReadNote(ctx context.Context, id string) (State, error) {
	note, err := c.notes.Note(ctx, id)
	if err != nil {
		return c.State(), err
	}
	return c.Dispatch(ctx, ReadNote{Note: *note})
}

// UpdateSubject forwards to the syllabus store and refreshes the panel.
func (c *Coordinator) UpdateSubject(
	ctx context.Context, semesterID int, code string, update domain.SubjectUpdate,
) error {
	return c.refreshAfter(ctx, c.syllabus.UpdateSubject(ctx, semesterID, code, update))
}

// AddUnit forwards to the syllabus store and refreshes the panel.
func (c *Coordinator) AddUnit(ctx context.Context, semesterID int, code string, unit domain.Unit) error {
	return c.refreshAfter(ctx, c.syllabus.AddUnit(ctx, semesterID, code, unit))
}

// UpdateUnit forwards to the syllabus store and refreshes the panel.
func (c *Coordinator) UpdateUnit(
	ctx context.Context, semesterID int, code string, index int, unit domain.Unit,
) error {
	return c.refreshAfter(ctx, c.syllabus.UpdateUnit(ctx, semesterID, code, index, unit))
}

// DeleteUnit forwards to the syllabus store and refreshes the panel.
func (c *Coordinator) DeleteUnit(ctx context.Context, semesterID int, code string, index int) error {
	return c.refreshAfter(ctx, c.syllabus.DeleteUnit(ctx, semesterID, code, index))
}

// AddNote forwards to the notes store.
func (c *Coordinator) AddNote(ctx context.Context, input domain.NoteInput) (*domain.Note, error) {
	return c.notes.AddNote(ctx, input)
}

// UpdateNote forwards to the notes store and refreshes an open reader.
func (c *Coordinator) UpdateNote(ctx context.Context, id string, update domain.NoteUpdate) (*domain.Note, error) {
	note, err := c.notes.UpdateNote(ctx, id, update)
	if err != nil {
		return nil, err
	}
	if r := c.State().NoteReader; r != nil && r.ID == id {
		if _, err := c.Dispatch(ctx, ReadNote{Note: *note}); err != nil {
			return note, err
		}
	}
	return note, nil
}

// DeleteNote forwards to the notes store and closes a reader showing it.
func (c *Coordinator) DeleteNote(ctx context.Context, id string) error {
	if err := c.notes.DeleteNote(ctx, id); err != nil {
		return err
	}
	if r := c.State().NoteReader; r != nil && r.ID == id {
		if _, err := c.Dispatch(ctx, CloseNoteReader{}); err != nil {
			return err
		}
	}
	return nil
}

// AddPDF forwards to the PDF store.
func (c *Coordinator) AddPDF(ctx context.Context, input domain.PDFInput) (*domain.PDFResource, error) {
	return c.pdfs.AddPDF(ctx, input)
}

// UpdatePDF forwards to the PDF store.
func (c *Coordinator) UpdatePDF(
	ctx context.Context, id string, update domain.PDFUpdate,
) (*domain.PDFResource, error) {
	return c.pdfs.UpdatePDF(ctx, id, update)
}

// DeletePDF forwards to the PDF store.
func (c *Coordinator) DeletePDF(ctx context.Context, id string) error {
	return c.pdfs.DeletePDF(ctx, id)
}

func (c *Coordinator) refreshAfter(ctx context.Context, err error) error {
	if err != nil {
		return err
	}
	_, err = c.Dispatch(ctx, RefreshSubject{})
	return err
}

// IsRecoverable reports whether err is a lookup failure the UI should
// surface as a status message rather than abort on.
func IsRecoverable(err error) bool {
	return errors.Is(err, domain.ErrNotFound) ||
		errors.Is(err, domain.ErrInvalidIndex) ||
		errors.Is(err, domain.ErrInvalidInput)
}

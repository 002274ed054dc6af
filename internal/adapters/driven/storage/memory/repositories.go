package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/syllabus-cli/internal/core/domain"
	"github.com/custodia-labs/syllabus-cli/internal/core/ports/driven"
)

// Ensure repositories implement the interfaces.
var (
	_ driven.SyllabusRepository = (*SyllabusRepository)(nil)
	_ driven.NoteRepository     = (*NoteRepository)(nil)
	_ driven.PDFRepository      = (*PDFRepository)(nil)
)

// SyllabusRepository stores semesters in memory.
type SyllabusRepository struct {
	mu        sync.RWMutex
	semesters []domain.Semester
	saveErr   error
	saves     int
}

// NewSyllabusRepository creates a repository holding a copy of semesters.
func NewSyllabusRepository(semesters []domain.Semester) *SyllabusRepository {
	return &SyllabusRepository{semesters: domain.CloneSemesters(semesters)}
}

// Load returns a copy of the stored semesters.
func (r *SyllabusRepository) Load(_ context.Context) ([]domain.Semester, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return domain.CloneSemesters(r.semesters), nil
}

// Save replaces the stored semesters.
func (r *SyllabusRepository) Save(_ context.Context, semesters []domain.Semester) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	r.semesters = domain.CloneSemesters(semesters)
	r.saves++
	return nil
}

// FailSaves makes every following Save return err. Pass nil to recover.
func (r *SyllabusRepository) FailSaves(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saveErr = err
}

// Saves returns the number of successful saves.
func (r *SyllabusRepository) Saves() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.saves
}

// NoteRepository stores notes in memory.
type NoteRepository struct {
	mu      sync.RWMutex
	notes   []domain.Note
	saveErr error
}

// NewNoteRepository creates an empty note repository.
func NewNoteRepository() *NoteRepository {
	return &NoteRepository{}
}

// Load returns a copy of the stored notes.
func (r *NoteRepository) Load(_ context.Context) ([]domain.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.Note(nil), r.notes...), nil
}

// Save replaces the stored notes.
func (r *NoteRepository) Save(_ context.Context, notes []domain.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	r.notes = append([]domain.Note(nil), notes...)
	return nil
}

// FailSaves makes every following Save return err. Pass nil to recover.
func (r *NoteRepository) FailSaves(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saveErr = err
}

// PDFRepository stores PDF references in memory.
type PDFRepository struct {
	mu      sync.RWMutex
	pdfs    []domain.PDFResource
	saveErr error
}

// NewPDFRepository creates an empty PDF repository.
func NewPDFRepository() *PDFRepository {
	return &PDFRepository{}
}

// Load returns a copy of the stored references.
func (r *PDFRepository) Load(_ context.Context) ([]domain.PDFResource, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.PDFResource(nil), r.pdfs...), nil
}

// Save replaces the stored references.
func (r *PDFRepository) Save(_ context.Context, pdfs []domain.PDFResource) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	r.pdfs = append([]domain.PDFResource(nil), pdfs...)
	return nil
}

// FailSaves makes every following Save return err. Pass nil to recover.
func (r *PDFRepository) FailSaves(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saveErr = err
}

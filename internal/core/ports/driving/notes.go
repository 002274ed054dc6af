package driving

import (
	"context"

	"github.com/custodia-labs/syllabus-cli/internal/core/domain"
)

// NotesStore owns notes keyed by subject code and semester.
type NotesStore interface {
	// NotesForSubject returns notes for the subject in insertion order.
	NotesForSubject(ctx context.Context, subjectCode string, semesterID int) ([]domain.Note, error)

	// Note returns a single note.
	// Returns domain.ErrNotFound if absent.
	Note(ctx context.Context, id string) (*domain.Note, error)

	// AllNotes returns every note in insertion order.
	AllNotes(ctx context.Context) ([]domain.Note, error)

	// SearchNotes returns notes whose title or content contains query.
	SearchNotes(ctx context.Context, query string) ([]domain.Note, error)

	// AddNote creates a note with a fresh identifier.
	AddNote(ctx context.Context, input domain.NoteInput) (*domain.Note, error)

	// UpdateNote merges the non-nil fields of update.
	// Returns domain.ErrNotFound if absent.
	UpdateNote(ctx context.Context, id string, update domain.NoteUpdate) (*domain.Note, error)

	// DeleteNote removes a note.
	// Returns domain.ErrNotFound if absent.
	DeleteNote(ctx context.Context, id string) error
}

package driven

import (
	"context"

	"github.com/custodia-labs/syllabus-cli/internal/core/domain"
)

// SyllabusRepository persists the ordered semester collection.
type SyllabusRepository interface {
	// Load returns all semesters in order. An empty result means nothing
	// has been stored yet.
	Load(ctx context.Context) ([]domain.Semester, error)

	// Save replaces the stored collection.
	Save(ctx context.Context, semesters []domain.Semester) error
}

// NoteRepository persists notes in insertion order.
type NoteRepository interface {
	// Load returns all notes in insertion order.
	Load(ctx context.Context) ([]domain.Note, error)

	// Save replaces the stored collection.
	Save(ctx context.Context, notes []domain.Note) error
}

// PDFRepository persists PDF references in insertion order.
type PDFRepository interface {
	// Load returns all PDF references in insertion order.
	Load(ctx context.Context) ([]domain.PDFResource, error)

	// Save replaces the stored collection.
	Save(ctx context.Context, pdfs []domain.PDFResource) error
}

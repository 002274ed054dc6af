package driving

import (
	"context"

	"github.com/custodia-labs/syllabus-cli/internal/core/domain"
)

// SyllabusStore holds the ordered semesters and mutates subjects and units.
// Mutations are visible to the next read.
type SyllabusStore interface {
	// Semesters returns a copy of all semesters in order.
	Semesters(ctx context.Context) ([]domain.Semester, error)

	// Semester returns a copy of one semester.
	// Returns domain.ErrNotFound if absent.
	Semester(ctx context.Context, id int) (*domain.Semester, error)

	// Subject returns a copy of one subject.
	// Returns domain.ErrNotFound if the semester or subject is absent.
	Subject(ctx context.Context, semesterID int, code string) (*domain.Subject, error)

	// UpdateSubject merges the non-nil fields of update into the subject.
	// Returns domain.ErrNotFound if the semester or subject is absent.
	UpdateSubject(ctx context.Context, semesterID int, code string, update domain.SubjectUpdate) error

	// AddUnit appends a unit to the subject's unit list.
	AddUnit(ctx context.Context, semesterID int, code string, unit domain.Unit) error

	// UpdateUnit replaces the unit at index.
	// Returns domain.ErrInvalidIndex if index is out of range.
	UpdateUnit(ctx context.Context, semesterID int, code string, index int, unit domain.Unit) error

	// DeleteUnit removes the unit at index; later units shift down by one.
	// Returns domain.ErrInvalidIndex if index is out of range.
	DeleteUnit(ctx context.Context, semesterID int, code string, index int) error
}

package driving

import (
	"context"

	"github.com/custodia-labs/syllabus-cli/internal/core/domain"
)

// PDFStore owns PDF references keyed by subject code and semester.
type PDFStore interface {
	// PDFsForSubject returns references for the subject in insertion order.
	PDFsForSubject(ctx context.Context, subjectCode string, semesterID int) ([]domain.PDFResource, error)

	// PDF returns a single reference.
	// Returns domain.ErrNotFound if absent.
	PDF(ctx context.Context, id string) (*domain.PDFResource, error)

	// AddPDF registers a reference with a fresh identifier.
	AddPDF(ctx context.Context, input domain.PDFInput) (*domain.PDFResource, error)

	// UpdatePDF merges the non-nil fields of update.
	// Returns domain.ErrNotFound if absent.
	UpdatePDF(ctx context.Context, id string, update domain.PDFUpdate) (*domain.PDFResource, error)

	// DeletePDF removes a reference.
	// Returns domain.ErrNotFound if absent.
	DeletePDF(ctx context.Context, id string) error
}

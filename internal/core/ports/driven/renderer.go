package driven

import (
	"io"

	"github.com/custodia-labs/syllabus-cli/internal/core/domain"
)

// ReportRenderer writes a syllabus report in a printable format.
type ReportRenderer interface {
	// Render writes the report to w.
	Render(w io.Writer, report *domain.SyllabusReport) error

	// Extension is the file extension of the output, including the dot.
	Extension() string
}

package driving

import (
	"context"
	"io"
)

// ExportOptions selects what goes into an exported syllabus.
type ExportOptions struct {
	// SemesterID limits the export to one semester. Zero exports all.
	SemesterID int

	// IncludeNotes attaches notes and PDF references to each subject.
	IncludeNotes bool
}

// ExportService renders the syllabus in a printable format.
type ExportService interface {
	// Export writes the report to w.
	Export(ctx context.Context, w io.Writer, opts ExportOptions) error

	// Extension is the file extension of the output, including the dot.
	Extension() string
}

package mcp

import (
	"go.uber.org/zap"

	"github.com/custodia-labs/syllabus-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Syllabus provides semesters, subjects and units.
	Syllabus driving.SyllabusStore

	// Notes manages notes per subject.
	Notes driving.NotesStore

	// PDFs manages PDF references per subject.
	PDFs driving.PDFStore

	// Logger receives request logs. Nil discards them.
	Logger *zap.Logger
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Syllabus == nil {
		return ErrMissingSyllabusStore
	}
	if p.Notes == nil {
		return ErrMissingNotesStore
	}
	if p.PDFs == nil {
		return ErrMissingPDFStore
	}
	return nil
}

package services

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/custodia-labs/syllabus-cli/internal/core/domain"
	"github.com/custodia-labs/syllabus-cli/internal/core/ports/driven"
	"github.com/custodia-labs/syllabus-cli/internal/core/ports/driving"
)

// Ensure ExportService implements the interface.
var _ driving.ExportService = (*ExportService)(nil)

// ExportService assembles a SyllabusReport and hands it to a renderer.
type ExportService struct {
	syllabus driving.SyllabusStore
	notes    driving.NotesStore
	pdfs     driving.PDFStore
	renderer driven.ReportRenderer
	logger   *zap.Logger
	now      func() time.Time
}

// NewExportService creates an export service.
// notes and pdfs may be nil when attachments are never requested.
func NewExportService(
	syllabus driving.SyllabusStore,
	notes driving.NotesStore,
	pdfs driving.PDFStore,
	renderer driven.ReportRenderer,
	logger *zap.Logger,
) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		syllabus: syllabus,
		notes:    notes,
		pdfs:     pdfs,
		renderer: renderer,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Export writes the report to w.
func (s *ExportService) Export(ctx context.Context, w io.Writer, opts driving.ExportOptions) error {
	if s.syllabus == nil || s.renderer == nil {
		return domain.ErrNotImplemented
	}

	report, err := s.Report(ctx, opts)
	if err != nil {
		return err
	}

	if err := s.renderer.Render(w, report); err != nil {
		return fmt.Errorf("rendering report: %w", err)
	}
	s.logger.Info("syllabus exported",
		zap.Int("semesters", len(report.Semesters)),
		zap.Bool("notes", report.IncludeNotes))
	return nil
}

// Extension is the file extension of the output, including the dot.
func (s *ExportService) Extension() string {
	if s.renderer == nil {
		return ""
	}
	return s.renderer.Extension()
}

// Report builds the report without rendering it.
func (s *ExportService) Report(ctx context.Context, opts driving.ExportOptions) (*domain.SyllabusReport, error) {
	if s.syllabus == nil {
		return nil, domain.ErrNotImplemented
	}
	if opts.IncludeNotes && (s.notes == nil || s.pdfs == nil) {
		return nil, domain.ErrNotImplemented
	}

	var semesters []domain.Semester
	if opts.SemesterID != 0 {
		sem, err := s.syllabus.Semester(ctx, opts.SemesterID)
		if err != nil {
			return nil, err
		}
		semesters = []domain.Semester{*sem}
	} else {
		all, err := s.syllabus.Semesters(ctx)
		if err != nil {
			return nil, err
		}
		semesters = all
	}

	report := &domain.SyllabusReport{
		Title:        domain.ProgramTitle,
		Program:      domain.ProgramName,
		GeneratedAt:  s.now(),
		IncludeNotes: opts.IncludeNotes,
		Semesters:    make([]domain.ReportSemester, 0, len(semesters)),
	}

	for _, sem := range semesters {
		section := domain.ReportSemester{
			ID:           sem.ID,
			Name:         sem.Name,
			TotalCredits: sem.TotalCredits,
			Subjects:     make([]domain.ReportSubject, 0, len(sem.Subjects)),
		}
		for _, subj := range sem.Subjects {
			entry := domain.ReportSubject{Subject: subj}
			if opts.IncludeNotes {
				notes, err := s.notes.NotesForSubject(ctx, subj.Code, sem.ID)
				if err != nil {
					return nil, fmt.Errorf("notes for %s: %w", subj.Code, err)
				}
				pdfs, err := s.pdfs.PDFsForSubject(ctx, subj.Code, sem.ID)
				if err != nil {
					return nil, fmt.Errorf("pdfs for %s: %w", subj.Code, err)
				}
				entry.Notes = notes
				entry.PDFs = pdfs
			}
			section.Subjects = append(section.Subjects, entry)
		}
		report.Semesters = append(report.Semesters, section)
	}

	return report, nil
}

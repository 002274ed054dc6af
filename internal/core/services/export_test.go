package services

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/syllabus-cli/internal/core/domain"
	"github.com/custodia-labs/syllabus-cli/internal/core/ports/driving"
)

type recordingRenderer struct {
	report *domain.SyllabusReport
	err    error
}

func (r *recordingRenderer) Render(w io.Writer, report *domain.SyllabusReport) error {
	r.report = report
	if r.err != nil {
		return r.err
	}
	_, err := io.WriteString(w, report.Title)
	return err
}

func (r *recordingRenderer) Extension() string { return ".txt" }

func newTestExport(t *testing.T) (*ExportService, *recordingRenderer, *NotesService, *PDFService) {
	t.Helper()
	syllabus, _ := newTestSyllabus(t)
	notes, _ := newTestNotes(t)
	pdfs, _ := newTestPDFs(t)
	renderer := &recordingRenderer{}
	return NewExportService(syllabus, notes, pdfs, renderer, nil), renderer, notes, pdfs
}

func TestExportService_AllSemesters(t *testing.T) {
	svc, renderer, _, _ := newTestExport(t)
	var buf bytes.Buffer

	require.NoError(t, svc.Export(context.Background(), &buf, driving.ExportOptions{}))

	assert.Equal(t, domain.ProgramTitle, buf.String())
	require.NotNil(t, renderer.report)
	assert.Len(t, renderer.report.Semesters, 4)
	assert.Equal(t, domain.ProgramName, renderer.report.Program)
	assert.False(t, renderer.report.IncludeNotes)
	assert.Nil(t, renderer.report.Semesters[0].Subjects[0].Notes)
	assert.Equal(t, ".txt", svc.Extension())
}

func TestExportService_OneSemesterWithNotes(t *testing.T) {
	svc, renderer, notes, pdfs := newTestExport(t)
	ctx := context.Background()
	_, err := notes.AddNote(ctx, domain.NoteInput{Title: "BLAST", SubjectCode: "BIO501", SemesterID: 1})
	require.NoError(t, err)
	_, err = pdfs.AddPDF(ctx, lecture("slides"))
	require.NoError(t, err)

	err = svc.Export(ctx, io.Discard, driving.ExportOptions{SemesterID: 1, IncludeNotes: true})
	require.NoError(t, err)

	require.Len(t, renderer.report.Semesters, 1)
	first := renderer.report.Semesters[0].Subjects[0]
	assert.Equal(t, "BIO501", first.Subject.Code)
	require.Len(t, first.Notes, 1)
	assert.Equal(t, "BLAST", first.Notes[0].Title)
	require.Len(t, first.PDFs, 1)
	assert.Empty(t, renderer.report.Semesters[0].Subjects[1].Notes)
}

func TestExportService_UnknownSemester(t *testing.T) {
	svc, _, _, _ := newTestExport(t)
	err := svc.Export(context.Background(), io.Discard, driving.ExportOptions{SemesterID: 9})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestExportService_RendererError(t *testing.T) {
	svc, renderer, _, _ := newTestExport(t)
	boom := errors.New("render failed")
	renderer.err = boom

	err := svc.Export(context.Background(), io.Discard, driving.ExportOptions{})
	assert.ErrorIs(t, err, boom)
}

func TestExportService_NotConfigured(t *testing.T) {
	svc := NewExportService(nil, nil, nil, nil, nil)
	assert.ErrorIs(t, svc.Export(context.Background(), io.Discard, driving.ExportOptions{}), domain.ErrNotImplemented)
	assert.Empty(t, svc.Extension())

	syllabus, _ := newTestSyllabus(t)
	partial := NewExportService(syllabus, nil, nil, &recordingRenderer{}, nil)
	_, err := partial.Report(context.Background(), driving.ExportOptions{IncludeNotes: true})
	assert.ErrorIs(t, err, domain.ErrNotImplemented)
}

package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/syllabus-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/syllabus-cli/internal/core/domain"
	"github.com/custodia-labs/syllabus-cli/internal/core/services"
)

var errBoom = errors.New("boom")

// failingSyllabus fails every read.
type failingSyllabus struct{}

func (failingSyllabus) Semesters(context.Context) ([]domain.Semester, error) { return nil, errBoom }
func (failingSyllabus) Semester(context.Context, int) (*domain.Semester, error) {
	return nil, errBoom
}
func (failingSyllabus) Subject(context.Context, int, string) (*domain.Subject, error) {
	return nil, errBoom
}
func (failingSyllabus) UpdateSubject(context.Context, int, string, domain.SubjectUpdate) error {
	return errBoom
}
func (failingSyllabus) AddUnit(context.Context, int, string, domain.Unit) error { return errBoom }
func (failingSyllabus) UpdateUnit(context.Context, int, string, int, domain.Unit) error {
	return errBoom
}
func (failingSyllabus) DeleteUnit(context.Context, int, string, int) error { return errBoom }

type testEnv struct {
	server *Server
	ports  *Ports
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()
	ctx := context.Background()

	syllabus, err := services.NewSyllabusService(ctx, memory.NewSyllabusRepository(nil), nil, nil)
	require.NoError(t, err)
	notes, err := services.NewNotesService(ctx, memory.NewNoteRepository(), nil, nil)
	require.NoError(t, err)
	pdfs, err := services.NewPDFService(ctx, memory.NewPDFRepository(), nil, nil)
	require.NoError(t, err)

	ports := &Ports{Syllabus: syllabus, Notes: notes, PDFs: pdfs}
	server, err := NewServer(ports)
	require.NoError(t, err)
	return testEnv{server: server, ports: ports}
}

func (e testEnv) addNote(t *testing.T, title, content, code string, sem int) *domain.Note {
	t.Helper()
	note, err := e.ports.Notes.AddNote(context.Background(), domain.NoteInput{
		Title: title, Content: content, SubjectCode: code, SemesterID: sem,
	})
	require.NoError(t, err)
	return note
}

// Helper to create a ReadResourceRequest with the given URI.
func makeReadResourceRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{
			URI: uri,
		},
	}
}

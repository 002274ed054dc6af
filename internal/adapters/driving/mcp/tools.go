package mcp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/custodia-labs/syllabus-cli/internal/core/coordinator"
	"github.com/custodia-labs/syllabus-cli/internal/core/domain"
)

// SubjectKey identifies a subject within a semester.
type SubjectKey struct {
	SubjectCode string `json:"subject_code" jsonschema:"subject code, e.g. BIO501"`
	SemesterID  int    `json:"semester_id" jsonschema:"semester number the subject belongs to"`
}

// ListSubjectsInput is the input schema for the list_subjects tool.
type ListSubjectsInput struct {
	SemesterID int `json:"semester_id,omitempty" jsonschema:"limit to one semester (default all)"`
}

// SubjectOutput is one subject with its attachment counts.
type SubjectOutput struct {
	SemesterID int      `json:"semester_id"`
	Code       string   `json:"code"`
	Name       string   `json:"name"`
	Credits    int      `json:"credits"`
	Units      []string `json:"units"`
	NoteCount  int      `json:"note_count"`
	PDFCount   int      `json:"pdf_count"`
}

// ListSubjectsOutput is the output schema for the list_subjects tool.
type ListSubjectsOutput struct {
	Subjects []SubjectOutput `json:"subjects"`
	Count    int             `json:"count"`
}

// AddNoteInput is the input schema for the add_note tool.
type AddNoteInput struct {
	SubjectCode string `json:"subject_code" jsonschema:"subject code, e.g. BIO501"`
	SemesterID  int    `json:"semester_id" jsonschema:"semester number the subject belongs to"`
	Title       string `json:"title" jsonschema:"note title"`
	Content     string `json:"content,omitempty" jsonschema:"note body"`
}

// SearchNotesInput is the input schema for the search_notes tool.
type SearchNotesInput struct {
	Query string `json:"query" jsonschema:"text to find in note titles and content, case-insensitive"`
}

// NoteOutput is a note with RFC 3339 timestamps.
type NoteOutput struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	SubjectCode string `json:"subject_code"`
	SemesterID  int    `json:"semester_id"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// NotesOutput is the output schema for the note tools.
type NotesOutput struct {
	Notes []NoteOutput `json:"notes"`
	Count int          `json:"count"`
}

// PDFOutput is one PDF reference.
type PDFOutput struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Location    string `json:"location"`
	Description string `json:"description,omitempty"`
	SubjectCode string `json:"subject_code"`
	SemesterID  int    `json:"semester_id"`
}

// PDFsOutput is the output schema for the list_pdfs tool.
type PDFsOutput struct {
	PDFs  []PDFOutput `json:"pdfs"`
	Count int         `json:"count"`
}

func toNotesOutput(notes []domain.Note) NotesOutput {
	out := NotesOutput{Notes: make([]NoteOutput, len(notes)), Count: len(notes)}
	for i := range notes {
		out.Notes[i] = NoteOutput{
			ID:          notes[i].ID,
			Title:       notes[i].Title,
			Content:     notes[i].Content,
			SubjectCode: notes[i].SubjectCode,
			SemesterID:  notes[i].SemesterID,
			CreatedAt:   notes[i].CreatedAt.Format(time.RFC3339),
			UpdatedAt:   notes[i].UpdatedAt.Format(time.RFC3339),
		}
	}
	return out
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_subjects",
		Description: "List subjects with credits, units and note/PDF counts",
	}, s.handleListSubjects)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_notes",
		Description: "List the notes of a subject in creation order",
	}, s.handleListNotes)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "add_note",
		Description: "Attach a new note to a subject",
	}, s.handleAddNote)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_notes",
		Description: "Search all notes by title and content",
	}, s.handleSearchNotes)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_pdfs",
		Description: "List the PDF references (paths or URLs) of a subject",
	}, s.handleListPDFs)
}

func (s *Server) handleListSubjects(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListSubjectsInput,
) (*mcp.CallToolResult, ListSubjectsOutput, error) {
	var semesters []domain.Semester
	if input.SemesterID > 0 {
		sem, err := s.ports.Syllabus.Semester(ctx, input.SemesterID)
		if err != nil {
			return nil, ListSubjectsOutput{}, err
		}
		semesters = []domain.Semester{*sem}
	} else {
		all, err := s.ports.Syllabus.Semesters(ctx)
		if err != nil {
			return nil, ListSubjectsOutput{}, err
		}
		semesters = all
	}

	output := ListSubjectsOutput{Subjects: []SubjectOutput{}}
	for i := range semesters {
		rows, err := coordinator.RowsFor(ctx, &semesters[i], s.ports.Notes, s.ports.PDFs)
		if err != nil {
			return nil, ListSubjectsOutput{}, err
		}
		for _, r := range rows {
			units := make([]string, len(r.Subject.Units))
			for j, u := range r.Subject.Units {
				units[j] = u.Title
			}
			output.Subjects = append(output.Subjects, SubjectOutput{
				SemesterID: r.SemesterID,
				Code:       r.Subject.Code,
				Name:       r.Subject.Name,
				Credits:    r.Subject.Credits,
				Units:      units,
				NoteCount:  r.NoteCount,
				PDFCount:   r.PDFCount,
			})
		}
	}
	output.Count = len(output.Subjects)
	return nil, output, nil
}

func (s *Server) handleListNotes(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SubjectKey,
) (*mcp.CallToolResult, NotesOutput, error) {
	if err := s.requireSubject(ctx, input); err != nil {
		return nil, NotesOutput{}, err
	}
	notes, err := s.ports.Notes.NotesForSubject(ctx, input.SubjectCode, input.SemesterID)
	if err != nil {
		return nil, NotesOutput{}, err
	}
	return nil, toNotesOutput(notes), nil
}

func (s *Server) handleAddNote(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AddNoteInput,
) (*mcp.CallToolResult, NotesOutput, error) {
	if err := s.requireSubject(ctx, SubjectKey{SubjectCode: input.SubjectCode, SemesterID: input.SemesterID}); err != nil {
		return nil, NotesOutput{}, err
	}
	note, err := s.ports.Notes.AddNote(ctx, domain.NoteInput{
		Title:       input.Title,
		Content:     input.Content,
		SubjectCode: input.SubjectCode,
		SemesterID:  input.SemesterID,
	})
	if err != nil {
		return nil, NotesOutput{}, err
	}
	s.logger.Debug("note added over mcp", zap.String("id", note.ID), zap.String("subject", note.SubjectCode))
	return nil, toNotesOutput([]domain.Note{*note}), nil
}

func (s *Server) handleSearchNotes(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchNotesInput,
) (*mcp.CallToolResult, NotesOutput, error) {
	if strings.TrimSpace(input.Query) == "" {
		return nil, NotesOutput{}, fmt.Errorf("%w: query is required", domain.ErrInvalidInput)
	}
	notes, err := s.ports.Notes.SearchNotes(ctx, input.Query)
	if err != nil {
		return nil, NotesOutput{}, err
	}
	return nil, toNotesOutput(notes), nil
}

func (s *Server) handleListPDFs(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SubjectKey,
) (*mcp.CallToolResult, PDFsOutput, error) {
	if err := s.requireSubject(ctx, input); err != nil {
		return nil, PDFsOutput{}, err
	}
	pdfs, err := s.ports.PDFs.PDFsForSubject(ctx, input.SubjectCode, input.SemesterID)
	if err != nil {
		return nil, PDFsOutput{}, err
	}
	out := PDFsOutput{PDFs: make([]PDFOutput, len(pdfs)), Count: len(pdfs)}
	for i := range pdfs {
		out.PDFs[i] = PDFOutput{
			ID:          pdfs[i].ID,
			Name:        pdfs[i].Name,
			Location:    pdfs[i].Location,
			Description: pdfs[i].Description,
			SubjectCode: pdfs[i].SubjectCode,
			SemesterID:  pdfs[i].SemesterID,
		}
	}
	return nil, out, nil
}

// requireSubject rejects keys that do not name a subject, since the stores
// accept any key.
func (s *Server) requireSubject(ctx context.Context, key SubjectKey) error {
	if _, err := s.ports.Syllabus.Subject(ctx, key.SemesterID, key.SubjectCode); err != nil {
		return fmt.Errorf("subject %s in semester %d: %w", key.SubjectCode, key.SemesterID, err)
	}
	return nil
}

package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/syllabus-cli/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for syllabus resources.
	uriScheme = "syllabus://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "semesters",
		Name:        "semesters",
		Description: "Semesters of the program with credits and subject codes",
		MIMEType:    "application/json",
	}, s.handleSemestersResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "semesters/{semesterId}/subjects/{code}/notes",
		Name:        "subject-notes",
		Description: "Notes attached to a subject",
		MIMEType:    "application/json",
	}, s.handleSubjectNotesResource)
}

// handleSemestersResource returns every semester in display order.
func (s *Server) handleSemestersResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	semesters, err := s.ports.Syllabus.Semesters(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing semesters: %w", err)
	}

	type semesterInfo struct {
		ID           int      `json:"id"`
		Name         string   `json:"name"`
		TotalCredits string   `json:"total_credits"`
		Subjects     []string `json:"subjects"`
	}

	infos := make([]semesterInfo, len(semesters))
	for i, sem := range semesters {
		codes := make([]string, len(sem.Subjects))
		for j, subj := range sem.Subjects {
			codes[j] = subj.Code
		}
		infos[i] = semesterInfo{
			ID:           sem.ID,
			Name:         sem.Name,
			TotalCredits: sem.TotalCredits,
			Subjects:     codes,
		}
	}

	return jsonResult(req.Params.URI, infos)
}

// handleSubjectNotesResource returns the notes of one subject.
func (s *Server) handleSubjectNotesResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	semesterID, code, ok := extractSubjectKey(req.Params.URI)
	if !ok {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	if _, err := s.ports.Syllabus.Subject(ctx, semesterID, code); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, mcp.ResourceNotFoundError(req.Params.URI)
		}
		return nil, fmt.Errorf("looking up subject: %w", err)
	}

	notes, err := s.ports.Notes.NotesForSubject(ctx, code, semesterID)
	if err != nil {
		return nil, fmt.Errorf("listing notes: %w", err)
	}

	return jsonResult(req.Params.URI, notes)
}

func jsonResult(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractSubjectKey parses syllabus://semesters/{id}/subjects/{code}/notes.
func extractSubjectKey(uri string) (int, string, bool) {
	const prefix = uriScheme + "semesters/"
	const suffix = "/notes"

	if !strings.HasPrefix(uri, prefix) || !strings.HasSuffix(uri, suffix) {
		return 0, "", false
	}

	rest := strings.TrimSuffix(strings.TrimPrefix(uri, prefix), suffix)
	idPart, code, found := strings.Cut(rest, "/subjects/")
	if !found || code == "" || strings.Contains(code, "/") {
		return 0, "", false
	}

	id, err := strconv.Atoi(idPart)
	if err != nil || id <= 0 {
		return 0, "", false
	}

	return id, code, true
}

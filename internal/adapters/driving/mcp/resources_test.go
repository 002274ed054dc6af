package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/syllabus-cli/internal/core/domain"
)

func TestExtractSubjectKey(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		wantID   int
		wantCode string
		wantOK   bool
	}{
		{"valid", "syllabus://semesters/1/subjects/BIO501/notes", 1, "BIO501", true},
		{"multi digit", "syllabus://semesters/12/subjects/X1/notes", 12, "X1", true},
		{"wrong scheme", "http://semesters/1/subjects/BIO501/notes", 0, "", false},
		{"missing suffix", "syllabus://semesters/1/subjects/BIO501", 0, "", false},
		{"non numeric id", "syllabus://semesters/one/subjects/BIO501/notes", 0, "", false},
		{"zero id", "syllabus://semesters/0/subjects/BIO501/notes", 0, "", false},
		{"empty code", "syllabus://semesters/1/subjects//notes", 0, "", false},
		{"nested code", "syllabus://semesters/1/subjects/a/b/notes", 0, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, code, ok := extractSubjectKey(tt.uri)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
			assert.Equal(t, tt.wantCode, code)
		})
	}
}

func TestServer_handleSemestersResource(t *testing.T) {
	ctx := context.Background()

	t.Run("lists semesters in order", func(t *testing.T) {
		env := newTestEnv(t)

		result, err := env.server.handleSemestersResource(ctx, makeReadResourceRequest("syllabus://semesters"))
		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "application/json", result.Contents[0].MIMEType)

		var got []struct {
			ID           int      `json:"id"`
			Name         string   `json:"name"`
			TotalCredits string   `json:"total_credits"`
			Subjects     []string `json:"subjects"`
		}
		require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &got))
		require.Len(t, got, 4)
		assert.Equal(t, 1, got[0].ID)
		assert.Equal(t, "Semester I", got[0].Name)
		assert.Equal(t, "20 Credits", got[0].TotalCredits)
		assert.Equal(t, "BIO501", got[0].Subjects[0])
		assert.Empty(t, got[3].Subjects)
	})

	t.Run("store error", func(t *testing.T) {
		env := newTestEnv(t)
		env.server.ports.Syllabus = failingSyllabus{}

		_, err := env.server.handleSemestersResource(ctx, makeReadResourceRequest("syllabus://semesters"))
		assert.ErrorIs(t, err, errBoom)
	})
}

func TestServer_handleSubjectNotesResource(t *testing.T) {
	ctx := context.Background()

	t.Run("returns notes", func(t *testing.T) {
		env := newTestEnv(t)
		env.addNote(t, "Week 1", "intro", "BIO501", 1)

		uri := "syllabus://semesters/1/subjects/BIO501/notes"
		result, err := env.server.handleSubjectNotesResource(ctx, makeReadResourceRequest(uri))
		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, uri, result.Contents[0].URI)

		var notes []domain.Note
		require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &notes))
		require.Len(t, notes, 1)
		assert.Equal(t, "Week 1", notes[0].Title)
	})

	t.Run("malformed uri is not found", func(t *testing.T) {
		env := newTestEnv(t)

		_, err := env.server.handleSubjectNotesResource(ctx, makeReadResourceRequest("syllabus://semesters/x"))
		assert.Error(t, err)
	})

	t.Run("unknown subject is not found", func(t *testing.T) {
		env := newTestEnv(t)

		_, err := env.server.handleSubjectNotesResource(ctx,
			makeReadResourceRequest("syllabus://semesters/4/subjects/BIO501/notes"))
		require.Error(t, err)
		assert.NotErrorIs(t, err, errBoom)
	})
}

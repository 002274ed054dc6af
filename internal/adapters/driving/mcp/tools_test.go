package mcp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/syllabus-cli/internal/core/domain"
)

func TestServer_handleListSubjects(t *testing.T) {
	ctx := context.Background()

	t.Run("one semester with counts", func(t *testing.T) {
		env := newTestEnv(t)
		env.addNote(t, "Week 1", "", "BIO501", 1)
		env.addNote(t, "Week 2", "", "BIO501", 1)

		_, out, err := env.server.handleListSubjects(ctx, nil, ListSubjectsInput{SemesterID: 1})
		require.NoError(t, err)
		require.Equal(t, 5, out.Count)

		first := out.Subjects[0]
		assert.Equal(t, "BIO501", first.Code)
		assert.Equal(t, 4, first.Credits)
		assert.Equal(t, 2, first.NoteCount)
		assert.Equal(t, 0, first.PDFCount)
		assert.Equal(t, []string{"Introduction to Bioinformatics", "Sequence Databases", "Pairwise Alignment"}, first.Units)
	})

	t.Run("all semesters", func(t *testing.T) {
		env := newTestEnv(t)

		_, out, err := env.server.handleListSubjects(ctx, nil, ListSubjectsInput{})
		require.NoError(t, err)
		assert.Equal(t, 14, out.Count)
		assert.Equal(t, 3, out.Subjects[len(out.Subjects)-1].SemesterID)
	})

	t.Run("empty semester returns empty list", func(t *testing.T) {
		env := newTestEnv(t)

		_, out, err := env.server.handleListSubjects(ctx, nil, ListSubjectsInput{SemesterID: 4})
		require.NoError(t, err)
		assert.Equal(t, 0, out.Count)
		assert.NotNil(t, out.Subjects)
	})

	t.Run("unknown semester", func(t *testing.T) {
		env := newTestEnv(t)

		_, _, err := env.server.handleListSubjects(ctx, nil, ListSubjectsInput{SemesterID: 9})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("store error propagates", func(t *testing.T) {
		env := newTestEnv(t)
		env.server.ports.Syllabus = failingSyllabus{}

		_, _, err := env.server.handleListSubjects(ctx, nil, ListSubjectsInput{})
		assert.ErrorIs(t, err, errBoom)
	})
}

func TestServer_handleListNotes(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.addNote(t, "First", "", "BIO501", 1)
	env.addNote(t, "Other semester", "", "BIO501", 2)
	env.addNote(t, "Second", "", "BIO501", 1)

	_, out, err := env.server.handleListNotes(ctx, nil, SubjectKey{SubjectCode: "BIO501", SemesterID: 1})
	require.NoError(t, err)
	require.Equal(t, 2, out.Count)
	assert.Equal(t, "First", out.Notes[0].Title)
	assert.Equal(t, "Second", out.Notes[1].Title)

	_, _, err = env.server.handleListNotes(ctx, nil, SubjectKey{SubjectCode: "NOPE", SemesterID: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestServer_handleAddNote(t *testing.T) {
	ctx := context.Background()

	t.Run("adds to an existing subject", func(t *testing.T) {
		env := newTestEnv(t)

		_, out, err := env.server.handleAddNote(ctx, nil, AddNoteInput{
			SubjectCode: "BIO502",
			SemesterID:  1,
			Title:       "Recap",
			Content:     "BLAST basics",
		})
		require.NoError(t, err)
		require.Equal(t, 1, out.Count)
		assert.NotEmpty(t, out.Notes[0].ID)

		notes, err := env.ports.Notes.NotesForSubject(ctx, "BIO502", 1)
		require.NoError(t, err)
		assert.Len(t, notes, 1)
	})

	t.Run("unknown subject is rejected", func(t *testing.T) {
		env := newTestEnv(t)

		_, _, err := env.server.handleAddNote(ctx, nil, AddNoteInput{
			SubjectCode: "BIO501",
			SemesterID:  2,
			Title:       "Wrong semester",
		})
		assert.ErrorIs(t, err, domain.ErrNotFound)

		all, err := env.ports.Notes.AllNotes(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
	})

	t.Run("empty title is invalid", func(t *testing.T) {
		env := newTestEnv(t)

		_, _, err := env.server.handleAddNote(ctx, nil, AddNoteInput{
			SubjectCode: "BIO501",
			SemesterID:  1,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestServer_handleSearchNotes(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.addNote(t, "Alignment", "Needleman-Wunsch", "BIO501", 1)
	env.addNote(t, "Databases", "GenBank and UniProt", "BIO501", 1)

	_, out, err := env.server.handleSearchNotes(ctx, nil, SearchNotesInput{Query: "needleman"})
	require.NoError(t, err)
	require.Equal(t, 1, out.Count)
	assert.Equal(t, "Alignment", out.Notes[0].Title)

	_, _, err = env.server.handleSearchNotes(ctx, nil, SearchNotesInput{Query: "  "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestServer_handleListPDFs(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	_, err := env.ports.PDFs.AddPDF(ctx, domain.PDFInput{
		Name: "Lecture 1", Location: "https://example.org/l1.pdf", SubjectCode: "BIO551", SemesterID: 2,
	})
	require.NoError(t, err)

	_, out, err := env.server.handleListPDFs(ctx, nil, SubjectKey{SubjectCode: "BIO551", SemesterID: 2})
	require.NoError(t, err)
	require.Equal(t, 1, out.Count)
	assert.Equal(t, "Lecture 1", out.PDFs[0].Name)

	_, out, err = env.server.handleListPDFs(ctx, nil, SubjectKey{SubjectCode: "BIO552", SemesterID: 2})
	require.NoError(t, err)
	assert.Equal(t, 0, out.Count)
}

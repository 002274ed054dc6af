package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/syllabus-cli/internal/core/domain"
)

func TestSemestersCmd_ListsAllAndMarksCurrent(t *testing.T) {
	fx := setupTestServices(t)
	require.NoError(t, fx.settings.SetSemester(2))

	out, err := execute(t, "semesters")
	require.NoError(t, err)
	assert.Contains(t, out, "  1  Semester I")
	assert.Contains(t, out, "* 2  Semester II")
	assert.Contains(t, out, "20 Credits")
	assert.Contains(t, out, "5 subjects")
	assert.Contains(t, out, "0 subjects")
}

func TestSubjectsCmd_DefaultSemester(t *testing.T) {
	fx := setupTestServices(t)
	_, err := fx.notes.AddNote(context.Background(), domain.NoteInput{
		Title: "Week 1", SubjectCode: "BIO501", SemesterID: 1,
	})
	require.NoError(t, err)

	out, err := execute(t, "subjects")
	require.NoError(t, err)
	assert.Contains(t, out, "Semester I (20 Credits)")
	assert.Contains(t, out, "BIO501")
	assert.Contains(t, out, "Bioinformatics I")
	assert.Contains(t, out, "3 units, 1 note, 0 PDFs")
}

func TestSubjectsCmd_SemesterFlag(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "subjects", "--semester", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "BIO551")
	assert.NotContains(t, out, "BIO501")
}

func TestSubjectsCmd_EmptySemester(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "subjects", "-s", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "No subjects available")
}

func TestSubjectsCmd_UnknownSemester(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, "subjects", "-s", "9")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

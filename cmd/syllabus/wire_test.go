package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/syllabus-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/syllabus-cli/internal/core/domain"
)

func TestDataDir(t *testing.T) {
	assert.Equal(t, "/data", dataDir("/cfg", domain.StorageSettings{DataDir: "/data"}))
	assert.Equal(t, filepath.Join("/cfg", "data"), dataDir("/cfg", domain.StorageSettings{}))
	assert.Equal(t, "", dataDir("", domain.StorageSettings{}))
}

func TestOpenRepositories_UnknownBackend(t *testing.T) {
	_, err := openRepositories(domain.StorageSettings{Backend: "postgres"}, t.TempDir())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestBootstrap_MemoryBackend(t *testing.T) {
	dir := t.TempDir()
	config := "[storage]\nbackend = \"memory\"\n\n[ui]\ntheme = \"dark\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(config), 0600))

	svc, cleanup, err := bootstrap(context.Background(), cli.Options{ConfigDir: dir})
	require.NoError(t, err)
	defer func() { assert.NoError(t, cleanup()) }()

	semesters, err := svc.Syllabus.Semesters(context.Background())
	require.NoError(t, err)
	assert.Len(t, semesters, 4)

	settings, err := svc.Settings.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeDark, settings.UI.Theme)

	_, err = os.Stat(filepath.Join(dir, "data"))
	assert.True(t, os.IsNotExist(err))
}

func TestBootstrap_SQLitePersists(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	svc, cleanup, err := bootstrap(ctx, cli.Options{ConfigDir: dir})
	require.NoError(t, err)
	note, err := svc.Notes.AddNote(ctx, domain.NoteInput{Title: "Kept", SubjectCode: "BIO501", SemesterID: 1})
	require.NoError(t, err)
	require.NoError(t, svc.Syllabus.AddUnit(ctx, 1, "BIO501", domain.Unit{Title: "Extra"}))
	require.NoError(t, cleanup())

	svc, cleanup, err = bootstrap(ctx, cli.Options{ConfigDir: dir})
	require.NoError(t, err)
	defer func() { assert.NoError(t, cleanup()) }()

	got, err := svc.Notes.Note(ctx, note.ID)
	require.NoError(t, err)
	assert.Equal(t, "Kept", got.Title)

	subj, err := svc.Syllabus.Subject(ctx, 1, "BIO501")
	require.NoError(t, err)
	assert.Len(t, subj.Units, 4)
	assert.FileExists(t, filepath.Join(dir, "data", "syllabus.db"))
}

func TestBootstrap_SharedDataDirKeepsEveryWriter(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	agent, cleanupAgent, err := bootstrap(ctx, cli.Options{ConfigDir: dir})
	require.NoError(t, err)
	defer func() { assert.NoError(t, cleanupAgent()) }()
	tui, cleanupTUI, err := bootstrap(ctx, cli.Options{ConfigDir: dir})
	require.NoError(t, err)
	defer func() { assert.NoError(t, cleanupTUI()) }()

	_, err = agent.Notes.AddNote(ctx, domain.NoteInput{Title: "from agent", SubjectCode: "BIO501", SemesterID: 1})
	require.NoError(t, err)
	_, err = tui.Notes.AddNote(ctx, domain.NoteInput{Title: "from tui", SubjectCode: "BIO501", SemesterID: 1})
	require.NoError(t, err)

	_, err = agent.PDFs.AddPDF(ctx, domain.PDFInput{Name: "a", Location: "/a.pdf", SubjectCode: "BIO501", SemesterID: 1})
	require.NoError(t, err)
	_, err = tui.PDFs.AddPDF(ctx, domain.PDFInput{Name: "b", Location: "/b.pdf", SubjectCode: "BIO501", SemesterID: 1})
	require.NoError(t, err)

	require.NoError(t, agent.Syllabus.AddUnit(ctx, 1, "BIO501", domain.Unit{Title: "Agent unit"}))
	require.NoError(t, tui.Syllabus.AddUnit(ctx, 1, "BIO501", domain.Unit{Title: "TUI unit"}))

	reader, cleanupReader, err := bootstrap(ctx, cli.Options{ConfigDir: dir})
	require.NoError(t, err)
	defer func() { assert.NoError(t, cleanupReader()) }()

	notes, err := reader.Notes.NotesForSubject(ctx, "BIO501", 1)
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, "from agent", notes[0].Title)
	assert.Equal(t, "from tui", notes[1].Title)

	pdfs, err := reader.PDFs.PDFsForSubject(ctx, "BIO501", 1)
	require.NoError(t, err)
	assert.Len(t, pdfs, 2)

	subj, err := reader.Syllabus.Subject(ctx, 1, "BIO501")
	require.NoError(t, err)
	require.Len(t, subj.Units, 5)
	assert.Equal(t, "Agent unit", subj.Units[3].Title)
	assert.Equal(t, "TUI unit", subj.Units[4].Title)
}

func TestBootstrap_WatchConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[storage]\nbackend = \"memory\"\n"), 0600))

	svc, cleanup, err := bootstrap(context.Background(), cli.Options{ConfigDir: dir})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	changes, err := svc.WatchConfig(ctx)
	require.NoError(t, err)
	require.NotNil(t, changes)

	cancel()
	assert.NoError(t, cleanup())
}

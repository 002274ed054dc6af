package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/syllabus-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/syllabus-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/syllabus-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/syllabus-cli/internal/core/coordinator"
	"github.com/custodia-labs/syllabus-cli/internal/core/domain"
	"github.com/custodia-labs/syllabus-cli/internal/core/services"
)

type harness struct {
	app    *App
	coord  *coordinator.Coordinator
	notes  *services.NotesService
	config *memory.ConfigStore
}

func newHarness(t *testing.T, config map[string]any) harness {
	t.Helper()
	ctx := context.Background()

	syllabus, err := services.NewSyllabusService(ctx, memory.NewSyllabusRepository(nil), nil, nil)
	require.NoError(t, err)
	notes, err := services.NewNotesService(ctx, memory.NewNoteRepository(), nil, nil)
	require.NoError(t, err)
	pdfs, err := services.NewPDFService(ctx, memory.NewPDFRepository(), nil, nil)
	require.NoError(t, err)
	store := memory.NewConfigStoreWith(config)
	settingsSvc := services.NewSettingsService(store)

	coord, err := coordinator.New(ctx, syllabus, notes, pdfs, settingsSvc, nil)
	require.NoError(t, err)

	app, err := NewApp(ctx, &Ports{Coordinator: coord, Settings: settingsSvc})
	require.NoError(t, err)
	app.SetDimensions(100, 30)

	return harness{app: app, coord: coord, notes: notes, config: store}
}

// press sends a key and runs every resulting command to completion.
func (h harness) press(keys ...tea.KeyMsg) {
	for _, k := range keys {
		_, cmd := h.app.Update(k)
		h.drain(cmd)
	}
}

func (h harness) drain(cmd tea.Cmd) {
	for cmd != nil {
		msg := cmd()
		if msg == nil {
			return
		}
		if _, ok := msg.(tea.BatchMsg); ok {
			return
		}
		_, cmd = h.app.Update(msg)
	}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
	down  = tea.KeyMsg{Type: tea.KeyDown}
	save  = tea.KeyMsg{Type: tea.KeyCtrlS}
)

func TestNewApp_InvalidPorts(t *testing.T) {
	app, err := NewApp(context.Background(), &Ports{})
	assert.ErrorIs(t, err, ErrMissingCoordinator)
	assert.Nil(t, app)

	app, err = NewApp(context.Background(), nil)
	assert.ErrorIs(t, err, ErrMissingCoordinator)
	assert.Nil(t, app)
}

func TestPorts_ConfigChangesNeedSettings(t *testing.T) {
	h := newHarness(t, nil)
	ch := make(chan struct{})
	p := &Ports{Coordinator: h.coord, ConfigChanges: ch}
	assert.ErrorIs(t, p.Validate(), ErrMissingSettingsService)
}

func TestApp_InitAndReady(t *testing.T) {
	h := newHarness(t, nil)
	assert.NotNil(t, h.app.Init())
	assert.True(t, h.app.Ready())

	_, cmd := h.app.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Nil(t, cmd)
}

func TestApp_View_NotReady(t *testing.T) {
	h := newHarness(t, nil)
	h.app.ready = false
	assert.Equal(t, "Initialising...", h.app.View())
}

func TestApp_IdleView(t *testing.T) {
	h := newHarness(t, nil)
	view := h.app.View()

	assert.Contains(t, view, "Bioinformatics")
	assert.Contains(t, view, "M.Sc. Bioinformatics Program")
	assert.Contains(t, view, "BIO501")
	assert.Equal(t, coordinator.ModeIdle, h.app.State().Mode())
}

func TestApp_ReadSubjectAndClose(t *testing.T) {
	h := newHarness(t, nil)

	h.press(enter)
	assert.Equal(t, coordinator.ModeReadingSubject, h.app.State().Mode())
	assert.Contains(t, h.app.View(), "Pairwise Alignment")

	h.press(esc)
	assert.Equal(t, coordinator.ModeIdle, h.app.State().Mode())
}

func TestApp_AddUnitFromReader(t *testing.T) {
	h := newHarness(t, nil)

	h.press(enter, runes("a"), runes("Phylogenetics"), save)

	assert.Equal(t, status.StateInfo, h.app.Status().State())
	assert.Equal(t, "Unit added", h.app.Status().Message())
	units := h.app.State().Panel.Subject.Units
	require.Len(t, units, 4)
	assert.Equal(t, "Phylogenetics", units[3].Title)
}

func TestApp_QuitKeyIgnoredWhileTyping(t *testing.T) {
	h := newHarness(t, nil)

	h.press(enter, runes("a"))
	_, cmd := h.app.Update(runes("q"))
	if cmd != nil {
		_, isQuit := cmd().(tea.QuitMsg)
		assert.False(t, isQuit)
	}
	assert.Equal(t, coordinator.ModeReadingSubject, h.app.State().Mode())
}

func TestApp_NotesFlow(t *testing.T) {
	h := newHarness(t, nil)
	ctx := context.Background()
	note, err := h.notes.AddNote(ctx, domain.NoteInput{Title: "BLAST", Content: "e-values", SubjectCode: "BIO501", SemesterID: 1})
	require.NoError(t, err)
	require.NoError(t, h.app.sync())
	assert.Contains(t, h.app.View(), "1 note")

	h.press(runes("n"))
	assert.Equal(t, coordinator.ModeManagingNotes, h.app.State().Mode())

	h.press(enter)
	require.Equal(t, coordinator.ModeReadingNote, h.app.State().Mode())
	assert.Equal(t, note.ID, h.app.State().NoteReader.ID)
	assert.Contains(t, h.app.View(), "e-values")

	h.press(esc)
	assert.Equal(t, coordinator.ModeManagingNotes, h.app.State().Mode())

	h.press(esc)
	assert.Equal(t, coordinator.ModeIdle, h.app.State().Mode())
}

func TestApp_DeleteNoteFromReaderClosesIt(t *testing.T) {
	h := newHarness(t, nil)
	_, err := h.notes.AddNote(context.Background(), domain.NoteInput{Title: "Temp", SubjectCode: "BIO501", SemesterID: 1})
	require.NoError(t, err)
	require.NoError(t, h.app.sync())

	h.press(runes("n"), enter, runes("d"))

	assert.Equal(t, coordinator.ModeManagingNotes, h.app.State().Mode())
	assert.Contains(t, h.app.View(), "No notes yet")
}

func TestApp_ThemeToggleKeepsOverlay(t *testing.T) {
	h := newHarness(t, nil)

	h.press(runes("p"))
	require.Equal(t, coordinator.ModeManagingPDFs, h.app.State().Mode())

	h.press(runes("t"))
	assert.True(t, h.app.State().DarkMode)
	assert.True(t, h.app.styles.IsDark())
	assert.Equal(t, coordinator.ModeManagingPDFs, h.app.State().Mode())
	assert.Equal(t, "dark", h.config.GetString("ui.theme"))
}

func TestApp_FloatingMenu(t *testing.T) {
	h := newHarness(t, nil)

	h.press(runes("m"), down, enter)

	s := h.app.State()
	assert.Equal(t, coordinator.ModeManagingNotes, s.Mode())
	assert.Equal(t, "BIO501", s.Panel.Code)
	assert.Equal(t, "Bioinformatics I", s.Panel.Name)
	assert.False(t, h.app.menu.Expanded())
}

func TestApp_FloatingMenuOnEmptySemester(t *testing.T) {
	h := newHarness(t, map[string]any{"ui.semester": 4})
	assert.Contains(t, h.app.View(), "No subjects available")

	h.press(runes("m"), enter)

	assert.Equal(t, coordinator.ModeIdle, h.app.State().Mode())
	assert.False(t, h.app.menu.Expanded())
}

func TestApp_SemesterKeys(t *testing.T) {
	h := newHarness(t, nil)

	h.press(runes("]"))
	assert.Equal(t, 2, h.app.State().SelectedSemester)
	assert.Contains(t, h.app.View(), "BIO551")
	assert.Equal(t, 2, h.config.GetInt("ui.semester"))

	h.press(runes("["), runes("["))
	assert.Equal(t, 1, h.app.State().SelectedSemester)
}

func TestApp_SettingsPanel(t *testing.T) {
	h := newHarness(t, nil)

	h.press(runes("s"))
	assert.Contains(t, h.app.View(), "Settings")

	h.press(down, runes("t"))
	assert.Equal(t, 2, h.app.State().SelectedSemester)
	assert.True(t, h.app.State().DarkMode)

	h.press(esc)
	assert.False(t, h.app.settingsPanel.IsOpen())
}

func TestApp_RecoverableErrorOnStatusLine(t *testing.T) {
	h := newHarness(t, nil)

	h.app.Update(messages.Dispatch{Event: coordinator.ReadSubject{Code: "BIO501", SemesterID: 1}})
	h.app.Update(messages.OpenNote{ID: "missing"})

	assert.ErrorIs(t, h.app.Err(), domain.ErrNotFound)
	assert.Equal(t, status.StateError, h.app.Status().State())
	assert.Equal(t, coordinator.ModeReadingSubject, h.app.State().Mode())
}

func TestApp_ConfigChangedReapplies(t *testing.T) {
	h := newHarness(t, nil)
	ch := make(chan struct{}, 1)
	h.app.ports.ConfigChanges = ch

	require.NoError(t, h.config.Set("ui.theme", "dark"))
	require.NoError(t, h.config.Set("ui.semester", 3))
	_, cmd := h.app.Update(messages.ConfigChanged{})

	assert.NotNil(t, cmd, "keeps listening")
	assert.True(t, h.app.State().DarkMode)
	assert.Equal(t, 3, h.app.State().SelectedSemester)
}

func TestApp_QuitMessage(t *testing.T) {
	h := newHarness(t, nil)
	_, cmd := h.app.Update(messages.Quit{})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestApp_QuitKeyOnlyWhenIdle(t *testing.T) {
	h := newHarness(t, nil)
	_, cmd := h.app.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/custodia-labs/syllabus-cli/internal/adapters/driving/tui/components/fab"
	"github.com/custodia-labs/syllabus-cli/internal/adapters/driving/tui/components/settings"
	"github.com/custodia-labs/syllabus-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/syllabus-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/syllabus-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/syllabus-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/syllabus-cli/internal/adapters/driving/tui/views/notereader"
	"github.com/custodia-labs/syllabus-cli/internal/adapters/driving/tui/views/notes"
	"github.com/custodia-labs/syllabus-cli/internal/adapters/driving/tui/views/pdfs"
	"github.com/custodia-labs/syllabus-cli/internal/adapters/driving/tui/views/reader"
	"github.com/custodia-labs/syllabus-cli/internal/adapters/driving/tui/views/subjects"
	"github.com/custodia-labs/syllabus-cli/internal/core/coordinator"
	"github.com/custodia-labs/syllabus-cli/internal/core/domain"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports  *Ports
	coord  *coordinator.Coordinator
	ctx    context.Context
	logger *zap.Logger

	styles *styles.Styles
	keymap *keymap.KeyMap

	statusBar      *status.Bar
	menu           *fab.Menu
	settingsPanel  *settings.Panel
	subjectsView   *subjects.View
	readerView     *reader.View
	notesView      *notes.View
	noteReaderView *notereader.View
	pdfsView       *pdfs.View

	// state is the coordinator snapshot the views were last synced to.
	state coordinator.State

	// err holds the last error that occurred.
	err error

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ctx context.Context, ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	logger := ports.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	coord := ports.Coordinator
	state := coord.State()
	s := styles.ForTheme(state.Theme())
	km := keymap.DefaultKeyMap()

	a := &App{
		ports:          ports,
		coord:          coord,
		ctx:            ctx,
		logger:         logger,
		styles:         s,
		keymap:         km,
		statusBar:      status.NewBar(s, km),
		menu:           fab.New(s, km),
		settingsPanel:  settings.New(s, km),
		subjectsView:   subjects.NewView(s, km),
		readerView:     reader.NewView(ctx, s, km, coord),
		notesView:      notes.NewView(ctx, s, km, coord),
		noteReaderView: notereader.NewView(ctx, s, km, coord),
		pdfsView:       pdfs.NewView(ctx, s, km, coord),
		state:          state,
	}
	if err := a.sync(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}
	return a, nil
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("syllabus"),
		a.waitForConfig(),
	)
}

// waitForConfig turns the next config change signal into a message.
func (a *App) waitForConfig() tea.Cmd {
	ch := a.ports.ConfigChanges
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return messages.ConfigChanged{}
	}
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case messages.Dispatch:
		_, err := a.coord.Dispatch(a.ctx, msg.Event)
		a.report(err)
		a.report(a.sync())
		return a, nil

	case messages.OpenNote:
		_, err := a.coord.ReadNote(a.ctx, msg.ID)
		a.report(err)
		a.report(a.sync())
		return a, nil

	case messages.Mutated:
		if msg.Err != nil {
			a.report(msg.Err)
		} else if msg.Status != "" {
			a.statusBar.Info(msg.Status)
		}
		a.report(a.sync())
		return a, nil

	case messages.FormSubmitted, messages.FormCancelled:
		cmd := a.forward(msg)
		a.statusBar.SetMode(a.state.Mode(), a.editing())
		return a, cmd

	case messages.ConfigChanged:
		a.report(a.reload())
		return a, a.waitForConfig()

	case messages.ErrorOccurred:
		a.report(msg.Err)
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	return a, nil
}

// handleKeyMsg routes a key: forms first, then the settings panel, then the
// floating menu, then global keys, then the active view.
func (a *App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := msg.String()
	if k == "ctrl+c" {
		return a, tea.Quit
	}
	a.statusBar.Clear()

	if a.editing() {
		cmd := a.forward(msg)
		a.statusBar.SetMode(a.state.Mode(), a.editing())
		return a, cmd
	}

	var cmd tea.Cmd
	if a.settingsPanel.IsOpen() {
		a.settingsPanel, cmd = a.settingsPanel.Update(msg)
		return a, cmd
	}
	if a.menu.Expanded() {
		a.menu, cmd = a.menu.Update(msg)
		return a, cmd
	}

	switch {
	case keymap.Matches(k, a.keymap.Quit) && a.state.Mode() == coordinator.ModeIdle:
		return a, tea.Quit
	case keymap.Matches(k, a.keymap.Menu):
		a.menu.Toggle()
		return a, nil
	case keymap.Matches(k, a.keymap.Settings):
		a.settingsPanel.Open()
		return a, nil
	case keymap.Matches(k, a.keymap.Theme):
		return a, messages.Send(coordinator.ToggleTheme{})
	case keymap.Matches(k, a.keymap.PrevSemester), keymap.Matches(k, a.keymap.NextSemester):
		return a, a.stepSemester(k)
	}

	cmd = a.forward(msg)
	a.statusBar.SetMode(a.state.Mode(), a.editing())
	return a, cmd
}

func (a *App) stepSemester(k string) tea.Cmd {
	semesters, err := a.coord.Semesters(a.ctx)
	if err != nil {
		a.report(err)
		return nil
	}
	opts := make([]settings.Option, 0, len(semesters))
	for _, sem := range semesters {
		opts = append(opts, settings.Option{ID: sem.ID, Name: sem.Name})
	}
	delta := 1
	if keymap.Matches(k, a.keymap.PrevSemester) {
		delta = -1
	}
	id, ok := settings.Neighbour(opts, a.state.SelectedSemester, delta)
	if !ok {
		return nil
	}
	return messages.Send(coordinator.SelectSemester{ID: id})
}

// forward passes msg to the view of the current mode.
func (a *App) forward(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch a.state.Mode() {
	case coordinator.ModeIdle:
		a.subjectsView, cmd = a.subjectsView.Update(msg)
	case coordinator.ModeReadingSubject:
		a.readerView, cmd = a.readerView.Update(msg)
	case coordinator.ModeManagingNotes:
		a.notesView, cmd = a.notesView.Update(msg)
	case coordinator.ModeReadingNote:
		a.noteReaderView, cmd = a.noteReaderView.Update(msg)
	case coordinator.ModeManagingPDFs:
		a.pdfsView, cmd = a.pdfsView.Update(msg)
	}
	return cmd
}

// editing reports whether the active view has a form open.
func (a *App) editing() bool {
	switch a.state.Mode() {
	case coordinator.ModeReadingSubject:
		return a.readerView.Editing()
	case coordinator.ModeManagingNotes:
		return a.notesView.Editing()
	case coordinator.ModeReadingNote:
		return a.noteReaderView.Editing()
	case coordinator.ModeManagingPDFs:
		return a.pdfsView.Editing()
	case coordinator.ModeIdle:
	}
	return false
}

// report surfaces err on the status line. Nothing is fatal.
func (a *App) report(err error) {
	if err == nil {
		return
	}
	a.err = err
	if coordinator.IsRecoverable(err) {
		a.logger.Debug("recoverable error", zap.Error(err))
	} else {
		a.logger.Warn("operation failed", zap.Error(err))
	}
	a.statusBar.Fail(err)
}

// reload re-applies theme and semester after an external config edit.
func (a *App) reload() error {
	prefs, err := a.ports.Settings.Get()
	if err != nil {
		return err
	}
	if _, err := a.coord.Apply(a.ctx, prefs.UI); err != nil {
		return err
	}
	return a.sync()
}

// sync pulls the coordinator state and store contents into the views.
func (a *App) sync() error {
	state := a.coord.State()
	if state.DarkMode != a.styles.IsDark() {
		a.applyStyles(styles.ForTheme(state.Theme()))
	}

	var errs []error
	semesters, err := a.coord.Semesters(a.ctx)
	errs = append(errs, err)
	a.settingsPanel.SetSemesters(semesters)
	a.settingsPanel.Sync(state)

	sem, err := a.coord.CurrentSemester(a.ctx)
	if err != nil {
		a.subjectsView.SetSemester(nil, nil)
		if !errors.Is(err, domain.ErrNotFound) {
			errs = append(errs, err)
		}
	} else {
		rows, err := a.coord.Rows(a.ctx)
		errs = append(errs, err)
		a.subjectsView.SetSemester(sem, rows)
	}

	switch state.Panel.Kind {
	case coordinator.PanelReader:
		a.readerView.SetPanel(state.Panel)
	case coordinator.PanelNotes:
		list, err := a.coord.PanelNotes(a.ctx)
		errs = append(errs, err)
		a.notesView.SetNotes(state.Panel, list)
		a.noteReaderView.SetNote(state.NoteReader)
	case coordinator.PanelPDFs:
		list, err := a.coord.PanelPDFs(a.ctx)
		errs = append(errs, err)
		a.pdfsView.SetPDFs(state.Panel, list)
	case coordinator.PanelNone:
	}

	a.state = state
	a.statusBar.SetMode(state.Mode(), a.editing())
	return errors.Join(errs...)
}

func (a *App) applyStyles(s *styles.Styles) {
	a.styles = s
	a.statusBar.SetStyles(s)
	a.menu.SetStyles(s)
	a.settingsPanel.SetStyles(s)
	a.subjectsView.SetStyles(s)
	a.readerView.SetStyles(s)
	a.notesView.SetStyles(s)
	a.noteReaderView.SetStyles(s)
	a.pdfsView.SetStyles(s)
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	var body string
	switch a.state.Mode() {
	case coordinator.ModeReadingSubject:
		body = a.readerView.View()
	case coordinator.ModeManagingNotes:
		body = a.notesView.View()
	case coordinator.ModeReadingNote:
		body = a.noteReaderView.View()
	case coordinator.ModeManagingPDFs:
		body = a.pdfsView.View()
	case coordinator.ModeIdle:
		body = a.subjectsView.View()
	}
	if a.settingsPanel.IsOpen() {
		body = a.settingsPanel.View()
	}

	theme := a.styles.Theme()
	bodyHeight := max(a.height-lipgloss.Height(a.menu.View())-1, 1)
	screen := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.Place(a.width, bodyHeight, lipgloss.Left, lipgloss.Top, body,
			lipgloss.WithWhitespaceBackground(theme.Background)),
		lipgloss.PlaceHorizontal(a.width, lipgloss.Right, a.menu.View(),
			lipgloss.WithWhitespaceBackground(theme.Background)),
		a.statusBar.View(),
	)
	return screen
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// State returns the coordinator snapshot the views currently show.
func (a *App) State() coordinator.State {
	return a.state
}

// Status returns the status bar.
func (a *App) Status() *status.Bar {
	return a.statusBar
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has received its dimensions.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.statusBar.SetWidth(width)
	a.subjectsView.SetDimensions(width, height)
	a.readerView.SetDimensions(width, height)
	a.notesView.SetDimensions(width, height)
	a.noteReaderView.SetDimensions(width, height)
	a.pdfsView.SetDimensions(width, height)
}

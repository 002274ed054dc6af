// Package notes provides the notes manager for one subject.
package notes

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/syllabus-cli/internal/adapters/driving/tui/components/form"
	"github.com/custodia-labs/syllabus-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/syllabus-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/syllabus-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/syllabus-cli/internal/core/coordinator"
	"github.com/custodia-labs/syllabus-cli/internal/core/domain"
)

const (
	formAdd  = "note-add"
	formEdit = "note-edit"
)

// Editor is the subset of the coordinator the manager mutates through.
type Editor interface {
	AddNote(ctx context.Context, input domain.NoteInput) (*domain.Note, error)
	UpdateNote(ctx context.Context, id string, update domain.NoteUpdate) (*domain.Note, error)
	DeleteNote(ctx context.Context, id string) error
}

// View lists a subject's notes in creation order.
type View struct {
	ctx    context.Context
	editor Editor
	styles *styles.Styles
	keymap *keymap.KeyMap

	panel    coordinator.Panel
	notes    []domain.Note
	selected int
	form     *form.Form
	editID   string
	width    int
	height   int
}

// NewView creates a notes manager.
func NewView(ctx context.Context, s *styles.Styles, km *keymap.KeyMap, editor Editor) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	return &View{ctx: ctx, editor: editor, styles: s, keymap: km, width: 80, height: 24}
}

// SetNotes shows notes for the panel's subject.
func (v *View) SetNotes(p coordinator.Panel, notes []domain.Note) {
	if p.Code != v.panel.Code || p.SemesterID != v.panel.SemesterID {
		v.selected = 0
		v.form = nil
	}
	v.panel = p
	v.notes = notes
	if v.selected >= len(notes) {
		v.selected = max(len(notes)-1, 0)
	}
}

// SetStyles swaps the palette.
func (v *View) SetStyles(s *styles.Styles) {
	v.styles = s
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	if v.form != nil {
		v.form.SetWidth(width)
	}
}

// Editing reports whether a form has focus.
func (v *View) Editing() bool {
	return v.form != nil
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the manager.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case messages.FormSubmitted:
		return v, v.submit(msg)
	case messages.FormCancelled:
		v.form = nil
		return v, nil
	case tea.KeyMsg:
		if v.form != nil {
			var cmd tea.Cmd
			v.form, cmd = v.form.Update(msg)
			return v, cmd
		}
		return v.handleKeyMsg(msg)
	}
	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch k := msg.String(); {
	case keymap.Matches(k, v.keymap.Back):
		return v, messages.Send(coordinator.ClosePanel{})
	case keymap.Matches(k, v.keymap.Up):
		if v.selected > 0 {
			v.selected--
		}
	case keymap.Matches(k, v.keymap.Down):
		if v.selected < len(v.notes)-1 {
			v.selected++
		}
	case keymap.Matches(k, v.keymap.Select):
		if note, ok := v.current(); ok {
			id := note.ID
			return v, func() tea.Msg { return messages.OpenNote{ID: id} }
		}
	case keymap.Matches(k, v.keymap.Add):
		v.form = form.New(v.styles, formAdd, "New note for "+v.panel.Code,
			form.Field{Label: "Title"},
			form.Field{Label: "Content", Multiline: true})
		v.form.SetWidth(v.width)
		return v, v.form.Init()
	case keymap.Matches(k, v.keymap.Edit):
		if note, ok := v.current(); ok {
			v.editID = note.ID
			v.form = form.New(v.styles, formEdit, "Edit note",
				form.Field{Label: "Title", Value: note.Title},
				form.Field{Label: "Content", Value: note.Content, Multiline: true})
			v.form.SetWidth(v.width)
			return v, v.form.Init()
		}
	case keymap.Matches(k, v.keymap.Delete):
		if note, ok := v.current(); ok {
			id := note.ID
			return v, messages.Mutate("Note deleted", func() error {
				return v.editor.DeleteNote(v.ctx, id)
			})
		}
	}
	return v, nil
}

func (v *View) current() (domain.Note, bool) {
	if v.selected < 0 || v.selected >= len(v.notes) {
		return domain.Note{}, false
	}
	return v.notes[v.selected], true
}

func (v *View) submit(msg messages.FormSubmitted) tea.Cmd {
	v.form = nil
	title, content := msg.Values[0], msg.Values[1]

	switch msg.ID {
	case formAdd:
		input := domain.NoteInput{
			Title: title, Content: content,
			SubjectCode: v.panel.Code, SemesterID: v.panel.SemesterID,
		}
		return messages.Mutate("Note saved", func() error {
			_, err := v.editor.AddNote(v.ctx, input)
			return err
		})
	case formEdit:
		id := v.editID
		return messages.Mutate("Note updated", func() error {
			_, err := v.editor.UpdateNote(v.ctx, id, domain.NoteUpdate{Title: &title, Content: &content})
			return err
		})
	}
	return nil
}

// View renders the manager.
func (v *View) View() string {
	if v.form != nil {
		return v.styles.Panel.Render(v.form.View())
	}

	var b strings.Builder
	b.WriteString(v.styles.Title.Render(fmt.Sprintf("Notes - %s", v.panel.Name)))
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render(fmt.Sprintf("%s (%d)", v.panel.Code, len(v.notes))))
	b.WriteString("\n\n")

	if len(v.notes) == 0 {
		b.WriteString(v.styles.Muted.Render("No notes yet. Press a to write one."))
		b.WriteString("\n")
		return v.styles.Panel.Render(b.String())
	}

	for i, n := range v.notes {
		if i == v.selected {
			b.WriteString(v.styles.Selected.Render("> " + n.Title))
		} else {
			b.WriteString(v.styles.Normal.Render("  " + n.Title))
		}
		b.WriteString(v.styles.Muted.Render("  " + n.UpdatedAt.Local().Format("2006-01-02")))
		b.WriteString("\n")
		if preview := firstLine(n.Content); preview != "" {
			b.WriteString(v.styles.Muted.Render("    " + truncate(preview, max(v.width-12, 20))))
			b.WriteString("\n")
		}
	}
	return v.styles.Panel.Render(b.String())
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

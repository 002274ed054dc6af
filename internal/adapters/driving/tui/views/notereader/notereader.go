// Package notereader shows a single note above the notes manager.
package notereader

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/syllabus-cli/internal/adapters/driving/tui/components/form"
	"github.com/custodia-labs/syllabus-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/syllabus-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/syllabus-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/syllabus-cli/internal/core/coordinator"
	"github.com/custodia-labs/syllabus-cli/internal/core/domain"
)

const formEdit = "note-reader-edit"

const timeLayout = "2006-01-02 15:04"

// Editor is the subset of the coordinator the reader mutates through.
type Editor interface {
	UpdateNote(ctx context.Context, id string, update domain.NoteUpdate) (*domain.Note, error)
	DeleteNote(ctx context.Context, id string) error
}

// View is the note reader.
type View struct {
	ctx    context.Context
	editor Editor
	styles *styles.Styles
	keymap *keymap.KeyMap

	note   *domain.Note
	form   *form.Form
	width  int
	height int
}

// NewView creates a note reader.
func NewView(ctx context.Context, s *styles.Styles, km *keymap.KeyMap, editor Editor) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	return &View{ctx: ctx, editor: editor, styles: s, keymap: km, width: 80, height: 24}
}

// SetNote shows n. A nil note clears the reader.
func (v *View) SetNote(n *domain.Note) {
	if n == nil || v.note == nil || n.ID != v.note.ID {
		v.form = nil
	}
	v.note = n
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

// Update handles messages for the reader.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case messages.FormSubmitted:
		v.form = nil
		if msg.ID != formEdit || v.note == nil {
			return v, nil
		}
		id, title, content := v.note.ID, msg.Values[0], msg.Values[1]
		return v, messages.Mutate("Note updated", func() error {
			_, err := v.editor.UpdateNote(v.ctx, id, domain.NoteUpdate{Title: &title, Content: &content})
			return err
		})
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
		return v, messages.Send(coordinator.CloseNoteReader{})
	case v.note == nil:
		return v, nil
	case keymap.Matches(k, v.keymap.Edit):
		v.form = form.New(v.styles, formEdit, "Edit note",
			form.Field{Label: "Title", Value: v.note.Title},
			form.Field{Label: "Content", Value: v.note.Content, Multiline: true})
		v.form.SetWidth(v.width)
		return v, v.form.Init()
	case keymap.Matches(k, v.keymap.Delete):
		id := v.note.ID
		return v, messages.Mutate("Note deleted", func() error {
			return v.editor.DeleteNote(v.ctx, id)
		})
	}
	return v, nil
}

// View renders the note.
func (v *View) View() string {
	if v.form != nil {
		return v.styles.Panel.Render(v.form.View())
	}
	if v.note == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(v.styles.Title.Render(v.note.Title))
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render(v.note.SubjectCode + "  ·  created " +
		v.note.CreatedAt.Local().Format(timeLayout) + "  ·  updated " +
		v.note.UpdatedAt.Local().Format(timeLayout)))
	b.WriteString("\n\n")
	if v.note.Content == "" {
		b.WriteString(v.styles.Muted.Render("(empty)"))
	} else {
		b.WriteString(v.styles.Normal.Width(max(v.width-8, 20)).Render(v.note.Content))
	}
	return v.styles.Panel.Render(b.String())
}

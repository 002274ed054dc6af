// Package reader provides the syllabus reader: a subject's units with
// inline editing, renaming, credit changes and quick note capture.
package reader

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/syllabus-cli/internal/adapters/driving/tui/components/form"
	"github.com/custodia-labs/syllabus-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/syllabus-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/syllabus-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/syllabus-cli/internal/core/coordinator"
	"github.com/custodia-labs/syllabus-cli/internal/core/domain"
)

// Form identifiers.
const (
	formAddUnit  = "unit-add"
	formEditUnit = "unit-edit"
	formRename   = "rename"
	formCredits  = "credits"
	formNote     = "note"
)

// Editor is the subset of the coordinator the reader mutates through.
type Editor interface {
	UpdateSubject(ctx context.Context, semesterID int, code string, update domain.SubjectUpdate) error
	AddUnit(ctx context.Context, semesterID int, code string, unit domain.Unit) error
	UpdateUnit(ctx context.Context, semesterID int, code string, index int, unit domain.Unit) error
	DeleteUnit(ctx context.Context, semesterID int, code string, index int) error
	AddNote(ctx context.Context, input domain.NoteInput) (*domain.Note, error)
}

// View is the syllabus reader.
type View struct {
	ctx    context.Context
	editor Editor
	styles *styles.Styles
	keymap *keymap.KeyMap

	panel    coordinator.Panel
	selected int
	form     *form.Form
	editing  int
	width    int
	height   int
}

// NewView creates a reader that mutates through editor.
func NewView(ctx context.Context, s *styles.Styles, km *keymap.KeyMap, editor Editor) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	return &View{ctx: ctx, editor: editor, styles: s, keymap: km, width: 80, height: 24}
}

// SetPanel shows the reader panel's subject snapshot.
func (v *View) SetPanel(p coordinator.Panel) {
	if p.Code != v.panel.Code || p.SemesterID != v.panel.SemesterID {
		v.selected = 0
		v.form = nil
	}
	v.panel = p
	if v.selected >= len(p.Subject.Units) {
		v.selected = max(len(p.Subject.Units)-1, 0)
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

// Selected returns the highlighted unit index.
func (v *View) Selected() int {
	return v.selected
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the reader.
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
	subj := v.panel.Subject
	units := subj.Units

	switch k := msg.String(); {
	case keymap.Matches(k, v.keymap.Back):
		return v, messages.Send(coordinator.ClosePanel{})
	case keymap.Matches(k, v.keymap.Up):
		if v.selected > 0 {
			v.selected--
		}
	case keymap.Matches(k, v.keymap.Down):
		if v.selected < len(units)-1 {
			v.selected++
		}
	case keymap.Matches(k, v.keymap.Add):
		return v, v.open(form.New(v.styles, formAddUnit, "Add unit",
			form.Field{Label: "Title"},
			form.Field{Label: "Content", Multiline: true}))
	case keymap.Matches(k, v.keymap.Edit):
		if v.selected < len(units) {
			v.editing = v.selected
			u := units[v.selected]
			return v, v.open(form.New(v.styles, formEditUnit, "Edit unit",
				form.Field{Label: "Title", Value: u.Title},
				form.Field{Label: "Content", Value: u.Content, Multiline: true}))
		}
	case keymap.Matches(k, v.keymap.Delete):
		if v.selected < len(units) {
			idx, sem, code := v.selected, v.panel.SemesterID, subj.Code
			return v, messages.Mutate("Unit deleted", func() error {
				return v.editor.DeleteUnit(v.ctx, sem, code, idx)
			})
		}
	case keymap.Matches(k, v.keymap.Rename):
		return v, v.open(form.New(v.styles, formRename, "Rename subject",
			form.Field{Label: "Name", Value: subj.Name}))
	case keymap.Matches(k, v.keymap.Credits):
		return v, v.open(form.New(v.styles, formCredits, "Credits",
			form.Field{Label: "Credits", Value: strconv.Itoa(subj.Credits)}))
	case keymap.Matches(k, v.keymap.NewNote):
		return v, v.open(form.New(v.styles, formNote, "New note for "+subj.Code,
			form.Field{Label: "Title"},
			form.Field{Label: "Content", Multiline: true}))
	}
	return v, nil
}

func (v *View) open(f *form.Form) tea.Cmd {
	f.SetWidth(v.width)
	v.form = f
	return f.Init()
}

// submit closes the form and returns the mutation for its values.
func (v *View) submit(msg messages.FormSubmitted) tea.Cmd {
	v.form = nil
	sem, code := v.panel.SemesterID, v.panel.Subject.Code
	vals := msg.Values

	switch msg.ID {
	case formAddUnit:
		unit := domain.Unit{Title: vals[0], Content: vals[1]}
		return messages.Mutate("Unit added", func() error {
			return v.editor.AddUnit(v.ctx, sem, code, unit)
		})
	case formEditUnit:
		idx, unit := v.editing, domain.Unit{Title: vals[0], Content: vals[1]}
		return messages.Mutate("Unit updated", func() error {
			return v.editor.UpdateUnit(v.ctx, sem, code, idx, unit)
		})
	case formRename:
		name := vals[0]
		return messages.Mutate("Subject renamed", func() error {
			return v.editor.UpdateSubject(v.ctx, sem, code, domain.SubjectUpdate{Name: &name})
		})
	case formCredits:
		credits, err := strconv.Atoi(vals[0])
		if err != nil || credits < 0 {
			return func() tea.Msg {
				return messages.Mutated{Err: fmt.Errorf("credits %q: %w", vals[0], domain.ErrInvalidInput)}
			}
		}
		return messages.Mutate("Credits updated", func() error {
			return v.editor.UpdateSubject(v.ctx, sem, code, domain.SubjectUpdate{Credits: &credits})
		})
	case formNote:
		input := domain.NoteInput{Title: vals[0], Content: vals[1], SubjectCode: code, SemesterID: sem}
		return messages.Mutate("Note saved", func() error {
			_, err := v.editor.AddNote(v.ctx, input)
			return err
		})
	}
	return nil
}

// View renders the reader.
func (v *View) View() string {
	if v.form != nil {
		return v.styles.Panel.Render(v.form.View())
	}

	subj := v.panel.Subject
	var b strings.Builder
	b.WriteString(v.styles.Badge.Render(fmt.Sprintf("%d cr", subj.Credits)))
	b.WriteString(" ")
	b.WriteString(v.styles.Code.Render(subj.Code))
	b.WriteString("\n")
	b.WriteString(v.styles.Title.Render(subj.Name))
	b.WriteString("\n\n")

	if len(subj.Units) == 0 {
		b.WriteString(v.styles.Muted.Render("No units yet. Press a to add one."))
		b.WriteString("\n")
	}
	for i, u := range subj.Units {
		heading := fmt.Sprintf("Unit %d: %s", i+1, u.Title)
		if i == v.selected {
			b.WriteString(v.styles.Selected.Render("> " + heading))
		} else {
			b.WriteString(v.styles.Subtitle.Render("  " + heading))
		}
		b.WriteString("\n")
		if u.Content != "" {
			b.WriteString(v.styles.Normal.Width(max(v.width-8, 20)).Render("    " + u.Content))
			b.WriteString("\n")
		}
	}

	return v.styles.Panel.Render(b.String())
}

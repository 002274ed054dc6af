// Package pdfs provides the PDF reference manager for one subject.
// References are opaque: the view lists and edits them but never opens
// the files.
package pdfs

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
	formAdd  = "pdf-add"
	formEdit = "pdf-edit"
)

// Editor is the subset of the coordinator the manager mutates through.
type Editor interface {
	AddPDF(ctx context.Context, input domain.PDFInput) (*domain.PDFResource, error)
	UpdatePDF(ctx context.Context, id string, update domain.PDFUpdate) (*domain.PDFResource, error)
	DeletePDF(ctx context.Context, id string) error
}

// View lists a subject's PDF references.
type View struct {
	ctx    context.Context
	editor Editor
	styles *styles.Styles
	keymap *keymap.KeyMap

	panel    coordinator.Panel
	pdfs     []domain.PDFResource
	selected int
	form     *form.Form
	editID   string
	width    int
	height   int
}

// NewView creates a PDF manager.
func NewView(ctx context.Context, s *styles.Styles, km *keymap.KeyMap, editor Editor) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	return &View{ctx: ctx, editor: editor, styles: s, keymap: km, width: 80, height: 24}
}

// SetPDFs shows references for the panel's subject.
func (v *View) SetPDFs(p coordinator.Panel, pdfs []domain.PDFResource) {
	if p.Code != v.panel.Code || p.SemesterID != v.panel.SemesterID {
		v.selected = 0
		v.form = nil
	}
	v.panel = p
	v.pdfs = pdfs
	if v.selected >= len(pdfs) {
		v.selected = max(len(pdfs)-1, 0)
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
		if v.selected < len(v.pdfs)-1 {
			v.selected++
		}
	case keymap.Matches(k, v.keymap.Add):
		v.form = form.New(v.styles, formAdd, "Add PDF for "+v.panel.Code,
			form.Field{Label: "Name"},
			form.Field{Label: "Location", Placeholder: "/path/to/file.pdf or https://..."},
			form.Field{Label: "Description"})
		v.form.SetWidth(v.width)
		return v, v.form.Init()
	case keymap.Matches(k, v.keymap.Edit), keymap.Matches(k, v.keymap.Select):
		if p, ok := v.current(); ok {
			v.editID = p.ID
			v.form = form.New(v.styles, formEdit, "Edit PDF",
				form.Field{Label: "Name", Value: p.Name},
				form.Field{Label: "Location", Value: p.Location},
				form.Field{Label: "Description", Value: p.Description})
			v.form.SetWidth(v.width)
			return v, v.form.Init()
		}
	case keymap.Matches(k, v.keymap.Delete):
		if p, ok := v.current(); ok {
			id := p.ID
			return v, messages.Mutate("PDF removed", func() error {
				return v.editor.DeletePDF(v.ctx, id)
			})
		}
	}
	return v, nil
}

func (v *View) current() (domain.PDFResource, bool) {
	if v.selected < 0 || v.selected >= len(v.pdfs) {
		return domain.PDFResource{}, false
	}
	return v.pdfs[v.selected], true
}

func (v *View) submit(msg messages.FormSubmitted) tea.Cmd {
	v.form = nil
	name, location, description := msg.Values[0], msg.Values[1], msg.Values[2]

	switch msg.ID {
	case formAdd:
		input := domain.PDFInput{
			Name: name, Location: location, Description: description,
			SubjectCode: v.panel.Code, SemesterID: v.panel.SemesterID,
		}
		return messages.Mutate("PDF added", func() error {
			_, err := v.editor.AddPDF(v.ctx, input)
			return err
		})
	case formEdit:
		id := v.editID
		update := domain.PDFUpdate{Name: &name, Location: &location, Description: &description}
		return messages.Mutate("PDF updated", func() error {
			_, err := v.editor.UpdatePDF(v.ctx, id, update)
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
	b.WriteString(v.styles.Title.Render(fmt.Sprintf("PDFs - %s", v.panel.Name)))
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render(fmt.Sprintf("%s (%d)", v.panel.Code, len(v.pdfs))))
	b.WriteString("\n\n")

	if len(v.pdfs) == 0 {
		b.WriteString(v.styles.Muted.Render("No PDFs yet. Press a to add a path or URL."))
		b.WriteString("\n")
		return v.styles.Panel.Render(b.String())
	}

	for i, p := range v.pdfs {
		if i == v.selected {
			b.WriteString(v.styles.Selected.Render("> " + p.Name))
		} else {
			b.WriteString(v.styles.Normal.Render("  " + p.Name))
		}
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render("    " + p.Location))
		b.WriteString("\n")
		if p.Description != "" {
			b.WriteString(v.styles.Muted.Render("    " + p.Description))
			b.WriteString("\n")
		}
	}
	return v.styles.Panel.Render(b.String())
}

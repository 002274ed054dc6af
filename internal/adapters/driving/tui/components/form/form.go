// Package form provides a small multi-field editor used by the panels to
// create and edit units, notes and PDF references.
package form

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/syllabus-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/syllabus-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/syllabus-cli/internal/adapters/driving/tui/styles"
)

// Field describes one input of a form.
type Field struct {
	Label       string
	Value       string
	Placeholder string

	// Multiline uses a textarea instead of a single-line input.
	Multiline bool
}

type input struct {
	label string
	line  textinput.Model
	area  textarea.Model
	multi bool
}

func (in *input) value() string {
	if in.multi {
		return in.area.Value()
	}
	return in.line.Value()
}

func (in *input) focus() tea.Cmd {
	if in.multi {
		return in.area.Focus()
	}
	return in.line.Focus()
}

func (in *input) blur() {
	if in.multi {
		in.area.Blur()
		return
	}
	in.line.Blur()
}

// Form is a titled set of inputs. Submitting emits messages.FormSubmitted
// with the values in field order; esc emits messages.FormCancelled.
type Form struct {
	id     string
	title  string
	styles *styles.Styles
	keymap *keymap.KeyMap
	inputs []*input
	focus  int
	width  int
}

// New creates a form with the first field focused.
func New(s *styles.Styles, id, title string, fields ...Field) *Form {
	if s == nil {
		s = styles.DefaultStyles()
	}

	f := &Form{
		id:     id,
		title:  title,
		styles: s,
		keymap: keymap.DefaultKeyMap(),
		width:  60,
	}
	for _, field := range fields {
		in := &input{label: field.Label, multi: field.Multiline}
		if field.Multiline {
			in.area = textarea.New()
			in.area.Placeholder = field.Placeholder
			in.area.CharLimit = 20000
			in.area.SetWidth(f.width)
			in.area.SetHeight(6)
			in.area.SetValue(field.Value)
		} else {
			in.line = textinput.New()
			in.line.Placeholder = field.Placeholder
			in.line.CharLimit = 256
			in.line.Width = f.width
			in.line.SetValue(field.Value)
		}
		f.inputs = append(f.inputs, in)
	}
	if len(f.inputs) > 0 {
		f.inputs[0].focus()
	}
	return f
}

// ID returns the identifier carried by the form's messages.
func (f *Form) ID() string {
	return f.id
}

// Init starts the cursor blinking.
func (f *Form) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key input.
func (f *Form) Update(msg tea.Msg) (*Form, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch k := keyMsg.String(); {
		case keymap.Matches(k, f.keymap.Back):
			id := f.id
			return f, func() tea.Msg { return messages.FormCancelled{ID: id} }
		case keymap.Matches(k, f.keymap.Submit):
			id, values := f.id, f.Values()
			return f, func() tea.Msg { return messages.FormSubmitted{ID: id, Values: values} }
		case keymap.Matches(k, f.keymap.NextField):
			return f, f.move(1)
		case keymap.Matches(k, f.keymap.PrevField):
			return f, f.move(-1)
		case k == "enter" && !f.current().multi:
			if f.focus == len(f.inputs)-1 {
				id, values := f.id, f.Values()
				return f, func() tea.Msg { return messages.FormSubmitted{ID: id, Values: values} }
			}
			return f, f.move(1)
		}
	}

	in := f.current()
	if in == nil {
		return f, nil
	}
	var cmd tea.Cmd
	if in.multi {
		in.area, cmd = in.area.Update(msg)
	} else {
		in.line, cmd = in.line.Update(msg)
	}
	return f, cmd
}

func (f *Form) current() *input {
	if len(f.inputs) == 0 {
		return nil
	}
	return f.inputs[f.focus]
}

func (f *Form) move(delta int) tea.Cmd {
	if len(f.inputs) == 0 {
		return nil
	}
	f.inputs[f.focus].blur()
	f.focus = (f.focus + delta + len(f.inputs)) % len(f.inputs)
	return f.inputs[f.focus].focus()
}

// Focused returns the index of the focused field.
func (f *Form) Focused() int {
	return f.focus
}

// Values returns the trimmed field values in order.
func (f *Form) Values() []string {
	out := make([]string, len(f.inputs))
	for i, in := range f.inputs {
		out[i] = strings.TrimSpace(in.value())
	}
	return out
}

// SetWidth resizes the inputs.
func (f *Form) SetWidth(width int) {
	f.width = max(width-8, 20)
	for _, in := range f.inputs {
		if in.multi {
			in.area.SetWidth(f.width)
		} else {
			in.line.Width = f.width
		}
	}
}

// View renders the form.
func (f *Form) View() string {
	var b strings.Builder
	b.WriteString(f.styles.Title.Render(f.title))
	b.WriteString("\n\n")

	for i, in := range f.inputs {
		label := f.styles.Muted.Render(in.label)
		if i == f.focus {
			label = f.styles.Subtitle.Render(in.label)
		}
		b.WriteString(label)
		b.WriteString("\n")
		if in.multi {
			b.WriteString(f.styles.InputField.Render(in.area.View()))
		} else {
			b.WriteString(f.styles.InputField.Render(in.line.View()))
		}
		b.WriteString("\n")
	}

	hints := make([]string, 0, 3)
	for _, binding := range f.keymap.FormHelp() {
		h := binding.Help()
		hints = append(hints, h.Key+": "+h.Desc)
	}
	b.WriteString(f.styles.Help.Render(strings.Join(hints, " | ")))

	return lipgloss.NewStyle().Width(f.width + 4).Render(b.String())
}

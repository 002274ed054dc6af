package form

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/syllabus-cli/internal/adapters/driving/tui/messages"
)

func typeText(f *Form, text string) *Form {
	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return f
}

func TestNew_PrefillsValues(t *testing.T) {
	f := New(nil, "unit", "Edit unit",
		Field{Label: "Title", Value: "Pairwise Alignment"},
		Field{Label: "Content", Value: "Dot plots", Multiline: true},
	)

	assert.Equal(t, "unit", f.ID())
	assert.Equal(t, []string{"Pairwise Alignment", "Dot plots"}, f.Values())
	assert.Equal(t, 0, f.Focused())
}

func TestForm_TypingFillsFocusedField(t *testing.T) {
	f := New(nil, "note", "New note", Field{Label: "Title"}, Field{Label: "Content", Multiline: true})

	f = typeText(f, "Exam prep")
	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyTab})
	f = typeText(f, "Read chapter 3")

	assert.Equal(t, []string{"Exam prep", "Read chapter 3"}, f.Values())
}

func TestForm_TabWraps(t *testing.T) {
	f := New(nil, "x", "X", Field{Label: "A"}, Field{Label: "B"})

	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 1, f.Focused())
	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 0, f.Focused())
	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, 1, f.Focused())
}

func TestForm_SubmitEmitsValues(t *testing.T) {
	f := New(nil, "credits", "Credits", Field{Label: "Credits", Value: "4"})

	_, cmd := f.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)

	msg, ok := cmd().(messages.FormSubmitted)
	require.True(t, ok)
	assert.Equal(t, "credits", msg.ID)
	assert.Equal(t, []string{"4"}, msg.Values)
}

func TestForm_EnterOnLastLineSubmits(t *testing.T) {
	f := New(nil, "rename", "Rename", Field{Label: "Name", Value: "  Genomics  "})

	_, cmd := f.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	msg, ok := cmd().(messages.FormSubmitted)
	require.True(t, ok)
	assert.Equal(t, []string{"Genomics"}, msg.Values)
}

func TestForm_EscCancels(t *testing.T) {
	f := New(nil, "pdf", "Add PDF", Field{Label: "Name"})

	_, cmd := f.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, messages.FormCancelled{ID: "pdf"}, cmd())
}

func TestForm_View(t *testing.T) {
	f := New(nil, "unit", "Add unit", Field{Label: "Title"}, Field{Label: "Content", Multiline: true})
	f.SetWidth(80)

	view := f.View()
	assert.Contains(t, view, "Add unit")
	assert.Contains(t, view, "Title")
	assert.Contains(t, view, "Content")
	assert.Contains(t, view, "ctrl+s")
}

// Package subjects provides the subject list of the selected semester.
package subjects

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/syllabus-cli/internal/adapters/driving/tui/components/subjectrow"
	"github.com/custodia-labs/syllabus-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/syllabus-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/syllabus-cli/internal/core/coordinator"
	"github.com/custodia-labs/syllabus-cli/internal/core/domain"
)

// Header lines shown above every semester.
const (
	Heading    = "Bioinformatics"
	Subheading = "M.Sc. Bioinformatics Program"
	EmptyText  = "No subjects available"
)

// View is the subject list.
type View struct {
	styles *styles.Styles
	keymap *keymap.KeyMap

	semesterID   int
	title        string
	credits      string
	rows         []subjectrow.Row
	selected     int
	scrollOffset int
	width        int
	height       int
}

// NewView creates an empty subject list.
func NewView(s *styles.Styles, km *keymap.KeyMap) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	return &View{styles: s, keymap: km, width: 80, height: 24}
}

// SetSemester replaces the rows. The cursor is kept when the semester is
// unchanged so counts can refresh under it.
func (v *View) SetSemester(sem *domain.Semester, rows []coordinator.Row) {
	if sem == nil {
		v.semesterID, v.title, v.credits = 0, "", ""
		v.rows = nil
		v.selected, v.scrollOffset = 0, 0
		return
	}
	if sem.ID != v.semesterID {
		v.selected, v.scrollOffset = 0, 0
	}
	v.semesterID = sem.ID
	v.title = sem.Name
	v.credits = sem.TotalCredits

	v.rows = make([]subjectrow.Row, 0, len(rows))
	for _, r := range rows {
		v.rows = append(v.rows, subjectrow.New(v.styles, r))
	}
	if v.selected >= len(v.rows) {
		v.selected = max(len(v.rows)-1, 0)
	}
}

// SetStyles swaps the palette. Rows pick it up on the next SetSemester.
func (v *View) SetStyles(s *styles.Styles) {
	v.styles = s
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}

// Selected returns the highlighted row.
func (v *View) Selected() (subjectrow.Row, bool) {
	if v.selected < 0 || v.selected >= len(v.rows) {
		return subjectrow.Row{}, false
	}
	return v.rows[v.selected], true
}

// Len returns the number of rows.
func (v *View) Len() int {
	return len(v.rows)
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles list navigation and row actions.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	switch k := keyMsg.String(); {
	case keymap.Matches(k, v.keymap.Up):
		if v.selected > 0 {
			v.selected--
			v.adjustScroll()
		}
	case keymap.Matches(k, v.keymap.Down):
		if v.selected < len(v.rows)-1 {
			v.selected++
			v.adjustScroll()
		}
	case keymap.Matches(k, v.keymap.Select):
		if row, ok := v.Selected(); ok {
			return v, row.Read()
		}
	case keymap.Matches(k, v.keymap.Notes):
		if row, ok := v.Selected(); ok {
			return v, row.ViewNotes()
		}
	case keymap.Matches(k, v.keymap.PDFs):
		if row, ok := v.Selected(); ok {
			return v, row.ViewPDFs()
		}
	}
	return v, nil
}

func (v *View) adjustScroll() {
	visible := v.visibleItemCount()
	if v.selected < v.scrollOffset {
		v.scrollOffset = v.selected
	} else if v.selected >= v.scrollOffset+visible {
		v.scrollOffset = v.selected - visible + 1
	}
}

func (v *View) visibleItemCount() int {
	// title, subtitle, semester line, status bar, padding
	return max(v.height-9, 1)
}

// View renders the list.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render(Heading))
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render(Subheading))
	b.WriteString("\n\n")

	if v.title != "" {
		b.WriteString(v.styles.Subtitle.Render(v.title))
		if v.credits != "" {
			b.WriteString(v.styles.Muted.Render(fmt.Sprintf("  ·  %s", v.credits)))
		}
		b.WriteString("\n\n")
	}

	if len(v.rows) == 0 {
		b.WriteString(v.styles.Muted.Render(EmptyText))
		b.WriteString("\n")
		return b.String()
	}

	visible := v.visibleItemCount()
	for i := v.scrollOffset; i < len(v.rows) && i < v.scrollOffset+visible; i++ {
		b.WriteString(v.rows[i].View(i == v.selected, v.width))
		b.WriteString("\n")
	}
	if len(v.rows) > visible {
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("  [%d-%d of %d]",
			v.scrollOffset+1, min(v.scrollOffset+visible, len(v.rows)), len(v.rows))))
		b.WriteString("\n")
	}
	return b.String()
}

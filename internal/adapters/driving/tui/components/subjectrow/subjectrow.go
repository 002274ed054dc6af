// Package subjectrow renders one subject of the list. It owns no state:
// actions are returned as commands carrying the subject's code and semester.
package subjectrow

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/syllabus-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/syllabus-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/syllabus-cli/internal/core/coordinator"
)

// Row is a presentational subject line.
type Row struct {
	styles *styles.Styles
	row    coordinator.Row
}

// New creates a row for r.
func New(s *styles.Styles, r coordinator.Row) Row {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return Row{styles: s, row: r}
}

// Code returns the subject code.
func (r Row) Code() string {
	return r.row.Subject.Code
}

// Read requests the syllabus reader for this subject.
func (r Row) Read() tea.Cmd {
	return messages.Send(coordinator.ReadSubject{Code: r.row.Subject.Code, SemesterID: r.row.SemesterID})
}

// ViewNotes requests the notes manager for this subject.
func (r Row) ViewNotes() tea.Cmd {
	return messages.Send(coordinator.ViewNotes{Code: r.row.Subject.Code, SemesterID: r.row.SemesterID})
}

// ViewPDFs requests the PDF manager for this subject.
func (r Row) ViewPDFs() tea.Cmd {
	return messages.Send(coordinator.ViewPDFs{Code: r.row.Subject.Code, SemesterID: r.row.SemesterID})
}

// View renders the row. width bounds the name column.
func (r Row) View(selected bool, width int) string {
	badge := r.styles.Badge.Render(fmt.Sprintf("%d cr", r.row.Subject.Credits))
	code := r.styles.Code.Render(fmt.Sprintf("%-7s", r.row.Subject.Code))
	counts := r.styles.Muted.Render(fmt.Sprintf("%s  %s",
		plural(r.row.NoteCount, "note"), plural(r.row.PDFCount, "PDF")))

	nameWidth := width - lipgloss.Width(badge) - lipgloss.Width(code) - lipgloss.Width(counts) - 6
	name := r.row.Subject.Name
	if nameWidth > 3 && lipgloss.Width(name) > nameWidth {
		name = string([]rune(name)[:nameWidth-3]) + "..."
	}

	nameStyle := r.styles.Normal
	prefix := "  "
	if selected {
		nameStyle = r.styles.Selected
		prefix = "> "
	}
	return prefix + lipgloss.JoinHorizontal(lipgloss.Top,
		badge, " ", code, " ", nameStyle.Render(name), "  ", counts)
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

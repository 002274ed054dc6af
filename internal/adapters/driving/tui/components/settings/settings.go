// Package settings provides the settings panel: semester selection and the
// theme toggle. The panel never changes state itself; it forwards events
// and is re-synced from the coordinator.
package settings

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/syllabus-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/syllabus-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/syllabus-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/syllabus-cli/internal/core/coordinator"
	"github.com/custodia-labs/syllabus-cli/internal/core/domain"
)

// Option is a selectable semester.
type Option struct {
	ID   int
	Name string
}

// Panel is the settings overlay.
type Panel struct {
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	options  []Option
	selected int
	dark     bool
	open     bool
}

// New creates a closed panel.
func New(s *styles.Styles, km *keymap.KeyMap) *Panel {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	return &Panel{styles: s, keymap: km}
}

// SetSemesters sets the selectable semesters.
func (p *Panel) SetSemesters(semesters []domain.Semester) {
	p.options = make([]Option, 0, len(semesters))
	for _, sem := range semesters {
		p.options = append(p.options, Option{ID: sem.ID, Name: sem.Name})
	}
}

// Sync mirrors the coordinator state.
func (p *Panel) Sync(state coordinator.State) {
	p.selected = state.SelectedSemester
	p.dark = state.DarkMode
}

// SetStyles swaps the palette.
func (p *Panel) SetStyles(s *styles.Styles) {
	p.styles = s
}

// Open shows the panel.
func (p *Panel) Open() { p.open = true }

// Close hides the panel.
func (p *Panel) Close() { p.open = false }

// IsOpen reports whether the panel is visible.
func (p *Panel) IsOpen() bool { return p.open }

// Update handles keys while open.
func (p *Panel) Update(msg tea.Msg) (*Panel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !p.open {
		return p, nil
	}

	switch k := keyMsg.String(); {
	case keymap.Matches(k, p.keymap.Back), keymap.Matches(k, p.keymap.Settings):
		p.Close()
	case keymap.Matches(k, p.keymap.Up), keymap.Matches(k, p.keymap.PrevSemester):
		return p, p.step(-1)
	case keymap.Matches(k, p.keymap.Down), keymap.Matches(k, p.keymap.NextSemester):
		return p, p.step(1)
	case keymap.Matches(k, p.keymap.Theme), keymap.Matches(k, p.keymap.Select):
		return p, messages.Send(coordinator.ToggleTheme{})
	}
	return p, nil
}

// step requests the semester delta positions away from the current one.
func (p *Panel) step(delta int) tea.Cmd {
	id, ok := Neighbour(p.options, p.selected, delta)
	if !ok {
		return nil
	}
	return messages.Send(coordinator.SelectSemester{ID: id})
}

// Neighbour returns the option delta positions from current, clamped to the
// list. It reports false when there is nowhere to move.
func Neighbour(options []Option, current, delta int) (int, bool) {
	idx := -1
	for i, o := range options {
		if o.ID == current {
			idx = i
			break
		}
	}
	next := idx + delta
	if idx < 0 || next < 0 || next >= len(options) {
		return 0, false
	}
	return options[next].ID, true
}

// View renders the panel, or nothing when closed.
func (p *Panel) View() string {
	if !p.open {
		return ""
	}

	var b strings.Builder
	b.WriteString(p.styles.Title.Render("Settings"))
	b.WriteString("\n\n")
	b.WriteString(p.styles.Subtitle.Render("Semester"))
	b.WriteString("\n")
	for _, o := range p.options {
		if o.ID == p.selected {
			b.WriteString(p.styles.Selected.Render("> " + o.Name))
		} else {
			b.WriteString(p.styles.Normal.Render("  " + o.Name))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(p.styles.Subtitle.Render("Theme"))
	b.WriteString("\n")
	b.WriteString(p.styles.Normal.Render(fmt.Sprintf("  %s", domain.ThemeFromDark(p.dark).Description())))
	b.WriteString("\n\n")
	b.WriteString(p.styles.Help.Render("↑/↓: semester | t: toggle theme | esc: close"))

	return p.styles.Panel.Render(b.String())
}

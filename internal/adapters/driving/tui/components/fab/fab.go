// Package fab provides the floating action menu: a collapsed button that
// expands into shortcuts for the first subject of the selected semester.
package fab

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/syllabus-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/syllabus-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/syllabus-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/syllabus-cli/internal/core/coordinator"
)

// Action is one entry of the expanded menu.
type Action struct {
	Label string
	Event coordinator.Event
}

// Actions lists the menu entries in display order.
func Actions() []Action {
	return []Action{
		{Label: "Syllabus", Event: coordinator.OpenSyllabus{}},
		{Label: "Notes", Event: coordinator.OpenNotes{}},
		{Label: "PDFs", Event: coordinator.OpenPDFs{}},
	}
}

// Menu is the floating action menu. Its only state is whether it is
// expanded and which entry is highlighted.
type Menu struct {
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	actions  []Action
	expanded bool
	cursor   int
}

// New creates a collapsed menu.
func New(s *styles.Styles, km *keymap.KeyMap) *Menu {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	return &Menu{styles: s, keymap: km, actions: Actions()}
}

// Expanded reports whether the menu is open.
func (m *Menu) Expanded() bool {
	return m.expanded
}

// Toggle opens or closes the menu.
func (m *Menu) Toggle() {
	m.expanded = !m.expanded
	m.cursor = 0
}

// Collapse closes the menu.
func (m *Menu) Collapse() {
	m.expanded = false
	m.cursor = 0
}

// SetStyles swaps the palette.
func (m *Menu) SetStyles(s *styles.Styles) {
	m.styles = s
}

// Cursor returns the highlighted entry.
func (m *Menu) Cursor() int {
	return m.cursor
}

// Update handles keys while expanded. Invoking an entry forwards its event
// and collapses the menu; esc or the menu key collapses without action.
func (m *Menu) Update(msg tea.Msg) (*Menu, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.expanded {
		return m, nil
	}

	switch k := keyMsg.String(); {
	case keymap.Matches(k, m.keymap.Back), keymap.Matches(k, m.keymap.Menu):
		m.Collapse()
	case keymap.Matches(k, m.keymap.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case keymap.Matches(k, m.keymap.Down):
		if m.cursor < len(m.actions)-1 {
			m.cursor++
		}
	case keymap.Matches(k, m.keymap.Select):
		return m, m.Invoke(m.cursor)
	case k == "1", k == "2", k == "3":
		return m, m.Invoke(int(k[0] - '1'))
	}
	return m, nil
}

// Invoke forwards the action at index i and collapses the menu.
func (m *Menu) Invoke(i int) tea.Cmd {
	if i < 0 || i >= len(m.actions) {
		return nil
	}
	ev := m.actions[i].Event
	m.Collapse()
	return messages.Send(ev)
}

// View renders the button, or the entries when expanded.
func (m *Menu) View() string {
	if !m.expanded {
		return m.styles.Badge.Render("+")
	}

	lines := make([]string, 0, len(m.actions)+1)
	for i, a := range m.actions {
		label := string(rune('1'+i)) + " " + a.Label
		if i == m.cursor {
			lines = append(lines, m.styles.Selected.Render("> "+label))
		} else {
			lines = append(lines, m.styles.Normal.Render("  "+label))
		}
	}
	lines = append(lines, m.styles.Badge.Render("x"))
	return m.styles.Panel.Render(strings.Join(lines, "\n"))
}

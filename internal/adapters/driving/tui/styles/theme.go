// Package styles provides the light and dark palettes for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/syllabus-cli/internal/core/domain"
)

// Theme defines the colour palette and styling for the TUI.
type Theme struct {
	// Name is the domain theme this palette renders.
	Name domain.Theme

	// Primary is the main accent colour.
	Primary lipgloss.Color

	// Secondary is the secondary accent colour.
	Secondary lipgloss.Color

	// Background is the background colour.
	Background lipgloss.Color

	// Surface is the background of cards and panels.
	Surface lipgloss.Color

	// Foreground is the default text colour.
	Foreground lipgloss.Color

	// Muted is for less important text.
	Muted lipgloss.Color

	// Success indicates positive outcomes.
	Success lipgloss.Color

	// Warning indicates caution.
	Warning lipgloss.Color

	// Error indicates problems.
	Error lipgloss.Color

	// Border is the border colour.
	Border lipgloss.Color
}

// LightTheme is the default palette.
func LightTheme() *Theme {
	return &Theme{
		Name:       domain.ThemeLight,
		Primary:    lipgloss.Color("#4F46E5"), // Indigo
		Secondary:  lipgloss.Color("#0891B2"), // Cyan
		Background: lipgloss.Color("#F9FAFB"), // Gray 50
		Surface:    lipgloss.Color("#FFFFFF"),
		Foreground: lipgloss.Color("#111827"), // Gray 900
		Muted:      lipgloss.Color("#6B7280"), // Gray 500
		Success:    lipgloss.Color("#059669"), // Green
		Warning:    lipgloss.Color("#D97706"), // Amber
		Error:      lipgloss.Color("#DC2626"), // Red
		Border:     lipgloss.Color("#D1D5DB"), // Gray 300
	}
}

// DarkTheme renders light text on black.
func DarkTheme() *Theme {
	return &Theme{
		Name:       domain.ThemeDark,
		Primary:    lipgloss.Color("#818CF8"), // Indigo 400
		Secondary:  lipgloss.Color("#22D3EE"), // Cyan 400
		Background: lipgloss.Color("#000000"),
		Surface:    lipgloss.Color("#111827"), // Gray 900
		Foreground: lipgloss.Color("#FFFFFF"),
		Muted:      lipgloss.Color("#9CA3AF"), // Gray 400
		Success:    lipgloss.Color("#34D399"),
		Warning:    lipgloss.Color("#FBBF24"),
		Error:      lipgloss.Color("#F87171"),
		Border:     lipgloss.Color("#374151"), // Gray 700
	}
}

// ThemeFor returns the palette for a domain theme. Unknown themes are light.
func ThemeFor(t domain.Theme) *Theme {
	if t.IsDark() {
		return DarkTheme()
	}
	return LightTheme()
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	// Title style for headers.
	Title lipgloss.Style

	// Subtitle style for secondary headers.
	Subtitle lipgloss.Style

	// Normal style for regular text.
	Normal lipgloss.Style

	// Muted style for less important text.
	Muted lipgloss.Style

	// Selected style for highlighted items.
	Selected lipgloss.Style

	// Error style for error messages.
	Error lipgloss.Style

	// Success style for success messages.
	Success lipgloss.Style

	// Warning style for warning messages.
	Warning lipgloss.Style

	// Badge style for the credits badge on subject rows.
	Badge lipgloss.Style

	// Code style for subject codes.
	Code lipgloss.Style

	// InputField style for input areas.
	InputField lipgloss.Style

	// Panel style for overlays.
	Panel lipgloss.Style

	// StatusBar style for the status bar.
	StatusBar lipgloss.Style

	// Help style for help text.
	Help lipgloss.Style

	// Border style for bordered containers.
	Border lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = LightTheme()
	}

	return &Styles{
		theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Subtitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Secondary),

		Normal: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Surface).
			Background(theme.Primary),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error),

		Success: lipgloss.NewStyle().
			Foreground(theme.Success),

		Warning: lipgloss.NewStyle().
			Foreground(theme.Warning),

		Badge: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Surface).
			Background(theme.Secondary).
			Padding(0, 1),

		Code: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		InputField: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		Panel: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Primary).
			Padding(1, 2),

		StatusBar: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Background(theme.Surface).
			Padding(0, 1),

		Help: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Border: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border),
	}
}

// DefaultStyles returns styles with the light theme.
func DefaultStyles() *Styles {
	return NewStyles(LightTheme())
}

// ForTheme returns styles for a domain theme.
func ForTheme(t domain.Theme) *Styles {
	return NewStyles(ThemeFor(t))
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}

// IsDark reports whether these styles render the dark palette.
func (s *Styles) IsDark() bool {
	return s.theme.Name.IsDark()
}

package driving

import "github.com/custodia-labs/syllabus-cli/internal/core/domain"

// SettingsService reads and writes the persisted preferences. The view
// coordinator starts from Get().UI and writes back through SetTheme and
// SetSemester; the CLI edits the rest.
type SettingsService interface {
	// Get returns the stored settings, falling back to defaults per field.
	Get() (*domain.AppSettings, error)

	// Save validates and writes every field.
	Save(settings *domain.AppSettings) error

	// SetTheme writes ui.theme. Unknown themes are ErrInvalidInput.
	SetTheme(theme domain.Theme) error

	// SetSemester writes ui.semester. Non-positive ids are ErrInvalidInput.
	SetSemester(id int) error

	// GetDefaults returns the settings used for a fresh config file.
	GetDefaults() domain.AppSettings
}

package services

import (
	"fmt"

	"github.com/custodia-labs/syllabus-cli/internal/core/domain"
	"github.com/custodia-labs/syllabus-cli/internal/core/ports/driven"
	"github.com/custodia-labs/syllabus-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyUITheme        = "ui.theme"
	keyUISemester     = "ui.semester"
	keyStorageBackend = "storage.backend"
	keyStorageDataDir = "storage.data_dir"
	keyLogFormat      = "log.format"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	if s.configStore == nil {
		return nil, domain.ErrNotImplemented
	}
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		UI: domain.UISettings{
			Theme:    s.getTheme(defaults.UI.Theme),
			Semester: s.getSemester(defaults.UI.Semester),
		},
		Storage: domain.StorageSettings{
			Backend: s.getBackend(defaults.Storage.Backend),
			DataDir: s.configStore.GetString(keyStorageDataDir), // empty means <config dir>/data
		},
		Log: domain.LogSettings{
			Format: s.getLogFormat(defaults.Log.Format),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if s.configStore == nil {
		return domain.ErrNotImplemented
	}
	if settings == nil {
		return fmt.Errorf("%w: nil settings", domain.ErrInvalidInput)
	}
	if !settings.UI.Theme.IsValid() {
		return fmt.Errorf("%w: theme %q", domain.ErrInvalidInput, settings.UI.Theme)
	}
	if settings.UI.Semester < 1 {
		return fmt.Errorf("%w: semester %d", domain.ErrInvalidInput, settings.UI.Semester)
	}
	if !settings.Storage.Backend.IsValid() {
		return fmt.Errorf("%w: storage backend %q", domain.ErrInvalidInput, settings.Storage.Backend)
	}

	if err := s.configStore.Set(keyUITheme, settings.UI.Theme.String()); err != nil {
		return fmt.Errorf("save ui theme: %w", err)
	}
	if err := s.configStore.Set(keyUISemester, settings.UI.Semester); err != nil {
		return fmt.Errorf("save ui semester: %w", err)
	}
	if err := s.configStore.Set(keyStorageBackend, string(settings.Storage.Backend)); err != nil {
		return fmt.Errorf("save storage backend: %w", err)
	}
	if err := s.configStore.Set(keyStorageDataDir, settings.Storage.DataDir); err != nil {
		return fmt.Errorf("save storage data_dir: %w", err)
	}
	if err := s.configStore.Set(keyLogFormat, s.normaliseLogFormat(settings.Log.Format)); err != nil {
		return fmt.Errorf("save log format: %w", err)
	}

	return nil
}

// SetTheme persists the UI theme.
func (s *SettingsService) SetTheme(theme domain.Theme) error {
	if !theme.IsValid() {
		return fmt.Errorf("%w: theme %q", domain.ErrInvalidInput, theme)
	}
	if s.configStore == nil {
		return domain.ErrNotImplemented
	}
	if err := s.configStore.Set(keyUITheme, theme.String()); err != nil {
		return fmt.Errorf("save ui theme: %w", err)
	}
	return nil
}

// SetSemester persists the selected semester.
func (s *SettingsService) SetSemester(id int) error {
	if id < 1 {
		return fmt.Errorf("%w: semester %d", domain.ErrInvalidInput, id)
	}
	if s.configStore == nil {
		return domain.ErrNotImplemented
	}
	if err := s.configStore.Set(keyUISemester, id); err != nil {
		return fmt.Errorf("save ui semester: %w", err)
	}
	return nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

func (s *SettingsService) getTheme(defaultVal domain.Theme) domain.Theme {
	theme := domain.Theme(s.configStore.GetString(keyUITheme))
	if !theme.IsValid() {
		return defaultVal
	}
	return theme
}

func (s *SettingsService) getSemester(defaultVal int) int {
	val := s.configStore.GetInt(keyUISemester)
	if val < 1 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getBackend(defaultVal domain.StorageBackend) domain.StorageBackend {
	backend := domain.StorageBackend(s.configStore.GetString(keyStorageBackend))
	if !backend.IsValid() {
		return defaultVal
	}
	return backend
}

func (s *SettingsService) getLogFormat(defaultVal string) string {
	val := s.configStore.GetString(keyLogFormat)
	if val != "console" && val != "json" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) normaliseLogFormat(format string) string {
	if format == "json" {
		return format
	}
	return "console"
}

package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/syllabus-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/syllabus-cli/internal/core/domain"
)

func TestSettingsService_Get_ReturnsDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAppSettings(), *settings)
}

func TestSettingsService_Get_ReturnsStoredValues(t *testing.T) {
	store := memory.NewConfigStoreWith(map[string]any{
		"ui.theme":         "dark",
		"ui.semester":      int64(3),
		"storage.backend":  "memory",
		"storage.data_dir": "/tmp/syllabus",
		"log.format":       "json",
	})
	service := NewSettingsService(store)

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, domain.ThemeDark, settings.UI.Theme)
	assert.Equal(t, 3, settings.UI.Semester)
	assert.Equal(t, domain.StorageMemory, settings.Storage.Backend)
	assert.Equal(t, "/tmp/syllabus", settings.Storage.DataDir)
	assert.Equal(t, "json", settings.Log.Format)
}

func TestSettingsService_Get_InvalidValuesReturnDefaults(t *testing.T) {
	store := memory.NewConfigStoreWith(map[string]any{
		"ui.theme":        "sepia",
		"ui.semester":     -2,
		"storage.backend": "postgres",
		"log.format":      "xml",
	})
	service := NewSettingsService(store)

	settings, err := service.Get()

	require.NoError(t, err)
	defaults := domain.DefaultAppSettings()
	assert.Equal(t, defaults.UI, settings.UI)
	assert.Equal(t, defaults.Storage.Backend, settings.Storage.Backend)
	assert.Equal(t, defaults.Log.Format, settings.Log.Format)
}

func TestSettingsService_Save(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	settings := domain.DefaultAppSettings()
	settings.UI.Theme = domain.ThemeDark
	settings.UI.Semester = 2
	settings.Log.Format = "json"

	require.NoError(t, service.Save(&settings))

	assert.Equal(t, "dark", store.GetString("ui.theme"))
	assert.Equal(t, 2, store.GetInt("ui.semester"))
	assert.Equal(t, "sqlite", store.GetString("storage.backend"))
	assert.Equal(t, "json", store.GetString("log.format"))
	assert.Empty(t, store.GetString("storage.data_dir"))
}

func TestSettingsService_Save_Invalid(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	assert.ErrorIs(t, service.Save(nil), domain.ErrInvalidInput)

	bad := domain.DefaultAppSettings()
	bad.UI.Theme = "sepia"
	assert.ErrorIs(t, service.Save(&bad), domain.ErrInvalidInput)

	bad = domain.DefaultAppSettings()
	bad.UI.Semester = 0
	assert.ErrorIs(t, service.Save(&bad), domain.ErrInvalidInput)
}

func TestSettingsService_SetTheme(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	require.NoError(t, service.SetTheme(domain.ThemeDark))
	assert.Equal(t, "dark", store.GetString("ui.theme"))

	assert.ErrorIs(t, service.SetTheme("neon"), domain.ErrInvalidInput)
	assert.Equal(t, "dark", store.GetString("ui.theme"))
}

func TestSettingsService_SetSemester(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	require.NoError(t, service.SetSemester(3))
	settings, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, 3, settings.UI.Semester)

	assert.ErrorIs(t, service.SetSemester(0), domain.ErrInvalidInput)
}

func TestSettingsService_NilStore(t *testing.T) {
	service := NewSettingsService(nil)

	_, err := service.Get()
	assert.ErrorIs(t, err, domain.ErrNotImplemented)
	assert.ErrorIs(t, service.SetTheme(domain.ThemeDark), domain.ErrNotImplemented)
	assert.Equal(t, domain.DefaultAppSettings(), service.GetDefaults())
}

package tui

import "errors"

// ErrMissingCoordinator is returned when the view coordinator is not provided.
var ErrMissingCoordinator = errors.New("tui: coordinator is required")

// ErrMissingSettingsService is returned when config changes are watched
// without a settings service to re-read them.
var ErrMissingSettingsService = errors.New("tui: settings service is required to follow config changes")

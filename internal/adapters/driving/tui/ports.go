// Package tui provides the interactive terminal user interface for syllabus.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"go.uber.org/zap"

	"github.com/custodia-labs/syllabus-cli/internal/core/coordinator"
	"github.com/custodia-labs/syllabus-cli/internal/core/ports/driving"
)

// Ports aggregates what the TUI needs from the core.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Coordinator owns the view state and the stores.
	Coordinator *coordinator.Coordinator

	// Settings re-reads preferences when the config file changes. Optional.
	Settings driving.SettingsService

	// ConfigChanges signals external config edits. Optional.
	ConfigChanges <-chan struct{}

	// Logger receives debug output. Nil discards it.
	Logger *zap.Logger
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Coordinator == nil {
		return ErrMissingCoordinator
	}
	if p.ConfigChanges != nil && p.Settings == nil {
		return ErrMissingSettingsService
	}
	return nil
}

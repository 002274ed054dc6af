package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/custodia-labs/syllabus-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/syllabus-cli/internal/adapters/driven/export/pdf"
	"github.com/custodia-labs/syllabus-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/syllabus-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/syllabus-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/syllabus-cli/internal/core/domain"
	"github.com/custodia-labs/syllabus-cli/internal/core/ports/driven"
	"github.com/custodia-labs/syllabus-cli/internal/core/services"
	"github.com/custodia-labs/syllabus-cli/internal/logger"
)

// repositories groups the persistence ports for one backend.
type repositories struct {
	syllabus driven.SyllabusRepository
	notes    driven.NoteRepository
	pdfs     driven.PDFRepository
	close    func() error
}

// bootstrap wires config, logging, storage and services for one command run.
func bootstrap(ctx context.Context, opts cli.Options) (*cli.Services, func() error, error) {
	store, err := file.NewConfigStore(opts.ConfigDir)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	settingsService := services.NewSettingsService(store)
	settings, err := settingsService.Get()
	if err != nil {
		return nil, nil, fmt.Errorf("reading settings: %w", err)
	}

	logger.SetFormat(settings.Log.Format)
	log := logger.L()
	logger.Section("bootstrap")
	logger.Debug("config file: %s", store.Path())

	repos, err := openRepositories(settings.Storage, dataDir(opts.ConfigDir, settings.Storage))
	if err != nil {
		return nil, nil, err
	}
	log.Debug("storage ready", zap.String("backend", string(settings.Storage.Backend)))

	validate := services.NewValidator()
	syllabus, err := services.NewSyllabusService(ctx, repos.syllabus, validate, log)
	if err != nil {
		return nil, nil, errors.Join(err, repos.close())
	}
	notes, err := services.NewNotesService(ctx, repos.notes, validate, log)
	if err != nil {
		return nil, nil, errors.Join(err, repos.close())
	}
	pdfs, err := services.NewPDFService(ctx, repos.pdfs, validate, log)
	if err != nil {
		return nil, nil, errors.Join(err, repos.close())
	}

	var watcher *file.Watcher
	svc := &cli.Services{
		Syllabus: syllabus,
		Notes:    notes,
		PDFs:     pdfs,
		Settings: settingsService,
		Export:   services.NewExportService(syllabus, notes, pdfs, pdf.NewRenderer(), log),
		Logger:   log,
		WatchConfig: func(ctx context.Context) (<-chan struct{}, error) {
			w, err := file.NewWatcher(store, log)
			if err != nil {
				return nil, err
			}
			watcher = w
			return w.Watch(ctx)
		},
	}

	cleanup := func() error {
		var errs []error
		if watcher != nil {
			errs = append(errs, watcher.Close())
		}
		errs = append(errs, repos.close())
		return errors.Join(errs...)
	}

	return svc, cleanup, nil
}

// dataDir places the database next to the config when the config directory
// was overridden and no explicit data directory is set.
func dataDir(configDir string, storage domain.StorageSettings) string {
	if storage.DataDir != "" {
		return storage.DataDir
	}
	if configDir != "" {
		return filepath.Join(configDir, "data")
	}
	return ""
}

func openRepositories(storage domain.StorageSettings, dir string) (*repositories, error) {
	switch storage.Backend {
	case domain.StorageMemory:
		return &repositories{
			syllabus: memory.NewSyllabusRepository(nil),
			notes:    memory.NewNoteRepository(),
			pdfs:     memory.NewPDFRepository(),
			close:    func() error { return nil },
		}, nil
	case domain.StorageSQLite, "":
		db, err := sqlite.NewStore(dir)
		if err != nil {
			return nil, fmt.Errorf("opening database: %w", err)
		}
		return &repositories{
			syllabus: db.SyllabusRepository(),
			notes:    db.NoteRepository(),
			pdfs:     db.PDFRepository(),
			close:    db.Close,
		}, nil
	default:
		return nil, fmt.Errorf("%w: storage backend %q", domain.ErrInvalidInput, storage.Backend)
	}
}

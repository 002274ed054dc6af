package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/syllabus-cli/internal/adapters/driven/export/pdf"
	"github.com/custodia-labs/syllabus-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/syllabus-cli/internal/core/services"
)

// testServices exposes the concrete services behind the injected ports.
type testServices struct {
	syllabus *services.SyllabusService
	notes    *services.NotesService
	pdfs     *services.PDFService
	settings *services.SettingsService
	config   *memory.ConfigStore
}

// setupTestServices injects memory-backed services and restores the previous
// package state when the test ends.
func setupTestServices(t *testing.T) testServices {
	t.Helper()
	ctx := context.Background()

	syllabus, err := services.NewSyllabusService(ctx, memory.NewSyllabusRepository(nil), nil, nil)
	require.NoError(t, err)
	notes, err := services.NewNotesService(ctx, memory.NewNoteRepository(), nil, nil)
	require.NoError(t, err)
	pdfs, err := services.NewPDFService(ctx, memory.NewPDFRepository(), nil, nil)
	require.NoError(t, err)
	config := memory.NewConfigStore()
	settings := services.NewSettingsService(config)

	prevActive, prevBootstrap := active, bootstrap
	SetServices(&Services{
		Syllabus: syllabus,
		Notes:    notes,
		PDFs:     pdfs,
		Settings: settings,
		Export:   services.NewExportService(syllabus, notes, pdfs, pdf.NewRenderer(), nil),
	})
	SetBootstrap(nil)
	t.Cleanup(func() {
		active, bootstrap = prevActive, prevBootstrap
	})

	return testServices{syllabus: syllabus, notes: notes, pdfs: pdfs, settings: settings, config: config}
}

// execute runs the root command with args and returns its output. Flags
// are reset first since cobra keeps parsed values between runs.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		//nolint:errcheck // defaults always parse
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func subcommandNames(cmd *cobra.Command) []string {
	names := make([]string, 0, len(cmd.Commands()))
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	return names
}

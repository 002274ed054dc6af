package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/custodia-labs/syllabus-cli/internal/adapters/driving/tui"
	"github.com/custodia-labs/syllabus-cli/internal/core/coordinator"
)

// isTerminal reports whether stdin and stdout are both terminals.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface.

Controls:
  ↑/k, ↓/j  - Move between subjects
  Enter     - Read subject
  n / p     - Notes / PDFs of the selected subject
  [ / ]     - Previous / next semester
  m         - Quick menu
  s         - Settings
  t         - Toggle theme
  Esc       - Close panel
  q         - Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) (err error) {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			err = fmt.Errorf("tui panic: %v", r)
		}
	}()

	svc, err := requireServices()
	if err != nil {
		return err
	}
	if !isTerminal() {
		return errors.New("the terminal UI needs an interactive terminal")
	}

	ctx := commandContext(cmd)
	log := svc.Logger
	if log == nil {
		log = zap.NewNop()
	}

	coord, err := coordinator.New(ctx, svc.Syllabus, svc.Notes, svc.PDFs, svc.Settings, log)
	if err != nil {
		return fmt.Errorf("failed to start coordinator: %w", err)
	}

	ports := &tui.Ports{
		Coordinator: coord,
		Settings:    svc.Settings,
		Logger:      log,
	}
	if svc.WatchConfig != nil {
		changes, werr := svc.WatchConfig(ctx)
		if werr != nil {
			log.Warn("config watch unavailable", zap.Error(werr))
		} else {
			ports.ConfigChanges = changes
		}
	}

	app, err := tui.NewApp(ctx, ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

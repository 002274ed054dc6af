package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/syllabus-cli/internal/core/domain"
)

var themeCmd = &cobra.Command{
	Use:       "theme [light|dark|toggle]",
	Short:     "Show or change the UI theme",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"light", "dark", "toggle"},
	RunE:      runTheme,
}

var semesterCmd = &cobra.Command{
	Use:   "semester [number]",
	Short: "Show or change the semester the UI opens on",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSemester,
}

func init() {
	rootCmd.AddCommand(themeCmd)
	rootCmd.AddCommand(semesterCmd)
}

func requireSettings() (*Services, *domain.AppSettings, error) {
	svc, err := requireServices()
	if err != nil {
		return nil, nil, err
	}
	if svc.Settings == nil {
		return nil, nil, errors.New("settings service not configured")
	}
	settings, err := svc.Settings.Get()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return svc, settings, nil
}

func runTheme(cmd *cobra.Command, args []string) error {
	svc, settings, err := requireSettings()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		cmd.Printf("Theme: %s\n", settings.UI.Theme.Description())
		return nil
	}

	theme := domain.Theme(args[0])
	if args[0] == "toggle" {
		theme = settings.UI.Theme.Toggle()
	}
	if err := svc.Settings.SetTheme(theme); err != nil {
		return err
	}
	cmd.Printf("Theme set to %s\n", theme.Description())
	return nil
}

func runSemester(cmd *cobra.Command, args []string) error {
	svc, settings, err := requireSettings()
	if err != nil {
		return err
	}
	ctx := commandContext(cmd)

	if len(args) == 0 {
		sem, err := svc.Syllabus.Semester(ctx, settings.UI.Semester)
		if err != nil {
			cmd.Printf("Semester: %d\n", settings.UI.Semester)
			return nil
		}
		cmd.Printf("Semester: %d (%s)\n", sem.ID, sem.Name)
		return nil
	}

	id, err := parseSemester(args[0])
	if err != nil {
		return err
	}
	sem, err := svc.Syllabus.Semester(ctx, id)
	if err != nil {
		return err
	}
	if err := svc.Settings.SetSemester(id); err != nil {
		return err
	}
	cmd.Printf("Semester set to %d (%s)\n", sem.ID, sem.Name)
	return nil
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change storage and logging settings",
	Long: `Show the settings read from config.toml, or change them with flags.

Storage changes take effect on the next run.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

var (
	configBackend   string
	configDataDir   string
	configLogFormat string
	configReset     bool
)

func init() {
	configCmd.Flags().StringVar(&configBackend, "backend", "", "Storage backend (sqlite or memory)")
	configCmd.Flags().StringVar(&configDataDir, "data-dir", "", "Directory for the SQLite database")
	configCmd.Flags().StringVar(&configLogFormat, "log-format", "", "Verbose log format (console or json)")
	configCmd.Flags().BoolVar(&configReset, "reset", false, "Restore default settings")
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	svc, settings, err := requireSettings()
	if err != nil {
		return err
	}

	changed := false
	if configReset {
		defaults := svc.Settings.GetDefaults()
		settings = &defaults
		changed = true
	}
	if cmd.Flags().Changed("backend") {
		settings.Storage.Backend = domain.StorageBackend(configBackend)
		changed = true
	}
	if cmd.Flags().Changed("data-dir") {
		settings.Storage.DataDir = configDataDir
		changed = true
	}
	if cmd.Flags().Changed("log-format") {
		if configLogFormat != "console" && configLogFormat != "json" {
			return invalidArg("log format", configLogFormat)
		}
		settings.Log.Format = configLogFormat
		changed = true
	}

	if changed {
		if err := svc.Settings.Save(settings); err != nil {
			return err
		}
		cmd.Println("Settings saved")
	}

	dataDir := settings.Storage.DataDir
	if dataDir == "" {
		dataDir = "(default)"
	}
	cmd.Printf("Theme:      %s\n", settings.UI.Theme.Description())
	cmd.Printf("Semester:   %d\n", settings.UI.Semester)
	cmd.Printf("Storage:    %s\n", settings.Storage.Backend.Description())
	cmd.Printf("Data dir:   %s\n", dataDir)
	cmd.Printf("Log format: %s\n", settings.Log.Format)
	return nil
}

// Package cli provides the cobra command tree for syllabus.
// Commands drive the core services; the services themselves are built by
// the Bootstrap hook installed from main, or injected with SetServices.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/custodia-labs/syllabus-cli/internal/core/domain"
	"github.com/custodia-labs/syllabus-cli/internal/core/ports/driving"
	"github.com/custodia-labs/syllabus-cli/internal/logger"
)

// HomeEnv overrides the config directory when --config-dir is not given.
const HomeEnv = "SYLLABUS_HOME"

// skipBootstrap marks commands that never touch the stores.
const skipBootstrap = "skip-bootstrap"

// version is set at build time or by SetVersion.
var version = "dev"

// Services bundles the core services the commands drive.
type Services struct {
	Syllabus driving.SyllabusStore
	Notes    driving.NotesStore
	PDFs     driving.PDFStore
	Settings driving.SettingsService
	Export   driving.ExportService

	// WatchConfig streams config reloads to the TUI. Optional.
	WatchConfig func(ctx context.Context) (<-chan struct{}, error)

	Logger *zap.Logger
}

// Options are the root flags handed to Bootstrap.
type Options struct {
	ConfigDir string
	Verbose   bool
}

// Bootstrap builds the services for a command run. The returned cleanup
// func releases storage handles and watchers.
type Bootstrap func(ctx context.Context, opts Options) (*Services, func() error, error)

var (
	active    *Services
	bootstrap Bootstrap
	cleanup   func() error

	configDir string
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "syllabus",
	Short: "Browse a course syllabus with notes and PDF references",
	Long: `syllabus is a terminal browser for a university course syllabus.

Semesters list their subjects with credits and units. Each subject can carry
free-text notes and references to PDF resources (file paths or URLs).

Run without a subcommand in a terminal to open the interactive UI.`,
	SilenceUsage:       true,
	PersistentPreRunE:  preRun,
	PersistentPostRunE: postRun,
	RunE: func(cmd *cobra.Command, args []string) error {
		if isTerminal() {
			return runTUI(cmd, args)
		}
		return cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging to stderr")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "",
		"Configuration directory (default $"+HomeEnv+" or ~/.syllabus)")
}

// SetServices injects services, bypassing Bootstrap.
func SetServices(s *Services) {
	active = s
}

// SetBootstrap installs the hook that builds services on first use.
func SetBootstrap(b Bootstrap) {
	bootstrap = b
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command. Cleanup also runs when the command failed,
// since cobra skips post-run hooks after an error.
func Execute(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	return errors.Join(err, postRun(rootCmd, nil))
}

func preRun(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if cmd.Annotations[skipBootstrap] == "true" || active != nil || bootstrap == nil {
		return nil
	}

	svc, done, err := bootstrap(commandContext(cmd), Options{
		ConfigDir: resolveConfigDir(),
		Verbose:   verbose,
	})
	if err != nil {
		return err
	}
	active = svc
	cleanup = done
	return nil
}

func postRun(_ *cobra.Command, _ []string) error {
	if cleanup == nil {
		return nil
	}
	done := cleanup
	cleanup = nil
	active = nil
	return done()
}

// resolveConfigDir applies --config-dir, then SYLLABUS_HOME (a .env file in
// the working directory may set it). Empty means the default directory.
func resolveConfigDir() string {
	if configDir != "" {
		return configDir
	}
	//nolint:errcheck // a missing .env file is normal
	_ = godotenv.Load()
	return os.Getenv(HomeEnv)
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func requireServices() (*Services, error) {
	if active == nil {
		return nil, errors.New("services not configured")
	}
	return active, nil
}

// parseSubject reads the "<semester> <code>" argument pair.
func parseSubject(args []string) (int, string, error) {
	semesterID, err := parseSemester(args[0])
	if err != nil {
		return 0, "", err
	}
	code := strings.TrimSpace(args[1])
	if code == "" {
		return 0, "", errors.New("subject code is required")
	}
	return semesterID, code, nil
}

func parseSemester(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, invalidArg("semester", arg)
	}
	return id, nil
}

// parseUnitIndex converts a 1-based unit number to an index.
func parseUnitIndex(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n <= 0 {
		return 0, invalidArg("unit number", arg)
	}
	return n - 1, nil
}

func invalidArg(name, value string) error {
	return fmt.Errorf("%w: invalid %s %q", domain.ErrInvalidInput, name, value)
}

func plural(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}
	return strconv.Itoa(n) + " " + word + "s"
}

package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/syllabus-cli/internal/core/ports/driving"
	"github.com/custodia-labs/syllabus-cli/internal/logger"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the syllabus as a PDF",
	Long: `Write the syllabus (all semesters, or one with --semester) to a PDF file.

With --notes each subject also lists its notes and PDF references.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

var (
	exportOut      string
	exportSemester int
	exportNotes    bool
)

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output file (default syllabus<ext>)")
	exportCmd.Flags().IntVarP(&exportSemester, "semester", "s", 0, "Export one semester only")
	exportCmd.Flags().BoolVar(&exportNotes, "notes", false, "Include notes and PDF references")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) (err error) {
	svc, err := requireServices()
	if err != nil {
		return err
	}
	if svc.Export == nil {
		return errors.New("export service not configured")
	}
	if exportSemester < 0 {
		return invalidArg("semester", fmt.Sprint(exportSemester))
	}

	out := exportOut
	if out == "" {
		out = "syllabus" + svc.Export.Extension()
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("creating %s: %w", out, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", out, cerr)
		}
	}()

	opts := driving.ExportOptions{SemesterID: exportSemester, IncludeNotes: exportNotes}
	if err := svc.Export.Export(commandContext(cmd), f, opts); err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	logger.Debug("exported syllabus to %s", out)
	cmd.Printf("Exported syllabus to %s\n", out)
	return nil
}

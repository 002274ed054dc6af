package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/syllabus-cli/internal/core/coordinator"
	"github.com/custodia-labs/syllabus-cli/internal/core/domain"
)

var semestersCmd = &cobra.Command{
	Use:   "semesters",
	Short: "List semesters",
	Args:  cobra.NoArgs,
	RunE:  runSemesters,
}

var subjectsCmd = &cobra.Command{
	Use:   "subjects",
	Short: "List the subjects of a semester",
	Long: `List the subjects of a semester with credits, unit counts and the number
of notes and PDFs attached to each.

Without --semester the semester selected in the UI is used.`,
	Args: cobra.NoArgs,
	RunE: runSubjects,
}

var subjectsSemester int

func init() {
	subjectsCmd.Flags().IntVarP(&subjectsSemester, "semester", "s", 0, "Semester number")
	rootCmd.AddCommand(semestersCmd)
	rootCmd.AddCommand(subjectsCmd)
}

func runSemesters(cmd *cobra.Command, _ []string) error {
	svc, err := requireServices()
	if err != nil {
		return err
	}

	semesters, err := svc.Syllabus.Semesters(commandContext(cmd))
	if err != nil {
		return fmt.Errorf("failed to list semesters: %w", err)
	}

	current := 0
	if svc.Settings != nil {
		if settings, err := svc.Settings.Get(); err == nil {
			current = settings.UI.Semester
		}
	}

	for i := range semesters {
		marker := " "
		if semesters[i].ID == current {
			marker = "*"
		}
		cmd.Printf("%s %d  %-14s %-12s %s\n", marker, semesters[i].ID, semesters[i].Name,
			semesters[i].TotalCredits, plural(len(semesters[i].Subjects), "subject"))
	}
	return nil
}

func runSubjects(cmd *cobra.Command, _ []string) error {
	svc, err := requireServices()
	if err != nil {
		return err
	}
	ctx := commandContext(cmd)

	semesterID := subjectsSemester
	if semesterID == 0 {
		semesterID = domain.DefaultAppSettings().UI.Semester
		if svc.Settings != nil {
			if settings, err := svc.Settings.Get(); err == nil {
				semesterID = settings.UI.Semester
			}
		}
	}

	sem, err := svc.Syllabus.Semester(ctx, semesterID)
	if err != nil {
		return err
	}

	rows, err := coordinator.RowsFor(ctx, sem, svc.Notes, svc.PDFs)
	if err != nil {
		return err
	}

	cmd.Printf("%s (%s)\n\n", sem.Name, sem.TotalCredits)
	if len(rows) == 0 {
		cmd.Println("No subjects available")
		return nil
	}
	for _, r := range rows {
		cmd.Printf("  %-8s %2d cr  %-40s %s, %s, %s\n", r.Subject.Code, r.Subject.Credits, r.Subject.Name,
			plural(len(r.Subject.Units), "unit"), plural(r.NoteCount, "note"), plural(r.PDFCount, "PDF"))
	}
	return nil
}

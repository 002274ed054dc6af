package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/syllabus-cli/internal/core/domain"
)

var unitsCmd = &cobra.Command{
	Use:   "units",
	Short: "Manage the units of a subject",
	Long:  `List, add, update, or delete units. Units are numbered from 1.`,
}

var unitsListCmd = &cobra.Command{
	Use:   "list [semester] [code]",
	Short: "List units",
	Args:  cobra.ExactArgs(2),
	RunE:  runUnitsList,
}

var unitsAddCmd = &cobra.Command{
	Use:   "add [semester] [code]",
	Short: "Append a unit",
	Args:  cobra.ExactArgs(2),
	RunE:  runUnitsAdd,
}

var unitsUpdateCmd = &cobra.Command{
	Use:   "update [semester] [code] [unit]",
	Short: "Replace the title or content of a unit",
	Args:  cobra.ExactArgs(3),
	RunE:  runUnitsUpdate,
}

var unitsDeleteCmd = &cobra.Command{
	Use:   "delete [semester] [code] [unit]",
	Short: "Delete a unit",
	Long:  `Delete a unit. Later units move up by one.`,
	Args:  cobra.ExactArgs(3),
	RunE:  runUnitsDelete,
}

var subjectCmd = &cobra.Command{
	Use:   "subject",
	Short: "Edit subject details",
}

var subjectRenameCmd = &cobra.Command{
	Use:   "rename [semester] [code] [name]",
	Short: "Rename a subject",
	Args:  cobra.ExactArgs(3),
	RunE:  runSubjectRename,
}

var subjectCreditsCmd = &cobra.Command{
	Use:   "credits [semester] [code] [credits]",
	Short: "Set the credits of a subject",
	Args:  cobra.ExactArgs(3),
	RunE:  runSubjectCredits,
}

var (
	unitTitle   string
	unitContent string
)

func init() {
	for _, c := range []*cobra.Command{unitsAddCmd, unitsUpdateCmd} {
		c.Flags().StringVarP(&unitTitle, "title", "t", "", "Unit title")
		c.Flags().StringVarP(&unitContent, "content", "c", "", "Unit content")
	}

	unitsCmd.AddCommand(unitsListCmd)
	unitsCmd.AddCommand(unitsAddCmd)
	unitsCmd.AddCommand(unitsUpdateCmd)
	unitsCmd.AddCommand(unitsDeleteCmd)
	subjectCmd.AddCommand(subjectRenameCmd)
	subjectCmd.AddCommand(subjectCreditsCmd)
	rootCmd.AddCommand(unitsCmd)
	rootCmd.AddCommand(subjectCmd)
}

func runUnitsList(cmd *cobra.Command, args []string) error {
	svc, err := requireServices()
	if err != nil {
		return err
	}
	semesterID, code, err := parseSubject(args)
	if err != nil {
		return err
	}

	subj, err := svc.Syllabus.Subject(commandContext(cmd), semesterID, code)
	if err != nil {
		return err
	}

	cmd.Printf("%s %s (%d credits)\n\n", subj.Code, subj.Name, subj.Credits)
	if len(subj.Units) == 0 {
		cmd.Println("No units yet")
		return nil
	}
	for i, u := range subj.Units {
		cmd.Printf("Unit %d: %s\n", i+1, u.Title)
		if u.Content != "" {
			cmd.Printf("  %s\n", u.Content)
		}
	}
	return nil
}

func runUnitsAdd(cmd *cobra.Command, args []string) error {
	svc, err := requireServices()
	if err != nil {
		return err
	}
	semesterID, code, err := parseSubject(args)
	if err != nil {
		return err
	}

	unit := domain.Unit{Title: unitTitle, Content: unitContent}
	if err := svc.Syllabus.AddUnit(commandContext(cmd), semesterID, code, unit); err != nil {
		return fmt.Errorf("failed to add unit: %w", err)
	}
	cmd.Printf("Added unit to %s: %s\n", code, unit.Title)
	return nil
}

func runUnitsUpdate(cmd *cobra.Command, args []string) error {
	svc, err := requireServices()
	if err != nil {
		return err
	}
	semesterID, code, err := parseSubject(args)
	if err != nil {
		return err
	}
	index, err := parseUnitIndex(args[2])
	if err != nil {
		return err
	}
	ctx := commandContext(cmd)

	subj, err := svc.Syllabus.Subject(ctx, semesterID, code)
	if err != nil {
		return err
	}
	if index >= len(subj.Units) {
		return fmt.Errorf("unit %s of %s: %w", args[2], code, domain.ErrInvalidIndex)
	}

	unit := subj.Units[index]
	if cmd.Flags().Changed("title") {
		unit.Title = unitTitle
	}
	if cmd.Flags().Changed("content") {
		unit.Content = unitContent
	}

	if err := svc.Syllabus.UpdateUnit(ctx, semesterID, code, index, unit); err != nil {
		return fmt.Errorf("failed to update unit: %w", err)
	}
	cmd.Printf("Updated unit %d of %s\n", index+1, code)
	return nil
}

func runUnitsDelete(cmd *cobra.Command, args []string) error {
	svc, err := requireServices()
	if err != nil {
		return err
	}
	semesterID, code, err := parseSubject(args)
	if err != nil {
		return err
	}
	index, err := parseUnitIndex(args[2])
	if err != nil {
		return err
	}

	if err := svc.Syllabus.DeleteUnit(commandContext(cmd), semesterID, code, index); err != nil {
		return fmt.Errorf("failed to delete unit: %w", err)
	}
	cmd.Printf("Deleted unit %d of %s\n", index+1, code)
	return nil
}

func runSubjectRename(cmd *cobra.Command, args []string) error {
	svc, err := requireServices()
	if err != nil {
		return err
	}
	semesterID, code, err := parseSubject(args)
	if err != nil {
		return err
	}

	name := args[2]
	err = svc.Syllabus.UpdateSubject(commandContext(cmd), semesterID, code, domain.SubjectUpdate{Name: &name})
	if err != nil {
		return fmt.Errorf("failed to rename subject: %w", err)
	}
	cmd.Printf("Renamed %s to %s\n", code, name)
	return nil
}

func runSubjectCredits(cmd *cobra.Command, args []string) error {
	svc, err := requireServices()
	if err != nil {
		return err
	}
	semesterID, code, err := parseSubject(args)
	if err != nil {
		return err
	}

	credits, err := strconv.Atoi(args[2])
	if err != nil {
		return invalidArg("credits", args[2])
	}
	err = svc.Syllabus.UpdateSubject(commandContext(cmd), semesterID, code, domain.SubjectUpdate{Credits: &credits})
	if err != nil {
		return fmt.Errorf("failed to set credits: %w", err)
	}
	cmd.Printf("%s now has %d credits\n", code, credits)
	return nil
}

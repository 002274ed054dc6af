package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/syllabus-cli/internal/core/domain"
)

var pdfsCmd = &cobra.Command{
	Use:   "pdfs",
	Short: "Manage PDF references",
	Long: `List, add, update, or delete the PDF resources attached to subjects.

A PDF is stored as a reference: a name, a file path or URL, and an optional
description. The files themselves are never read.`,
}

var pdfsListCmd = &cobra.Command{
	Use:   "list [semester] [code]",
	Short: "List PDFs for a subject",
	Args:  cobra.ExactArgs(2),
	RunE:  runPDFsList,
}

var pdfsAddCmd = &cobra.Command{
	Use:   "add [semester] [code]",
	Short: "Attach a PDF reference to a subject",
	Args:  cobra.ExactArgs(2),
	RunE:  runPDFsAdd,
}

var pdfsUpdateCmd = &cobra.Command{
	Use:   "update [pdf-id]",
	Short: "Edit a PDF reference",
	Args:  cobra.ExactArgs(1),
	RunE:  runPDFsUpdate,
}

var pdfsDeleteCmd = &cobra.Command{
	Use:   "delete [pdf-id]",
	Short: "Remove a PDF reference",
	Args:  cobra.ExactArgs(1),
	RunE:  runPDFsDelete,
}

var (
	pdfName        string
	pdfLocation    string
	pdfDescription string
)

func init() {
	for _, c := range []*cobra.Command{pdfsAddCmd, pdfsUpdateCmd} {
		c.Flags().StringVarP(&pdfName, "name", "n", "", "Display name")
		c.Flags().StringVarP(&pdfLocation, "location", "l", "", "File path or URL")
		c.Flags().StringVarP(&pdfDescription, "description", "d", "", "Description")
	}

	pdfsCmd.AddCommand(pdfsListCmd)
	pdfsCmd.AddCommand(pdfsAddCmd)
	pdfsCmd.AddCommand(pdfsUpdateCmd)
	pdfsCmd.AddCommand(pdfsDeleteCmd)
	rootCmd.AddCommand(pdfsCmd)
}

func runPDFsList(cmd *cobra.Command, args []string) error {
	svc, err := requireServices()
	if err != nil {
		return err
	}
	semesterID, code, err := parseSubject(args)
	if err != nil {
		return err
	}

	pdfs, err := svc.PDFs.PDFsForSubject(commandContext(cmd), code, semesterID)
	if err != nil {
		return fmt.Errorf("failed to list PDFs: %w", err)
	}

	if len(pdfs) == 0 {
		cmd.Printf("No PDFs for %s\n", code)
		return nil
	}
	for i := range pdfs {
		cmd.Printf("  %s\n", pdfs[i].ID)
		cmd.Printf("    Name: %s\n", pdfs[i].Name)
		cmd.Printf("    Location: %s\n", pdfs[i].Location)
		if pdfs[i].Description != "" {
			cmd.Printf("    Description: %s\n", pdfs[i].Description)
		}
		cmd.Println()
	}
	cmd.Printf("Total: %s\n", plural(len(pdfs), "PDF"))
	return nil
}

func runPDFsAdd(cmd *cobra.Command, args []string) error {
	svc, err := requireServices()
	if err != nil {
		return err
	}
	semesterID, code, err := parseSubject(args)
	if err != nil {
		return err
	}
	ctx := commandContext(cmd)

	if _, err := svc.Syllabus.Subject(ctx, semesterID, code); err != nil {
		return err
	}

	pdf, err := svc.PDFs.AddPDF(ctx, domain.PDFInput{
		Name:        pdfName,
		Location:    pdfLocation,
		Description: pdfDescription,
		SubjectCode: code,
		SemesterID:  semesterID,
	})
	if err != nil {
		return fmt.Errorf("failed to add PDF: %w", err)
	}
	cmd.Printf("Added PDF %s\n", pdf.ID)
	return nil
}

func runPDFsUpdate(cmd *cobra.Command, args []string) error {
	svc, err := requireServices()
	if err != nil {
		return err
	}

	var update domain.PDFUpdate
	if cmd.Flags().Changed("name") {
		update.Name = &pdfName
	}
	if cmd.Flags().Changed("location") {
		update.Location = &pdfLocation
	}
	if cmd.Flags().Changed("description") {
		update.Description = &pdfDescription
	}
	if update.Name == nil && update.Location == nil && update.Description == nil {
		return fmt.Errorf("%w: nothing to update", domain.ErrInvalidInput)
	}

	pdf, err := svc.PDFs.UpdatePDF(commandContext(cmd), args[0], update)
	if err != nil {
		return fmt.Errorf("failed to update PDF: %w", err)
	}
	cmd.Printf("Updated PDF %s\n", pdf.ID)
	return nil
}

func runPDFsDelete(cmd *cobra.Command, args []string) error {
	svc, err := requireServices()
	if err != nil {
		return err
	}

	if err := svc.PDFs.DeletePDF(commandContext(cmd), args[0]); err != nil {
		return fmt.Errorf("failed to delete PDF: %w", err)
	}
	cmd.Printf("Removed PDF %s\n", args[0])
	return nil
}

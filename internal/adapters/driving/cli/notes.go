package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/syllabus-cli/internal/core/domain"
)

var notesCmd = &cobra.Command{
	Use:   "notes",
	Short: "Manage subject notes",
	Long:  `List, write, edit, delete, show, or search the notes attached to subjects.`,
}

var notesListCmd = &cobra.Command{
	Use:   "list [semester] [code]",
	Short: "List notes for a subject",
	Args:  cobra.ExactArgs(2),
	RunE:  runNotesList,
}

var notesAddCmd = &cobra.Command{
	Use:   "add [semester] [code]",
	Short: "Write a note for a subject",
	Args:  cobra.ExactArgs(2),
	RunE:  runNotesAdd,
}

var notesUpdateCmd = &cobra.Command{
	Use:   "update [note-id]",
	Short: "Edit a note",
	Args:  cobra.ExactArgs(1),
	RunE:  runNotesUpdate,
}

var notesDeleteCmd = &cobra.Command{
	Use:   "delete [note-id]",
	Short: "Delete a note",
	Args:  cobra.ExactArgs(1),
	RunE:  runNotesDelete,
}

var notesShowCmd = &cobra.Command{
	Use:   "show [note-id]",
	Short: "Print a note",
	Args:  cobra.ExactArgs(1),
	RunE:  runNotesShow,
}

var notesSearchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search notes by title and content",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runNotesSearch,
}

var (
	noteTitle   string
	noteContent string
)

func init() {
	for _, c := range []*cobra.Command{notesAddCmd, notesUpdateCmd} {
		c.Flags().StringVarP(&noteTitle, "title", "t", "", "Note title")
		c.Flags().StringVarP(&noteContent, "content", "c", "", "Note content")
	}

	notesCmd.AddCommand(notesListCmd)
	notesCmd.AddCommand(notesAddCmd)
	notesCmd.AddCommand(notesUpdateCmd)
	notesCmd.AddCommand(notesDeleteCmd)
	notesCmd.AddCommand(notesShowCmd)
	notesCmd.AddCommand(notesSearchCmd)
	rootCmd.AddCommand(notesCmd)
}

func runNotesList(cmd *cobra.Command, args []string) error {
	svc, err := requireServices()
	if err != nil {
		return err
	}
	semesterID, code, err := parseSubject(args)
	if err != nil {
		return err
	}

	notes, err := svc.Notes.NotesForSubject(commandContext(cmd), code, semesterID)
	if err != nil {
		return fmt.Errorf("failed to list notes: %w", err)
	}

	if len(notes) == 0 {
		cmd.Printf("No notes for %s\n", code)
		return nil
	}
	printNotes(cmd, notes)
	return nil
}

func runNotesAdd(cmd *cobra.Command, args []string) error {
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

	note, err := svc.Notes.AddNote(ctx, domain.NoteInput{
		Title:       noteTitle,
		Content:     noteContent,
		SubjectCode: code,
		SemesterID:  semesterID,
	})
	if err != nil {
		return fmt.Errorf("failed to add note: %w", err)
	}
	cmd.Printf("Added note %s\n", note.ID)
	return nil
}

func runNotesUpdate(cmd *cobra.Command, args []string) error {
	svc, err := requireServices()
	if err != nil {
		return err
	}

	var update domain.NoteUpdate
	if cmd.Flags().Changed("title") {
		update.Title = &noteTitle
	}
	if cmd.Flags().Changed("content") {
		update.Content = &noteContent
	}
	if update.Title == nil && update.Content == nil {
		return fmt.Errorf("%w: nothing to update, pass --title or --content", domain.ErrInvalidInput)
	}

	note, err := svc.Notes.UpdateNote(commandContext(cmd), args[0], update)
	if err != nil {
		return fmt.Errorf("failed to update note: %w", err)
	}
	cmd.Printf("Updated note %s\n", note.ID)
	return nil
}

func runNotesDelete(cmd *cobra.Command, args []string) error {
	svc, err := requireServices()
	if err != nil {
		return err
	}

	if err := svc.Notes.DeleteNote(commandContext(cmd), args[0]); err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	cmd.Printf("Deleted note %s\n", args[0])
	return nil
}

func runNotesShow(cmd *cobra.Command, args []string) error {
	svc, err := requireServices()
	if err != nil {
		return err
	}

	note, err := svc.Notes.Note(commandContext(cmd), args[0])
	if err != nil {
		return err
	}

	cmd.Printf("%s\n", note.Title)
	cmd.Printf("Subject: %s (semester %d)\n", note.SubjectCode, note.SemesterID)
	cmd.Printf("Created: %s\n", note.CreatedAt.Format("2006-01-02 15:04"))
	if !note.UpdatedAt.Equal(note.CreatedAt) {
		cmd.Printf("Updated: %s\n", note.UpdatedAt.Format("2006-01-02 15:04"))
	}
	cmd.Println()
	cmd.Println(note.Content)
	return nil
}

func runNotesSearch(cmd *cobra.Command, args []string) error {
	svc, err := requireServices()
	if err != nil {
		return err
	}

	query := strings.Join(args, " ")
	notes, err := svc.Notes.SearchNotes(commandContext(cmd), query)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if len(notes) == 0 {
		cmd.Printf("No notes match %q\n", query)
		return nil
	}
	printNotes(cmd, notes)
	return nil
}

func printNotes(cmd *cobra.Command, notes []domain.Note) {
	for i := range notes {
		cmd.Printf("  %s\n", notes[i].ID)
		cmd.Printf("    Title: %s\n", notes[i].Title)
		cmd.Printf("    Subject: %s (semester %d)\n", notes[i].SubjectCode, notes[i].SemesterID)
		cmd.Println()
	}
	cmd.Printf("Total: %s\n", plural(len(notes), "note"))
}

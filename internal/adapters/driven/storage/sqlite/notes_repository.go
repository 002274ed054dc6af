package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/custodia-labs/syllabus-cli/internal/core/domain"
	"github.com/custodia-labs/syllabus-cli/internal/core/ports/driven"
)

// noteRepository implements driven.NoteRepository.
type noteRepository struct {
	store *Store
}

var _ driven.NoteRepository = (*noteRepository)(nil)

// Load reads all notes in creation order.
func (r *noteRepository) Load(ctx context.Context) ([]domain.Note, error) {
	rows, err := r.store.db.QueryContext(ctx, `
		SELECT id, subject_code, semester_id, title, content, created_at, updated_at
		FROM notes ORDER BY seq
	`)
	if err != nil {
		return nil, fmt.Errorf("querying notes: %w", err)
	}
	defer rows.Close()

	var notes []domain.Note //nolint:prealloc // size unknown from query
	for rows.Next() {
		var n domain.Note
		if err := rows.Scan(&n.ID, &n.SubjectCode, &n.SemesterID, &n.Title, &n.Content,
			&n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning note: %w", err)
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating notes: %w", err)
	}
	return notes, nil
}

// Save replaces all notes, keeping slice order.
func (r *noteRepository) Save(ctx context.Context, notes []domain.Note) error {
	return r.store.replace(ctx, []string{"notes"}, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, `
			INSERT INTO notes (id, seq, subject_code, semester_id, title, content, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`)
		if err != nil {
			return fmt.Errorf("preparing statement: %w", err)
		}
		defer stmt.Close()

		for seq, n := range notes {
			if _, err := stmt.ExecContext(ctx, n.ID, seq, n.SubjectCode, n.SemesterID,
				n.Title, n.Content, n.CreatedAt, n.UpdatedAt); err != nil {
				return fmt.Errorf("saving note %s: %w", n.ID, err)
			}
		}
		return nil
	})
}

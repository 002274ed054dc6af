package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/custodia-labs/syllabus-cli/internal/core/domain"
	"github.com/custodia-labs/syllabus-cli/internal/core/ports/driven"
)

// pdfRepository implements driven.PDFRepository.
type pdfRepository struct {
	store *Store
}

var _ driven.PDFRepository = (*pdfRepository)(nil)

// Load reads all PDF references in creation order.
func (r *pdfRepository) Load(ctx context.Context) ([]domain.PDFResource, error) {
	rows, err := r.store.db.QueryContext(ctx, `
		SELECT id, subject_code, semester_id, name, location, description, created_at, updated_at
		FROM pdfs ORDER BY seq
	`)
	if err != nil {
		return nil, fmt.Errorf("querying pdfs: %w", err)
	}
	defer rows.Close()

	var pdfs []domain.PDFResource //nolint:prealloc // size unknown from query
	for rows.Next() {
		var p domain.PDFResource
		if err := rows.Scan(&p.ID, &p.SubjectCode, &p.SemesterID, &p.Name, &p.Location,
			&p.Description, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning pdf: %w", err)
		}
		pdfs = append(pdfs, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating pdfs: %w", err)
	}
	return pdfs, nil
}

// Save replaces all PDF references, keeping slice order.
func (r *pdfRepository) Save(ctx context.Context, pdfs []domain.PDFResource) error {
	return r.store.replace(ctx, []string{"pdfs"}, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, `
			INSERT INTO pdfs (id, seq, subject_code, semester_id, name, location, description, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`)
		if err != nil {
			return fmt.Errorf("preparing statement: %w", err)
		}
		defer stmt.Close()

		for seq, p := range pdfs {
			if _, err := stmt.ExecContext(ctx, p.ID, seq, p.SubjectCode, p.SemesterID,
				p.Name, p.Location, p.Description, p.CreatedAt, p.UpdatedAt); err != nil {
				return fmt.Errorf("saving pdf %s: %w", p.ID, err)
			}
		}
		return nil
	})
}

package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/custodia-labs/syllabus-cli/internal/core/domain"
	"github.com/custodia-labs/syllabus-cli/internal/core/ports/driven"
)

// syllabusRepository implements driven.SyllabusRepository.
type syllabusRepository struct {
	store *Store
}

var _ driven.SyllabusRepository = (*syllabusRepository)(nil)

// Load reads every semester with its subjects and units in stored order.
func (r *syllabusRepository) Load(ctx context.Context) ([]domain.Semester, error) {
	db := r.store.db

	rows, err := db.QueryContext(ctx, `
		SELECT id, name, total_credits FROM semesters ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("querying semesters: %w", err)
	}
	var semesters []domain.Semester //nolint:prealloc // size unknown from query
	index := make(map[int]int)
	for rows.Next() {
		var sem domain.Semester
		if err := rows.Scan(&sem.ID, &sem.Name, &sem.TotalCredits); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning semester: %w", err)
		}
		index[sem.ID] = len(semesters)
		semesters = append(semesters, sem)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating semesters: %w", err)
	}

	if err := r.loadSubjects(ctx, semesters, index); err != nil {
		return nil, err
	}
	if err := r.loadUnits(ctx, semesters, index); err != nil {
		return nil, err
	}
	return semesters, nil
}

func (r *syllabusRepository) loadSubjects(ctx context.Context, semesters []domain.Semester, index map[int]int) error {
	rows, err := r.store.db.QueryContext(ctx, `
		SELECT semester_id, code, name, credits FROM subjects ORDER BY semester_id, position
	`)
	if err != nil {
		return fmt.Errorf("querying subjects: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var semesterID int
		var subj domain.Subject
		if err := rows.Scan(&semesterID, &subj.Code, &subj.Name, &subj.Credits); err != nil {
			return fmt.Errorf("scanning subject: %w", err)
		}
		i, ok := index[semesterID]
		if !ok {
			continue
		}
		semesters[i].Subjects = append(semesters[i].Subjects, subj)
	}
	return rows.Err()
}

func (r *syllabusRepository) loadUnits(ctx context.Context, semesters []domain.Semester, index map[int]int) error {
	rows, err := r.store.db.QueryContext(ctx, `
		SELECT semester_id, subject_code, title, content
		FROM units ORDER BY semester_id, subject_code, position
	`)
	if err != nil {
		return fmt.Errorf("querying units: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var semesterID int
		var code string
		var unit domain.Unit
		if err := rows.Scan(&semesterID, &code, &unit.Title, &unit.Content); err != nil {
			return fmt.Errorf("scanning unit: %w", err)
		}
		i, ok := index[semesterID]
		if !ok {
			continue
		}
		subj, _, ok := semesters[i].Subject(code)
		if !ok {
			continue
		}
		subj.Units = append(subj.Units, unit)
	}
	return rows.Err()
}

// Save replaces all semesters, subjects and units.
func (r *syllabusRepository) Save(ctx context.Context, semesters []domain.Semester) error {
	return r.store.replace(ctx, []string{"units", "subjects", "semesters"}, func(tx *sql.Tx) error {
		for pos, sem := range semesters {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO semesters (id, name, total_credits, position) VALUES (?, ?, ?, ?)
			`, sem.ID, sem.Name, sem.TotalCredits, pos); err != nil {
				return fmt.Errorf("saving semester %d: %w", sem.ID, err)
			}
			for subjPos, subj := range sem.Subjects {
				if _, err := tx.ExecContext(ctx, `
					INSERT INTO subjects (semester_id, code, name, credits, position) VALUES (?, ?, ?, ?, ?)
				`, sem.ID, subj.Code, subj.Name, subj.Credits, subjPos); err != nil {
					return fmt.Errorf("saving subject %s: %w", subj.Code, err)
				}
				for unitPos, unit := range subj.Units {
					if _, err := tx.ExecContext(ctx, `
						INSERT INTO units (semester_id, subject_code, position, title, content) VALUES (?, ?, ?, ?, ?)
					`, sem.ID, subj.Code, unitPos, unit.Title, unit.Content); err != nil {
						return fmt.Errorf("saving unit %d of %s: %w", unitPos, subj.Code, err)
					}
				}
			}
		}
		return nil
	})
}

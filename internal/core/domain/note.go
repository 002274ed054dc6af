package domain

import (
	"strings"
	"time"
)

// Note is free text a student attaches to a subject.
// SubjectCode and SemesterID form a lookup key, not an owning reference.
type Note struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	SubjectCode string    `json:"subject_code"`
	SemesterID  int       `json:"semester_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BelongsTo reports whether the note is keyed to the given subject.
func (n *Note) BelongsTo(subjectCode string, semesterID int) bool {
	return n.SubjectCode == subjectCode && n.SemesterID == semesterID
}

// Matches reports whether query occurs in the title or content, ignoring case.
func (n *Note) Matches(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(n.Title), q) ||
		strings.Contains(strings.ToLower(n.Content), q)
}

// NoteInput carries the fields needed to create a note.
type NoteInput struct {
	Title       string `validate:"required,max=200"`
	Content     string `validate:"max=20000"`
	SubjectCode string `validate:"required"`
	SemesterID  int    `validate:"gte=1"`
}

// NoteUpdate is a partial update. Nil fields are left untouched.
type NoteUpdate struct {
	Title   *string `validate:"omitempty,max=200"`
	Content *string `validate:"omitempty,max=20000"`
}

package domain

import "time"

// PDFResource references a PDF by path or URL. The file itself is opaque:
// nothing here reads, parses or renders it.
type PDFResource struct {
	ID          string    `json:"id"`
	SubjectCode string    `json:"subject_code"`
	SemesterID  int       `json:"semester_id"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BelongsTo reports whether the resource is keyed to the given subject.
func (p *PDFResource) BelongsTo(subjectCode string, semesterID int) bool {
	return p.SubjectCode == subjectCode && p.SemesterID == semesterID
}

// PDFInput carries the fields needed to register a PDF resource.
type PDFInput struct {
	Name        string `validate:"required,max=200"`
	Location    string `validate:"required,location"`
	Description string `validate:"max=1000"`
	SubjectCode string `validate:"required"`
	SemesterID  int    `validate:"gte=1"`
}

// PDFUpdate is a partial update. Nil fields are left untouched.
type PDFUpdate struct {
	Name        *string `validate:"omitempty,max=200"`
	Location    *string `validate:"omitempty,location"`
	Description *string `validate:"omitempty,max=1000"`
}

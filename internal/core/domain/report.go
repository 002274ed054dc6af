package domain

import "time"

// SyllabusReport is the printable view of the curriculum handed to a renderer.
type SyllabusReport struct {
	Title       string
	Program     string
	GeneratedAt time.Time

	// IncludeNotes is set when subject notes and PDF references are attached.
	IncludeNotes bool

	Semesters []ReportSemester
}

// ReportSemester is one semester section of a report.
type ReportSemester struct {
	ID           int
	Name         string
	TotalCredits string
	Subjects     []ReportSubject
}

// ReportSubject is one subject with its attachments.
type ReportSubject struct {
	Subject Subject
	Notes   []Note
	PDFs    []PDFResource
}

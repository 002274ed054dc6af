// Package pdf renders syllabus reports as printable A4 documents with gofpdf.
//
// The renderer only writes new documents. It never opens or parses the PDF
// files that subjects reference.
package pdf

import (
	"fmt"
	"io"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/custodia-labs/syllabus-cli/internal/core/domain"
	"github.com/custodia-labs/syllabus-cli/internal/core/ports/driven"
)

// Ensure Renderer implements the interface.
var _ driven.ReportRenderer = (*Renderer)(nil)

const (
	pageWidth  = 190.0
	lineHeight = 6.0
	font       = "Arial"
)

// Renderer lays out a SyllabusReport.
type Renderer struct{}

// NewRenderer constructs a PDF renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Extension returns ".pdf".
func (r *Renderer) Extension() string {
	return ".pdf"
}

// Render writes the report to w.
func (r *Renderer) Render(w io.Writer, report *domain.SyllabusReport) error {
	if report == nil {
		return fmt.Errorf("%w: nil report", domain.ErrInvalidInput)
	}

	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetMargins(10, 15, 10)
	doc.SetAutoPageBreak(true, 15)
	doc.SetTitle(report.Title, true)
	doc.SetCreator(report.Program, true)
	tr := doc.UnicodeTranslatorFromDescriptor("")

	doc.SetFooterFunc(func() {
		doc.SetY(-12)
		doc.SetFont(font, "I", 8)
		doc.CellFormat(0, 8, fmt.Sprintf("Page %d", doc.PageNo()), "", 0, "C", false, 0, "")
	})

	doc.AddPage()
	doc.SetFont(font, "B", 18)
	doc.CellFormat(0, 10, tr(report.Title), "", 1, "C", false, 0, "")
	doc.SetFont(font, "", 11)
	doc.CellFormat(0, 7, tr(report.Program), "", 1, "C", false, 0, "")
	doc.SetFont(font, "", 8)
	doc.CellFormat(0, 6, "Generated "+report.GeneratedAt.Format("2006-01-02 15:04 MST"), "", 1, "C", false, 0, "")
	doc.Ln(4)

	for _, sem := range report.Semesters {
		r.semester(doc, tr, sem, report.IncludeNotes)
	}

	if err := doc.Output(w); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return nil
}

func (r *Renderer) semester(doc *gofpdf.Fpdf, tr func(string) string, sem domain.ReportSemester, notes bool) {
	doc.SetFont(font, "B", 14)
	doc.SetFillColor(230, 236, 245)
	heading := sem.Name
	if sem.TotalCredits != "" {
		heading += "  (" + sem.TotalCredits + ")"
	}
	doc.CellFormat(pageWidth, 9, tr(heading), "", 1, "L", true, 0, "")
	doc.Ln(2)

	if len(sem.Subjects) == 0 {
		doc.SetFont(font, "I", 10)
		doc.CellFormat(pageWidth, lineHeight, "No subjects available", "", 1, "L", false, 0, "")
		doc.Ln(4)
		return
	}

	for _, entry := range sem.Subjects {
		subj := entry.Subject
		doc.SetFont(font, "B", 11)
		doc.CellFormat(pageWidth-25, 7, tr(subj.Code+"  "+subj.Name), "B", 0, "L", false, 0, "")
		doc.CellFormat(25, 7, fmt.Sprintf("%d credits", subj.Credits), "B", 1, "R", false, 0, "")

		doc.SetFont(font, "", 10)
		for i, unit := range subj.Units {
			doc.SetFont(font, "B", 10)
			doc.MultiCell(pageWidth, lineHeight, tr(fmt.Sprintf("Unit %d: %s", i+1, unit.Title)), "", "L", false)
			if strings.TrimSpace(unit.Content) != "" {
				doc.SetFont(font, "", 10)
				doc.MultiCell(pageWidth, lineHeight, tr(unit.Content), "", "L", false)
			}
		}

		if notes {
			r.attachments(doc, tr, entry)
		}
		doc.Ln(3)
	}
}

func (r *Renderer) attachments(doc *gofpdf.Fpdf, tr func(string) string, entry domain.ReportSubject) {
	if len(entry.Notes) > 0 {
		doc.SetFont(font, "B", 9)
		doc.CellFormat(pageWidth, lineHeight, fmt.Sprintf("Notes (%d)", len(entry.Notes)), "", 1, "L", false, 0, "")
		for _, n := range entry.Notes {
			doc.SetFont(font, "BI", 9)
			doc.MultiCell(pageWidth, 5, tr(n.Title), "", "L", false)
			if n.Content != "" {
				doc.SetFont(font, "", 9)
				doc.MultiCell(pageWidth, 5, tr(n.Content), "", "L", false)
			}
		}
	}

	if len(entry.PDFs) > 0 {
		doc.SetFont(font, "B", 9)
		doc.CellFormat(pageWidth, lineHeight, fmt.Sprintf("PDF resources (%d)", len(entry.PDFs)), "", 1, "L", false, 0, "")
		doc.SetFont(font, "", 9)
		for _, p := range entry.PDFs {
			line := p.Name + "  -  " + p.Location
			if p.Description != "" {
				line += "  (" + p.Description + ")"
			}
			doc.MultiCell(pageWidth, 5, tr(line), "", "L", false)
		}
	}
}

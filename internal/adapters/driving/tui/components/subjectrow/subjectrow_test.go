package subjectrow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/syllabus-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/syllabus-cli/internal/core/coordinator"
	"github.com/custodia-labs/syllabus-cli/internal/core/domain"
)

func bio501() coordinator.Row {
	return coordinator.Row{
		Subject:    domain.Subject{Code: "BIO501", Name: "Bioinformatics I", Credits: 4},
		SemesterID: 1,
		NoteCount:  2,
		PDFCount:   1,
	}
}

func TestRow_View(t *testing.T) {
	view := New(nil, bio501()).View(false, 100)

	assert.Contains(t, view, "4 cr")
	assert.Contains(t, view, "BIO501")
	assert.Contains(t, view, "Bioinformatics I")
	assert.Contains(t, view, "2 notes")
	assert.Contains(t, view, "1 PDF")
}

func TestRow_ViewSelected(t *testing.T) {
	assert.Contains(t, New(nil, bio501()).View(true, 100), "> ")
}

func TestRow_ViewTruncatesLongNames(t *testing.T) {
	r := bio501()
	r.Subject.Name = "Next Generation Sequencing Analysis and Applications"
	view := New(nil, r).View(false, 50)
	assert.Contains(t, view, "...")
}

func TestRow_Actions(t *testing.T) {
	row := New(nil, bio501())
	assert.Equal(t, "BIO501", row.Code())

	tests := []struct {
		name string
		cmd  func() messages.Dispatch
		want coordinator.Event
	}{
		{"read", func() messages.Dispatch { return row.Read()().(messages.Dispatch) },
			coordinator.ReadSubject{Code: "BIO501", SemesterID: 1}},
		{"notes", func() messages.Dispatch { return row.ViewNotes()().(messages.Dispatch) },
			coordinator.ViewNotes{Code: "BIO501", SemesterID: 1}},
		{"pdfs", func() messages.Dispatch { return row.ViewPDFs()().(messages.Dispatch) },
			coordinator.ViewPDFs{Code: "BIO501", SemesterID: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.cmd()
			require.NotNil(t, msg.Event)
			assert.Equal(t, tt.want, msg.Event)
		})
	}
}

package coordinator

import "github.com/custodia-labs/syllabus-cli/internal/core/domain"

// Reduce returns the state that follows ev. semesters is the current
// curriculum, used to resolve subject codes. Events that cannot be applied
// return s unchanged.
func Reduce(s State, ev Event, semesters []domain.Semester) State {
	next := s
	switch e := ev.(type) {
	case SelectSemester:
		if _, ok := domain.FindSemester(semesters, e.ID); ok {
			next.SelectedSemester = e.ID
		}
	case ToggleTheme:
		next.DarkMode = !s.DarkMode
	case SetTheme:
		next.DarkMode = e.Dark
	case ReadSubject:
		if subj, ok := lookup(semesters, e.SemesterID, e.Code); ok {
			next = open(next, PanelReader, e.SemesterID, subj)
		}
	case ViewNotes:
		// Names resolve against the selected semester, as the list does.
		if subj, ok := lookup(semesters, s.SelectedSemester, e.Code); ok {
			next = open(next, PanelNotes, e.SemesterID, subj)
		}
	case ViewPDFs:
		if subj, ok := lookup(semesters, s.SelectedSemester, e.Code); ok {
			next = open(next, PanelPDFs, e.SemesterID, subj)
		}
	case OpenSyllabus:
		next = openFirst(next, PanelReader, semesters)
	case OpenNotes:
		next = openFirst(next, PanelNotes, semesters)
	case OpenPDFs:
		next = openFirst(next, PanelPDFs, semesters)
	case ReadNote:
		if s.Panel.Kind == PanelNotes && e.Note.BelongsTo(s.Panel.Code, s.Panel.SemesterID) {
			note := e.Note
			next.NoteReader = &note
		}
	case CloseNoteReader:
		next.NoteReader = nil
	case ClosePanel:
		next.Panel = Panel{}
		next.NoteReader = nil
	case RefreshSubject:
		if s.Panel.IsOpen() {
			if subj, ok := lookup(semesters, s.Panel.SemesterID, s.Panel.Code); ok {
				next.Panel.Name = subj.Name
				if s.Panel.Kind == PanelReader {
					next.Panel.Subject = subj
				}
			}
		}
	}

	if next.Panel.Kind != PanelNotes {
		next.NoteReader = nil
	}
	return next
}

// open replaces the panel slot. A note reader never survives a panel change.
func open(s State, kind PanelKind, semesterID int, subj domain.Subject) State {
	s.Panel = Panel{
		Kind:       kind,
		SemesterID: semesterID,
		Code:       subj.Code,
		Name:       subj.Name,
	}
	if kind == PanelReader {
		s.Panel.Subject = subj
	}
	s.NoteReader = nil
	return s
}

// openFirst opens kind on the first subject of the selected semester, or
// does nothing when the semester has no subjects.
func openFirst(s State, kind PanelKind, semesters []domain.Semester) State {
	sem, ok := domain.FindSemester(semesters, s.SelectedSemester)
	if !ok || !sem.HasSubjects() {
		return s
	}
	return open(s, kind, sem.ID, sem.Subjects[0].Clone())
}

func lookup(semesters []domain.Semester, semesterID int, code string) (domain.Subject, bool) {
	sem, ok := domain.FindSemester(semesters, semesterID)
	if !ok {
		return domain.Subject{}, false
	}
	subj, _, ok := sem.Subject(code)
	if !ok {
		return domain.Subject{}, false
	}
	return subj.Clone(), true
}

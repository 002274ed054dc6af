package domain

// Semester is an ordered group of subjects.
type Semester struct {
	// ID is the semester number (1-based in the bundled curriculum).
	ID int `json:"id"`

	// Name is the display name, e.g. "Semester I".
	Name string `json:"name"`

	// TotalCredits is a display string such as "22 Credits".
	TotalCredits string `json:"total_credits"`

	// Subjects are kept in curriculum order.
	Subjects []Subject `json:"subjects"`
}

// Subject returns the subject with the given code and its position.
func (s *Semester) Subject(code string) (*Subject, int, bool) {
	for i := range s.Subjects {
		if s.Subjects[i].Code == code {
			return &s.Subjects[i], i, true
		}
	}
	return nil, -1, false
}

// HasSubjects reports whether the semester lists at least one subject.
func (s *Semester) HasSubjects() bool {
	return s != nil && len(s.Subjects) > 0
}

// Clone returns a deep copy of the semester.
func (s Semester) Clone() Semester {
	out := s
	if s.Subjects != nil {
		out.Subjects = make([]Subject, len(s.Subjects))
		for i := range s.Subjects {
			out.Subjects[i] = s.Subjects[i].Clone()
		}
	}
	return out
}

// Subject is a course taught within a semester.
type Subject struct {
	// Code is unique within its semester, e.g. "BIO501".
	Code string `json:"code"`

	// Name is the course title.
	Name string `json:"name"`

	// Credits is the credit value shown on the badge.
	Credits int `json:"credits"`

	// Units are the curriculum sub-topics in teaching order.
	Units []Unit `json:"units"`
}

// Clone returns a deep copy of the subject.
func (s Subject) Clone() Subject {
	out := s
	if s.Units != nil {
		out.Units = make([]Unit, len(s.Units))
		copy(out.Units, s.Units)
	}
	return out
}

// Apply merges the non-nil fields of u into the subject.
func (s *Subject) Apply(u SubjectUpdate) {
	if u.Name != nil {
		s.Name = *u.Name
	}
	if u.Credits != nil {
		s.Credits = *u.Credits
	}
	if u.Units != nil {
		s.Units = make([]Unit, len(u.Units))
		copy(s.Units, u.Units)
	}
}

// SubjectUpdate is a partial update. Nil fields are left untouched.
type SubjectUpdate struct {
	Name    *string
	Credits *int
	Units   []Unit
}

// IsEmpty reports whether the update changes nothing.
func (u SubjectUpdate) IsEmpty() bool {
	return u.Name == nil && u.Credits == nil && u.Units == nil
}

// Unit is a curriculum sub-topic of a subject.
type Unit struct {
	Title   string `json:"title" validate:"required,max=200"`
	Content string `json:"content" validate:"max=4000"`
}

// CloneSemesters deep-copies a semester list.
func CloneSemesters(in []Semester) []Semester {
	if in == nil {
		return nil
	}
	out := make([]Semester, len(in))
	for i := range in {
		out[i] = in[i].Clone()
	}
	return out
}

// FindSemester returns the semester with the given ID.
func FindSemester(semesters []Semester, id int) (*Semester, bool) {
	for i := range semesters {
		if semesters[i].ID == id {
			return &semesters[i], true
		}
	}
	return nil, false
}

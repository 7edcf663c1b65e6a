package academic

// Course is a single graded course. GPAValue is the grade-point value taken
// from the grading system that was active when the course was added and is
// never recomputed afterwards.
type Course struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Grade    string  `json:"grade"`
	Credits  float64 `json:"credits"`
	GPAValue float64 `json:"gpaValue"`
}

// Validate checks the numeric invariants of a course that was not built by
// the store, e.g. one read back from storage.
func (c Course) Validate() error {
	if !isFinite(c.Credits) || c.Credits <= 0 {
		return invalid("credits", "course %d has non-positive credits %v", c.ID, c.Credits)
	}
	if !isFinite(c.GPAValue) || c.GPAValue < 0 || c.GPAValue > MaxGradePoints {
		return invalid("gpaValue", "course %d has grade points %v outside [0, %v]", c.ID, c.GPAValue, MaxGradePoints)
	}
	return nil
}

// Semester groups courses in the order they were added
type Semester struct {
	ID      int64    `json:"id"`
	Name    string   `json:"name"`
	Courses []Course `json:"courses"`
}

// Record is the persisted aggregate: all semesters plus the active grading system
type Record struct {
	Semesters     []Semester      `json:"semesters"`
	GradingSystem GradingSystemID `json:"gradingSystem"`
}

// Clone returns a deep copy so callers can hand records to other layers
// without sharing slices with the store.
func (r *Record) Clone() *Record {
	if r == nil {
		return nil
	}
	out := &Record{
		Semesters:     make([]Semester, len(r.Semesters)),
		GradingSystem: r.GradingSystem,
	}
	for i, s := range r.Semesters {
		out.Semesters[i] = Semester{
			ID:      s.ID,
			Name:    s.Name,
			Courses: append([]Course{}, s.Courses...),
		}
	}
	return out
}

// maxID returns the largest semester or course id in the record
func (r *Record) maxID() int64 {
	var max int64
	for _, s := range r.Semesters {
		if s.ID > max {
			max = s.ID
		}
		for _, c := range s.Courses {
			if c.ID > max {
				max = c.ID
			}
		}
	}
	return max
}

package academic

// SemesterSummary holds the derived display values of one semester
type SemesterSummary struct {
	Index   int     `json:"index"`
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	GPA     float64 `json:"gpa"`
	Credits float64 `json:"credits"`
	Courses int     `json:"courses"`
}

// Summary holds the derived display values of a whole record
type Summary struct {
	GradingSystem GradingSystemID   `json:"grading_system"`
	CumulativeGPA float64           `json:"cumulative_gpa"`
	TotalCredits  float64           `json:"total_credits"`
	Semesters     []SemesterSummary `json:"semesters"`
}

// Summarize runs the GPA engine over every semester of r
func Summarize(r *Record) Summary {
	sum := Summary{
		GradingSystem: r.GradingSystem,
		CumulativeGPA: CumulativeGPA(r),
		TotalCredits:  TotalCredits(r),
		Semesters:     make([]SemesterSummary, len(r.Semesters)),
	}
	for i, s := range r.Semesters {
		sum.Semesters[i] = SemesterSummary{
			Index:   i,
			ID:      s.ID,
			Name:    s.Name,
			GPA:     SemesterGPA(s),
			Credits: SemesterCredits(s),
			Courses: len(s.Courses),
		}
	}
	return sum
}

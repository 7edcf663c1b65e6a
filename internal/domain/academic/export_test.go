package academic

import "testing"

func TestExportText(t *testing.T) {
	record := &Record{
		GradingSystem: SystemUS,
		Semesters: []Semester{
			{Name: "Fall 2026", Courses: []Course{
				{Name: "Calculus", Grade: "A", Credits: 4, GPAValue: 4.0},
				{Name: "History", Grade: "B", Credits: 3, GPAValue: 3.0},
			}},
			{Name: "Spring 2027", Courses: []Course{
				{Name: "Lab", Grade: "C+", Credits: 1.5, GPAValue: 2.3},
			}},
		},
	}

	want := "GPA Calculator Data\n\n" +
		"Cumulative GPA: 3.35\n" +
		"Total Credits: 8.5\n\n" +
		"Semesters:\n" +
		"Fall 2026 - GPA: 3.57\n" +
		"  Calculus: A (4 credits)\n" +
		"  History: B (3 credits)\n\n" +
		"Spring 2027 - GPA: 2.30\n" +
		"  Lab: C+ (1.5 credits)"

	if got := ExportText(record); got != want {
		t.Errorf("Unexpected export text:\n%s\nwant:\n%s", got, want)
	}
}

func TestExportText_EmptySemester(t *testing.T) {
	record := &Record{Semesters: []Semester{{Name: "Fall 2026", Courses: []Course{}}}}

	want := "GPA Calculator Data\n\nCumulative GPA: 0.00\nTotal Credits: 0.0\n\nSemesters:\nFall 2026 - GPA: 0.00\n"
	if got := ExportText(record); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

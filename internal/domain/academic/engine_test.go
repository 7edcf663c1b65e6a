package academic

import (
	"errors"
	"math"
	"testing"
)

const epsilon = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func course(gp, credits float64) Course {
	return Course{Name: "c", Grade: "X", GPAValue: gp, Credits: credits}
}

func TestSemesterGPA_Empty(t *testing.T) {
	if got := SemesterGPA(Semester{}); got != 0 {
		t.Errorf("Expected 0 for empty semester, got %v", got)
	}
}

func TestSemesterGPA_ZeroCredits(t *testing.T) {
	sem := Semester{Courses: []Course{course(4.0, 0)}}
	if got := SemesterGPA(sem); got != 0 {
		t.Errorf("Expected 0 for semester without credits, got %v", got)
	}
}

func TestCourse_Validate(t *testing.T) {
	if err := course(3.3, 3).Validate(); err != nil {
		t.Errorf("Expected valid course, got %v", err)
	}
	bad := []Course{
		course(4.0, 0),
		course(4.0, -1),
		course(4.0, math.Inf(1)),
		course(4.5, 3),
		course(-0.5, 3),
		course(math.NaN(), 3),
	}
	for _, c := range bad {
		if err := c.Validate(); !errors.Is(err, ErrValidation) {
			t.Errorf("Expected validation error for %+v, got %v", c, err)
		}
	}
}

func TestSemesterGPA_WeightedAverage(t *testing.T) {
	sem := Semester{Courses: []Course{course(4.0, 3), course(3.0, 4), course(2.0, 1)}}

	want := (4.0*3 + 3.0*4 + 2.0*1) / 8
	if got := SemesterGPA(sem); !approx(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestSemesterGPA_ScaleInvariant(t *testing.T) {
	base := []Course{course(3.7, 3), course(2.3, 4.5), course(4.0, 1)}
	for _, factor := range []float64{0.5, 2, 10, 123.25} {
		scaled := make([]Course, len(base))
		for i, c := range base {
			c.Credits *= factor
			scaled[i] = c
		}
		a := SemesterGPA(Semester{Courses: base})
		b := SemesterGPA(Semester{Courses: scaled})
		if !approx(a, b) {
			t.Errorf("factor %v: expected %v, got %v", factor, a, b)
		}
	}
}

func TestCumulativeGPA_EqualsDirectAverage(t *testing.T) {
	record := &Record{Semesters: []Semester{
		{Courses: []Course{course(4.0, 3), course(2.7, 4)}},
		{Courses: []Course{}},
		{Courses: []Course{course(3.3, 2.5), course(1.0, 1), course(0, 3)}},
	}}

	var points, credits float64
	for _, s := range record.Semesters {
		for _, c := range s.Courses {
			points += c.GPAValue * c.Credits
			credits += c.Credits
		}
	}

	if got := CumulativeGPA(record); !approx(got, points/credits) {
		t.Errorf("Expected %v, got %v", points/credits, got)
	}
}

func TestCumulativeGPA_NoCredits(t *testing.T) {
	record := &Record{Semesters: []Semester{{}, {}}}
	if got := CumulativeGPA(record); got != 0 {
		t.Errorf("Expected 0, got %v", got)
	}
}

func TestTotalCredits_Additive(t *testing.T) {
	record := &Record{Semesters: []Semester{
		{Courses: []Course{course(4, 3), course(3, 4)}},
		{Courses: []Course{course(2, 1.5)}},
	}}
	if got := TotalCredits(record); !approx(got, 8.5) {
		t.Fatalf("Expected 8.5, got %v", got)
	}

	record.Semesters[1].Courses = append(record.Semesters[1].Courses, course(1, 2.25))
	if got := TotalCredits(record); !approx(got, 10.75) {
		t.Errorf("Expected 10.75 after adding 2.25 credits, got %v", got)
	}
}

func TestRequiredFutureGPA(t *testing.T) {
	tests := []struct {
		name                                       string
		currentGPA, currentCredits, target, future float64
		want                                       float64
	}{
		{"maintain current", 3.5, 60, 3.5, 30, 3.5},
		{"from zero credits", 0, 0, 4.0, 30, 4.0},
		{"unachievable", 3.0, 90, 3.8, 10, 11.0},
		{"already exceeded", 3.9, 100, 2.0, 10, (2.0*110 - 390) / 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RequiredFutureGPA(tt.currentGPA, tt.currentCredits, tt.target, tt.future)
			if !approx(got, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func recordWith(gp, credits float64) *Record {
	return &Record{Semesters: []Semester{{Courses: []Course{course(gp, credits)}}}}
}

func TestPlanTarget_Outcomes(t *testing.T) {
	plan, err := PlanTarget(recordWith(3.0, 90), 3.8, 10)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if plan.Outcome != TargetUnachievable || !approx(plan.RequiredGPA, 11.0) {
		t.Errorf("Expected unachievable 11.0, got %s %v", plan.Outcome, plan.RequiredGPA)
	}

	plan, err = PlanTarget(recordWith(3.5, 60), 3.5, 30)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if plan.Outcome != TargetRequired || !approx(plan.RequiredGPA, 3.5) {
		t.Errorf("Expected required 3.5, got %s %v", plan.Outcome, plan.RequiredGPA)
	}
	want := "To reach a 3.5 GPA with 30 additional credits, you need to maintain a 3.50 GPA in your remaining courses."
	if plan.Message != want {
		t.Errorf("Expected message %q, got %q", want, plan.Message)
	}

	plan, err = PlanTarget(recordWith(4.0, 100), 2.0, 10)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if plan.Outcome != TargetAlreadyAchieved {
		t.Fatalf("Expected already achieved, got %s", plan.Outcome)
	}
	if !approx(plan.FloorGPA, 400.0/110) {
		t.Errorf("Expected floor %v, got %v", 400.0/110, plan.FloorGPA)
	}
}

func TestPlanTarget_InvalidInput(t *testing.T) {
	cases := [][2]float64{
		{3.0, 0},
		{3.0, -5},
		{math.NaN(), 10},
		{3.0, math.Inf(1)},
	}
	for _, c := range cases {
		if _, err := PlanTarget(recordWith(3, 10), c[0], c[1]); !errors.Is(err, ErrValidation) {
			t.Errorf("PlanTarget(%v, %v): expected validation error, got %v", c[0], c[1], err)
		}
	}
}

func TestParseTarget(t *testing.T) {
	gpa, credits, err := ParseTarget(" 3.6 ", "15")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if gpa != 3.6 || credits != 15 {
		t.Errorf("Expected 3.6 and 15, got %v and %v", gpa, credits)
	}

	for _, in := range [][2]string{{"abc", "15"}, {"3.0", "abc"}, {"3.0", "0"}, {"", "10"}, {"NaN", "10"}} {
		if _, _, err := ParseTarget(in[0], in[1]); !errors.Is(err, ErrValidation) {
			t.Errorf("ParseTarget(%q, %q): expected validation error, got %v", in[0], in[1], err)
		}
	}
}

package academic

import (
	"testing"
	"time"
)

func TestGradingSystems_Catalog(t *testing.T) {
	systems := GradingSystems()
	if len(systems) != 4 {
		t.Fatalf("Expected 4 grading systems, got %d", len(systems))
	}

	for _, gs := range systems {
		if len(gs.Grades) == 0 {
			t.Errorf("%s: expected grades", gs.ID)
		}
		for _, g := range gs.Grades {
			if g.Points < 0 || g.Points > MaxGradePoints {
				t.Errorf("%s %s: grade points %v out of range", gs.ID, g.Label, g.Points)
			}
		}
	}

	systems[0].Grades[0].Points = -1
	if fresh := GradingSystems(); fresh[0].Grades[0].Points == -1 {
		t.Error("Expected GradingSystems to return a copy")
	}
}

func TestGradingSystem_ResolveSharedSpelling(t *testing.T) {
	us, _ := LookupSystem("us")
	ects, _ := LookupSystem("ECTS")

	usD, ok := us.Resolve("d")
	if !ok || usD.Points != 1.0 {
		t.Errorf("Expected US D = 1.0, got %v (%v)", usD.Points, ok)
	}
	if _, ok := us.Resolve("E"); ok {
		t.Error("Expected E to be invalid in the US system")
	}
	ectsE, ok := ects.Resolve("e")
	if !ok || ectsE.Points != 0.5 {
		t.Errorf("Expected ECTS E = 0.5, got %v (%v)", ectsE.Points, ok)
	}
}

func TestLookupSystem_Unknown(t *testing.T) {
	if _, ok := LookupSystem("IB"); ok {
		t.Error("Expected IB to be unknown")
	}
}

func TestTermName(t *testing.T) {
	tests := map[time.Month]string{
		time.January:  "Spring 2027",
		time.May:      "Spring 2027",
		time.June:     "Summer 2027",
		time.July:     "Summer 2027",
		time.August:   "Fall 2027",
		time.December: "Fall 2027",
	}
	for month, want := range tests {
		got := TermName(time.Date(2027, month, 10, 0, 0, 0, 0, time.UTC))
		if got != want {
			t.Errorf("%s: expected %q, got %q", month, want, got)
		}
	}
}

func TestIDGenerator_ClockGoesBackwards(t *testing.T) {
	now := time.UnixMilli(5000)
	gen := NewIDGenerator(func() time.Time { return now })

	first := gen.Next()
	now = time.UnixMilli(1000)
	second := gen.Next()

	if first != 5000 || second != 5001 {
		t.Errorf("Expected 5000 then 5001, got %d then %d", first, second)
	}
}

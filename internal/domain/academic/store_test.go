package academic

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

func fixedClock() func() time.Time {
	at := time.Date(2026, time.October, 18, 12, 0, 0, 0, time.UTC)
	return func() time.Time { return at }
}

func usSystem(t *testing.T) GradingSystem {
	t.Helper()
	gs, ok := LookupSystem("US")
	if !ok {
		t.Fatal("US grading system missing from catalog")
	}
	return gs
}

func TestNewStore_DefaultRecord(t *testing.T) {
	store := NewStore(nil, fixedClock())

	if store.Len() != 1 {
		t.Fatalf("Expected 1 semester, got %d", store.Len())
	}
	sem, _ := store.Semester(0)
	if sem.Name != "Fall 2026" {
		t.Errorf("Expected default name %q, got %q", "Fall 2026", sem.Name)
	}
	if store.GradingSystem().ID != SystemUS {
		t.Errorf("Expected US grading system, got %s", store.GradingSystem().ID)
	}
}

func TestStore_AddCourse_CaseInsensitiveGrade(t *testing.T) {
	store := NewStore(nil, fixedClock())

	c, err := store.AddCourse(0, "Calculus", "a", "4", usSystem(t))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if c.Grade != "A" || c.GPAValue != 4.0 || c.Credits != 4 {
		t.Errorf("Unexpected course %+v", c)
	}

	sem, _ := store.Semester(0)
	if len(sem.Courses) != 1 || sem.Courses[0].ID != c.ID {
		t.Errorf("Expected course to be stored, got %+v", sem.Courses)
	}
}

func TestStore_AddCourse_UKLabels(t *testing.T) {
	store := NewStore(nil, fixedClock())
	uk, _ := LookupSystem("UK")

	c, err := store.AddCourse(0, "Essay", "first", "3", uk)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if c.Grade != "First" || c.GPAValue != 4.0 {
		t.Errorf("Expected First/4.0, got %s/%v", c.Grade, c.GPAValue)
	}
}

func TestStore_AddCourse_Rejected(t *testing.T) {
	tests := []struct {
		name, course, grade, credits string
	}{
		{"empty name", "  ", "A", "3"},
		{"empty grade", "Math", "", "3"},
		{"empty credits", "Math", "A", ""},
		{"unknown grade", "Math", "Z", "3"},
		{"negative credits", "Math", "A", "-3"},
		{"zero credits", "Math", "A", "0"},
		{"non numeric credits", "Math", "A", "abc"},
		{"infinite credits", "Math", "A", "Inf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewStore(nil, fixedClock())
			before := store.Record()

			_, err := store.AddCourse(0, tt.course, tt.grade, tt.credits, usSystem(t))
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("Expected validation error, got %v", err)
			}
			if !reflect.DeepEqual(before, store.Record()) {
				t.Error("Expected record to be unchanged")
			}
		})
	}
}

func TestStore_AddCourse_BadIndex(t *testing.T) {
	store := NewStore(nil, fixedClock())
	if _, err := store.AddCourse(3, "Math", "A", "3", usSystem(t)); !errors.Is(err, ErrValidation) {
		t.Errorf("Expected validation error, got %v", err)
	}
}

func TestStore_GradePointsSnapshot(t *testing.T) {
	store := NewStore(nil, fixedClock())
	c, err := store.AddCourse(0, "Physics", "A-", "3", store.GradingSystem())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if _, err := store.SetGradingSystem("ECTS"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	sem, _ := store.Semester(0)
	if sem.Courses[0].GPAValue != 3.7 || sem.Courses[0].Grade != c.Grade {
		t.Errorf("Expected course to keep A-/3.7, got %+v", sem.Courses[0])
	}
	if store.GradingSystem().ID != SystemECTS {
		t.Errorf("Expected ECTS to be active, got %s", store.GradingSystem().ID)
	}
}

func TestStore_SetGradingSystem_Unknown(t *testing.T) {
	store := NewStore(nil, fixedClock())
	if _, err := store.SetGradingSystem("IB"); !errors.Is(err, ErrValidation) {
		t.Errorf("Expected validation error, got %v", err)
	}
}

func TestStore_RemoveCourse(t *testing.T) {
	store := NewStore(nil, fixedClock())
	a, _ := store.AddCourse(0, "A", "A", "3", usSystem(t))
	b, _ := store.AddCourse(0, "B", "B", "3", usSystem(t))

	removed, err := store.RemoveCourse(0, a.ID)
	if err != nil || !removed {
		t.Fatalf("Expected course to be removed, got %v, %v", removed, err)
	}

	removed, err = store.RemoveCourse(0, 12345)
	if err != nil || removed {
		t.Errorf("Expected unknown id to be a no-op, got %v, %v", removed, err)
	}

	sem, _ := store.Semester(0)
	if len(sem.Courses) != 1 || sem.Courses[0].ID != b.ID {
		t.Errorf("Expected only course B to remain, got %+v", sem.Courses)
	}
}

func TestStore_Semesters(t *testing.T) {
	store := NewStore(nil, fixedClock())

	if _, err := store.AddSemester("   "); !errors.Is(err, ErrValidation) {
		t.Errorf("Expected validation error for blank name, got %v", err)
	}

	sem, err := store.AddSemester("  Spring 2027 ")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if sem.Name != "Spring 2027" || store.Len() != 2 {
		t.Errorf("Expected trimmed second semester, got %q and %d semesters", sem.Name, store.Len())
	}

	if err := store.RenameSemester(1, " "); !errors.Is(err, ErrValidation) {
		t.Errorf("Expected validation error for blank rename, got %v", err)
	}
	if err := store.RenameSemester(1, "Summer 2027"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	renamed, _ := store.Semester(1)
	if renamed.Name != "Summer 2027" {
		t.Errorf("Expected renamed semester, got %q", renamed.Name)
	}

	if err := store.DeleteSemester(0); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if store.Len() != 1 {
		t.Fatalf("Expected 1 semester, got %d", store.Len())
	}
}

func TestStore_DeleteLastSemester(t *testing.T) {
	store := NewStore(nil, fixedClock())
	before := store.Record()

	if err := store.DeleteSemester(0); !errors.Is(err, ErrValidation) {
		t.Fatalf("Expected validation error, got %v", err)
	}
	if store.Len() != 1 || !reflect.DeepEqual(before, store.Record()) {
		t.Error("Expected record to be unchanged with exactly one semester")
	}
}

func TestStore_ClearAll(t *testing.T) {
	store := NewStore(nil, fixedClock())
	store.AddSemester("Spring 2027")
	store.AddCourse(1, "Math", "B", "3", usSystem(t))
	store.SetGradingSystem("UK")

	sem := store.ClearAll()

	if store.Len() != 1 || sem.Name != "Fall 2026" || len(sem.Courses) != 0 {
		t.Errorf("Expected one empty default semester, got %d semesters and %+v", store.Len(), sem)
	}
	if store.GradingSystem().ID != SystemUK {
		t.Errorf("Expected grading system to survive clear, got %s", store.GradingSystem().ID)
	}
}

func TestStore_UniqueIDsWithinSameTick(t *testing.T) {
	store := NewStore(nil, fixedClock())
	seen := map[int64]bool{}
	sem, _ := store.Semester(0)
	seen[sem.ID] = true

	for i := 0; i < 50; i++ {
		c, err := store.AddCourse(0, "Course", "B", "3", usSystem(t))
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if seen[c.ID] {
			t.Fatalf("Duplicate id %d", c.ID)
		}
		seen[c.ID] = true
	}
}

func TestNewStore_SeedsIDsFromRecord(t *testing.T) {
	future := fixedClock()().UnixMilli() + 1000
	record := &Record{
		GradingSystem: SystemUS,
		Semesters:     []Semester{{ID: future, Name: "Loaded", Courses: []Course{}}},
	}
	store := NewStore(record, fixedClock())

	sem, err := store.AddSemester("Next")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if sem.ID <= future {
		t.Errorf("Expected id greater than %d, got %d", future, sem.ID)
	}
}

func TestStore_RecordIsACopy(t *testing.T) {
	store := NewStore(nil, fixedClock())
	store.AddCourse(0, "Math", "A", "3", usSystem(t))

	rec := store.Record()
	rec.Semesters[0].Courses[0].GPAValue = 0
	rec.Semesters[0].Name = "changed"

	sem, _ := store.Semester(0)
	if sem.Courses[0].GPAValue != 4.0 || sem.Name == "changed" {
		t.Error("Expected store to be unaffected by changes to a returned record")
	}
}

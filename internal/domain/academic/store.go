package academic

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Store owns the in-memory academic record and applies every mutation to it.
// A failed call never changes the record. Store is not safe for concurrent
// use; hosts that serve several callers must serialize access.
type Store struct {
	record *Record
	ids    *IDGenerator
	now    func() time.Time
}

// NewStore wraps record. A nil record, or one without semesters, is replaced
// by a default record holding one semester named after the current term.
func NewStore(record *Record, now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	s := &Store{
		ids: NewIDGenerator(now),
		now: now,
	}
	if record == nil || len(record.Semesters) == 0 {
		system := DefaultSystem
		if record != nil && record.GradingSystem != "" {
			system = record.GradingSystem
		}
		s.record = &Record{GradingSystem: system}
		s.record.Semesters = []Semester{s.newSemester(s.DefaultSemesterName())}
		return s
	}
	s.record = record.Clone()
	if s.record.GradingSystem == "" {
		s.record.GradingSystem = DefaultSystem
	}
	s.ids.Observe(s.record.maxID())
	return s
}

// DefaultSemesterName names the semester created for an empty record
func (s *Store) DefaultSemesterName() string {
	return TermName(s.now())
}

// Record returns a copy of the current record
func (s *Store) Record() *Record {
	return s.record.Clone()
}

// Len returns the number of semesters
func (s *Store) Len() int {
	return len(s.record.Semesters)
}

// Semester returns a copy of the semester at index
func (s *Store) Semester(index int) (Semester, error) {
	if err := s.checkIndex(index); err != nil {
		return Semester{}, err
	}
	return s.record.Clone().Semesters[index], nil
}

// GradingSystem returns the active grading system
func (s *Store) GradingSystem() GradingSystem {
	gs, ok := LookupSystem(string(s.record.GradingSystem))
	if !ok {
		gs, _ = LookupSystem(string(DefaultSystem))
	}
	return gs
}

// SetGradingSystem switches the active system. Existing courses keep the
// grade points they were created with.
func (s *Store) SetGradingSystem(id string) (GradingSystem, error) {
	gs, ok := LookupSystem(id)
	if !ok {
		return GradingSystem{}, invalid("grading_system", "unknown grading system %q", id)
	}
	s.record.GradingSystem = gs.ID
	return gs, nil
}

// AddCourse validates the raw inputs against system and appends a new course
// to the semester at semesterIndex.
func (s *Store) AddCourse(semesterIndex int, name, gradeLabel, credits string, system GradingSystem) (Course, error) {
	if err := s.checkIndex(semesterIndex); err != nil {
		return Course{}, err
	}
	name = strings.TrimSpace(name)
	gradeLabel = strings.TrimSpace(gradeLabel)
	credits = strings.TrimSpace(credits)
	if name == "" || gradeLabel == "" || credits == "" {
		return Course{}, invalid("", "please fill in all fields")
	}

	grade, ok := system.Resolve(gradeLabel)
	if !ok {
		return Course{}, invalid("grade", "invalid grade for %s. Valid grades: %s",
			system.Name, strings.Join(system.Labels(), ", "))
	}

	creditValue, err := strconv.ParseFloat(credits, 64)
	if err != nil || math.IsNaN(creditValue) || math.IsInf(creditValue, 0) || creditValue <= 0 {
		return Course{}, invalid("credits", "credits must be a positive number")
	}

	course := Course{
		ID:       s.ids.Next(),
		Name:     name,
		Grade:    grade.Label,
		Credits:  creditValue,
		GPAValue: grade.Points,
	}

	sem := &s.record.Semesters[semesterIndex]
	courses := make([]Course, len(sem.Courses), len(sem.Courses)+1)
	copy(courses, sem.Courses)
	sem.Courses = append(courses, course)
	return course, nil
}

// RemoveCourse drops the course with courseID from the semester. It reports
// whether a course was removed; an unknown id is not an error.
func (s *Store) RemoveCourse(semesterIndex int, courseID int64) (bool, error) {
	if err := s.checkIndex(semesterIndex); err != nil {
		return false, err
	}
	sem := &s.record.Semesters[semesterIndex]
	kept := make([]Course, 0, len(sem.Courses))
	for _, c := range sem.Courses {
		if c.ID != courseID {
			kept = append(kept, c)
		}
	}
	removed := len(kept) != len(sem.Courses)
	sem.Courses = kept
	return removed, nil
}

// AddSemester appends an empty semester named name
func (s *Store) AddSemester(name string) (Semester, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Semester{}, invalid("name", "please enter a semester name")
	}
	sem := s.newSemester(name)
	s.record.Semesters = append(s.record.Semesters, sem)
	return sem, nil
}

// RenameSemester sets the name of the semester at index
func (s *Store) RenameSemester(index int, newName string) error {
	if err := s.checkIndex(index); err != nil {
		return err
	}
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return invalid("name", "semester name cannot be empty")
	}
	s.record.Semesters[index].Name = newName
	return nil
}

// DeleteSemester removes the semester at index. The last remaining semester
// cannot be deleted. Callers holding a selected index must clamp it into
// [0, Len()-1] afterwards.
func (s *Store) DeleteSemester(index int) error {
	if err := s.checkIndex(index); err != nil {
		return err
	}
	if len(s.record.Semesters) == 1 {
		return invalid("", "you must have at least one semester")
	}
	semesters := make([]Semester, 0, len(s.record.Semesters)-1)
	semesters = append(semesters, s.record.Semesters[:index]...)
	semesters = append(semesters, s.record.Semesters[index+1:]...)
	s.record.Semesters = semesters
	return nil
}

// ClearAll replaces every semester with a single fresh default semester.
// The active grading system is kept.
func (s *Store) ClearAll() Semester {
	sem := s.newSemester(s.DefaultSemesterName())
	s.record.Semesters = []Semester{sem}
	return sem
}

func (s *Store) newSemester(name string) Semester {
	return Semester{
		ID:      s.ids.Next(),
		Name:    name,
		Courses: []Course{},
	}
}

func (s *Store) checkIndex(index int) error {
	if index < 0 || index >= len(s.record.Semesters) {
		return invalid("semester", "semester index %d out of range [0, %d]", index, len(s.record.Semesters)-1)
	}
	return nil
}

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"gpa-tracker/internal/domain/academic"
	interfaces "gpa-tracker/internal/interfaces/infrastructure"
	servicetypes "gpa-tracker/internal/interfaces/service"
	"gpa-tracker/pkg/logger"
)

const opLoad = "load"

var (
	// ErrPersistence marks a mutation that succeeded in memory but could not be saved
	ErrPersistence = errors.New("persistence failed")
	// ErrExport marks a failure to hand the summary to the sharer
	ErrExport = errors.New("export failed")
)

// PersistenceError is returned alongside a successful mutation whose save
// failed. The in-memory record already reflects the change.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	if e.Op == opLoad {
		return fmt.Sprintf("%s: stored record unavailable, using a default one: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: change kept in memory but not saved: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func (e *PersistenceError) Is(target error) bool {
	return target == ErrPersistence
}

// RecordService is the interactive session around one academic record. It
// applies mutations, mirrors the record to storage after each change and
// tracks which semester is selected. Memory is the source of truth; storage
// is best effort.
type RecordService struct {
	mu      sync.Mutex
	repo    interfaces.RecordRepository
	store   *academic.Store
	current int
	now     func() time.Time
}

// NewRecordService creates a session holding a default record until Load is called
func NewRecordService(repo interfaces.RecordRepository, now func() time.Time) *RecordService {
	if now == nil {
		now = time.Now
	}
	return &RecordService{
		repo:  repo,
		store: academic.NewStore(nil, now),
		now:   now,
	}
}

// Load replaces the session with the stored record. Any failure degrades to
// a default record and is reported as a PersistenceError.
func (s *RecordService) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = 0
	record, err := s.repo.Load(ctx)
	if err != nil {
		logger.Error("Failed to load record, starting with a default one: %v", err)
		s.store = academic.NewStore(nil, s.now)
		return &PersistenceError{Op: opLoad, Err: err}
	}

	s.store = academic.NewStore(record, s.now)
	logger.WithField("semesters", s.store.Len()).Debug("Record loaded")
	return nil
}

// Record returns a copy of the current record
func (s *RecordService) Record() *academic.Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.store.Record()
}

// View returns the record, its summary and the selection from one state
func (s *RecordService) View() servicetypes.RecordView {
	s.mu.Lock()
	defer s.mu.Unlock()

	record := s.store.Record()
	return servicetypes.RecordView{
		Record:        record,
		Summary:       academic.Summarize(record),
		Current:       s.current,
		GradingSystem: s.store.GradingSystem(),
	}
}

// Summary runs the GPA engine over the current record
func (s *RecordService) Summary() academic.Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	return academic.Summarize(s.store.Record())
}

// Current returns the selected semester index
func (s *RecordService) Current() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.current
}

// CurrentSemester returns a copy of the selected semester
func (s *RecordService) CurrentSemester() academic.Semester {
	s.mu.Lock()
	defer s.mu.Unlock()

	sem, _ := s.store.Semester(s.current)
	return sem
}

// Select changes the selected semester
func (s *RecordService) Select(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.store.Semester(index); err != nil {
		return err
	}
	s.current = index
	return nil
}

// GradingSystem returns the active grading system
func (s *RecordService) GradingSystem() academic.GradingSystem {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.store.GradingSystem()
}

// SetGradingSystem switches the system used for future courses
func (s *RecordService) SetGradingSystem(ctx context.Context, id string) (academic.GradingSystem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	gs, err := s.store.SetGradingSystem(id)
	if err != nil {
		return academic.GradingSystem{}, err
	}
	logger.Info("Grading system set to %s", gs.ID)
	return gs, s.save(ctx, "set grading system")
}

// AddCourse adds a course to the semester at semesterIndex, grading it with
// the active system.
func (s *RecordService) AddCourse(ctx context.Context, semesterIndex int, name, grade, credits string) (academic.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	course, err := s.store.AddCourse(semesterIndex, name, grade, credits, s.store.GradingSystem())
	if err != nil {
		return academic.Course{}, err
	}
	logger.WithField("course_id", course.ID).Infof("Course %q added with grade %s", course.Name, course.Grade)
	return course, s.save(ctx, "add course")
}

// RemoveCourse removes a course by id. Unknown ids are ignored and nothing is saved.
func (s *RecordService) RemoveCourse(ctx context.Context, semesterIndex int, courseID int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed, err := s.store.RemoveCourse(semesterIndex, courseID)
	if err != nil || !removed {
		return removed, err
	}
	logger.WithField("course_id", courseID).Info("Course removed")
	return true, s.save(ctx, "remove course")
}

// AddSemester appends a semester and selects it
func (s *RecordService) AddSemester(ctx context.Context, name string) (academic.Semester, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sem, err := s.store.AddSemester(name)
	if err != nil {
		return academic.Semester{}, err
	}
	s.current = s.store.Len() - 1
	logger.Info("Semester %q added", sem.Name)
	return sem, s.save(ctx, "add semester")
}

// RenameSemester renames the semester at index
func (s *RecordService) RenameSemester(ctx context.Context, index int, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.RenameSemester(index, name); err != nil {
		return err
	}
	logger.Info("Semester %d renamed", index)
	return s.save(ctx, "rename semester")
}

// DeleteSemester removes the semester at index and clamps the selection
func (s *RecordService) DeleteSemester(ctx context.Context, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.DeleteSemester(index); err != nil {
		return err
	}
	s.current = clamp(s.current, 0, s.store.Len()-1)
	logger.Info("Semester %d deleted", index)
	return s.save(ctx, "delete semester")
}

// ClearAll resets the record to a single default semester
func (s *RecordService) ClearAll(ctx context.Context) (academic.Semester, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sem := s.store.ClearAll()
	s.current = 0
	logger.Warn("All semesters and courses cleared")
	return sem, s.save(ctx, "clear all")
}

// PlanTarget plans towards a cumulative GPA target over additional credits
func (s *RecordService) PlanTarget(targetGPA, targetCredits float64) (academic.TargetPlan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return academic.PlanTarget(s.store.Record(), targetGPA, targetCredits)
}

// Export renders the summary and hands it to sharer
func (s *RecordService) Export(ctx context.Context, sharer interfaces.Sharer) (string, error) {
	s.mu.Lock()
	text := academic.ExportText(s.store.Record())
	s.mu.Unlock()

	if err := sharer.Share(ctx, academic.ExportTitle, text); err != nil {
		logger.Error("Error exporting data: %v", err)
		return "", fmt.Errorf("%w: %v", ErrExport, err)
	}
	return text, nil
}

// Health reports whether the storage behind the session is reachable
func (s *RecordService) Health(ctx context.Context) error {
	return s.repo.Health(ctx)
}

func (s *RecordService) save(ctx context.Context, op string) error {
	if err := s.repo.Save(ctx, s.store.Record()); err != nil {
		logger.Error("Error saving data after %s: %v", op, err)
		return &PersistenceError{Op: op, Err: err}
	}
	return nil
}

var _ servicetypes.RecordService = (*RecordService)(nil)

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

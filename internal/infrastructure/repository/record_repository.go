package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gpa-tracker/internal/domain/academic"
	interfaces "gpa-tracker/internal/interfaces/infrastructure"
	"gpa-tracker/pkg/logger"
)

// Storage keys of the persisted record
const (
	SemestersKey     = "semesters"
	GradingSystemKey = "gradingSystem"
)

// RecordRepository maps the academic record onto two KV keys: the JSON
// encoded semesters and the active grading-system identifier.
type RecordRepository struct {
	kv            interfaces.KVStore
	defaultSystem academic.GradingSystemID
}

func NewRecordRepository(kv interfaces.KVStore, defaultSystem academic.GradingSystemID) *RecordRepository {
	if _, ok := academic.LookupSystem(string(defaultSystem)); !ok {
		defaultSystem = academic.DefaultSystem
	}
	return &RecordRepository{
		kv:            kv,
		defaultSystem: defaultSystem,
	}
}

// Load reads the record. Missing or unparseable semesters come back as an
// empty list, and an unknown grading system as the default one; only storage
// failures are returned as errors.
func (r *RecordRepository) Load(ctx context.Context) (*academic.Record, error) {
	record := &academic.Record{GradingSystem: r.defaultSystem}

	raw, err := r.kv.Get(ctx, SemestersKey)
	switch {
	case errors.Is(err, interfaces.ErrKeyNotFound):
		logger.Debug("No stored semesters found")
	case err != nil:
		return nil, fmt.Errorf("failed to load semesters: %w", err)
	default:
		semesters, decodeErr := decodeSemesters(raw)
		if decodeErr != nil {
			logger.Warn("Stored semesters are corrupt, starting fresh: %v", decodeErr)
		} else {
			record.Semesters = semesters
		}
	}

	system, err := r.kv.Get(ctx, GradingSystemKey)
	switch {
	case errors.Is(err, interfaces.ErrKeyNotFound):
	case err != nil:
		return nil, fmt.Errorf("failed to load grading system: %w", err)
	default:
		if gs, ok := academic.LookupSystem(system); ok {
			record.GradingSystem = gs.ID
		} else {
			logger.Warn("Unknown stored grading system %q, using %s", system, r.defaultSystem)
		}
	}

	return record, nil
}

// Save writes both keys. The semesters key is written first so a failure
// never leaves a new grading system next to stale semesters.
func (r *RecordRepository) Save(ctx context.Context, record *academic.Record) error {
	data, err := encodeSemesters(record.Semesters)
	if err != nil {
		return fmt.Errorf("failed to encode semesters: %w", err)
	}
	if err := r.kv.Set(ctx, SemestersKey, data); err != nil {
		return fmt.Errorf("failed to save semesters: %w", err)
	}
	if err := r.kv.Set(ctx, GradingSystemKey, string(record.GradingSystem)); err != nil {
		return fmt.Errorf("failed to save grading system: %w", err)
	}
	return nil
}

func (r *RecordRepository) Health(ctx context.Context) error {
	return r.kv.Health(ctx)
}

func encodeSemesters(semesters []academic.Semester) (string, error) {
	if semesters == nil {
		semesters = []academic.Semester{}
	}
	normalized := make([]academic.Semester, len(semesters))
	for i, s := range semesters {
		if s.Courses == nil {
			s.Courses = []academic.Course{}
		}
		normalized[i] = s
	}
	data, err := json.Marshal(normalized)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func decodeSemesters(raw string) ([]academic.Semester, error) {
	var semesters []academic.Semester
	if err := json.Unmarshal([]byte(raw), &semesters); err != nil {
		return nil, err
	}
	for i := range semesters {
		semesters[i].Courses = validCourses(semesters[i])
	}
	return semesters, nil
}

// validCourses drops stored courses that break the course invariants, which
// would otherwise turn GPA sums into NaN.
func validCourses(sem academic.Semester) []academic.Course {
	courses := make([]academic.Course, 0, len(sem.Courses))
	for _, c := range sem.Courses {
		if err := c.Validate(); err != nil {
			logger.Warn("Dropping invalid stored course in %q: %v", sem.Name, err)
			continue
		}
		courses = append(courses, c)
	}
	return courses
}

var _ interfaces.RecordRepository = (*RecordRepository)(nil)

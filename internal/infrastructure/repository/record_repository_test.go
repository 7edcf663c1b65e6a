package repository

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"gpa-tracker/internal/domain/academic"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingStore struct {
	MemoryStore
	err error
}

func (f *failingStore) Get(ctx context.Context, key string) (string, error) {
	return "", f.err
}

func (f *failingStore) Set(ctx context.Context, key, value string) error {
	return f.err
}

func sampleRecord(t *testing.T) *academic.Record {
	t.Helper()
	clock := func() time.Time { return time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC) }
	store := academic.NewStore(nil, clock)
	us := store.GradingSystem()

	_, err := store.AddCourse(0, "Calculus", "A-", "4", us)
	require.NoError(t, err)
	_, err = store.AddSemester("Fall 2026")
	require.NoError(t, err)
	_, err = store.AddCourse(1, "Lab", "b+", "1.5", us)
	require.NoError(t, err)
	_, err = store.SetGradingSystem("ECTS")
	require.NoError(t, err)

	return store.Record()
}

func TestRecordRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryStore(nil)
	repo := NewRecordRepository(kv, academic.SystemUS)
	record := sampleRecord(t)

	require.NoError(t, repo.Save(ctx, record))

	snapshot := kv.Snapshot()
	assert.Equal(t, "ECTS", snapshot[GradingSystemKey])
	assert.Contains(t, snapshot[SemestersKey], `"gpaValue":3.7`)

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, record, loaded)
}

func TestRecordRepository_LoadEmpty(t *testing.T) {
	repo := NewRecordRepository(NewMemoryStore(nil), academic.SystemUK)

	loaded, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, loaded.Semesters)
	assert.Equal(t, academic.SystemUK, loaded.GradingSystem)
}

func TestRecordRepository_LoadCorruptSemesters(t *testing.T) {
	kv := NewMemoryStore(map[string]string{
		SemestersKey:     "{not json",
		GradingSystemKey: "Percentage",
	})
	repo := NewRecordRepository(kv, academic.SystemUS)

	loaded, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, loaded.Semesters)
	assert.Equal(t, academic.SystemPercentage, loaded.GradingSystem)
}

func TestRecordRepository_LoadUnknownSystem(t *testing.T) {
	kv := NewMemoryStore(map[string]string{
		SemestersKey:     `[{"id":1,"name":"Fall 2024","courses":null}]`,
		GradingSystemKey: "IB",
	})
	repo := NewRecordRepository(kv, academic.SystemUS)

	loaded, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, loaded.Semesters, 1)
	assert.NotNil(t, loaded.Semesters[0].Courses)
	assert.Equal(t, academic.SystemUS, loaded.GradingSystem)
}

func TestRecordRepository_StorageFailure(t *testing.T) {
	boom := errors.New("disk on fire")
	repo := NewRecordRepository(&failingStore{err: boom}, academic.SystemUS)

	_, err := repo.Load(context.Background())
	assert.ErrorIs(t, err, boom)

	err = repo.Save(context.Background(), sampleRecord(t))
	assert.ErrorIs(t, err, boom)
}

func TestNewRecordRepository_InvalidDefault(t *testing.T) {
	repo := NewRecordRepository(NewMemoryStore(nil), "IB")

	loaded, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, academic.DefaultSystem, loaded.GradingSystem)
}

func TestRecordRepository_LoadDropsInvalidCourses(t *testing.T) {
	kv := NewMemoryStore(map[string]string{
		SemestersKey: `[{"id":1,"name":"Fall 2024","courses":[
			{"id":10,"name":"Seminar","grade":"A","credits":0,"gpaValue":4},
			{"id":11,"name":"Physics","grade":"B","credits":3,"gpaValue":3},
			{"id":12,"name":"Lab","grade":"A","credits":1,"gpaValue":7.5},
			{"id":13,"name":"Ethics","grade":"C","credits":-2,"gpaValue":2}
		]}]`,
	})
	repo := NewRecordRepository(kv, academic.SystemUS)

	loaded, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, loaded.Semesters, 1)
	require.Len(t, loaded.Semesters[0].Courses, 1)
	assert.Equal(t, int64(11), loaded.Semesters[0].Courses[0].ID)

	gpa := academic.CumulativeGPA(loaded)
	assert.False(t, math.IsNaN(gpa))
	assert.Equal(t, 3.0, gpa)
}

package service

import (
	"context"

	"gpa-tracker/internal/domain/academic"
	infrastructure "gpa-tracker/internal/interfaces/infrastructure"
)

// RecordView is a consistent snapshot of the session taken under one lock
type RecordView struct {
	Record        *academic.Record       `json:"record"`
	Summary       academic.Summary       `json:"summary"`
	Current       int                    `json:"current"`
	GradingSystem academic.GradingSystem `json:"grading_system"`
}

// RecordService is what the HTTP and CLI front ends need from a session
type RecordService interface {
	Record() *academic.Record
	View() RecordView
	Summary() academic.Summary
	Current() int
	Select(index int) error

	GradingSystem() academic.GradingSystem
	SetGradingSystem(ctx context.Context, id string) (academic.GradingSystem, error)

	AddCourse(ctx context.Context, semesterIndex int, name, grade, credits string) (academic.Course, error)
	RemoveCourse(ctx context.Context, semesterIndex int, courseID int64) (bool, error)

	AddSemester(ctx context.Context, name string) (academic.Semester, error)
	RenameSemester(ctx context.Context, index int, name string) error
	DeleteSemester(ctx context.Context, index int) error
	ClearAll(ctx context.Context) (academic.Semester, error)

	PlanTarget(targetGPA, targetCredits float64) (academic.TargetPlan, error)
	Export(ctx context.Context, sharer infrastructure.Sharer) (string, error)

	Health(ctx context.Context) error
}

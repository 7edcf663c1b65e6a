package interfaces

import (
	"context"

	"gpa-tracker/internal/domain/academic"
)

// RecordRepository loads and saves the whole academic record as one unit
type RecordRepository interface {
	Load(ctx context.Context) (*academic.Record, error)
	Save(ctx context.Context, record *academic.Record) error
	Health(ctx context.Context) error
}

// Sharer hands an exported summary to whatever the host uses for sharing
type Sharer interface {
	Share(ctx context.Context, title, message string) error
}

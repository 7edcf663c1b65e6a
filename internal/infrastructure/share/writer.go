package share

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	interfaces "gpa-tracker/internal/interfaces/infrastructure"
)

// WriterSharer writes the exported summary to w, e.g. stdout
type WriterSharer struct {
	w io.Writer
}

func NewWriterSharer(w io.Writer) *WriterSharer {
	return &WriterSharer{w: w}
}

func (s *WriterSharer) Share(ctx context.Context, title, message string) error {
	if _, err := fmt.Fprintln(s.w, message); err != nil {
		return fmt.Errorf("failed to write %s: %w", title, err)
	}
	return nil
}

// FileSharer saves the exported summary to a file, replacing it
type FileSharer struct {
	path string
}

func NewFileSharer(path string) *FileSharer {
	return &FileSharer{path: path}
}

func (s *FileSharer) Share(ctx context.Context, title, message string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(message+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write %s to %s: %w", title, s.path, err)
	}
	return nil
}

var (
	_ interfaces.Sharer = (*WriterSharer)(nil)
	_ interfaces.Sharer = (*FileSharer)(nil)
)

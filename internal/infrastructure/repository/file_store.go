package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	interfaces "gpa-tracker/internal/interfaces/infrastructure"
	"gpa-tracker/pkg/logger"
)

// errCorruptFile marks a data file that exists but is not a JSON object
var errCorruptFile = errors.New("corrupt data file")

// FileStore keeps every key in a single JSON object on disk. Writes go to a
// temporary file that is renamed over the original, so a crash mid-write
// leaves the previous contents in place.
type FileStore struct {
	path  string
	mutex sync.Mutex
}

func NewFileStore(path string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &FileStore{path: path}, nil
}

func (s *FileStore) Get(ctx context.Context, key string) (string, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	values, err := s.read()
	if err != nil {
		return "", err
	}
	value, exists := values[key]
	if !exists {
		return "", interfaces.ErrKeyNotFound
	}
	return value, nil
}

func (s *FileStore) Set(ctx context.Context, key, value string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	values, err := s.read()
	if errors.Is(err, errCorruptFile) {
		values, err = s.quarantine(err)
	}
	if err != nil {
		return err
	}
	values[key] = value
	return s.write(values)
}

// Health checks that the data file, if present, is readable
func (s *FileStore) Health(ctx context.Context) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	_, err := s.read()
	return err
}

func (s *FileStore) Close() error {
	return nil
}

func (s *FileStore) read() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", s.path, err)
	}

	values := map[string]string{}
	if len(data) == 0 {
		return values, nil
	}
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("%w: failed to decode %s: %v", errCorruptFile, s.path, err)
	}
	return values, nil
}

// quarantine moves an undecodable data file aside so writes can start over
// from an empty object, the same way reads treat it as absent data.
func (s *FileStore) quarantine(cause error) (map[string]string, error) {
	backup := s.path + ".corrupt"
	if err := os.Rename(s.path, backup); err != nil {
		return nil, fmt.Errorf("failed to move corrupt %s aside: %w", s.path, err)
	}
	logger.Warn("%v; moved it to %s and starting from an empty store", cause, backup)
	return map[string]string{}, nil
}

func (s *FileStore) write(values map[string]string) error {
	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode values: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", s.path, err)
	}
	return nil
}

var _ interfaces.KVStore = (*FileStore)(nil)

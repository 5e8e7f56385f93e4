package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileStore keeps one JSON document per collection under a data directory
// (users.json, projects.json). Writes are plain truncating overwrites; there
// is no atomic rename, so a write interrupted mid-flight can leave the file
// and in-memory state inconsistent.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o770); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}

func (s *FileStore) Load(ctx context.Context, collection string) ([]byte, error) {
	data, err := os.ReadFile(s.path(collection))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", s.path(collection), err)
	}
	return data, nil
}

func (s *FileStore) Save(ctx context.Context, collection string, data []byte) error {
	if err := os.WriteFile(s.path(collection), data, 0o660); err != nil {
		return fmt.Errorf("write %s: %w", s.path(collection), err)
	}
	return nil
}

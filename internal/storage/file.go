package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileStore writes one yaml file per key
type FileStore struct {
	directory string
}

func NewFileStore(directory string) *FileStore {
	return &FileStore{directory: directory}
}

func (s *FileStore) filePath(key string) string {
	return filepath.Join(s.directory, key+".yml")
}

func (s *FileStore) Load(_ context.Context, key string, value any) error {
	contents, err := os.ReadFile(s.filePath(key))
	if errors.Is(err, fs.ErrNotExist) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("os.ReadFile(%s) > %w", key, err)
	}
	if err := yaml.Unmarshal(contents, value); err != nil {
		return fmt.Errorf("yaml.Unmarshal(%s) > %w", key, err)
	}
	return nil
}

// Save replaces the file atomically so a crash never leaves half a document
func (s *FileStore) Save(_ context.Context, key string, value any) error {
	contents, err := yaml.Marshal(value)
	if err != nil {
		return fmt.Errorf("yaml.Marshal(%s) > %w", key, err)
	}
	if err := os.MkdirAll(s.directory, 0755); err != nil {
		return fmt.Errorf("os.MkdirAll > %w", err)
	}

	file, err := os.CreateTemp(s.directory, "."+key+"-*.yml")
	if err != nil {
		return fmt.Errorf("os.CreateTemp > %w", err)
	}
	defer func() {
		_ = os.Remove(file.Name())
	}()
	if _, err := file.Write(contents); err != nil {
		_ = file.Close()
		return fmt.Errorf("file.Write > %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("file.Close > %w", err)
	}
	if err := os.Rename(file.Name(), s.filePath(key)); err != nil {
		return fmt.Errorf("os.Rename > %w", err)
	}
	return nil
}

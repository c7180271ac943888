package dictionary

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
)

// FileCache keeps remote translations as one JSON file per word so they
// survive restarts.
type FileCache struct {
	rootDir string
}

func NewFileCache(cacheDirectory string) *FileCache {
	return &FileCache{
		rootDir: cacheDirectory,
	}
}

func (f *FileCache) filePath(word string) string {
	return filepath.Join(f.rootDir, url.PathEscape(word)+".json")
}

// Read returns false without an error when the word has not been cached
func (cache *FileCache) Read(_ context.Context, word string) (Translation, bool, error) {
	file, err := os.Open(cache.filePath(word))
	if errors.Is(err, fs.ErrNotExist) {
		return Translation{}, false, nil
	}
	if err != nil {
		return Translation{}, false, fmt.Errorf("os.Open > %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	contents, err := io.ReadAll(file)
	if err != nil {
		return Translation{}, false, fmt.Errorf("io.ReadAll > %w", err)
	}
	var translation Translation
	if err := json.Unmarshal(contents, &translation); err != nil {
		return Translation{}, false, fmt.Errorf("json.Unmarshal > %w", err)
	}
	return translation, true, nil
}

func (cache *FileCache) Write(_ context.Context, translation Translation) error {
	if err := os.MkdirAll(cache.rootDir, 0755); err != nil {
		return fmt.Errorf("os.MkdirAll > %w", err)
	}
	contents, err := json.Marshal(translation)
	if err != nil {
		return fmt.Errorf("json.Marshal > %w", err)
	}

	file, err := os.Create(cache.filePath(translation.Word))
	if err != nil {
		return fmt.Errorf("os.Create > %w", err)
	}
	defer func() {
		_ = file.Close()
	}()
	if _, err := file.Write(contents); err != nil {
		return fmt.Errorf("file.Write > %w", err)
	}
	return nil
}

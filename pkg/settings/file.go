package settings

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/tabgrid/pkg/errors"
)

// FileBackend stores each document as a JSON file in a directory. Key
// segments separated by ':' become subdirectories, so "settings:default"
// lives at <dir>/settings/default.json.
type FileBackend struct {
	dir string
}

// NewFileBackend creates a file backend rooted at dir.
// The directory will be created if it doesn't exist.
func NewFileBackend(dir string) (*FileBackend, error) {
	if dir == "" {
		return nil, fmt.Errorf("file store: directory required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}
	return &FileBackend{dir: dir}, nil
}

func (b *FileBackend) Name() string { return BackendFile }

func (b *FileBackend) Get(ctx context.Context, key string) ([]byte, bool, error) {
	path, err := b.path(key)
	if err != nil {
		return nil, false, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read settings file: %w", err)
	}
	return data, true, nil
}

// Put writes data to a temporary file and renames it into place.
func (b *FileBackend) Put(ctx context.Context, key string, data []byte) error {
	path, err := b.path(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}
	return os.Rename(tmp, path)
}

func (b *FileBackend) Delete(ctx context.Context, key string) error {
	path, err := b.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove settings file: %w", err)
	}
	return nil
}

func (b *FileBackend) Location(key string) string {
	path, err := b.path(key)
	if err != nil {
		return b.dir
	}
	return path
}

// Close does nothing for the file backend.
func (b *FileBackend) Close() error { return nil }

// path converts a key to a file path, refusing segments that would escape
// the directory.
func (b *FileBackend) path(key string) (string, error) {
	parts := strings.Split(key, ":")
	for _, p := range parts {
		if p == "" || p == "." || p == ".." || strings.ContainsAny(p, `/\`) {
			return "", errors.New(errors.ErrCodeInvalidInput, "invalid settings key %q", key)
		}
	}
	parts[len(parts)-1] += ".json"
	return filepath.Join(append([]string{b.dir}, parts...)...), nil
}

// Ensure FileBackend implements Backend.
var _ Backend = (*FileBackend)(nil)

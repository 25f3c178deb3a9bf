package settings

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterbourgon/diskv/v3"
)

// DiskvBackend stores documents in a diskv directory with an in-memory read
// cache. Keys map to paths the same way as in FileBackend, without the
// .json extension.
type DiskvBackend struct {
	d        *diskv.Diskv
	basePath string
}

// NewDiskvBackend creates a diskv backend rooted at dir.
func NewDiskvBackend(dir string) (*DiskvBackend, error) {
	if dir == "" {
		return nil, fmt.Errorf("diskv store: directory required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}
	return &DiskvBackend{
		d: diskv.New(diskv.Options{
			BasePath:          dir,
			AdvancedTransform: keyToPathTransform,
			InverseTransform:  pathToKeyTransform,
			CacheSizeMax:      1024 * 1024, // 1MB
		}),
		basePath: dir,
	}, nil
}

func (b *DiskvBackend) Name() string { return BackendDiskv }

func (b *DiskvBackend) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if !b.d.Has(key) {
		return nil, false, nil
	}
	data, err := b.d.Read(key)
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

func (b *DiskvBackend) Put(ctx context.Context, key string, data []byte) error {
	return b.d.Write(key, data)
}

func (b *DiskvBackend) Delete(ctx context.Context, key string) error {
	if !b.d.Has(key) {
		return nil
	}
	return b.d.Erase(key)
}

func (b *DiskvBackend) Location(key string) string {
	pk := keyToPathTransform(key)
	return filepath.Join(append(append([]string{b.basePath}, pk.Path...), pk.FileName)...)
}

// Close does nothing; diskv keeps no open handles.
func (b *DiskvBackend) Close() error { return nil }

// Keys lists every stored key.
func (b *DiskvBackend) Keys(ctx context.Context) []string {
	var keys []string
	for key := range b.d.Keys(ctx.Done()) {
		keys = append(keys, key)
	}
	return keys
}

func keyToPathTransform(key string) *diskv.PathKey {
	parts := strings.Split(key, ":")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return strings.Join(append(append([]string{}, pathKey.Path...), pathKey.FileName), ":")
}

// Ensure DiskvBackend implements Backend.
var _ Backend = (*DiskvBackend)(nil)

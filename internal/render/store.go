package render

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DiskStore is an object store backed by the local filesystem. Artifacts are
// served back by the router under the configured public base URL.
type DiskStore struct {
	dir     string
	baseURL string
}

func NewDiskStore(dir, baseURL string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	return &DiskStore{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

func (s *DiskStore) Put(ctx context.Context, name string, data []byte) (string, error) {
	name = filepath.ToSlash(filepath.Clean(name))
	if strings.HasPrefix(name, "..") || strings.HasPrefix(name, "/") {
		return "", fmt.Errorf("invalid artifact name %q", name)
	}

	path := filepath.Join(s.dir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create artifact dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write artifact: %w", err)
	}

	return s.baseURL + "/" + name, nil
}

// Dir exposes the storage root so the router can serve it statically.
func (s *DiskStore) Dir() string {
	return s.dir
}

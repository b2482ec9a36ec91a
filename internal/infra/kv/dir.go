package kv

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
)

// Dir stores one file per key under a directory. This is the on-disk
// store the CLI uses; keys are path-escaped to make safe file names.
type Dir struct {
	path string
}

func NewDir(path string) (*Dir, error) {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return nil, fmt.Errorf("kv dir: %w", err)
	}
	return &Dir{path: path}, nil
}

func (s *Dir) file(key string) string {
	return filepath.Join(s.path, url.PathEscape(key))
}

func (s *Dir) Set(ctx context.Context, key, value string) error {
	if err := os.WriteFile(s.file(key), []byte(value), 0o644); err != nil {
		return fmt.Errorf("kv dir: write %s: %w", key, err)
	}
	return nil
}

func (s *Dir) Keys(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.path)
	if err != nil {
		return nil, fmt.Errorf("kv dir: %w", err)
	}
	var keys []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		key, err := url.PathUnescape(e.Name())
		if err != nil {
			continue // foreign file, not one of ours
		}
		keys = append(keys, key)
	}
	return keys, nil
}

func (s *Dir) GetMulti(ctx context.Context, keys []string) (map[string]string, error) {
	out := make(map[string]string, len(keys))
	for _, k := range keys {
		b, err := os.ReadFile(s.file(k))
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("kv dir: read %s: %w", k, err)
		}
		out[k] = string(b)
	}
	return out, nil
}

package infra

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// DocStore persists client documents (RIF scans, tax certificates) on local
// disk. Files are stored under a uuid-derived name so original filenames never
// reach the filesystem; the original name lives in the media table.
type DocStore struct {
	root string
}

func NewDocStore(root string) (*DocStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("docstore: create root: %w", err)
	}
	return &DocStore{root: root}, nil
}

// Save writes the content to disk and returns the storage key. The key keeps
// the original extension so downloads get a usable filename.
func (s *DocStore) Save(originalName string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	key := uuid.NewString() + ext

	f, err := os.Create(filepath.Join(s.root, key))
	if err != nil {
		return "", fmt.Errorf("docstore: create: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("docstore: write: %w", err)
	}
	return key, nil
}

// Path resolves a storage key to an absolute path, rejecting traversal.
func (s *DocStore) Path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) {
		return "", fmt.Errorf("docstore: invalid key %q", key)
	}
	return filepath.Join(s.root, key), nil
}

// Remove deletes a stored document. Missing files are not an error.
func (s *DocStore) Remove(key string) error {
	p, err := s.Path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("docstore: remove: %w", err)
	}
	return nil
}

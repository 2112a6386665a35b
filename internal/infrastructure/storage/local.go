// Package storage implements the image-store collaborator on the local
// filesystem.
package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LocalImageStore removes uploaded images from a directory on disk. Paths
// are confined to the root directory; anything escaping it is rejected.
type LocalImageStore struct {
	root string
}

func NewLocalImageStore(root string) *LocalImageStore {
	return &LocalImageStore{root: root}
}

// Remove deletes the image at path relative to the store root. A file that
// is already gone is not an error: the call is best-effort by contract and
// may be retried by a crashed-and-restarted deletion.
func (s *LocalImageStore) Remove(_ context.Context, path string) error {
	full := filepath.Join(s.root, path)
	rel, err := filepath.Rel(s.root, full)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(os.PathSeparator)) {
		return fmt.Errorf("image path %q escapes store root", path)
	}

	if err := os.Remove(full); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("remove image: %w", err)
	}
	return nil
}

package store

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/peterbourgon/diskv/v3"
)

// DiskSlot stores each key as a file directly under a base directory.
type DiskSlot struct {
	d        *diskv.Diskv
	basePath string
}

// tempDir holds partial writes under the base path, so a write replaces the
// document with a rename on the same device.
const tempDir = ".tmp"

// NewDiskSlot returns a slot rooted at basePath. The directory is created on
// first write.
func NewDiskSlot(basePath string) *DiskSlot {
	return &DiskSlot{
		d: diskv.New(diskv.Options{
			BasePath:     basePath,
			TempDir:      filepath.Join(basePath, tempDir),
			Transform:    flatTransform,
			CacheSizeMax: 0,
		}),
		basePath: basePath,
	}
}

// BasePath returns the directory holding the slot files.
func (s *DiskSlot) BasePath() string {
	return s.basePath
}

func (s *DiskSlot) GetItem(key string) (string, bool, error) {
	if !s.d.Has(key) {
		return "", false, nil
	}
	// Read past diskv's cache so writes from other processes are seen.
	rc, err := s.d.ReadStream(key, true)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("store: read %s: %w", key, err)
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		return "", false, fmt.Errorf("store: read %s: %w", key, err)
	}
	return string(data), true, nil
}

func (s *DiskSlot) SetItem(key, value string) error {
	if err := s.d.Write(key, []byte(value)); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}

func flatTransform(string) []string {
	return []string{}
}

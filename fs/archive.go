// Package fs reads and writes saved-page archives on the local filesystem.
package fs

import (
	"os"
	"path/filepath"

	"github.com/fwojciec/pagecomp"
)

// ReadArchive reads the file at path. The archive is named after the
// file's base name, as shown to the user.
func ReadArchive(path string) (*pagecomp.Archive, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &pagecomp.Archive{Name: filepath.Base(path), Data: data}, nil
}

// ReadArchives reads every path in order. The first unreadable file aborts
// the read.
func ReadArchives(paths []string) ([]*pagecomp.Archive, error) {
	archives := make([]*pagecomp.Archive, 0, len(paths))
	for _, p := range paths {
		a, err := ReadArchive(p)
		if err != nil {
			return nil, err
		}
		archives = append(archives, a)
	}
	return archives, nil
}

// ArchiveStore writes one archive with atomic update semantics.
// Save writes to path.tmp; Commit renames it over path; Abort removes it.
type ArchiveStore struct {
	path string
}

// NewArchiveStore creates a new ArchiveStore for the given destination.
func NewArchiveStore(path string) *ArchiveStore {
	return &ArchiveStore{path: path}
}

func (s *ArchiveStore) tempPath() string {
	return s.path + ".tmp"
}

// Save writes data to the temporary file, creating parent directories.
func (s *ArchiveStore) Save(data []byte) error {
	if len(data) == 0 {
		return pagecomp.Errorf(pagecomp.EINVALID, "empty archive")
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}
	return os.WriteFile(s.tempPath(), data, 0644)
}

// Commit replaces the destination with the saved file.
func (s *ArchiveStore) Commit() error {
	return os.Rename(s.tempPath(), s.path)
}

// Abort discards the saved file.
func (s *ArchiveStore) Abort() error {
	err := os.Remove(s.tempPath())
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

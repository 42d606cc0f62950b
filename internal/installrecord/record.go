// Package installrecord persists the install bookkeeping record: where the
// application binaries were placed, which version is installed and where the
// user data lives. The record is scoped to the current user and keyed by the
// application identifier, and every successful install overwrites it.
package installrecord

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/techdeckio/setup/util"
)

// ErrNotFound is returned when no install record has been written yet.
var ErrNotFound = errors.New("install record not found")

// Record describes a completed install.
type Record struct {
	InstallPath string `json:"install_path"`
	Version     string `json:"version"`
	DataPath    string `json:"data_path"`
	// InstallID is generated on the first install and carried forward
	// verbatim across upgrades and reinstalls.
	InstallID string `json:"install_id"`
}

// Store reads and writes the per-user install record.
type Store interface {
	// Read returns the current record or ErrNotFound.
	Read() (*Record, error)
	// Write persists the record unconditionally, last install wins.
	Write(record *Record) error
	// Delete removes the record. Deleting a missing record is a no-op.
	Delete() error
}

// FileStore persists the record as a JSON file. It backs the default store on
// platforms without a per-user registry and is used directly by tests.
type FileStore struct {
	path string
}

// NewFileStore creates a file backed store at the given path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Read() (*Record, error) {
	record := &Record{}
	if _, err := util.ReadJson(s.path, record); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read install record %s: %w", s.path, err)
	}
	return record, nil
}

func (s *FileStore) Write(record *Record) error {
	if err := util.WriteJson(context.Background(), s.path, record); err != nil {
		return fmt.Errorf("write install record %s: %w", s.path, err)
	}
	return nil
}

func (s *FileStore) Delete() error {
	return util.RemoveJson(s.path)
}

//go:build !windows

package installrecord

import "path/filepath"

// NewDefaultStore returns the file backed store. The record sits inside the
// data root as a dotfile so a purge during uninstall removes it as well.
func NewDefaultStore(dataRoot string) Store {
	return NewFileStore(filepath.Join(dataRoot, ".install.json"))
}

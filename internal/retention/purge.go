package retention

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
)

// Purge removes everything under dataRoot and the root itself, including the
// admin config, plugin payloads, profiles and logs. The operation is
// irreversible; no backup is made. A missing root is a no-op. Entries are
// removed independently so one stuck file does not shadow the other failures.
func Purge(dataRoot string) error {
	entries, err := os.ReadDir(dataRoot)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read data root %s: %w", dataRoot, err)
	}

	var result *multierror.Error
	for _, entry := range entries {
		path := filepath.Join(dataRoot, entry.Name())
		if err := os.RemoveAll(path); err != nil {
			result = multierror.Append(result, fmt.Errorf("remove %s: %w", path, err))
		}
	}
	if err := result.ErrorOrNil(); err != nil {
		return err
	}

	if err := os.Remove(dataRoot); err != nil {
		return fmt.Errorf("remove data root %s: %w", dataRoot, err)
	}

	return nil
}

// Package artifact implements A3/A6/A9: atomic filesystem persistence of
// compiled strategy tables and the manifest that tracks them.
package artifact

import (
	"fmt"
	"os"
	"path/filepath"
)

// writeFileAtomic writes data to filename by writing a temp file in the same
// directory and renaming it into place, so a reader only ever observes no
// file or the complete file, never a partial write.
func writeFileAtomic(filename string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(filename)
	base := filepath.Base(filename)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("artifact: create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, base+".tmp.*")
	if err != nil {
		return fmt.Errorf("artifact: create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if tmp != nil {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("artifact: write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("artifact: sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("artifact: close temp file: %w", err)
	}
	tmp = nil

	if err := os.Chmod(tmpPath, perm); err != nil {
		return fmt.Errorf("artifact: chmod temp file: %w", err)
	}
	if err := os.Rename(tmpPath, filename); err != nil {
		return fmt.Errorf("artifact: rename into place: %w", err)
	}
	return nil
}

// Package storage provides atomic file writes for hook scripts and
// configuration files.
package storage

import (
	"os"
	"path/filepath"
)

// WriteFileAtomic writes data to a temporary file in the directory of path,
// sets perm on it and renames it over path. Readers see either the old
// content or the new content, never a partial file. The temporary file is
// removed if anything fails. The parent directory must exist.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmpPath, perm); err != nil {
		return err
	}
	return os.Rename(tmpPath, path)
}

// Package diskfile holds the write path shared by the flat-file stores.
package diskfile

import (
	"os"
	"path/filepath"
)

// Replace writes data next to path and renames it into place, so readers
// see either the old file or the new one.
func Replace(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

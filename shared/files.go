package shared

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// WriteFileAtomic writes data to a temp file next to path, syncs it, then renames it over path.
func WriteFileAtomic(path string, data []byte) error {
	_, err := WriteAtomic(path, bytes.NewReader(data))
	return err
}

// WriteAtomic streams r into path via a temp file and rename. Returns the number of bytes written.
func WriteAtomic(path string, r io.Reader) (int64, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return 0, fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return 0, fmt.Errorf("failed to create temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()
	cleanup := func() {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}
	n, err := io.Copy(tmp, r)
	if err != nil {
		cleanup()
		return n, fmt.Errorf("failed to write %s: %w", tmpName, err)
	}
	if err = tmp.Sync(); err != nil {
		cleanup()
		return n, fmt.Errorf("failed to sync %s: %w", tmpName, err)
	}
	if err = tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return n, fmt.Errorf("failed to close %s: %w", tmpName, err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return n, fmt.Errorf("failed to move %s into place: %w", path, err)
	}
	return n, nil
}

package fileutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// WriteFileAtomic writes data to a temp file next to path and renames it into
// place, so readers never observe a partially written file.
func WriteFileAtomic(path string, data []byte, mode os.FileMode) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Chmod(mode); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}

// Exists reports whether an entry is present at path without following a
// trailing symlink, so dangling links count as present.
func Exists(path string) (bool, error) {
	_, err := os.Lstat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// LinkIfAbsent creates a symlink at link pointing to target unless an entry
// named link already exists. The existing entry is never inspected or
// replaced. It reports whether a link was created.
func LinkIfAbsent(target, link string) (bool, error) {
	present, err := Exists(link)
	if err != nil {
		return false, fmt.Errorf("stat %s: %w", link, err)
	}
	if present {
		return false, nil
	}
	if err := os.Symlink(target, link); err != nil {
		return false, err
	}
	return true, nil
}

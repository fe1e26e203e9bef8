package main

import (
	"fmt"
	"os"
	"path/filepath"
)

// safeWriteFile replaces name with data without leaving a partially written file behind. The
// new content is written beside the target and renamed over it.
func safeWriteFile(name string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(name), "."+filepath.Base(name)+"-*.new")
	if err != nil {
		return fmt.Errorf("failed to create new file: %w", err)
	}

	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write new file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close new file: %w", err)
	}

	if err := os.Chmod(tmpName, perm); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to set permissions of new file: %w", err)
	}

	if err := os.Rename(tmpName, name); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to move new file to file location: %w", err)
	}

	return nil
}

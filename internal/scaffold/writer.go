package scaffold

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Status is the outcome of scaffolding one page.
type Status string

const (
	// StatusCreated means the file was written.
	StatusCreated Status = "created"

	// StatusSkipped means a file already existed and was left untouched.
	StatusSkipped Status = "skipped"

	// StatusFailed means the page could not be rendered or written.
	StatusFailed Status = "failed"

	// StatusPlanned is used by dry runs.
	StatusPlanned Status = "planned"
)

// Exists reports whether something is present at path.
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

// EnsureDir creates dir and any missing parents. created is true when the
// directory did not exist before the call.
func EnsureDir(dir string) (created bool, err error) {
	exists, err := Exists(dir)
	if err != nil {
		return false, fmt.Errorf("checking directory %s: %w", dir, err)
	}
	if exists {
		return false, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return false, fmt.Errorf("creating directory %s: %w", dir, err)
	}
	return true, nil
}

// WriteNew writes content to a file that must not exist yet. An existing file
// is never truncated: the open fails with fs.ErrExist instead.
func WriteNew(path string, content []byte) error {
	// #nosec G304 -- path is built from a validated entry under the output root.
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}

	if _, err := f.Write(content); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}

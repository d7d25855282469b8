package dirsize

import (
	"errors"
	"fmt"
	"os"
)

// ErrNotDirectory is returned by ValidateRoot when the path exists but is not a directory.
var ErrNotDirectory = errors.New("not a directory")

// TraversalError records a failure to stat, resolve or list an entry during a scan.
type TraversalError struct {
	// Op is the failed operation: "stat", "resolve" or "readdir".
	Op string
	// Path is the entry being processed.
	Path string
	// Err is the underlying error.
	Err error
}

func (e *TraversalError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *TraversalError) Unwrap() error {
	return e.Err
}

// ValidateRoot checks that path exists and is a directory.
func ValidateRoot(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("accessing path %q: %w", path, err)
	}

	if !info.IsDir() {
		return fmt.Errorf("path %q: %w", path, ErrNotDirectory)
	}

	return nil
}

package cli

import (
	"errors"
)

// ExitError carries the process exit code for a failure detected by the CLI.
type ExitError struct {
	// Code is the exit status the process should terminate with.
	Code int
	// Err is the diagnostic shown to the user.
	Err error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode returns the exit status for err: 0 for nil, the carried code for an
// *ExitError, and 1 for anything else.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	return 1
}

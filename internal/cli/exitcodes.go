package cli

import (
	"errors"
	"io/fs"

	"github.com/yaklabco/codeblock/internal/configloader"
)

// Exit codes for codeblock.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitFailure indicates a command failed for a reason not listed below.
	ExitFailure = 1

	// ExitInvalidUsage indicates invalid command-line usage or input.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ExitCodeFromError maps an error returned by a command to an exit code.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var validationErr *configloader.ValidationError
	var pathErr *fs.PathError

	switch {
	case errors.As(err, &validationErr):
		return ExitConfigError
	case errors.Is(err, ErrInvalidSelection), errors.Is(err, ErrNoInput):
		return ExitInvalidUsage
	case errors.As(err, &pathErr):
		return ExitIOError
	default:
		return ExitFailure
	}
}

package cli

import (
	"errors"
	"fmt"

	"github.com/felixgeelhaar/srclist/internal/application"
	"github.com/felixgeelhaar/srclist/internal/domain/buildfile"
	"github.com/felixgeelhaar/srclist/internal/infrastructure/discovery"
)

// CLIError wraps domain errors with user-facing messages and actionable hints.
type CLIError struct {
	Message  string
	Hint     string
	Err      error
	ExitCode int
}

func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a CLIError with a default exit code of 1.
func NewCLIError(msg, hint string, err error) *CLIError {
	return &CLIError{
		Message:  msg,
		Hint:     hint,
		Err:      err,
		ExitCode: 1,
	}
}

// MapError converts known domain errors into CLIErrors with actionable hints.
// Unmapped errors are returned as-is.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, discovery.ErrSourceRootMissing):
		return NewCLIError("source directory not found", "Check --root, or set source_root in .srclist.yaml", err)
	case errors.Is(err, buildfile.ErrPatternNotFound):
		return NewCLIError("no source-list block found in the build file", "The target must already contain a 'const <declaration> = [_][]const u8{ ... };' block — paste the printed block once by hand", err)
	case errors.Is(err, buildfile.ErrMultipleBlocks):
		return NewCLIError("more than one source-list block found in the build file", "Remove the duplicate declaration so exactly one block remains", err)
	case errors.Is(err, application.ErrNothingToApply):
		return NewCLIError("nothing to apply", "Neither the build file nor its backup exists — restore the build file first", err)
	}

	return err
}

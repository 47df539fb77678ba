package titlecheck

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	err := cli.Execute()
//	if errors.Is(err, titlecheck.ErrChecksFailed) {
//	    // at least one file failed validation
//	}
var (
	// ErrInvalidConfig indicates the rule file could not be read, parsed or compiled.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrEventInvalid indicates the CI event payload is missing or unsupported.
	ErrEventInvalid = errors.New("invalid CI event")

	// ErrWorkspace indicates the workspace directory is unusable.
	ErrWorkspace = errors.New("workspace unavailable")

	// ErrDiffFailed indicates the changed-file list could not be computed.
	ErrDiffFailed = errors.New("changed-file diff failed")

	// ErrChecksFailed indicates at least one file failed a title block check.
	ErrChecksFailed = errors.New("title block checks failed")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrChecksFailed):
		return ExitGeneralError
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrEventInvalid):
		return ExitEventError
	case errors.Is(err, ErrWorkspace), errors.Is(err, ErrDiffFailed):
		return ExitWorkspaceError
	}

	// cobra does not export typed usage errors
	errStr := err.Error()
	if strings.HasPrefix(errStr, "unknown flag") ||
		strings.HasPrefix(errStr, "unknown shorthand flag") ||
		strings.HasPrefix(errStr, "unknown command") ||
		strings.HasPrefix(errStr, "accepts ") ||
		strings.HasPrefix(errStr, "required flag") ||
		strings.HasPrefix(errStr, "invalid argument") {
		return ExitUsageError
	}

	return ExitGeneralError
}

package titlecheck

// Logger provides a pluggable logging interface for titlecheck operations.
// Implementations must be safe for concurrent use by multiple goroutines.
//
// Logger carries diagnostics only. Check results are reported through
// annotations, never through the logger.
type Logger interface {
	// Verbose logs detailed diagnostic information.
	// Only logged when verbose mode is enabled.
	Verbose(format string, args ...interface{})

	// Info logs informational messages about normal operations.
	Info(format string, args ...interface{})

	// Warn logs recoverable problems.
	Warn(format string, args ...interface{})

	// Error logs error messages.
	Error(format string, args ...interface{})
}

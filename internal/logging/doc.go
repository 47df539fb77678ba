// Package logging provides concrete implementations of the titlecheck.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: zap console encoder on stderr, debug level in verbose mode
//   - NullLogger: Discards all messages (useful for testing)
//
// All logger implementations are safe for concurrent use by multiple goroutines.
package logging

// Package filesystem provides the file access abstraction used by the
// checker and the workspace scanner.
//
// Key interfaces:
//   - FileSystemProvider: opens directories, reads and stats files
//   - Directory: a directory tree that can be walked
//   - File: a single entry with its workspace-relative path
//
// Implementations:
//   - OSFileSystem: production implementation on top of the os package
//   - MemoryFileSystem: in-memory implementation for tests
//
// Walk callbacks may return fs.SkipDir on a directory entry to prune it.
package filesystem

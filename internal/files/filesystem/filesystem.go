package filesystem

import (
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
type FileInfo = fs.FileInfo

// File represents an entry discovered while walking a directory.
type File interface {
	// Path returns the absolute path to the entry
	Path() string

	// RelativePath returns the path relative to the walked root, using
	// forward slashes
	RelativePath() string

	// Info returns entry metadata
	Info() FileInfo
}

// Directory represents a directory that can be traversed to discover files.
type Directory interface {
	// Path returns the absolute path to the directory
	Path() string

	// Walk visits every entry under the directory in lexical order.
	// A directory whose contents cannot be listed is visited a second time
	// with the listing error. Returning fs.SkipDir for a directory entry
	// skips its contents; any other non-nil error stops the walk and is
	// returned.
	Walk(fn func(File, error) error) error
}

// FileSystemProvider is a factory for Directory instances and a reader for
// individual files.
type FileSystemProvider interface {
	// Open opens a directory at the specified path
	Open(path string) (Directory, error)

	// ReadFile reads a specific file at the given path
	ReadFile(path string) ([]byte, error)

	// Stat returns file information for the given path
	Stat(path string) (FileInfo, error)
}

// Package files provides file-related functionality organized into sub-packages.
//
//   - filesystem: Filesystem abstraction interfaces and implementations (OS and in-memory)
//   - scanner: Workspace discovery and partitioning of paths into check buckets
//
// # Usage
//
//	import (
//	    "github.com/vvka-141/titlecheck/internal/files/filesystem"
//	    "github.com/vvka-141/titlecheck/internal/files/scanner"
//	)
//
//	fsProvider := filesystem.NewOSFileSystem()
//	s := scanner.NewScannerWithFS(fsProvider, logger)
//	paths, err := s.ScanWorkspace(workspace)
//	buckets := s.Partition(paths, titlecheck.ClassSet{Boards: true, Schematics: true})
package files

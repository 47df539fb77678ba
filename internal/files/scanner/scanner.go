package scanner

import (
	"fmt"
	"io/fs"
	"sort"

	"github.com/vvka-141/titlecheck/internal/files/filesystem"
	"github.com/vvka-141/titlecheck/pkg/titlecheck"
)

// vcsDirs are never descended into during a workspace scan.
var vcsDirs = map[string]bool{
	".git": true,
	".hg":  true,
	".svn": true,
}

// Scanner discovers candidate files in a workspace.
// Scanner is safe for concurrent use as long as the filesystem provider is.
type Scanner struct {
	fsProvider filesystem.FileSystemProvider
	logger     titlecheck.Logger
}

// NewScannerWithFS creates a scanner over a custom filesystem provider.
// Panics if fsProvider or logger is nil.
func NewScannerWithFS(fsProvider filesystem.FileSystemProvider, logger titlecheck.Logger) *Scanner {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Scanner{fsProvider: fsProvider, logger: logger}
}

// ScanWorkspace lists all regular files under root, sorted, as root-relative
// slash-separated paths. Version-control metadata directories are skipped.
// Entries that cannot be read are logged and skipped; only a workspace that
// cannot be opened is an error.
func (s *Scanner) ScanWorkspace(root string) ([]string, error) {
	dir, err := s.fsProvider.Open(root)
	if err != nil {
		return nil, fmt.Errorf("failed to open workspace: %w", err)
	}

	var paths []string
	err = dir.Walk(func(file filesystem.File, err error) error {
		if err != nil {
			s.logger.Warn("Skipping unreadable path: %v", err)
			if file != nil && file.Info().IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		info := file.Info()
		if info.IsDir() {
			if vcsDirs[info.Name()] {
				return fs.SkipDir
			}
			return nil
		}

		paths = append(paths, file.RelativePath())
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(paths)
	return paths, nil
}

// Partition sorts paths into buckets by extension. Files of a class that is
// not enabled, and files with no recognized extension, are dropped.
// Order within each bucket follows the input order; duplicates are removed.
func (s *Scanner) Partition(paths []string, enabled titlecheck.ClassSet) titlecheck.Buckets {
	var buckets titlecheck.Buckets
	seen := make(map[string]bool, len(paths))

	for _, p := range paths {
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true

		format := titlecheck.FormatForPath(p)
		class, ok := format.Class()
		if !ok || !enabled.Has(class) {
			continue
		}
		switch format {
		case titlecheck.FormatBoard:
			buckets.Boards = append(buckets.Boards, p)
		case titlecheck.FormatSchematic:
			buckets.Schematics = append(buckets.Schematics, p)
		case titlecheck.FormatLegacySchematic:
			buckets.LegacySchematics = append(buckets.LegacySchematics, p)
		}
	}

	return buckets
}

var _ titlecheck.FileScanner = (*Scanner)(nil)

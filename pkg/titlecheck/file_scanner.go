package titlecheck

// FileScanner discovers candidate files and sorts them into buckets.
// Implementations must be safe for concurrent use by multiple goroutines.
type FileScanner interface {
	// ScanWorkspace recursively lists every file under root, returning
	// root-relative paths with forward slashes.
	ScanWorkspace(root string) ([]string, error)

	// Partition sorts paths into buckets by extension, keeping only the
	// classes that are enabled.
	Partition(paths []string, enabled ClassSet) Buckets
}

// ClassSet records which document classes have rules to check.
type ClassSet struct {
	Boards     bool
	Schematics bool
}

// Has reports whether class is enabled.
func (c ClassSet) Has(class DocumentClass) bool {
	switch class {
	case ClassBoard:
		return c.Boards
	case ClassSchematic:
		return c.Schematics
	default:
		return false
	}
}

// Buckets holds candidate files per document format, in discovery order.
type Buckets struct {
	Boards           []string
	Schematics       []string
	LegacySchematics []string
}

// Total returns the number of files across all buckets.
func (b Buckets) Total() int {
	return len(b.Boards) + len(b.Schematics) + len(b.LegacySchematics)
}

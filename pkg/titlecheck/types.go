package titlecheck

import "strings"

// DocumentClass identifies which rule layer governs a file.
type DocumentClass int

const (
	// ClassBoard covers current-generation board layouts (.kicad_pcb).
	ClassBoard DocumentClass = iota
	// ClassSchematic covers both schematic generations (.kicad_sch and .sch).
	ClassSchematic
)

// String returns the label used in warnings and log groups.
func (c DocumentClass) String() string {
	switch c {
	case ClassBoard:
		return "PCB"
	case ClassSchematic:
		return "Schematic"
	default:
		return "Unknown"
	}
}

// LayerKey returns the rule file key holding the class-specific layer.
func (c DocumentClass) LayerKey() string {
	switch c {
	case ClassBoard:
		return "pcb"
	case ClassSchematic:
		return "sch"
	default:
		return ""
	}
}

// Format identifies the on-disk representation of a candidate file.
type Format int

const (
	FormatUnknown Format = iota
	FormatBoard
	FormatSchematic
	FormatLegacySchematic
)

// FormatForPath classifies a path by its extension.
// Paths without a recognized extension return FormatUnknown.
func FormatForPath(path string) Format {
	switch {
	case strings.HasSuffix(path, ExtBoard):
		return FormatBoard
	case strings.HasSuffix(path, ExtSchematic):
		return FormatSchematic
	case strings.HasSuffix(path, ExtLegacySchematic):
		return FormatLegacySchematic
	default:
		return FormatUnknown
	}
}

// Class returns the document class whose rules apply to the format.
func (f Format) Class() (DocumentClass, bool) {
	switch f {
	case FormatBoard:
		return ClassBoard, true
	case FormatSchematic, FormatLegacySchematic:
		return ClassSchematic, true
	default:
		return 0, false
	}
}

package titlecheck

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error (at least one title block check failed)
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess        = 0  // All checks passed
	ExitGeneralError   = 1  // Checks failed, or unclassified error
	ExitUsageError     = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic          = 3  // Internal panic (unexpected crash)
	ExitConfigError    = 10 // Rule file missing, unparsable or holding invalid patterns
	ExitEventError     = 11 // CI event payload unreadable or unsupported
	ExitWorkspaceError = 12 // Workspace or version-control failure
)

// Recognized rule field names, in reporting order.
const (
	FieldPageSize = "pageSize"
	FieldTitle    = "title"
	FieldCompany  = "company"
	FieldRev      = "rev"
	FieldDate     = "date"
	FieldComment1 = "comment1"
	FieldComment2 = "comment2"
	FieldComment3 = "comment3"
	FieldComment4 = "comment4"
)

// Fields lists every recognized rule field in canonical order.
var Fields = []string{
	FieldPageSize,
	FieldTitle,
	FieldCompany,
	FieldRev,
	FieldDate,
	FieldComment1,
	FieldComment2,
	FieldComment3,
	FieldComment4,
}

// CommentFields maps comment slot (0-based) to its rule field name.
var CommentFields = [CommentSlots]string{FieldComment1, FieldComment2, FieldComment3, FieldComment4}

// CommentSlots is the number of comment lines a title block carries.
const CommentSlots = 4

// IsKnownField reports whether name is a recognized rule field.
func IsKnownField(name string) bool {
	for _, f := range Fields {
		if f == name {
			return true
		}
	}
	return false
}

// File extensions of the document generations the checker understands.
const (
	ExtBoard           = ".kicad_pcb"
	ExtSchematic       = ".kicad_sch"
	ExtLegacySchematic = ".sch"
)

const (
	// DefaultConfigFile is the rule file used when neither --config nor
	// INPUT_CONFIG_FILE is set.
	DefaultConfigFile = ".github/titleblock.yaml"

	// FailsOutputName is the name of the CI output that lists failing files.
	FailsOutputName = "fails"

	// MatchAnything is the pattern used for comment slots without a rule.
	MatchAnything = "(.*)"
)

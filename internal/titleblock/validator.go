package titleblock

import (
	"strings"

	"github.com/vvka-141/titlecheck/internal/kicad"
	"github.com/vvka-141/titlecheck/internal/rules"
)

// CheckDocument extracts and validates a parsed board or schematic.
func CheckDocument(doc *kicad.Document, rs *rules.RuleSet) ValidationResult {
	return Validate(Extract(doc), rs)
}

// Validate checks an extraction against rs.
//
// Checks, in order:
//  1. Page size: missing descriptor is always reported; a pageSize rule
//     must appear inside the extracted size.
//  2. Title block presence: if absent, one error and nothing else below.
//  3. Malformed comment entries.
//  4. Scalar fields required by rs: missing, or not matching from the start.
//  5. Every comment slot against its slot rule.
func Validate(ex Extraction, rs *rules.RuleSet) ValidationResult {
	result := NewValidationResult()
	data := ex.Data

	if data.PageSize == nil {
		result.AddError("Page size not found")
	} else if want, ok := rs.PageSize(); ok && !strings.Contains(*data.PageSize, want) {
		result.AddError("Expected Page Size %s, found %s", want, *data.PageSize)
	}

	if !ex.HasTitleBlock {
		result.AddError("Title Block Not Found")
		return result
	}

	for _, problem := range ex.Problems {
		result.AddError("%v", problem)
	}

	for _, field := range scalarFields {
		rule, ok := rs.Rule(field)
		if !ok {
			continue
		}
		value := data.Scalar(field)
		if value == nil {
			result.AddError("%s not found, expected match: %s", field, rule.Pattern)
			continue
		}
		if !rules.MatchValue(value, rule) {
			result.AddError("%s: \"%s\", does not match \"%s\"", field, *value, rule.Pattern)
		}
	}

	for i, rule := range rs.CommentRules() {
		if !rule.Match(data.Comments[i]) {
			result.AddError("Comment %d: \"%s\", does not match \"%s\"", i+1, data.Comments[i], rule.Pattern)
		}
	}

	return result
}

package titleblock

import (
	"fmt"
	"strings"

	"github.com/vvka-141/titlecheck/pkg/titlecheck"
)

// Data is the title block extracted from one document. Scalar fields are
// nil when the document does not carry them; present values have one layer
// of surrounding quotes removed.
type Data struct {
	PageSize *string
	Title    *string
	Company  *string
	Rev      *string
	Date     *string
	// Comments holds comment lines 1..4 in slots 0..3; missing lines are "".
	Comments [titlecheck.CommentSlots]string
}

// Scalar returns the value of a scalar field by rule field name.
func (d *Data) Scalar(field string) *string {
	switch field {
	case titlecheck.FieldPageSize:
		return d.PageSize
	case titlecheck.FieldTitle:
		return d.Title
	case titlecheck.FieldCompany:
		return d.Company
	case titlecheck.FieldRev:
		return d.Rev
	case titlecheck.FieldDate:
		return d.Date
	default:
		return nil
	}
}

func (d *Data) setScalar(field, value string) {
	v := value
	switch field {
	case titlecheck.FieldTitle:
		d.Title = &v
	case titlecheck.FieldCompany:
		d.Company = &v
	case titlecheck.FieldRev:
		d.Rev = &v
	case titlecheck.FieldDate:
		d.Date = &v
	}
}

// ValidationResult contains the outcome of checking one file.
// If Valid is false, Errors contains human-readable messages in the order
// the problems were found.
type ValidationResult struct {
	Valid  bool
	Errors []string
}

// NewValidationResult returns an empty, valid result.
func NewValidationResult() ValidationResult {
	return ValidationResult{Valid: true, Errors: []string{}}
}

// AddError appends an error message and marks the result invalid.
func (v *ValidationResult) AddError(format string, args ...interface{}) {
	v.Valid = false
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}

// HasErrors returns true if the validation result contains errors.
func (v *ValidationResult) HasErrors() bool {
	return len(v.Errors) > 0
}

// ErrorString returns all messages joined with semicolons.
func (v *ValidationResult) ErrorString() string {
	return strings.Join(v.Errors, "; ")
}

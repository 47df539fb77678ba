package titleblock

import (
	"fmt"

	"github.com/vvka-141/titlecheck/internal/kicad"
	"github.com/vvka-141/titlecheck/pkg/titlecheck"
)

// scalarFields are the title block entries checked by name, in report order.
var scalarFields = []string{
	titlecheck.FieldTitle,
	titlecheck.FieldRev,
	titlecheck.FieldCompany,
	titlecheck.FieldDate,
}

// Extraction is the result of reading a parsed document.
type Extraction struct {
	Data Data
	// HasTitleBlock is false when the document has no title_block section.
	HasTitleBlock bool
	// Problems lists malformed comment entries. They are reported, never dropped.
	Problems []error
}

// Extract reads the page descriptor and the title block of doc.
func Extract(doc *kicad.Document) Extraction {
	var ex Extraction

	if size, ok := doc.PageSize(); ok {
		ex.Data.PageSize = &size
	}

	tb, ok := doc.TitleBlock()
	if !ok {
		return ex
	}
	ex.HasTitleBlock = true

	for _, field := range scalarFields {
		if raw, ok := tb.Field(field); ok {
			ex.Data.setScalar(field, kicad.Unquote(raw))
		}
	}

	comments, errs := tb.Comments()
	ex.Problems = append(ex.Problems, errs...)

	slots, errs := NormalizeComments(comments)
	ex.Data.Comments = slots
	ex.Problems = append(ex.Problems, errs...)

	return ex
}

// NormalizeComments places each comment's unquoted value at slot index-1.
// Slots without an entry stay empty. An index outside 1..4 is returned as
// an error and its value is not placed. When an index repeats, the later
// entry wins.
func NormalizeComments(comments []kicad.Comment) ([titlecheck.CommentSlots]string, []error) {
	var (
		slots [titlecheck.CommentSlots]string
		errs  []error
	)
	for _, c := range comments {
		if c.Index < 1 || c.Index > titlecheck.CommentSlots {
			errs = append(errs, fmt.Errorf("comment index %d out of range 1..%d", c.Index, titlecheck.CommentSlots))
			continue
		}
		slots[c.Index-1] = kicad.Unquote(c.Value)
	}
	return slots, errs
}

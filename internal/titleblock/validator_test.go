package titleblock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/titlecheck/internal/kicad"
	"github.com/vvka-141/titlecheck/pkg/titlecheck"
)

func strPtr(s string) *string { return &s }

func check(t *testing.T, src string, all map[string]string) ValidationResult {
	t.Helper()
	doc, err := kicad.ParseBoard([]byte(src), "board.kicad_pcb")
	require.NoError(t, err)
	return CheckDocument(doc, boardRuleSet(t, all))
}

func TestCheckDocument_Passes(t *testing.T) {
	src := `(kicad_pcb (page A4)
  (title_block (title "Power Board") (rev "3") (company "ACME") (date "2024-03-01")))`

	result := check(t, src, map[string]string{
		"pageSize": "A4",
		"title":    ".+",
		"rev":      `\d+`,
		"company":  "ACME",
	})

	assert.True(t, result.Valid)
	assert.False(t, result.HasErrors())
	assert.Empty(t, result.ErrorString())
}

func TestCheckDocument_PageSizeMismatch(t *testing.T) {
	src := `(kicad_pcb (page A3) (title_block (title "X") (rev "1")))`

	result := check(t, src, map[string]string{
		"pageSize": "A4",
		"title":    ".+",
		"rev":      `\d+`,
	})

	assert.False(t, result.Valid)
	assert.Equal(t, []string{"Expected Page Size A4, found A3"}, result.Errors)
}

func TestCheckDocument_PageSizeIsSubstring(t *testing.T) {
	src := `(kicad_pcb (page User 297 210) (title_block))`

	result := check(t, src, map[string]string{"pageSize": "297"})

	assert.True(t, result.Valid, result.ErrorString())
}

func TestCheckDocument_PageNotFoundWithoutRule(t *testing.T) {
	src := `(kicad_pcb (title_block (title "X")))`

	result := check(t, src, map[string]string{"title": ".+"})

	assert.Equal(t, []string{"Page size not found"}, result.Errors)
}

func TestCheckDocument_TitleBlockNotFound(t *testing.T) {
	src := `(kicad_pcb (page A4))`

	result := check(t, src, map[string]string{"title": ".+", "comment1": "x"})

	assert.Equal(t, []string{"Title Block Not Found"}, result.Errors)
}

func TestCheckDocument_MissingField(t *testing.T) {
	src := `(kicad_pcb (page A4) (title_block (title "X")))`

	result := check(t, src, map[string]string{"rev": `\d+`})

	assert.Equal(t, []string{`rev not found, expected match: \d+`}, result.Errors)
}

func TestCheckDocument_FieldMismatch(t *testing.T) {
	src := `(kicad_pcb (page A4) (title_block (rev "B")))`

	result := check(t, src, map[string]string{"rev": `\d+`})

	assert.Equal(t, []string{`rev: "B", does not match "\d+"`}, result.Errors)
}

func TestCheckDocument_PrefixMatch(t *testing.T) {
	src := `(kicad_pcb (page A4) (title_block (company "ACME Corp") (rev "x1")))`

	result := check(t, src, map[string]string{
		"company": "ACME",
		"rev":     "1",
	})

	assert.Equal(t, []string{`rev: "x1", does not match "1"`}, result.Errors)
}

func TestCheckDocument_CommentSlots(t *testing.T) {
	src := `(kicad_pcb (page A4) (title_block (comment 2 "Checked: AB")))`

	t.Run("missing slot checked as empty", func(t *testing.T) {
		result := check(t, src, map[string]string{"comment1": "Drawn: .+"})
		assert.Equal(t, []string{`Comment 1: "", does not match "Drawn: .+"`}, result.Errors)
	})

	t.Run("present slot passes", func(t *testing.T) {
		result := check(t, src, map[string]string{"comment2": "Checked: "})
		assert.True(t, result.Valid, result.ErrorString())
	})

	t.Run("unconfigured slots match anything", func(t *testing.T) {
		result := check(t, src, map[string]string{})
		assert.True(t, result.Valid, result.ErrorString())
	})
}

func TestCheckDocument_CommentIndexOutOfRange(t *testing.T) {
	src := `(kicad_pcb (page A4) (title_block (comment 7 "x")))`

	result := check(t, src, map[string]string{})

	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "comment index 7 out of range")
}

func TestCheckDocument_ReportsAllProblemsInOrder(t *testing.T) {
	src := `(kicad_pcb (page A3) (title_block (rev "B") (comment 1 "wrong")))`

	result := check(t, src, map[string]string{
		"pageSize": "A4",
		"title":    ".+",
		"rev":      `\d+`,
		"comment1": "Drawn",
	})

	assert.Equal(t, []string{
		"Expected Page Size A4, found A3",
		"title not found, expected match: .+",
		`rev: "B", does not match "\d+"`,
		`Comment 1: "wrong", does not match "Drawn"`,
	}, result.Errors)
}

func TestValidate_ScenarioFieldMismatchAndMissing(t *testing.T) {
	rs := ruleSet(t, map[string]string{
		"title": ".+",
		"rev":   `\d+`,
	})
	ex := Extraction{
		HasTitleBlock: true,
		Data: Data{
			PageSize: strPtr("A4"),
			Rev:      strPtr("B"),
		},
	}

	result := Validate(ex, rs)

	assert.Equal(t, []string{
		"title not found, expected match: .+",
		`rev: "B", does not match "\d+"`,
	}, result.Errors)
}

func TestData_Scalar(t *testing.T) {
	d := Data{Title: strPtr("T"), Date: strPtr("D")}

	assert.Equal(t, "T", *d.Scalar(titlecheck.FieldTitle))
	assert.Equal(t, "D", *d.Scalar(titlecheck.FieldDate))
	assert.Nil(t, d.Scalar(titlecheck.FieldRev))
	assert.Nil(t, d.Scalar("comment1"))
}

func TestValidationResult(t *testing.T) {
	r := NewValidationResult()
	assert.True(t, r.Valid)
	assert.False(t, r.HasErrors())

	r.AddError("first %d", 1)
	r.AddError("second")

	assert.False(t, r.Valid)
	assert.True(t, r.HasErrors())
	assert.Equal(t, "first 1; second", r.ErrorString())
}

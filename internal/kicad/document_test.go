package kicad

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/titlecheck/internal/sexpr"
)

const boardSrc = `(kicad_pcb (version 20171130) (host pcbnew 5.1.9)
  (general (thickness 1.6))
  (page A4)
  (title_block
    (title "Power Board")
    (date 2024-03-01)
    (rev "3")
    (company "ACME")
    (comment 1 "Drawn: JD")
    (comment 3 "Checked")
  )
)
`

const schematicSrc = `(kicad_sch (version 20211123) (generator eeschema)
  (uuid 1b2e0a3e-4f54-4e0f-9a52-3f0d3b6c2b11)
  (paper "User" 200 150)
  (title_block
    (title "Sensor")
    (comment 2 "Only one")
  )
)
`

func TestParseBoard(t *testing.T) {
	doc, err := ParseBoard([]byte(boardSrc), "main.kicad_pcb")
	require.NoError(t, err)

	size, ok := doc.PageSize()
	require.True(t, ok)
	assert.Equal(t, "A4", size)

	tb, ok := doc.TitleBlock()
	require.True(t, ok)

	title, ok := tb.Field("title")
	require.True(t, ok)
	assert.Equal(t, `"Power Board"`, title)

	date, ok := tb.Field("date")
	require.True(t, ok)
	assert.Equal(t, "2024-03-01", date)

	comments, errs := tb.Comments()
	require.Empty(t, errs)
	assert.Equal(t, []Comment{
		{Index: 1, Value: `"Drawn: JD"`},
		{Index: 3, Value: `"Checked"`},
	}, comments)
}

func TestParseSchematic_PaperKeyAndSingleComment(t *testing.T) {
	doc, err := ParseSchematic([]byte(schematicSrc), "sensor.kicad_sch")
	require.NoError(t, err)

	size, ok := doc.PageSize()
	require.True(t, ok)
	assert.Equal(t, "User 200 150", size)

	tb, ok := doc.TitleBlock()
	require.True(t, ok)

	_, ok = tb.Field("rev")
	assert.False(t, ok)

	comments, errs := tb.Comments()
	require.Empty(t, errs)
	assert.Equal(t, []Comment{{Index: 2, Value: `"Only one"`}}, comments)
}

func TestPageSize_EitherKeyForEitherKind(t *testing.T) {
	doc, err := ParseBoard([]byte(`(kicad_pcb (paper "A3"))`), "b.kicad_pcb")
	require.NoError(t, err)
	size, ok := doc.PageSize()
	require.True(t, ok)
	assert.Equal(t, "A3", size)

	doc, err = ParseSchematic([]byte(`(kicad_sch (page "A2" portrait))`), "s.kicad_sch")
	require.NoError(t, err)
	size, ok = doc.PageSize()
	require.True(t, ok)
	assert.Equal(t, "A2 portrait", size)
}

func TestPageSize_Missing(t *testing.T) {
	doc, err := ParseBoard([]byte(`(kicad_pcb (title_block (title "x")))`), "b.kicad_pcb")
	require.NoError(t, err)
	_, ok := doc.PageSize()
	assert.False(t, ok)
}

func TestTitleBlock_Missing(t *testing.T) {
	doc, err := ParseSchematic([]byte(`(kicad_sch (paper "A4"))`), "s.kicad_sch")
	require.NoError(t, err)
	_, ok := doc.TitleBlock()
	assert.False(t, ok)
}

func TestTitleBlock_EmptyField(t *testing.T) {
	doc, err := ParseBoard([]byte(`(kicad_pcb (title_block (title) (rev (x))))`), "b.kicad_pcb")
	require.NoError(t, err)
	tb, _ := doc.TitleBlock()

	title, ok := tb.Field("title")
	assert.True(t, ok)
	assert.Equal(t, "", title)

	rev, ok := tb.Field("rev")
	assert.True(t, ok)
	assert.Equal(t, "", rev)
}

func TestComments_InvalidIndex(t *testing.T) {
	doc, err := ParseBoard([]byte("(kicad_pcb (title_block\n (comment x \"a\")\n (comment)\n (comment 4 \"d\")))"), "b.kicad_pcb")
	require.NoError(t, err)
	tb, _ := doc.TitleBlock()

	comments, errs := tb.Comments()
	assert.Equal(t, []Comment{{Index: 4, Value: `"d"`}}, comments)
	require.Len(t, errs, 2)
	assert.Equal(t, "comment at line 2 has invalid index x", errs[0].Error())
	assert.Equal(t, "comment at line 3 has no index", errs[1].Error())
}

func TestParse_WrongRoot(t *testing.T) {
	_, err := ParseBoard([]byte(schematicSrc), "wrong.kicad_pcb")
	require.Error(t, err)

	var parseErrs ParseErrors
	require.True(t, errors.As(err, &parseErrs))
	require.Len(t, parseErrs, 1)
	assert.Equal(t, "wrong.kicad_pcb", parseErrs[0].FilePath)
	assert.Contains(t, parseErrs[0].Error(), `expected root element "kicad_pcb", found "kicad_sch"`)
}

func TestParse_SyntaxErrorsAreListed(t *testing.T) {
	_, err := ParseSchematic([]byte(")(kicad_sch (paper A4"), "broken.kicad_sch")
	require.Error(t, err)

	var parseErrs ParseErrors
	require.True(t, errors.As(err, &parseErrs))
	require.Len(t, parseErrs, 2)

	var syntaxErr *sexpr.SyntaxError
	require.True(t, errors.As(parseErrs[0], &syntaxErr))
	assert.Equal(t, 1, syntaxErr.Column)
}

func TestUnquote(t *testing.T) {
	tests := map[string]string{
		`"A4"`:    "A4",
		`A4`:      "A4",
		`""`:      "",
		`"`:       `"`,
		`""x""`:   `"x"`,
		`"a" "b"`: `a" "b`,
	}
	for in, want := range tests {
		assert.Equal(t, want, Unquote(in), "Unquote(%s)", in)
	}
}

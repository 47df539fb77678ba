package rules

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/titlecheck/internal/config"
	"github.com/vvka-141/titlecheck/pkg/titlecheck"
)

func TestBuild_MergesLayersWithClassPrecedence(t *testing.T) {
	file := &config.RuleFile{
		Path: "rules.yaml",
		All:  config.RuleLayer{"company": "^ACME", "rev": "^[0-9]+$"},
		PCB:  config.RuleLayer{"rev": "^R[0-9]+$", "pageSize": "A4"},
	}

	rs, warnings, err := Build(file, titlecheck.ClassBoard)
	require.NoError(t, err)
	require.NotNil(t, rs)

	rev, ok := rs.Rule("rev")
	require.True(t, ok)
	assert.Equal(t, "^R[0-9]+$", rev.Pattern)

	size, ok := rs.PageSize()
	require.True(t, ok)
	assert.Equal(t, "A4", size)

	require.Len(t, warnings, 1)
	assert.Equal(t, "rules.yaml", warnings[0].File)
	assert.Equal(t, "Field rev specified for ALL and PCB", warnings[0].Message)
}

func TestBuild_LayersAreNotAliased(t *testing.T) {
	file := &config.RuleFile{
		All: config.RuleLayer{"title": ".+"},
		PCB: config.RuleLayer{"rev": "^1"},
		SCH: config.RuleLayer{"date": "^2024"},
	}

	pcb, _, err := Build(file, titlecheck.ClassBoard)
	require.NoError(t, err)
	sch, _, err := Build(file, titlecheck.ClassSchematic)
	require.NoError(t, err)

	assert.True(t, pcb.Requires("rev"))
	assert.False(t, pcb.Requires("date"))
	assert.True(t, sch.Requires("date"))
	assert.False(t, sch.Requires("rev"))
	assert.Equal(t, config.RuleLayer{"title": ".+"}, file.All, "all layer must stay untouched")
}

func TestBuild_ClassDisabledWithoutLayers(t *testing.T) {
	file := &config.RuleFile{PCB: config.RuleLayer{"title": "x"}}

	rs, warnings, err := Build(file, titlecheck.ClassSchematic)
	require.NoError(t, err)
	assert.Nil(t, rs)
	assert.Empty(t, warnings)
}

func TestBuild_UnknownFieldsWarn(t *testing.T) {
	file := &config.RuleFile{
		Path: "cfg.yaml",
		SCH:  config.RuleLayer{"revision": "1", "title": "T"},
	}

	rs, warnings, err := Build(file, titlecheck.ClassSchematic)
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Equal(t, "Unknown Schematic Field: revision", warnings[0].Message)
	assert.False(t, rs.Requires("revision"))
	assert.True(t, rs.Requires("title"))
}

func TestBuild_SchematicOverlapLabel(t *testing.T) {
	file := &config.RuleFile{
		All: config.RuleLayer{"title": "A"},
		SCH: config.RuleLayer{"title": "B"},
	}
	_, warnings, err := Build(file, titlecheck.ClassSchematic)
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Equal(t, "Field title specified for ALL and schematic", warnings[0].Message)
}

func TestBuild_InvalidPatternsAreFatal(t *testing.T) {
	file := &config.RuleFile{
		All: config.RuleLayer{"title": "(", "rev": "[0-9"},
	}

	rs, _, err := Build(file, titlecheck.ClassBoard)
	require.Error(t, err)
	assert.Nil(t, rs)
	assert.True(t, errors.Is(err, titlecheck.ErrInvalidConfig))
	assert.Contains(t, err.Error(), "field title")
	assert.Contains(t, err.Error(), "field rev")
}

func TestBuild_AcceptsLookaroundPatterns(t *testing.T) {
	file := &config.RuleFile{All: config.RuleLayer{"title": "(?!DRAFT)", "rev": `(?<=^)\d+`}}

	rs, _, err := Build(file, titlecheck.ClassBoard)
	require.NoError(t, err)

	title, ok := rs.Rule("title")
	require.True(t, ok)
	assert.True(t, title.Match("Power Board"))
	assert.False(t, title.Match("DRAFT Power Board"))

	rev, ok := rs.Rule("rev")
	require.True(t, ok)
	assert.True(t, rev.Match("3"))
}

func TestBuild_PageSizeIsLiteral(t *testing.T) {
	file := &config.RuleFile{All: config.RuleLayer{"pageSize": "User (custom"}}

	rs, _, err := Build(file, titlecheck.ClassBoard)
	require.NoError(t, err)
	size, ok := rs.PageSize()
	require.True(t, ok)
	assert.Equal(t, "User (custom", size)
	assert.True(t, rs.Requires(titlecheck.FieldPageSize))
}

func TestRuleSet_CommentRulesDefaultToMatchAnything(t *testing.T) {
	file := &config.RuleFile{PCB: config.RuleLayer{"comment2": "^Drawn"}}

	rs, _, err := Build(file, titlecheck.ClassBoard)
	require.NoError(t, err)

	comments := rs.CommentRules()
	assert.Equal(t, "(.*)", comments[0].Pattern)
	assert.Equal(t, "^Drawn", comments[1].Pattern)
	assert.Equal(t, "comment2", comments[1].Field)
	assert.True(t, comments[3].Match(""))
}

func TestRuleSet_EntriesCanonicalOrder(t *testing.T) {
	file := &config.RuleFile{All: config.RuleLayer{
		"comment1": "c",
		"date":     "d",
		"pageSize": "A3",
		"title":    "t",
	}}

	rs, _, err := Build(file, titlecheck.ClassBoard)
	require.NoError(t, err)
	assert.Equal(t, []Entry{
		{Field: "pageSize", Pattern: "A3"},
		{Field: "title", Pattern: "t"},
		{Field: "date", Pattern: "d"},
		{Field: "comment1", Pattern: "c"},
	}, rs.Entries())
}

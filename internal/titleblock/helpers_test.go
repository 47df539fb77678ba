package titleblock

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vvka-141/titlecheck/internal/config"
	"github.com/vvka-141/titlecheck/internal/rules"
	"github.com/vvka-141/titlecheck/pkg/titlecheck"
)

// ruleSet builds a schematic-class rule set from an "all" layer.
func ruleSet(t *testing.T, all map[string]string) *rules.RuleSet {
	t.Helper()
	rs, _, err := rules.Build(&config.RuleFile{All: all}, titlecheck.ClassSchematic)
	require.NoError(t, err)
	require.NotNil(t, rs)
	return rs
}

func boardRuleSet(t *testing.T, all map[string]string) *rules.RuleSet {
	t.Helper()
	rs, _, err := rules.Build(&config.RuleFile{All: all}, titlecheck.ClassBoard)
	require.NoError(t, err)
	require.NotNil(t, rs)
	return rs
}

package report

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGitHubAnnotator_Commands(t *testing.T) {
	var buf bytes.Buffer
	g := NewGitHubAnnotator(&buf, "")

	g.Group("Checking PCBs")
	g.Error("boards/a.kicad_pcb", "Page size not found")
	g.Warning(".github/titleblock.yaml", "Unknown PCB Field: titel")
	g.Error("", "could not open the config file")
	g.Notice("All Checks Passed!")
	g.EndGroup()

	assert.Equal(t, "::group::Checking PCBs\n"+
		"::error file=boards/a.kicad_pcb::Page size not found\n"+
		"::warning file=.github/titleblock.yaml::Unknown PCB Field: titel\n"+
		"::error::could not open the config file\n"+
		"All Checks Passed!\n"+
		"::endgroup::\n", buf.String())
}

func TestGitHubAnnotator_Escaping(t *testing.T) {
	var buf bytes.Buffer
	g := NewGitHubAnnotator(&buf, "")

	g.Error("dir:a,b.kicad_pcb", "100% wrong\nsecond line\r")

	assert.Equal(t, "::error file=dir%3Aa%2Cb.kicad_pcb::100%25 wrong%0Asecond line%0D\n", buf.String())
}

func TestEscapeData_KeepsColonsAndCommas(t *testing.T) {
	assert.Equal(t, `rev: "B", does not match "\d+"`, escapeData(`rev: "B", does not match "\d+"`))
}

func TestGitHubAnnotator_SetOutputLegacy(t *testing.T) {
	var buf bytes.Buffer
	g := NewGitHubAnnotator(&buf, "")

	require.NoError(t, g.SetOutput("fails", "a.kicad_pcb,b.sch"))

	assert.Equal(t, "::set-output name=fails::a.kicad_pcb,b.sch\n", buf.String())
}

func TestGitHubAnnotator_SetOutputFile(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "github_output")
	require.NoError(t, os.WriteFile(path, []byte("existing=1\n"), 0o644))
	g := NewGitHubAnnotator(&buf, path)

	require.NoError(t, g.SetOutput("fails", "a.kicad_pcb,b.sch"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "existing=1\nfails=a.kicad_pcb,b.sch\n", string(data))
	assert.Empty(t, buf.String())
}

func TestGitHubAnnotator_SetOutputFileMultiline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "github_output")
	g := NewGitHubAnnotator(&bytes.Buffer{}, path)

	require.NoError(t, g.SetOutput("fails", "a\nb"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	re := regexp.MustCompile(`^fails<<(ghadelimiter_[0-9a-f-]+)\na\nb\n(ghadelimiter_[0-9a-f-]+)\n$`)
	m := re.FindStringSubmatch(string(data))
	require.NotNil(t, m, "unexpected output file content: %q", string(data))
	assert.Equal(t, m[1], m[2])
}

func TestGitHubAnnotator_SetOutputFileError(t *testing.T) {
	g := NewGitHubAnnotator(&bytes.Buffer{}, filepath.Join(t.TempDir(), "missing", "out"))

	err := g.SetOutput("fails", "x")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open output file")
}

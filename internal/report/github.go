package report

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// GitHubAnnotator writes GitHub Actions workflow commands.
type GitHubAnnotator struct {
	mu         sync.Mutex
	w          io.Writer
	outputPath string
}

// NewGitHubAnnotator writes workflow commands to w. Outputs are appended to
// outputPath (the GITHUB_OUTPUT file) when it is set; otherwise they are
// written as legacy set-output commands.
func NewGitHubAnnotator(w io.Writer, outputPath string) *GitHubAnnotator {
	return &GitHubAnnotator{w: w, outputPath: outputPath}
}

func (g *GitHubAnnotator) Group(name string) {
	g.printf("::group::%s\n", escapeData(name))
}

func (g *GitHubAnnotator) EndGroup() {
	g.printf("::endgroup::\n")
}

func (g *GitHubAnnotator) Error(file, message string) {
	g.command("error", file, message)
}

func (g *GitHubAnnotator) Warning(file, message string) {
	g.command("warning", file, message)
}

func (g *GitHubAnnotator) Notice(message string) {
	g.printf("%s\n", message)
}

// SetOutput publishes name=value. Multi-line values use the delimiter form
// of the output file.
func (g *GitHubAnnotator) SetOutput(name, value string) error {
	if g.outputPath == "" {
		g.printf("::set-output name=%s::%s\n", escapeProperty(name), escapeData(value))
		return nil
	}

	f, err := os.OpenFile(g.outputPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open output file %s: %w", g.outputPath, err)
	}
	defer f.Close()

	var entry string
	if strings.ContainsAny(value, "\r\n") {
		delim := "ghadelimiter_" + uuid.NewString()
		entry = fmt.Sprintf("%s<<%s\n%s\n%s\n", name, delim, value, delim)
	} else {
		entry = fmt.Sprintf("%s=%s\n", name, value)
	}
	if _, err := f.WriteString(entry); err != nil {
		return fmt.Errorf("failed to write output %s: %w", name, err)
	}
	return nil
}

func (g *GitHubAnnotator) command(kind, file, message string) {
	if file == "" {
		g.printf("::%s::%s\n", kind, escapeData(message))
		return
	}
	g.printf("::%s file=%s::%s\n", kind, escapeProperty(file), escapeData(message))
}

func (g *GitHubAnnotator) printf(format string, args ...interface{}) {
	g.mu.Lock()
	defer g.mu.Unlock()
	fmt.Fprintf(g.w, format, args...)
}

var (
	dataEscaper = strings.NewReplacer(
		"%", "%25",
		"\r", "%0D",
		"\n", "%0A",
	)
	propertyEscaper = strings.NewReplacer(
		"%", "%25",
		"\r", "%0D",
		"\n", "%0A",
		":", "%3A",
		",", "%2C",
	)
)

func escapeData(s string) string {
	return dataEscaper.Replace(s)
}

func escapeProperty(s string) string {
	return propertyEscaper.Replace(s)
}

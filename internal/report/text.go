package report

import (
	"fmt"
	"io"
	"sync"

	"github.com/vvka-141/titlecheck/internal/tui"
)

// TextAnnotator writes human-readable report lines, styled with lipgloss
// when the destination is a terminal.
type TextAnnotator struct {
	mu     sync.Mutex
	w      io.Writer
	styled bool
}

// NewTextAnnotator writes to w; styled enables colors and bold group titles.
func NewTextAnnotator(w io.Writer, styled bool) *TextAnnotator {
	return &TextAnnotator{w: w, styled: styled}
}

func (t *TextAnnotator) Group(name string) {
	t.println(tui.Paint(t.styled, tui.GroupStyle, tui.SymbolArrowRight+" "+name))
}

func (t *TextAnnotator) EndGroup() {}

func (t *TextAnnotator) Error(file, message string) {
	t.println("  " + tui.Paint(t.styled, tui.ErrorStyle, tui.SymbolCross) + " " + t.located(file, message))
}

func (t *TextAnnotator) Warning(file, message string) {
	t.println("  " + tui.Paint(t.styled, tui.WarningStyle, tui.SymbolWarning) + " " + t.located(file, message))
}

func (t *TextAnnotator) Notice(message string) {
	t.println(message)
}

func (t *TextAnnotator) SetOutput(name, value string) error {
	t.println(tui.Paint(t.styled, tui.MutedStyle, fmt.Sprintf("%s: %s", name, value)))
	return nil
}

func (t *TextAnnotator) located(file, message string) string {
	if file == "" {
		return message
	}
	return tui.Paint(t.styled, tui.FileStyle, file+":") + " " + message
}

func (t *TextAnnotator) println(s string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintln(t.w, s)
}

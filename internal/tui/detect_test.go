package tui

import (
	"os"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("TITLECHECK_PLAIN", "")
	t.Setenv("CI", "")
	t.Setenv("NO_COLOR", "")
	t.Setenv("TERM", "xterm-256color")
}

func TestDetectMode_TITLECHECK_PLAIN(t *testing.T) {
	clearEnv(t)
	t.Setenv("TITLECHECK_PLAIN", "1")

	if got := DetectMode(os.Stdout); got != ModePlain {
		t.Errorf("DetectMode() = %d, want ModePlain", got)
	}
}

func TestDetectMode_CI(t *testing.T) {
	clearEnv(t)
	t.Setenv("CI", "true")

	if got := DetectMode(os.Stdout); got != ModePlain {
		t.Errorf("DetectMode() = %d, want ModePlain", got)
	}
}

func TestDetectMode_NO_COLOR(t *testing.T) {
	clearEnv(t)
	t.Setenv("NO_COLOR", "1")

	if got := DetectMode(os.Stdout); got != ModePlain {
		t.Errorf("DetectMode() = %d, want ModePlain", got)
	}
}

func TestDetectMode_DumbTerminal(t *testing.T) {
	clearEnv(t)
	t.Setenv("TERM", "dumb")

	if got := DetectMode(os.Stdout); got != ModePlain {
		t.Errorf("DetectMode() = %d, want ModePlain", got)
	}
}

func TestDetectMode_NotATerminal(t *testing.T) {
	clearEnv(t)

	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if got := DetectMode(f); got != ModePlain {
		t.Errorf("DetectMode() = %d, want ModePlain for a regular file", got)
	}
}

func TestDetectMode_NilFile(t *testing.T) {
	clearEnv(t)

	if IsStyled(nil) {
		t.Error("IsStyled(nil) = true, want false")
	}
}

func TestPaint_Plain(t *testing.T) {
	style := lipgloss.NewStyle().Bold(true)

	if got := Paint(false, style, "text"); got != "text" {
		t.Errorf("Paint(false) = %q, want %q", got, "text")
	}
}

package services

import (
	"fmt"
	"strings"
	"sync"
)

// mockAnnotator records every annotation call as a line.
type mockAnnotator struct {
	mu    sync.Mutex
	lines []string
}

func (m *mockAnnotator) add(format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lines = append(m.lines, fmt.Sprintf(format, args...))
}

func (m *mockAnnotator) Group(name string)           { m.add("group %s", name) }
func (m *mockAnnotator) EndGroup()                   { m.add("endgroup") }
func (m *mockAnnotator) Error(file, msg string)      { m.add("error %s: %s", file, msg) }
func (m *mockAnnotator) Warning(file, msg string)    { m.add("warning %s: %s", file, msg) }
func (m *mockAnnotator) Notice(msg string)           { m.add("notice %s", msg) }
func (m *mockAnnotator) SetOutput(n, v string) error { m.add("output %s=%s", n, v); return nil }

func (m *mockAnnotator) String() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return strings.Join(m.lines, "\n")
}

func (m *mockAnnotator) count(prefix string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, l := range m.lines {
		if strings.HasPrefix(l, prefix) {
			n++
		}
	}
	return n
}

package kicad

import (
	"fmt"
	"strings"
)

// ParseError is a structural problem that prevents a file from being checked.
type ParseError struct {
	FilePath string
	Cause    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s: %v", e.FilePath, e.Cause)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// ParseErrors lists every structural problem found in one file.
// Callers report each entry separately.
type ParseErrors []*ParseError

func (e ParseErrors) Error() string {
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

package rules

import (
	"fmt"
	"time"

	"github.com/dlclark/regexp2"
)

// MatchTimeout bounds a single match so a backtracking pattern cannot stall a run.
const MatchTimeout = time.Second

// Rule is one compiled field rule. Patterns use Perl/Python syntax,
// including lookarounds and backreferences.
type Rule struct {
	// Field is the rule field name, e.g. "title" or "comment2".
	Field string
	// Pattern is the expression as written in the rule file.
	Pattern string

	re *regexp2.Regexp
}

// NewRule compiles pattern for field with prefix-anchored semantics.
func NewRule(field, pattern string) (*Rule, error) {
	re, err := regexp2.Compile(`^(?:`+pattern+`)`, regexp2.None)
	if err != nil {
		return nil, fmt.Errorf("field %s: invalid pattern %q: %w", field, pattern, err)
	}
	re.MatchTimeout = MatchTimeout
	return &Rule{Field: field, Pattern: pattern, re: re}, nil
}

// MustNewRule is NewRule that panics on an invalid pattern.
func MustNewRule(field, pattern string) *Rule {
	r, err := NewRule(field, pattern)
	if err != nil {
		panic(err)
	}
	return r
}

// Match reports whether the rule matches value starting at position 0.
// A match that exceeds MatchTimeout counts as a mismatch.
func (r *Rule) Match(value string) bool {
	ok, err := r.re.MatchString(value)
	return err == nil && ok
}

// MatchValue applies r to an optional value. An absent value never matches;
// callers tell "absent" apart from "mismatched" before calling.
func MatchValue(value *string, r *Rule) bool {
	if value == nil {
		return false
	}
	return r.Match(*value)
}

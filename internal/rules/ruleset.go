package rules

import (
	"fmt"
	"sort"

	"go.uber.org/multierr"

	"github.com/vvka-141/titlecheck/internal/config"
	"github.com/vvka-141/titlecheck/pkg/titlecheck"
)

// Warning is a non-fatal rule file problem. It never affects exit status.
type Warning struct {
	// File is the rule file the warning refers to.
	File    string `json:"file"`
	Message string `json:"message"`
}

// RuleSet is the immutable, merged rule set for one document class.
type RuleSet struct {
	class    titlecheck.DocumentClass
	pageSize *string
	rules    map[string]*Rule
	comments [titlecheck.CommentSlots]*Rule
}

// Build merges the rule file layers for class and compiles every pattern.
//
// It returns a nil RuleSet when neither "all" nor the class layer is
// present: the class is not checked. Invalid patterns are collected and
// returned together wrapped in titlecheck.ErrInvalidConfig.
func Build(file *config.RuleFile, class titlecheck.DocumentClass) (*RuleSet, []Warning, error) {
	var classLayer config.RuleLayer
	switch class {
	case titlecheck.ClassBoard:
		classLayer = file.PCB
	case titlecheck.ClassSchematic:
		classLayer = file.SCH
	default:
		return nil, nil, fmt.Errorf("unknown document class %d: %w", class, titlecheck.ErrInvalidConfig)
	}

	if file.All == nil && classLayer == nil {
		return nil, nil, nil
	}

	merged := make(map[string]string, len(file.All)+len(classLayer))
	for k, v := range file.All {
		merged[k] = v
	}

	var warnings []Warning
	for _, k := range sortedKeys(classLayer) {
		if _, dup := file.All[k]; dup {
			warnings = append(warnings, Warning{
				File:    file.Path,
				Message: fmt.Sprintf("Field %s specified for ALL and %s", k, overlapLabel(class)),
			})
		}
		merged[k] = classLayer[k]
	}

	rs := &RuleSet{
		class: class,
		rules: make(map[string]*Rule),
	}

	var errs error
	for _, field := range sortedKeys(merged) {
		pattern := merged[field]
		if !titlecheck.IsKnownField(field) {
			warnings = append(warnings, Warning{
				File:    file.Path,
				Message: fmt.Sprintf("Unknown %s Field: %s", class, field),
			})
			continue
		}
		if field == titlecheck.FieldPageSize {
			p := pattern
			rs.pageSize = &p
			continue
		}
		r, err := NewRule(field, pattern)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		rs.rules[field] = r
	}
	if errs != nil {
		return nil, warnings, fmt.Errorf("%s rules: %w: %w", class, titlecheck.ErrInvalidConfig, errs)
	}

	for i, field := range titlecheck.CommentFields {
		if r, ok := rs.rules[field]; ok {
			rs.comments[i] = r
		} else {
			rs.comments[i] = MustNewRule(field, titlecheck.MatchAnything)
		}
	}

	return rs, warnings, nil
}

func overlapLabel(class titlecheck.DocumentClass) string {
	if class == titlecheck.ClassSchematic {
		return "schematic"
	}
	return class.String()
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Class returns the document class the set was built for.
func (rs *RuleSet) Class() titlecheck.DocumentClass {
	return rs.class
}

// PageSize returns the required page size literal, if any.
func (rs *RuleSet) PageSize() (string, bool) {
	if rs.pageSize == nil {
		return "", false
	}
	return *rs.pageSize, true
}

// Rule returns the compiled rule for a field, if the field is required.
// pageSize is never returned here; see PageSize.
func (rs *RuleSet) Rule(field string) (*Rule, bool) {
	r, ok := rs.rules[field]
	return r, ok
}

// Requires reports whether field must be present in a document.
func (rs *RuleSet) Requires(field string) bool {
	if field == titlecheck.FieldPageSize {
		return rs.pageSize != nil
	}
	_, ok := rs.rules[field]
	return ok
}

// CommentRules returns one rule per comment slot; slots without a
// configured rule match anything.
func (rs *RuleSet) CommentRules() [titlecheck.CommentSlots]*Rule {
	return rs.comments
}

// Entries returns the required fields and their patterns in canonical
// field order, pageSize included.
func (rs *RuleSet) Entries() []Entry {
	var entries []Entry
	for _, field := range titlecheck.Fields {
		if field == titlecheck.FieldPageSize {
			if rs.pageSize != nil {
				entries = append(entries, Entry{Field: field, Pattern: *rs.pageSize})
			}
			continue
		}
		if r, ok := rs.rules[field]; ok {
			entries = append(entries, Entry{Field: field, Pattern: r.Pattern})
		}
	}
	return entries
}

// Entry is a field/pattern pair as written in the rule file.
type Entry struct {
	Field   string `json:"field"`
	Pattern string `json:"pattern"`
}

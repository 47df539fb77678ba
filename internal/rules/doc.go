// Package rules builds the per-class rule sets a title block is checked
// against and provides the matcher used for every field.
//
// A RuleSet is built once per document class from two layers of the rule
// file: the shared "all" layer and the class layer ("pcb" or "sch"). Layers
// are copied before merging, so one class never sees another's overrides.
// Class entries take precedence over "all"; a field declared in both
// produces a warning, not an error.
//
// Patterns are compiled at construction time. Matching is prefix-anchored:
// a value matches when the pattern matches starting at its first character,
// whatever follows. The pageSize rule is not a pattern; it is a literal that
// must appear inside the extracted page size.
package rules

// Package sexpr parses the S-expression text used by current-generation
// board and schematic files.
//
// The grammar is the small subset those files use:
//
//	document = list
//	list     = "(" { list | string | symbol } ")"
//	string   = '"' { any char, with backslash escapes } '"'
//	symbol   = run of characters other than whitespace, parentheses and '"'
//
// Atoms keep their source text verbatim; string atoms include their
// surrounding quotes so callers decide how to unquote. The parser does not
// stop at the first problem: every syntax error it can recover from is
// reported with its line and column.
package sexpr

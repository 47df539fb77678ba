// Package ci reads the CI event payload and asks git which files an event
// changed.
//
// Two event shapes are supported: pull requests, diffed as
// origin/<base>...origin/<head>, and pushes, diffed as <before>...<after>.
// Deleted files are never returned.
package ci

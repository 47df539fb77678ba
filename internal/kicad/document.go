// Package kicad adapts parsed S-expression documents into the title block
// view the checker needs. It understands only the page descriptor and the
// title_block section of board and schematic files.
package kicad

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vvka-141/titlecheck/internal/sexpr"
)

// Root symbols of the supported document kinds.
const (
	BoardRoot     = "kicad_pcb"
	SchematicRoot = "kicad_sch"
)

// Page descriptor keys. Boards use "page" and schematics use "paper", but
// lookups accept either regardless of document kind.
var pageKeys = []string{"page", "paper"}

// Document is a parsed board or schematic.
type Document struct {
	root *sexpr.Node
}

// ParseBoard parses board file content.
func ParseBoard(content []byte, path string) (*Document, error) {
	return parse(content, path, BoardRoot)
}

// ParseSchematic parses current-generation schematic content.
func ParseSchematic(content []byte, path string) (*Document, error) {
	return parse(content, path, SchematicRoot)
}

func parse(content []byte, path, rootName string) (*Document, error) {
	root, syntaxErrs := sexpr.Parse(content)

	var errs ParseErrors
	for _, err := range syntaxErrs {
		errs = append(errs, &ParseError{FilePath: path, Cause: err})
	}
	if len(errs) == 0 && root.Head() != rootName {
		errs = append(errs, &ParseError{
			FilePath: path,
			Cause:    fmt.Errorf("expected root element %q, found %q", rootName, root.Head()),
		})
	}
	if len(errs) > 0 {
		return nil, errs
	}

	return &Document{root: root}, nil
}

// PageSize returns the page descriptor's values joined by single spaces,
// with one layer of quotes removed from each, e.g. "A4" or "User 200 150".
func (d *Document) PageSize() (string, bool) {
	for _, key := range pageKeys {
		node, ok := d.root.Child(key)
		if !ok {
			continue
		}
		parts := make([]string, 0, len(node.Args()))
		for _, arg := range node.Args() {
			if arg.IsList() {
				continue
			}
			parts = append(parts, Unquote(arg.Text))
		}
		return strings.Join(parts, " "), true
	}
	return "", false
}

// TitleBlock returns the document's title block section.
func (d *Document) TitleBlock() (*TitleBlock, bool) {
	node, ok := d.root.Child("title_block")
	if !ok {
		return nil, false
	}
	return &TitleBlock{node: node}, true
}

// TitleBlock is the title_block section of a document.
type TitleBlock struct {
	node *sexpr.Node
}

// Field returns the raw text of a scalar entry such as (title "X"),
// quotes included. An entry with no value yields "".
func (tb *TitleBlock) Field(name string) (string, bool) {
	node, ok := tb.node.Child(name)
	if !ok {
		return "", false
	}
	args := node.Args()
	if len(args) == 0 || args[0].IsList() {
		return "", true
	}
	return args[0].Text, true
}

// Comment is one numbered comment line of a title block.
type Comment struct {
	// Index is 1-based as written in the file.
	Index int
	// Value is the raw text, quotes included.
	Value string
}

// Comments returns every (comment N "text") entry in document order.
// A title block holding one comment and one holding several produce the
// same shape. Entries whose index is not an integer are returned as errors.
func (tb *TitleBlock) Comments() ([]Comment, []error) {
	var (
		comments []Comment
		errs     []error
	)
	for _, node := range tb.node.ChildrenNamed("comment") {
		args := node.Args()
		if len(args) == 0 || args[0].IsList() {
			errs = append(errs, fmt.Errorf("comment at line %d has no index", node.Line))
			continue
		}
		index, err := strconv.Atoi(Unquote(args[0].Text))
		if err != nil {
			errs = append(errs, fmt.Errorf("comment at line %d has invalid index %s", node.Line, args[0].Text))
			continue
		}
		value := ""
		if len(args) > 1 && !args[1].IsList() {
			value = args[1].Text
		}
		comments = append(comments, Comment{Index: index, Value: value})
	}
	return comments, errs
}

// Unquote removes one surrounding pair of double quotes, if present.
func Unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}

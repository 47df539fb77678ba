package sexpr

import (
	"fmt"
)

// SyntaxError describes a malformed region of a document.
type SyntaxError struct {
	Line    int
	Column  int
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d, column %d: %s", e.Line, e.Column, e.Message)
}

type parser struct {
	src   []byte
	pos   int
	line  int
	col   int
	stack []*Node
	root  *Node
	errs  []error
	extra bool
}

// Parse reads a single-rooted S-expression document.
//
// It returns the root list (which may be partial when errors were found)
// and every syntax error encountered. A nil error slice means the document
// is well formed.
func Parse(src []byte) (*Node, []error) {
	p := &parser{src: src, line: 1, col: 1}
	p.run()
	return p.root, p.errs
}

func (p *parser) errorf(line, col int, format string, args ...interface{}) {
	p.errs = append(p.errs, &SyntaxError{Line: line, Column: col, Message: fmt.Sprintf(format, args...)})
}

func (p *parser) advance() byte {
	c := p.src[p.pos]
	p.pos++
	if c == '\n' {
		p.line++
		p.col = 1
	} else {
		p.col++
	}
	return c
}

func (p *parser) run() {
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		line, col := p.line, p.col

		switch {
		case isSpace(c):
			p.advance()

		case c == '(':
			p.advance()
			p.push(&Node{Kind: KindList, Line: line, Column: col})

		case c == ')':
			p.advance()
			if len(p.stack) == 0 {
				p.errorf(line, col, "unexpected ')'")
				continue
			}
			p.stack = p.stack[:len(p.stack)-1]

		case c == '"':
			text, ok := p.readString()
			if !ok {
				p.errorf(line, col, "unterminated string")
				return
			}
			p.attach(&Node{Kind: KindString, Text: text, Line: line, Column: col})

		default:
			p.attach(&Node{Kind: KindSymbol, Text: p.readSymbol(), Line: line, Column: col})
		}
	}

	if len(p.stack) > 0 {
		open := p.stack[len(p.stack)-1]
		p.errorf(p.line, p.col, "unexpected end of input: list opened at line %d, column %d is not closed", open.Line, open.Column)
	}
	if p.root == nil && len(p.errs) == 0 {
		p.errorf(p.line, p.col, "empty document")
	}
}

// push opens a list, attaching it to its parent or making it the root.
func (p *parser) push(n *Node) {
	if len(p.stack) == 0 {
		if p.root != nil {
			p.reportExtra(n)
		} else {
			p.root = n
		}
	} else {
		parent := p.stack[len(p.stack)-1]
		parent.Children = append(parent.Children, n)
	}
	p.stack = append(p.stack, n)
}

func (p *parser) attach(n *Node) {
	if len(p.stack) == 0 {
		p.reportExtra(n)
		return
	}
	parent := p.stack[len(p.stack)-1]
	parent.Children = append(parent.Children, n)
}

// reportExtra flags top-level content besides the root, once per document.
func (p *parser) reportExtra(n *Node) {
	if p.extra {
		return
	}
	p.extra = true
	if p.root == nil {
		p.errorf(n.Line, n.Column, "document must start with '('")
		return
	}
	p.errorf(n.Line, n.Column, "unexpected content after document root")
}

func (p *parser) readString() (string, bool) {
	start := p.pos
	p.advance() // opening quote
	for p.pos < len(p.src) {
		c := p.advance()
		switch c {
		case '\\':
			if p.pos < len(p.src) {
				p.advance()
			}
		case '"':
			return string(p.src[start:p.pos]), true
		}
	}
	return "", false
}

func (p *parser) readSymbol() string {
	start := p.pos
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if isSpace(c) || c == '(' || c == ')' || c == '"' {
			break
		}
		p.advance()
	}
	return string(p.src[start:p.pos])
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v'
}

package sexpr

// Kind distinguishes atoms from lists.
type Kind int

const (
	KindList Kind = iota
	KindSymbol
	KindString
)

// Node is one element of a parsed document.
type Node struct {
	Kind Kind
	// Text is the verbatim source of an atom. String atoms keep their quotes.
	Text     string
	Children []*Node
	Line     int
	Column   int
}

// IsList reports whether n is a list.
func (n *Node) IsList() bool {
	return n != nil && n.Kind == KindList
}

// Head returns the symbol naming a list, e.g. "title_block" for
// (title_block ...). It is empty for atoms and for lists that do not start
// with a symbol.
func (n *Node) Head() string {
	if !n.IsList() || len(n.Children) == 0 || n.Children[0].Kind != KindSymbol {
		return ""
	}
	return n.Children[0].Text
}

// Args returns the elements of a list after its head.
func (n *Node) Args() []*Node {
	if !n.IsList() || len(n.Children) == 0 {
		return nil
	}
	return n.Children[1:]
}

// Child returns the first direct child list named name.
func (n *Node) Child(name string) (*Node, bool) {
	for _, c := range n.Args() {
		if c.Head() == name {
			return c, true
		}
	}
	return nil, false
}

// ChildrenNamed returns every direct child list named name, in order.
func (n *Node) ChildrenNamed(name string) []*Node {
	var out []*Node
	for _, c := range n.Args() {
		if c.Head() == name {
			out = append(out, c)
		}
	}
	return out
}

package doc

import (
	"fmt"
	"strings"
)

// TextType is the type tag carried by leaf text nodes.
const TextType = "text"

// Node is an immutable content unit: a type tag, an attribute map, and
// either ordered children (structural node) or leaf text (text node).
// A Node is owned by whichever document currently holds it and is never
// shared mutably; constructors copy their inputs.
type Node struct {
	typ      string
	attrs    map[string]string
	children []Node
	text     string
}

// NewText creates a leaf text node.
func NewText(text string) Node {
	return Node{typ: TextType, text: text}
}

// NewNode creates a structural node with the given type, attributes,
// and ordered children. The attribute map and child slice are copied.
func NewNode(typ string, attrs map[string]string, children ...Node) Node {
	n := Node{typ: typ}
	if len(attrs) > 0 {
		n.attrs = make(map[string]string, len(attrs))
		for k, v := range attrs {
			n.attrs[k] = v
		}
	}
	if len(children) > 0 {
		n.children = make([]Node, len(children))
		copy(n.children, children)
	}
	return n
}

// Type returns the node's type tag.
func (n Node) Type() string {
	return n.typ
}

// IsText returns true if this is a leaf text node.
func (n Node) IsText() bool {
	return n.typ == TextType
}

// Text returns the node's flattened text: the leaf text for text nodes,
// or the concatenated text of all descendants for structural nodes.
func (n Node) Text() string {
	if n.IsText() {
		return n.text
	}
	if len(n.children) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, c := range n.children {
		sb.WriteString(c.Text())
	}
	return sb.String()
}

// Attr returns the named attribute and whether it is present.
func (n Node) Attr(name string) (string, bool) {
	v, ok := n.attrs[name]
	return v, ok
}

// Attrs returns a copy of the node's attribute map.
func (n Node) Attrs() map[string]string {
	if len(n.attrs) == 0 {
		return nil
	}
	out := make(map[string]string, len(n.attrs))
	for k, v := range n.attrs {
		out[k] = v
	}
	return out
}

// ChildCount returns the number of direct children.
func (n Node) ChildCount() int {
	return len(n.children)
}

// Child returns the i-th direct child. It panics if i is out of range,
// matching slice indexing semantics.
func (n Node) Child(i int) Node {
	return n.children[i]
}

// Children returns a copy of the node's direct children.
func (n Node) Children() []Node {
	if len(n.children) == 0 {
		return nil
	}
	out := make([]Node, len(n.children))
	copy(out, n.children)
	return out
}

// ContentSize returns the flattened text size of the node in bytes.
func (n Node) ContentSize() ByteOffset {
	if n.IsText() {
		return ByteOffset(len(n.text))
	}
	var size ByteOffset
	for _, c := range n.children {
		size += c.ContentSize()
	}
	return size
}

// SameShape reports whether two nodes carry the same type tag and the
// same attributes, ignoring content. Used by the reconciler to decide
// whether it may descend into both nodes to refine a diff boundary.
func (n Node) SameShape(other Node) bool {
	if n.typ != other.typ || len(n.attrs) != len(other.attrs) {
		return false
	}
	for k, v := range n.attrs {
		if ov, ok := other.attrs[k]; !ok || ov != v {
			return false
		}
	}
	return true
}

// Eq reports deep equality: same shape, same text, same children.
func (n Node) Eq(other Node) bool {
	if !n.SameShape(other) {
		return false
	}
	if n.IsText() {
		return n.text == other.text
	}
	if len(n.children) != len(other.children) {
		return false
	}
	for i := range n.children {
		if !n.children[i].Eq(other.children[i]) {
			return false
		}
	}
	return true
}

// String returns a human-readable representation of the node.
func (n Node) String() string {
	if n.IsText() {
		return fmt.Sprintf("text(%q)", n.text)
	}
	return fmt.Sprintf("%s(%d children)", n.typ, len(n.children))
}

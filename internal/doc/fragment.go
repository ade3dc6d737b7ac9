package doc

import "strings"

// Fragment is an immutable ordered sequence of sibling nodes.
// Byte offsets into a fragment address its flattened text.
type Fragment struct {
	nodes []Node
}

// NewFragment creates a fragment from the given nodes. The slice is copied.
func NewFragment(nodes ...Node) Fragment {
	if len(nodes) == 0 {
		return Fragment{}
	}
	out := make([]Node, len(nodes))
	copy(out, nodes)
	return Fragment{nodes: out}
}

// TextFragment creates a fragment holding a single text node.
// An empty string yields an empty fragment.
func TextFragment(text string) Fragment {
	if text == "" {
		return Fragment{}
	}
	return Fragment{nodes: []Node{NewText(text)}}
}

// Len returns the number of top-level nodes in the fragment.
func (f Fragment) Len() int {
	return len(f.nodes)
}

// IsEmpty returns true if the fragment holds no nodes.
func (f Fragment) IsEmpty() bool {
	return len(f.nodes) == 0
}

// Node returns the i-th top-level node. It panics if i is out of range.
func (f Fragment) Node(i int) Node {
	return f.nodes[i]
}

// Nodes returns a copy of the fragment's top-level nodes.
func (f Fragment) Nodes() []Node {
	if len(f.nodes) == 0 {
		return nil
	}
	out := make([]Node, len(f.nodes))
	copy(out, f.nodes)
	return out
}

// Text returns the flattened text of the whole fragment.
func (f Fragment) Text() string {
	var sb strings.Builder
	for _, n := range f.nodes {
		sb.WriteString(n.Text())
	}
	return sb.String()
}

// Size returns the flattened text size of the fragment in bytes.
func (f Fragment) Size() ByteOffset {
	var size ByteOffset
	for _, n := range f.nodes {
		size += n.ContentSize()
	}
	return size
}

// TextSlice returns the flattened text in [from, to). Offsets are
// clamped to the fragment's size; an inverted range yields "".
func (f Fragment) TextSlice(from, to ByteOffset) string {
	text := f.Text()
	size := ByteOffset(len(text))
	from = Clamp(from, size)
	to = Clamp(to, size)
	if from >= to {
		return ""
	}
	return text[from:to]
}

// Eq reports deep equality of two fragments.
func (f Fragment) Eq(other Fragment) bool {
	if len(f.nodes) != len(other.nodes) {
		return false
	}
	for i := range f.nodes {
		if !f.nodes[i].Eq(other.nodes[i]) {
			return false
		}
	}
	return true
}

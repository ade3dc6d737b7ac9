package doc

import "fmt"

// Selection is an anchor/head pair of byte offsets into a document.
// Anchor is the fixed end, Head the moving end; Head < Anchor is a
// backward selection.
type Selection struct {
	Anchor ByteOffset
	Head   ByteOffset
}

// Collapsed creates a zero-width selection at the given offset.
func Collapsed(at ByteOffset) Selection {
	return Selection{Anchor: at, Head: at}
}

// DocStart is the collapsed selection at offset zero, where a freshly
// opened inner editor places its cursor.
var DocStart = Selection{}

// IsCollapsed returns true if anchor and head coincide.
func (s Selection) IsCollapsed() bool {
	return s.Anchor == s.Head
}

// Range returns the selection as a normalized (forward) range.
func (s Selection) Range() Range {
	if s.Head < s.Anchor {
		return Range{Start: s.Head, End: s.Anchor}
	}
	return Range{Start: s.Anchor, End: s.Head}
}

// Clamp restricts both ends of the selection to [0, max].
func (s Selection) Clamp(max ByteOffset) Selection {
	return Selection{
		Anchor: Clamp(s.Anchor, max),
		Head:   Clamp(s.Head, max),
	}
}

// String returns a human-readable representation of the selection.
func (s Selection) String() string {
	if s.IsCollapsed() {
		return fmt.Sprintf("cursor@%d", s.Head)
	}
	return fmt.Sprintf("sel(%d->%d)", s.Anchor, s.Head)
}

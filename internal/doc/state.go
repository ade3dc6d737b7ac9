package doc

// State is an immutable document snapshot: a content fragment plus the
// current selection. A new State is produced, never mutated, by applying
// a transaction.
type State struct {
	content Fragment
	sel     Selection
}

// NewState creates a snapshot from content and selection. The selection
// is clamped to the content size.
func NewState(content Fragment, sel Selection) State {
	return State{content: content, sel: sel.Clamp(content.Size())}
}

// StateFromText creates a snapshot holding a single text node with the
// selection collapsed at the document start.
func StateFromText(text string) State {
	return State{content: TextFragment(text)}
}

// Content returns the snapshot's content fragment.
func (s State) Content() Fragment {
	return s.content
}

// Selection returns the snapshot's selection.
func (s State) Selection() Selection {
	return s.sel
}

// Text returns the flattened text of the snapshot's content.
func (s State) Text() string {
	return s.content.Text()
}

// Size returns the flattened text size in bytes.
func (s State) Size() ByteOffset {
	return s.content.Size()
}

// WithContent returns a new snapshot carrying the given content, with
// the current selection clamped to it.
func (s State) WithContent(content Fragment) State {
	return NewState(content, s.sel)
}

// WithSelection returns a new snapshot carrying the given selection.
func (s State) WithSelection(sel Selection) State {
	return NewState(s.content, sel)
}

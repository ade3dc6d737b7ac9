package txn

import (
	"fmt"

	"github.com/dshills/inlay/internal/doc"
)

// Step is an atomic, position-addressed edit: replace Range with Text.
// An empty range is an insertion, empty text a deletion.
type Step struct {
	Range doc.Range // The range to replace
	Text  string    // The replacement text
}

// NewStep creates a step replacing r with text.
func NewStep(r doc.Range, text string) Step {
	return Step{Range: r, Text: text}
}

// Insert creates a step inserting text at a position.
func Insert(at doc.ByteOffset, text string) Step {
	return Step{Range: doc.PointRange(at), Text: text}
}

// Delete creates a step deleting the range [start, end).
func Delete(start, end doc.ByteOffset) Step {
	return Step{Range: doc.NewRange(start, end)}
}

// Replace creates a step replacing [start, end) with text.
func Replace(start, end doc.ByteOffset, text string) Step {
	return Step{Range: doc.NewRange(start, end), Text: text}
}

// IsInsert returns true if this is a pure insertion (empty range).
func (s Step) IsInsert() bool {
	return s.Range.IsEmpty() && s.Text != ""
}

// IsDelete returns true if this is a pure deletion (empty replacement).
func (s Step) IsDelete() bool {
	return !s.Range.IsEmpty() && s.Text == ""
}

// IsNoOp returns true if this step changes nothing.
func (s Step) IsNoOp() bool {
	return s.Range.IsEmpty() && s.Text == ""
}

// Delta returns the change in document length caused by this step.
func (s Step) Delta() doc.ByteOffset {
	return doc.ByteOffset(len(s.Text)) - s.Range.Len()
}

// String returns a human-readable representation of the step.
func (s Step) String() string {
	if s.IsInsert() {
		return fmt.Sprintf("Insert(%d, %q)", s.Range.Start, s.Text)
	}
	if s.IsDelete() {
		return fmt.Sprintf("Delete%s", s.Range.String())
	}
	return fmt.Sprintf("Replace%s with %q", s.Range.String(), s.Text)
}

// PositionMap translates a position from one coordinate space to
// another. MapPos returns an error when the position has no
// representation in the target space.
type PositionMap interface {
	MapPos(pos doc.ByteOffset) (doc.ByteOffset, error)
}

// Map re-expresses the step in the coordinate space of m. Both range
// ends are mapped; any failure is returned to the caller, never
// swallowed, since a silently dropped step would leave the two
// documents permanently diverged.
func (s Step) Map(m PositionMap) (Step, error) {
	start, err := m.MapPos(s.Range.Start)
	if err != nil {
		return Step{}, fmt.Errorf("mapping start of %s: %w", s, err)
	}
	end, err := m.MapPos(s.Range.End)
	if err != nil {
		return Step{}, fmt.Errorf("mapping end of %s: %w", s, err)
	}
	return Step{Range: doc.NewRange(start, end), Text: s.Text}, nil
}

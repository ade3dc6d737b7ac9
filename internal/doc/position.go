package doc

import "fmt"

// ByteOffset is a byte position in the flattened text of a fragment.
type ByteOffset int64

// Range represents a byte range in a document.
// Start is inclusive, End is exclusive: [Start, End).
type Range struct {
	Start ByteOffset // Inclusive start position
	End   ByteOffset // Exclusive end position
}

// NewRange creates a new Range from start and end offsets.
func NewRange(start, end ByteOffset) Range {
	return Range{Start: start, End: end}
}

// PointRange creates a zero-width range at the given offset.
func PointRange(at ByteOffset) Range {
	return Range{Start: at, End: at}
}

// String returns a human-readable representation of the range.
func (r Range) String() string {
	return fmt.Sprintf("[%d:%d)", r.Start, r.End)
}

// Len returns the length of the range in bytes.
func (r Range) Len() ByteOffset {
	return r.End - r.Start
}

// IsEmpty returns true if the range has zero length.
func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

// IsValid returns true if the range is valid (0 <= Start <= End).
func (r Range) IsValid() bool {
	return r.Start >= 0 && r.Start <= r.End
}

// Contains returns true if the given offset is within the range.
func (r Range) Contains(offset ByteOffset) bool {
	return offset >= r.Start && offset < r.End
}

// Overlaps returns true if this range overlaps with another range.
func (r Range) Overlaps(other Range) bool {
	return r.Start < other.End && other.Start < r.End
}

// Shift returns the range translated by delta.
func (r Range) Shift(delta ByteOffset) Range {
	return Range{Start: r.Start + delta, End: r.End + delta}
}

// Clamp restricts the given offset to [0, max].
func Clamp(offset, max ByteOffset) ByteOffset {
	if offset < 0 {
		return 0
	}
	if offset > max {
		return max
	}
	return offset
}

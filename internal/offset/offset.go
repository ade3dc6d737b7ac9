// Package offset translates positions and steps from inner-document
// coordinates to outer-document coordinates. The two spaces differ by a
// constant displacement: the outer position of the hosted node's first
// content byte (node start + 1).
package offset

import (
	"errors"
	"fmt"

	"github.com/dshills/inlay/internal/doc"
	"github.com/dshills/inlay/internal/txn"
)

// ErrUnrepresentable indicates a position with no representation in the
// target coordinate space. Callers must treat this as fatal for the
// enclosing batch: the step's anchor no longer exists in the outer
// document, so the edit cannot be projected.
var ErrUnrepresentable = errors.New("position unrepresentable in target space")

// Mapper is a pure, stateless PositionMap adding a constant base
// displacement. A bounded mapper additionally rejects positions past
// the hosted node's content size, since those would address content
// outside the node.
type Mapper struct {
	base    doc.ByteOffset
	limit   doc.ByteOffset
	bounded bool
}

// NewMapper creates an unbounded mapper for the given base position.
func NewMapper(base doc.ByteOffset) Mapper {
	return Mapper{base: base}
}

// NewBoundedMapper creates a mapper that only represents inner
// positions in [0, limit].
func NewBoundedMapper(base, limit doc.ByteOffset) Mapper {
	return Mapper{base: base, limit: limit, bounded: true}
}

// Base returns the mapper's base displacement.
func (m Mapper) Base() doc.ByteOffset {
	return m.base
}

// MapPos translates an inner position to the outer space.
func (m Mapper) MapPos(pos doc.ByteOffset) (doc.ByteOffset, error) {
	if pos < 0 {
		return 0, fmt.Errorf("inner position %d: %w", pos, ErrUnrepresentable)
	}
	if m.bounded && pos > m.limit {
		return 0, fmt.Errorf("inner position %d past node end %d: %w",
			pos, m.limit, ErrUnrepresentable)
	}
	return m.base + pos, nil
}

// MapStep re-expresses an inner step in outer coordinates.
func (m Mapper) MapStep(s txn.Step) (txn.Step, error) {
	return s.Map(m)
}

// MapSelection re-expresses an inner selection in outer coordinates.
func (m Mapper) MapSelection(sel doc.Selection) (doc.Selection, error) {
	anchor, err := m.MapPos(sel.Anchor)
	if err != nil {
		return doc.Selection{}, err
	}
	head, err := m.MapPos(sel.Head)
	if err != nil {
		return doc.Selection{}, err
	}
	return doc.Selection{Anchor: anchor, Head: head}, nil
}

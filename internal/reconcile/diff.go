package reconcile

import (
	"fmt"

	"github.com/dshills/inlay/internal/doc"
)

// Region describes the minimal differing span between the outer and
// inner content of a hosted node. Offsets address the flattened text of
// each fragment; Start is shared, the ends belong to their respective
// sides.
type Region struct {
	// Start is the byte offset at which the two contents first
	// diverge, identical in both coordinate spaces.
	Start doc.ByteOffset

	// OuterEnd is the end of the differing span in the outer content.
	OuterEnd doc.ByteOffset

	// InnerEnd is the end of the differing span in the inner content.
	InnerEnd doc.ByteOffset
}

// OuterRange returns the differing span in the outer content.
func (r Region) OuterRange() doc.Range {
	return doc.NewRange(r.Start, r.OuterEnd)
}

// InnerRange returns the span of the inner content to be replaced.
func (r Region) InnerRange() doc.Range {
	return doc.NewRange(r.Start, r.InnerEnd)
}

// String returns a human-readable representation of the region.
func (r Region) String() string {
	return fmt.Sprintf("region(start=%d outer=%d inner=%d)", r.Start, r.OuterEnd, r.InnerEnd)
}

// Diff finds the smallest contiguous region in which outer and inner
// differ. The second return value is false when the contents are
// identical and no patch is needed. A returned region may still span
// zero bytes on one side (pure insertion or deletion at a point); that
// case requires a patch and is deliberately distinct from "no diff".
func Diff(outer, inner doc.Fragment) (Region, bool) {
	start, ok := diffStart(outer, inner)
	if !ok {
		return Region{}, false
	}

	outerEnd, innerEnd := diffEnd(outer, inner)

	// The suffix scan can run past the prefix boundary when the
	// divergence sits in a run of repeated content. Extend both ends
	// by the overlap so the replacement covers the true diff.
	if min := minOffset(outerEnd, innerEnd); start > min {
		overlap := start - min
		outerEnd += overlap
		innerEnd += overlap
	}

	return Region{Start: start, OuterEnd: outerEnd, InnerEnd: innerEnd}, true
}

// diffStart returns the byte offset of the first divergence between the
// flattened texts of a and b, walking nodes pairwise and descending
// into nodes of equal shape to refine the boundary. Returns false when
// the fragments are identical.
func diffStart(a, b doc.Fragment) (doc.ByteOffset, bool) {
	var pos doc.ByteOffset
	i := 0
	for ; i < a.Len() && i < b.Len(); i++ {
		na, nb := a.Node(i), b.Node(i)
		if na.Eq(nb) {
			pos += na.ContentSize()
			continue
		}
		if !na.SameShape(nb) {
			// Different node kinds meet here; the divergence is at
			// the boundary itself.
			return pos, true
		}
		if na.IsText() {
			ta, tb := na.Text(), nb.Text()
			j := 0
			for j < len(ta) && j < len(tb) && ta[j] == tb[j] {
				j++
			}
			return pos + doc.ByteOffset(j), true
		}
		sub, ok := diffStart(doc.NewFragment(na.Children()...), doc.NewFragment(nb.Children()...))
		if ok {
			return pos + sub, true
		}
		pos += na.ContentSize()
	}
	if i < a.Len() || i < b.Len() {
		// One side has trailing nodes the other lacks.
		return pos, true
	}
	return 0, false
}

// diffEnd returns the byte offsets in a and b at which their longest
// common suffix begins. Called only after diffStart found a divergence,
// so the fragments are known to differ.
func diffEnd(a, b doc.Fragment) (doc.ByteOffset, doc.ByteOffset) {
	posA, posB := a.Size(), b.Size()
	ia, ib := a.Len()-1, b.Len()-1
	for ia >= 0 && ib >= 0 {
		na, nb := a.Node(ia), b.Node(ib)
		if na.Eq(nb) {
			posA -= na.ContentSize()
			posB -= nb.ContentSize()
			ia--
			ib--
			continue
		}
		if !na.SameShape(nb) {
			return posA, posB
		}
		if na.IsText() {
			ta, tb := na.Text(), nb.Text()
			j := 0
			for j < len(ta) && j < len(tb) && ta[len(ta)-1-j] == tb[len(tb)-1-j] {
				j++
			}
			return posA - doc.ByteOffset(j), posB - doc.ByteOffset(j)
		}
		ea, eb := diffEnd(doc.NewFragment(na.Children()...), doc.NewFragment(nb.Children()...))
		return posA - na.ContentSize() + ea, posB - nb.ContentSize() + eb
	}
	return posA, posB
}

func minOffset(a, b doc.ByteOffset) doc.ByteOffset {
	if a < b {
		return a
	}
	return b
}

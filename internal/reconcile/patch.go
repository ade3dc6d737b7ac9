package reconcile

import (
	"github.com/dshills/inlay/internal/doc"
	"github.com/dshills/inlay/internal/txn"
)

// Patch builds the echo transaction that replaces the inner document's
// differing span with the outer content's slice of the region. The
// transaction is tagged OriginEcho so the edit forwarder never projects
// it back onto the outer document.
func Patch(region Region, outer doc.Fragment) *txn.Transaction {
	text := outer.TextSlice(region.Start, region.OuterEnd)
	return txn.NewEcho().AddStep(txn.Replace(region.Start, region.InnerEnd, text))
}

// Reconcile diffs outer against inner and returns the patch to apply to
// the inner document, or nil when the contents are already identical.
func Reconcile(outer, inner doc.Fragment) *txn.Transaction {
	region, ok := Diff(outer, inner)
	if !ok {
		return nil
	}
	return Patch(region, outer)
}

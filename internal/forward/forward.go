// Package forward projects inner-document transactions onto the outer
// document. It is the only component that dispatches outer transactions
// for inner edits, and it never forwards echo transactions, which is
// what breaks the inner -> outer -> inner feedback loop.
package forward

import (
	"errors"
	"fmt"

	"github.com/dshills/inlay/internal/doc"
	"github.com/dshills/inlay/internal/offset"
	"github.com/dshills/inlay/internal/txn"
)

// ErrEditLost indicates a step could not be re-expressed in outer
// coordinates. The batch is abandoned whole: nothing was dispatched and
// the inner edit has no outer representation. Callers must surface
// this, not swallow it, because the two documents have diverged.
var ErrEditLost = errors.New("edit lost in translation")

// Outer is the port to the host document the forwarder dispatches
// through. ContentStart is queried at forward time, never cached, since
// outer edits elsewhere in the document shift the hosted node.
type Outer interface {
	// ContentStart returns the current outer position of the hosted
	// node's first content byte (node start + 1).
	ContentStart() (doc.ByteOffset, error)

	// Dispatch applies one accumulated transaction to the outer
	// document.
	Dispatch(tx *txn.Transaction) error
}

// Forwarder maps inner transactions into outer coordinates and applies
// them as a single combined edit per batch.
type Forwarder struct {
	outer Outer
}

// New creates a forwarder dispatching through the given outer port.
func New(outer Outer) *Forwarder {
	return &Forwarder{outer: outer}
}

// Forward consumes one inner transaction that has already been applied
// to the inner document. before is the inner snapshot the transaction
// was applied to; step coordinates are bounded against the document as
// it evolves through the batch.
//
// Echo transactions and transactions without content changes are
// dropped without an outer dispatch. Any mapping failure fails the
// whole batch with ErrEditLost; partial application never occurs.
func (f *Forwarder) Forward(tx *txn.Transaction, before doc.State) error {
	if tx.Origin() == txn.OriginEcho {
		return nil
	}
	if !tx.ChangesContent() {
		return nil
	}

	base, err := f.outer.ContentStart()
	if err != nil {
		return fmt.Errorf("locating hosted node: %w", err)
	}

	out := txn.New()
	size := before.Size()
	for _, s := range tx.Steps() {
		mapped, err := offset.NewBoundedMapper(base, size).MapStep(s)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrEditLost, err)
		}
		if !mapped.IsNoOp() {
			out.AddStep(mapped)
		}
		size += s.Delta()
	}

	if sel, ok := tx.Selection(); ok {
		mapped, err := offset.NewBoundedMapper(base, size).MapSelection(sel)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrEditLost, err)
		}
		out.SetSelection(mapped)
	}

	if !out.ChangesContent() {
		return nil
	}
	if err := f.outer.Dispatch(out); err != nil {
		return fmt.Errorf("dispatching outer transaction: %w", err)
	}
	return nil
}

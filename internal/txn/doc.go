// Package txn defines the edit protocol shared by the inner and outer
// documents: position-addressed steps, transactions that batch them, the
// origin tag that distinguishes local edits from reconciliation echoes,
// and step mapping across coordinate spaces.
//
// A Transaction is an ordered sequence of Steps plus transient metadata
// and an optional target selection. Applying a transaction to a document
// snapshot is deterministic and atomic: it either produces the next
// snapshot or fails without observable effect. Step coordinates are
// interpreted against the document produced by the preceding steps of
// the same transaction.
//
// Steps can be re-expressed in another coordinate space through a
// PositionMap. Mapping may fail when a position has no representation in
// the target space; that failure is a hard error for the caller, never a
// silent skip, because a dropped step would permanently desynchronize
// the two documents.
package txn

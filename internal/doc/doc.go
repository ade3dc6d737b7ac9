// Package doc provides the immutable content model shared by the outer
// (host) document and the inner (embedded) document: content nodes,
// ordered fragments, byte-offset positions, and document snapshots.
//
// The doc package provides:
//
//   - Node: an immutable content unit with a type tag, attributes, and
//     either ordered children or leaf text
//   - Fragment: an ordered node sequence with byte-offset addressing into
//     its flattened text
//   - Selection: an anchor/head pair of byte offsets
//   - State: an immutable snapshot of content plus selection
//
// Position Types:
//
// All addressing is by ByteOffset into the flattened text of a fragment.
// A Range is a half-open [Start, End) span of byte offsets.
//
// Immutability:
//
// Nodes, fragments, and states are value types. Constructors copy their
// inputs and accessors never expose internal slices or maps, so a value
// handed to another component cannot be mutated out from under it. New
// states are produced by applying a transaction (see the txn package),
// never by mutation.
package doc

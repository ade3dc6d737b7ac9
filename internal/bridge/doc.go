// Package bridge is the synchronization facade between a hosted node
// in an outer structured document and the inner editor scoped to that
// node's content. It exposes the callback surface the host invokes
// (update, focus, blur, destroy, event interception) and decides per
// notification whether to reconcile (diff path, outer changed
// externally) or forward (edit path, inner changed locally).
//
// Loop freedom: an inner edit is forwarded to the outer document; the
// host then reports the outer change back through OnUpdate; the
// reconciler finds the contents already identical and emits no patch.
// In the other direction, reconciler patches are echo-tagged and the
// forwarder drops them. Neither direction can feed back.
//
// All callbacks run synchronously on the host's event-dispatch thread.
// The bridge performs no locking and must not be shared across threads.
package bridge

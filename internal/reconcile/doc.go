// Package reconcile computes the minimal changed region between the
// hosted node's outer content and the inner document's content, and
// builds the echo transaction that patches the inner document to match.
//
// The diff is a prefix/suffix scan, not a full edit-distance pass: the
// two contents only ever diverge in one contiguous region (a single
// external change per update cycle), so the first divergence from the
// front and the last matching boundary from the back bound the true
// diff. When the suffix boundaries overlap the prefix boundary, which
// happens for repeated content such as "aaa" vs "aaaa", both end
// offsets are extended by the overlap so the replacement never
// double-counts shared bytes.
package reconcile

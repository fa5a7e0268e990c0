// Package forest ties the per-tree pieces (tree, complete, balance,
// overlap, partition) into one process's view of a parallel forest: the
// set of locally owned trees, the global ownership boundaries every rank
// agrees on, and the cross-rank bookkeeping (validity, checksum, owner
// lookup) spec.md's §4.H and §6 assume exist but leave to "the forest"
// rather than to any one algorithm.
package forest

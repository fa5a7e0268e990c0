// Package tree implements the per-process quadrant container (spec 4.B): a
// Morton-sorted sequence of quadrants belonging to one coarse tree, with the
// bookkeeping (per-level counts, maxlevel, first/last descendant cache,
// offset into the forest's global quadrant numbering) that the completion,
// balance, and partition engines all read and update.
//
// Tree itself does no ordering: callers insert in Morton order, or call
// Sort, and Linearize/RemoveNonOwned to restore the structural invariants
// (spec 4.C) after a batch of insertions.
package tree

// Package balance implements local 2:1 balance (spec 4.E): given a tree
// that is almost-sorted but not necessarily linear or complete, add the
// minimal set of quadrants so that no two same-kind neighbors (face, plus
// edge in 3D, plus corner) differ by more than one refinement level.
//
// It is grounded on the original's p4est_complete_or_balance: a bottom-up
// sweep over levels maintains, per level, a hash set of quadrants already
// queued and a parallel output list, so a candidate is never queued twice
// and the whole pass terminates (every candidate has strictly lower level
// than the quadrant that triggered it). Where the original looks up a
// fixed p4est_balance_coord table indexed by child id and connect type,
// this package derives the same offsets from the corner's own sign vector
// restricted to an axis subset -- one table, generated once per space
// instead of hand-maintained per dimension.
//
// Border is the variant of the same pass used at a process boundary: given
// a containing quadrant and a scattered set of its descendants, it balances
// and completes strictly inside the container instead of sweeping the
// whole root, and is grounded on the original's p4est_balance_border.
package balance

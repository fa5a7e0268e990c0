// Package pool implements the fixed-size object arenas spec.md's Lifecycles
// section calls for: a payload pool that materializes one record per
// inserted quadrant and releases it on removal, and a scratch quadrant pool
// that serves the balance engine's transient candidates.
//
// Both are flat, index-addressed arenas in the style of the teacher's
// urkle package (NodeRecordOffset/nodeRec over a single []byte, Ref handles
// instead of pointers): a move-compacting arena is acceptable here because
// the balance engine's hash tables key candidates by coordinate and level,
// never by address (spec 9, Design Notes).
package pool

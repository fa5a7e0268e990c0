// Package partition implements partition-given redistribution (spec 4.H):
// given a target quadrant count per process, move quadrants between
// processes over a transport.Transport so each ends up owning exactly its
// target count, in global Morton order, with payloads preserved.
//
// Unlike the original, a wire quadrant here always carries its own
// FromTree (quadrant.Quadrant's piggyback field), so a message needs no
// separate per-tree count preamble to tell the receiver which local tree
// each quadrant belongs to -- it is already on every quadrant's wire
// encoding. See DESIGN.md for why this replaces the original's
// num_send_to-style per-tree header.
package partition

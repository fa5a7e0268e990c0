// Package quadrant implements the Morton-ordered algebra of axis-aligned
// quadrants (2D) and octants (3D): coordinates, levels, ancestry, siblings,
// neighbors, and the integer-only transforms that map a quadrant across a
// shared inter-tree face, edge, or corner.
//
// A Quadrant carries its geometry plus one piggyback field, FromTree, which
// names the coarse tree it belongs to and is ignored by Compare and the
// ancestry predicates. It does not carry a payload; the tree and pool
// packages layer that bookkeeping on top.
//
// Every operation here is pure: no operation blocks or depends on anything
// outside its arguments. FaceOffsets, EdgeOffsets and CornerOffsets return
// freshly allocated slices.
package quadrant

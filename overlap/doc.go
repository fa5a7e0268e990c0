// Package overlap computes which locally owned quadrants need to be sent
// to neighboring processes so their trees can complete cross-tree balance
// (spec 4.G). For every local quadrant it forms the same-level 3x3(x3)
// insulation box; insulation cells that stay inside the quadrant's own
// tree are none of overlap's concern (plain local balance already reaches
// them) -- only cells that cross into a neighboring tree, discovered
// through the connectivity's face/edge/corner transforms, are worth
// reporting. Each report is the remote tree's own finer quadrants,
// binary-searched out of that tree's border the same way balance's own
// IsBalanced check walks a Morton range.
//
// This implements the "legacy" variant only (spec 4.G): output is the
// remote quadrants themselves, transformed back into the local tree's
// would-be neighbor frame is not needed since they already live in the
// remote tree's own frame when reported. The "new" variant (explicit
// balance_face_test/balance_edge_test/balance_corner_test seed
// construction, outputting zero-siblings of forced ancestors) is a
// throughput optimization over the same result set; it is not
// implemented here -- see DESIGN.md.
package overlap

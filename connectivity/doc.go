// Package connectivity defines the API this module consumes from the
// coarse-topology layer (spec 1, 6): a fixed lookup from a tree's face,
// edge, or corner to the neighboring tree and the integer transform that
// converts a quadrant's coordinates into that neighbor's frame.
//
// Connectivity construction and geometric topology queries are out of
// scope (spec 1); this package only describes the interface overlap
// consumes, plus one concrete implementation -- a "brick", an
// axis-aligned grid of trees, optionally periodic -- good enough to drive
// tests and examples without a real mesh-generation dependency.
package connectivity

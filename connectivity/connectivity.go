package connectivity

import "github.com/amrforest/forest/quadrant"

// Connectivity is the fixed lookup table of coarse tree topology that
// overlap (spec 4.G) consumes to cross a tree boundary. It never changes
// once a forest is built.
type Connectivity interface {
	// NumTrees returns T, the number of trees in the forest.
	NumTrees() int32

	// FindFaceTransform returns the transform across the given face of
	// tree, and false if that face is a true domain boundary with no
	// neighbor.
	FindFaceTransform(tree int32, face int) (quadrant.Transform, bool)

	// FindEdgeTransforms returns every tree reachable across the given
	// edge of tree (3D only; spec 6). An edge can be shared by more than
	// two trees, hence a slice.
	FindEdgeTransforms(tree int32, edge int) []quadrant.Transform

	// FindCornerTransforms returns every tree reachable across the given
	// corner of tree. A corner can be shared by an arbitrary number of
	// trees.
	FindCornerTransforms(tree int32, corner int) []quadrant.Transform
}

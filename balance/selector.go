package balance

import "github.com/amrforest/forest/quadrant"

// Selector picks how far across a corner's neighborhood balance reaches:
// the largest axis-subset size whose candidates are generated. 0 means
// completion only (no indirect candidates at all); 1 adds face neighbors
// of the parent; 2 adds edge neighbors (3D only -- in 2D, 2 already means
// the full corner); Dim always means full corner balance.
type Selector int

// Named selector values. Edge only has meaning in 3D. Corner (3) is the
// full-balance value of a 3D space only: in 2D the highest selector is 2,
// the same number as Edge, and Corner is rejected by ValidateSelector.
const (
	CompletionOnly Selector = 0
	Face           Selector = 1
	Edge           Selector = 2
	Corner         Selector = 3
)

// MaxSelector returns the highest meaningful selector for a space: 2 in
// 2D (face, corner), 3 in 3D (face, edge, corner).
func MaxSelector(space quadrant.Space) Selector {
	return Selector(space.Dim)
}

// ValidateSelector reports ErrSelectorOutOfRange if selector is negative
// or exceeds the space's dimension; forest.Validate calls this as part of
// establishing I4 is even well posed for a given forest configuration.
func ValidateSelector(space quadrant.Space, selector Selector) error {
	if selector < 0 || int(selector) > space.Dim {
		return ErrSelectorOutOfRange
	}
	return nil
}

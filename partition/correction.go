package partition

import "github.com/amrforest/forest/quadrant"

// Correction decides which of two ranks straddling a process boundary
// should own a family of space.NumChildren() adjacent sibling quadrants
// (spec 4.H): the side with strictly greater current ownership of the
// family wins; ties go to lowerRank.
//
// ownedByLower and ownedByUpper must sum to a full family; spec.md leaves
// partial-family correction unspecified, and this returns ErrPartialFamily
// rather than guessing (see DESIGN.md Open Questions).
func Correction(space quadrant.Space, lowerRank, upperRank, ownedByLower, ownedByUpper int) (int, error) {
	if ownedByLower+ownedByUpper != space.NumChildren() {
		return 0, ErrPartialFamily
	}
	if ownedByUpper > ownedByLower {
		return upperRank, nil
	}
	return lowerRank, nil
}

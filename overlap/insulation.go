package overlap

import "github.com/amrforest/forest/quadrant"

// insulationOffsets returns every same-level offset in {-1,0,1}^dim except
// the zero vector -- q's own 3x3(x3) insulation box (spec 4.G) minus q
// itself.
func insulationOffsets(dim int) [][3]int32 {
	rng := [3]int32{-1, 0, 1}
	out := make([][3]int32, 0, 26)
	for _, x := range rng {
		for _, y := range rng {
			if dim == 2 {
				if x == 0 && y == 0 {
					continue
				}
				out = append(out, [3]int32{x, y, 0})
				continue
			}
			for _, z := range rng {
				if x == 0 && y == 0 && z == 0 {
					continue
				}
				out = append(out, [3]int32{x, y, z})
			}
		}
	}
	return out
}

// classify reports which face, edge, or corner of the space a same-level
// offset vector crosses, and its index within that kind's canonical
// ordering -- the same ordering quadrant.Space.FaceOffsets, EdgeOffsets,
// and CornerOffsets build their tables in, so the index can be fed
// straight to a Connectivity lookup.
func classify(space quadrant.Space, offset [3]int32) (quadrant.Kind, int) {
	nonzero := 0
	for axis := 0; axis < space.Dim; axis++ {
		if offset[axis] != 0 {
			nonzero++
		}
	}

	switch {
	case nonzero == 1:
		for axis := 0; axis < space.Dim; axis++ {
			if offset[axis] == 0 {
				continue
			}
			sign := 0
			if offset[axis] > 0 {
				sign = 1
			}
			return quadrant.FaceKind, axis*2 + sign
		}
	case nonzero == space.Dim:
		id := 0
		for axis := 0; axis < space.Dim; axis++ {
			if offset[axis] > 0 {
				id |= 1 << uint(axis)
			}
		}
		return quadrant.CornerKind, id
	default:
		pairs := [3][2]int{{0, 1}, {0, 2}, {1, 2}}
		for i, p := range pairs {
			if offset[p[0]] != 0 && offset[p[1]] != 0 {
				within := 0
				if offset[p[0]] > 0 {
					within += 2
				}
				if offset[p[1]] > 0 {
					within += 1
				}
				return quadrant.EdgeKind, i*4 + within
			}
		}
	}
	panic("overlap: offset does not classify to any face, edge, or corner")
}

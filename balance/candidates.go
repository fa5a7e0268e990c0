package balance

import "github.com/amrforest/forest/quadrant"

// indirectOffsets returns the parent-relative candidate offsets for a
// parent whose own child id is pid (spec 4.E step 2c-2e), grouped by
// axis-subset size: first the Dim face offsets (subset size 1), then in 3D
// the 3 edge offsets (size 2), then the single corner offset (size Dim).
// Each offset is in units of the parent's side length and is applied from
// the parent itself; along every axis it points away from the parent's
// siblings, so each candidate is a neighbor of the parent that lies
// outside the parent's own family.
func indirectOffsets(dim, pid int) [][3]int32 {
	var sign [3]int32
	for axis := 0; axis < dim; axis++ {
		if pid&(1<<uint(axis)) != 0 {
			sign[axis] = 1
		} else {
			sign[axis] = -1
		}
	}

	var subsets [][]int
	switch dim {
	case 2:
		subsets = [][]int{{0}, {1}, {0, 1}}
	case 3:
		subsets = [][]int{
			{0}, {1}, {2},
			{0, 1}, {0, 2}, {1, 2},
			{0, 1, 2},
		}
	default:
		panic("balance: unsupported dimension")
	}

	out := make([][3]int32, 0, len(subsets))
	for _, combo := range subsets {
		var off [3]int32
		for _, axis := range combo {
			off[axis] = sign[axis]
		}
		out = append(out, off)
	}
	return out
}

// subsetSize reports, for the i'th entry of indirectOffsets(dim, _), the
// axis-subset size it belongs to -- used to stop at the selector's reach.
func subsetSize(dim, i int) int {
	switch dim {
	case 2:
		return []int{1, 1, 2}[i]
	case 3:
		return []int{1, 1, 1, 2, 2, 2, 3}[i]
	default:
		panic("balance: unsupported dimension")
	}
}

// isFamily reports whether qs (already in Morton order) is exactly one
// quadrant's full set of 2^Dim children: same level, same parent, and
// child ids running 0..n-1 in order. This is the sibling-run optimization
// of spec 4.E step 1 -- p4est_quadrant_is_familypv, specialized to an
// already-sorted run.
func isFamily(s quadrant.Space, qs []quadrant.Quadrant) bool {
	n := s.NumChildren()
	if len(qs) < n {
		return false
	}
	level := qs[0].Level
	if level == 0 {
		return false
	}
	parent := s.Parent(qs[0])
	for i := 0; i < n; i++ {
		if qs[i].Level != level {
			return false
		}
		if s.ChildID(qs[i]) != i {
			return false
		}
		if !s.Equal(s.Parent(qs[i]), parent) {
			return false
		}
	}
	return true
}

// siblingZero returns q shifted to its own sibling 0, at q's own level.
func siblingZero(s quadrant.Space, q quadrant.Quadrant) quadrant.Quadrant {
	if s.ChildID(q) == 0 {
		return q
	}
	return s.Sibling(q, 0)
}

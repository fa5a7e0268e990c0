package quadrant

// Neighbor returns the same-level quadrant reached by shifting q by offset
// (in units of q's own side length) along each axis. offset entries are
// typically -1, 0, or +1; balance's candidate generation (spec 4.E step 2e)
// and overlap's insulation scan (spec 4.G) both reduce to this one
// operation applied with a precomputed table of offsets, exactly as the
// original keeps a single p4est_balance_coord[][] table instead of one
// function per neighbor kind.
func (s Space) Neighbor(q Quadrant, offset [3]int32) Quadrant {
	h := s.SideLength(q.Level)
	return Quadrant{
		X:     q.X + offset[0]*h,
		Y:     q.Y + offset[1]*h,
		Z:     q.Z + offset[2]*h,
		Level: q.Level,
	}
}

// FaceOffsets returns the 2*Dim face-neighbor offset vectors, in the
// canonical order (-x, +x, -y, +y[, -z, +z]).
func (s Space) FaceOffsets() [][3]int32 {
	out := make([][3]int32, 0, 2*s.Dim)
	for axis := 0; axis < s.Dim; axis++ {
		for _, sign := range [2]int32{-1, 1} {
			var off [3]int32
			off[axis] = sign
			out = append(out, off)
		}
	}
	return out
}

// EdgeOffsets returns the 12 edge-neighbor offset vectors of a 3D space:
// one axis left at 0, the other two each at +-1. Edges only exist in 3D;
// it panics for a 2D space.
func (s Space) EdgeOffsets() [][3]int32 {
	if s.Dim != 3 {
		panic("quadrant: edges only exist in 3D")
	}
	pairs := [3][2]int{{0, 1}, {0, 2}, {1, 2}}
	out := make([][3]int32, 0, 12)
	for _, p := range pairs {
		for _, sa := range [2]int32{-1, 1} {
			for _, sb := range [2]int32{-1, 1} {
				var off [3]int32
				off[p[0]] = sa
				off[p[1]] = sb
				out = append(out, off)
			}
		}
	}
	return out
}

// CornerOffsets returns the 2^Dim corner-neighbor offset vectors, one per
// child id: bit i of the child id selects -1 (0) or +1 (1) along axis i.
func (s Space) CornerOffsets() [][3]int32 {
	n := s.NumChildren()
	out := make([][3]int32, n)
	for id := 0; id < n; id++ {
		var off [3]int32
		for axis := 0; axis < s.Dim; axis++ {
			if id&(1<<uint(axis)) != 0 {
				off[axis] = 1
			} else {
				off[axis] = -1
			}
		}
		out[id] = off
	}
	return out
}

// ShiftCorner returns the same-level corner neighbor of q opposite to the
// given child id: q shifted by one side length away from the child id's
// corner along every axis.
func (s Space) ShiftCorner(q Quadrant, childID int) Quadrant {
	offs := s.CornerOffsets()
	off := offs[childID]
	for axis := 0; axis < s.Dim; axis++ {
		off[axis] = -off[axis]
	}
	return s.Neighbor(q, off)
}

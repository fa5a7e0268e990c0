package quadrant

// Quadrant is the atomic entity of the forest: an axis-aligned cell
// identified by integer coordinates in [0, R] and a refinement level in
// [0, MaxLevel]. Z is unused (left zero) in 2D spaces.
//
// FromTree is a piggyback field, not part of a quadrant's geometric identity
// (Compare and the ancestry predicates never look at it). It is carried so
// that algorithms which move a quadrant between containers -- completion,
// overlap, partition -- can remember which tree it belongs to without a
// side table, mirroring the piggy1/piggy2 union fields original p4est
// quadrants carry for the same reason.
type Quadrant struct {
	X, Y, Z  int32
	Level    uint8
	FromTree int32
}

// New builds a 2D quadrant.
func New(x, y int32, level uint8) Quadrant {
	return Quadrant{X: x, Y: y, Level: level}
}

// New3 builds a 3D quadrant.
func New3(x, y, z int32, level uint8) Quadrant {
	return Quadrant{X: x, Y: y, Z: z, Level: level}
}

func (q Quadrant) coords(dim int) [3]int32 {
	c := [3]int32{q.X, q.Y, q.Z}
	for i := dim; i < 3; i++ {
		c[i] = 0
	}
	return c
}

// IsInsideRoot reports whether q is a valid quadrant of its own root: its
// coordinates are multiples of h(level) and lie in [0, R - h(level)].
func (s Space) IsInsideRoot(q Quadrant) bool {
	h := s.SideLength(q.Level)
	r := s.Root()
	c := q.coords(s.Dim)
	for i := 0; i < s.Dim; i++ {
		if c[i]%h != 0 || c[i] < 0 || c[i] > r-h {
			return false
		}
	}
	return true
}

// IsExtended reports whether q lies in the extended root: one layer of
// virtual siblings outside the unit root, used while balancing across a
// tree boundary.
func (s Space) IsExtended(q Quadrant) bool {
	h := s.SideLength(q.Level)
	r := s.Root()
	c := q.coords(s.Dim)
	for i := 0; i < s.Dim; i++ {
		if c[i]%h != 0 || c[i] < -h || c[i] > r {
			return false
		}
	}
	return true
}

// IsInside3x3 reports whether q lies within the 3x3 (3x3x3 in 3D)
// same-level insulation block centered on ref: the cell differs from ref
// by at most one side length along every axis.
func (s Space) IsInside3x3(ref, q Quadrant) bool {
	if ref.Level != q.Level {
		return false
	}
	h := s.SideLength(ref.Level)
	rc := ref.coords(s.Dim)
	qc := q.coords(s.Dim)
	for i := 0; i < s.Dim; i++ {
		d := qc[i] - rc[i]
		if d < -h || d > h {
			return false
		}
	}
	return true
}

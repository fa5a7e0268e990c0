package quadrant

// Transform is the integer-only record a connectivity lookup returns to
// describe how a quadrant's coordinates convert from one tree's frame into
// a neighboring tree's frame across a shared face, edge, or corner (spec
// 4.A, 6). It is a tagged union in spirit -- Kind says which neighbor
// relation produced it -- but Go has no space-efficient union, so the
// fields simply sit side by side; unused fields are zero.
//
// Perm/Sign describe a per-axis affine remap: axis i of the source
// quadrant lands on axis Perm[i] of the destination, negated first if
// Sign[i] < 0 (mirrored about the shared boundary), then shifted by
// Offset[Perm[i]] to land inside the destination tree's root.
type Transform struct {
	Kind        Kind
	NTree       int32
	NIndex      int8 // the neighbor face/edge/corner id within the destination tree
	Orientation int8
	Perm        [3]int8
	Sign        [3]int8
	Offset      [3]int32
}

// Kind discriminates the three neighbor relations a Transform can encode.
type Kind int8

const (
	FaceKind Kind = iota
	EdgeKind
	CornerKind
)

// Transform maps q from its own tree's coordinate frame into the
// destination tree's frame described by t, preserving level.
func (s Space) Transform(q Quadrant, t Transform) Quadrant {
	h := s.SideLength(q.Level)
	in := [3]int32{q.X, q.Y, q.Z}
	var out [3]int32
	for axis := 0; axis < s.Dim; axis++ {
		v := in[axis]
		if t.Sign[axis] < 0 {
			v = -v - h
		}
		dst := int(t.Perm[axis])
		out[dst] = v + t.Offset[dst]
	}
	return Quadrant{X: out[0], Y: out[1], Z: out[2], Level: q.Level, FromTree: t.NTree}
}

// Identity is the no-op transform for a destination tree reached without
// any permutation, flip, or shift -- used by in-process tests and by brick
// connectivities whose neighbors line up axis for axis.
func Identity(ntree int32) Transform {
	return Transform{
		NTree: ntree,
		Perm:  [3]int8{0, 1, 2},
		Sign:  [3]int8{1, 1, 1},
	}
}

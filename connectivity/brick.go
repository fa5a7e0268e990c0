package connectivity

import (
	"github.com/amrforest/forest/quadrant"
	"github.com/google/uuid"
)

// Brick is an axis-aligned grid of NX x NY (x NZ) trees, each the unit
// cube, glued face to face without any twist. It is the connectivity used
// by this module's own tests and is a reasonable stand-in for the
// "connectivity graph construction" spec.md places out of scope (spec 1).
type Brick struct {
	ID       uuid.UUID
	Space    quadrant.Space
	NX       int
	NY       int
	NZ       int // 1 in 2D
	Periodic [3]bool
}

// NewBrick builds a Brick connectivity. nz is ignored (forced to 1) when
// space.Dim == 2.
func NewBrick(space quadrant.Space, nx, ny, nz int, periodic [3]bool) *Brick {
	if space.Dim == 2 {
		nz = 1
	}
	if nx < 1 || ny < 1 || nz < 1 {
		panic("connectivity: brick extents must be positive")
	}
	return &Brick{ID: uuid.New(), Space: space, NX: nx, NY: ny, NZ: nz, Periodic: periodic}
}

func (b *Brick) NumTrees() int32 {
	return int32(b.NX * b.NY * b.NZ)
}

func (b *Brick) coordsOf(tree int32) (x, y, z int) {
	t := int(tree)
	x = t % b.NX
	t /= b.NX
	y = t % b.NY
	t /= b.NY
	z = t
	return
}

func (b *Brick) treeOf(x, y, z int) int32 {
	return int32(z*b.NY*b.NX + y*b.NX + x)
}

// checkTree panics with ErrNoSuchTree if tree is outside [0, NumTrees()).
func (b *Brick) checkTree(tree int32) {
	if tree < 0 || tree >= b.NumTrees() {
		panic(ErrNoSuchTree)
	}
}

// neighborTree resolves the grid cell reached by delta (each entry in
// {-1,0,1}) from tree, honoring periodicity per axis. ok is false when the
// step falls off a non-periodic boundary.
func (b *Brick) neighborTree(tree int32, delta [3]int32) (int32, bool) {
	b.checkTree(tree)
	x, y, z := b.coordsOf(tree)
	ext := [3]int{b.NX, b.NY, b.NZ}
	cur := [3]int{x, y, z}
	for axis := 0; axis < 3; axis++ {
		cur[axis] += int(delta[axis])
		if cur[axis] < 0 || cur[axis] >= ext[axis] {
			if !b.Periodic[axis] {
				return 0, false
			}
			cur[axis] = ((cur[axis] % ext[axis]) + ext[axis]) % ext[axis]
		}
	}
	return b.treeOf(cur[0], cur[1], cur[2]), true
}

// transformFor builds the integer transform for stepping by delta: brick
// gluing never permutes or flips axes, it only shifts the crossed axis by
// +-R to land the coordinate in the neighbor's root.
func (b *Brick) transformFor(kind quadrant.Kind, ntree int32, delta [3]int32) quadrant.Transform {
	t := quadrant.Transform{
		Kind:  kind,
		NTree: ntree,
		Perm:  [3]int8{0, 1, 2},
		Sign:  [3]int8{1, 1, 1},
	}
	r := b.Space.Root()
	for axis := 0; axis < 3; axis++ {
		switch delta[axis] {
		case -1:
			t.Offset[axis] = r
		case 1:
			t.Offset[axis] = -r
		}
	}
	return t
}

func (b *Brick) FindFaceTransform(tree int32, face int) (quadrant.Transform, bool) {
	offs := b.Space.FaceOffsets()
	if face < 0 || face >= len(offs) {
		panic("connectivity: face index out of range")
	}
	delta := offs[face]
	nt, ok := b.neighborTree(tree, delta)
	if !ok {
		return quadrant.Transform{}, false
	}
	return b.transformFor(quadrant.FaceKind, nt, delta), true
}

func (b *Brick) FindEdgeTransforms(tree int32, edge int) []quadrant.Transform {
	if b.Space.Dim != 3 {
		return nil
	}
	offs := b.Space.EdgeOffsets()
	if edge < 0 || edge >= len(offs) {
		panic("connectivity: edge index out of range")
	}
	delta := offs[edge]
	nt, ok := b.neighborTree(tree, delta)
	if !ok {
		return nil
	}
	return []quadrant.Transform{b.transformFor(quadrant.EdgeKind, nt, delta)}
}

func (b *Brick) FindCornerTransforms(tree int32, corner int) []quadrant.Transform {
	offs := b.Space.CornerOffsets()
	if corner < 0 || corner >= len(offs) {
		panic("connectivity: corner index out of range")
	}
	delta := offs[corner]
	nt, ok := b.neighborTree(tree, delta)
	if !ok {
		return nil
	}
	return []quadrant.Transform{b.transformFor(quadrant.CornerKind, nt, delta)}
}

package connectivity

import "github.com/amrforest/forest/quadrant"

// Table is a connectivity built from a precomputed lookup rather than
// derived on the fly the way Brick derives its neighbors by grid
// arithmetic. It is what a forest loads when the tree graph comes from an
// external mesh partitioner instead of this module's own brick
// constructor (spec 1 places graph construction itself out of scope; Table
// is the load side of that boundary).
type Table struct {
	Space   quadrant.Space
	Trees   int32
	Faces   [][]faceEntry            // Faces[tree][face]
	Edges   [][][]quadrant.Transform // Edges[tree][edge]
	Corners [][][]quadrant.Transform // Corners[tree][corner]
}

type faceEntry struct {
	Transform quadrant.Transform
	OK        bool
}

func (t *Table) NumTrees() int32 {
	return t.Trees
}

func (t *Table) FindFaceTransform(tree int32, face int) (quadrant.Transform, bool) {
	t.checkTree(tree)
	e := t.Faces[tree][face]
	return e.Transform, e.OK
}

func (t *Table) FindEdgeTransforms(tree int32, edge int) []quadrant.Transform {
	t.checkTree(tree)
	if len(t.Edges) == 0 {
		return nil
	}
	return t.Edges[tree][edge]
}

func (t *Table) FindCornerTransforms(tree int32, corner int) []quadrant.Transform {
	t.checkTree(tree)
	return t.Corners[tree][corner]
}

func (t *Table) checkTree(tree int32) {
	if tree < 0 || tree >= t.Trees {
		panic(ErrNoSuchTree)
	}
}

// FromConnectivity flattens any Connectivity into a Table by exhaustively
// querying every face, edge, and corner of every tree. It is how a Brick
// (or any other Connectivity) gets turned into the wire form
// EncodeTransformTable writes.
func FromConnectivity(space quadrant.Space, c Connectivity) *Table {
	n := c.NumTrees()
	t := &Table{Space: space, Trees: n}

	faceOffsets := space.FaceOffsets()
	t.Faces = make([][]faceEntry, n)
	for tr := int32(0); tr < n; tr++ {
		t.Faces[tr] = make([]faceEntry, len(faceOffsets))
		for f := range faceOffsets {
			tf, ok := c.FindFaceTransform(tr, f)
			t.Faces[tr][f] = faceEntry{Transform: tf, OK: ok}
		}
	}

	if space.Dim == 3 {
		edgeOffsets := space.EdgeOffsets()
		t.Edges = make([][][]quadrant.Transform, n)
		for tr := int32(0); tr < n; tr++ {
			t.Edges[tr] = make([][]quadrant.Transform, len(edgeOffsets))
			for e := range edgeOffsets {
				t.Edges[tr][e] = c.FindEdgeTransforms(tr, e)
			}
		}
	}

	cornerOffsets := space.CornerOffsets()
	t.Corners = make([][][]quadrant.Transform, n)
	for tr := int32(0); tr < n; tr++ {
		t.Corners[tr] = make([][]quadrant.Transform, len(cornerOffsets))
		for c2 := range cornerOffsets {
			t.Corners[tr][c2] = c.FindCornerTransforms(tr, c2)
		}
	}
	return t
}

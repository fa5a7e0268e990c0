package complete

import (
	"github.com/amrforest/forest/pool"
	"github.com/amrforest/forest/quadrant"
	"github.com/amrforest/forest/tree"
)

// InitFunc materializes the payload for a quadrant newly inserted into the
// tree, returning the pool.Ref that will sit alongside it.
type InitFunc func(q quadrant.Quadrant) pool.Ref

// Region fills the empty tree t with the minimal linear, complete sequence
// of quadrants covering the open or half-open interval between a and b
// (a must sort strictly before b), optionally including the endpoints
// themselves (spec 4.D). It panics if t is not empty or a does not sort
// before b -- both are caller errors, not runtime conditions.
func Region(t *tree.Tree, a, b quadrant.Quadrant, includeA, includeB bool, init InitFunc) {
	if t.Len() != 0 {
		panic(ErrNotEmpty)
	}
	space := t.Space
	if space.Compare(a, b) >= 0 {
		panic(tree.ErrNotOrdered)
	}

	push := func(q quadrant.Quadrant) {
		t.Push(tree.Entry{Quadrant: q, Payload: init(q)})
	}

	if includeA {
		push(a)
	}

	var visit func(w quadrant.Quadrant)
	visit = func(w quadrant.Quadrant) {
		switch {
		case space.Compare(a, w) < 0 && space.Compare(w, b) < 0 && !space.IsAncestor(w, b):
			push(w)
		case space.IsAncestor(w, a) || space.IsAncestor(w, b):
			var buf [8]quadrant.Quadrant
			children := space.Children(w, buf[:space.NumChildren()])
			for _, c := range children {
				visit(c)
			}
		}
	}

	afinest := space.NearestCommonAncestor(a, b)
	var buf [8]quadrant.Quadrant
	for _, c := range space.Children(afinest, buf[:space.NumChildren()]) {
		visit(c)
	}

	if includeB {
		push(b)
	}
}

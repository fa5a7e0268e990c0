package balance

import (
	"testing"

	"github.com/amrforest/forest/pool"
	"github.com/amrforest/forest/quadrant"
	"github.com/amrforest/forest/tree"
	"github.com/stretchr/testify/require"
)

// refineFully emits the finest-level tiling of q's footprint at level
// target, for building test fixtures without going through completion.
func refineFully(space quadrant.Space, q quadrant.Quadrant, target uint8, out *[]quadrant.Quadrant) {
	if q.Level == target {
		*out = append(*out, q)
		return
	}
	var buf [8]quadrant.Quadrant
	for _, c := range space.Children(q, buf[:space.NumChildren()]) {
		refineFully(space, c, target, out)
	}
}

func buildUnbalancedFixture(t *testing.T, space quadrant.Space, arena *pool.Arena) *tree.Tree {
	var buf [8]quadrant.Quadrant
	children := make([]quadrant.Quadrant, space.NumChildren())
	copy(children, space.Children(quadrant.New(0, 0, 0), buf[:space.NumChildren()]))

	tr := tree.New(space)
	var fine []quadrant.Quadrant
	refineFully(space, children[0], 3, &fine)
	for _, q := range fine {
		tr.Push(tree.Entry{Quadrant: q, Payload: arena.Alloc()})
	}
	for _, q := range children[1:] {
		tr.Push(tree.Entry{Quadrant: q, Payload: arena.Alloc()})
	}
	tr.Sort()
	require.True(t, tr.IsComplete())
	return tr
}

func TestSubtreeFixesFaceLevelJump(t *testing.T) {
	space := quadrant.NewSpace(2)
	arena := pool.NewArena(1)
	tr := buildUnbalancedFixture(t, space, arena)
	require.False(t, IsBalanced(tr, Selector(space.Dim)))

	scratch := pool.NewScratch[quadrant.Quadrant]()
	Subtree(tr, Face, arena, scratch, func(q quadrant.Quadrant) pool.Ref { return arena.Alloc() })

	require.True(t, tr.IsComplete())
	require.True(t, IsBalanced(tr, Face))
}

func TestSubtreeFullBalanceIncludesCorners(t *testing.T) {
	space := quadrant.NewSpace(2)
	arena := pool.NewArena(1)
	tr := buildUnbalancedFixture(t, space, arena)

	scratch := pool.NewScratch[quadrant.Quadrant]()
	Subtree(tr, MaxSelector(space), arena, scratch, func(q quadrant.Quadrant) pool.Ref { return arena.Alloc() })

	require.True(t, tr.IsComplete())
	require.True(t, IsBalanced(tr, MaxSelector(space)))
}

func TestSubtreeOnAlreadyBalancedTreeIsNoop(t *testing.T) {
	space := quadrant.NewSpace(2)
	arena := pool.NewArena(1)
	tr := tree.New(space)
	var buf [8]quadrant.Quadrant
	for _, c := range space.Children(quadrant.New(0, 0, 0), buf[:space.NumChildren()]) {
		tr.Push(tree.Entry{Quadrant: c, Payload: arena.Alloc()})
	}
	tr.Sort()
	before := tr.Len()

	scratch := pool.NewScratch[quadrant.Quadrant]()
	Subtree(tr, MaxSelector(space), arena, scratch, func(q quadrant.Quadrant) pool.Ref { return arena.Alloc() })

	require.Equal(t, before, tr.Len())
	require.True(t, tr.IsComplete())
}

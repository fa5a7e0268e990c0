package tree

import (
	"testing"

	"github.com/amrforest/forest/pool"
	"github.com/amrforest/forest/quadrant"
	"github.com/stretchr/testify/require"
)

func mk(sp quadrant.Space, x, y int32, level uint8) Entry {
	return Entry{Quadrant: quadrant.New(x, y, level), Payload: pool.NoRef}
}

func TestPushMaintainsCountsAndMaxlevel(t *testing.T) {
	sp := quadrant.NewSpace(2)
	tr := New(sp)
	tr.Push(mk(sp, 0, 0, 0))
	tr.Push(mk(sp, 0, 0, 2))
	require.EqualValues(t, 1, tr.QuadrantsPerLevel[0])
	require.EqualValues(t, 1, tr.QuadrantsPerLevel[2])
	require.EqualValues(t, 2, tr.Maxlevel)
}

func TestSortedLinearComplete(t *testing.T) {
	sp := quadrant.NewSpace(2)
	tr := New(sp)
	h := sp.SideLength(1)
	tr.Push(mk(sp, 0, 0, 1))
	tr.Push(mk(sp, h, 0, 1))
	tr.Push(mk(sp, 0, h, 1))
	tr.Push(mk(sp, h, h, 1))
	require.True(t, tr.IsSorted())
	require.True(t, tr.IsLinear())
	require.True(t, tr.IsComplete())
}

func TestLinearDetectsAncestorDescendantPair(t *testing.T) {
	sp := quadrant.NewSpace(2)
	tr := New(sp)
	tr.Push(mk(sp, 0, 0, 0))
	tr.Push(mk(sp, 0, 0, 1))
	require.True(t, tr.IsSorted())
	require.False(t, tr.IsLinear())
}

func TestLinearizeDropsAncestors(t *testing.T) {
	sp := quadrant.NewSpace(2)
	tr := New(sp)
	tr.Push(mk(sp, 0, 0, 0))
	tr.Push(mk(sp, 0, 0, 1))
	tr.Push(mk(sp, 0, 0, 2))
	arena := pool.NewArena(1)
	tr.Linearize(arena)
	require.Equal(t, 1, tr.Len())
	require.EqualValues(t, 2, tr.Index(0).Level)
	require.EqualValues(t, 2, tr.Maxlevel)
}

func TestRemoveNonOwnedDropsOutsideRoot(t *testing.T) {
	sp := quadrant.NewSpace(2)
	tr := New(sp)
	h := sp.SideLength(1)
	tr.Push(mk(sp, -h, 0, 1))
	tr.Push(mk(sp, 0, 0, 1))
	tr.Push(mk(sp, h, 0, 1))
	arena := pool.NewArena(1)
	var zero quadrant.Quadrant
	tr.RemoveNonOwned(arena, zero, zero, false, false)
	require.Equal(t, 2, tr.Len())
	for i := 0; i < tr.Len(); i++ {
		require.True(t, sp.IsInsideRoot(tr.Index(i).Quadrant))
	}
}

func TestRemoveNonOwnedRespectsOwnershipBounds(t *testing.T) {
	sp := quadrant.NewSpace(2)
	tr := New(sp)
	h := sp.SideLength(2)
	tr.Push(mk(sp, 0, 0, 2))
	tr.Push(mk(sp, h, 0, 2))
	tr.Push(mk(sp, 2*h, 0, 2))
	first := quadrant.New(h, 0, 2)
	next := quadrant.New(2*h, 0, 2)
	arena := pool.NewArena(1)
	tr.RemoveNonOwned(arena, first, next, true, true)
	require.Equal(t, 1, tr.Len())
	require.EqualValues(t, h, tr.Index(0).X)
}

func TestFirstLastEmptyTree(t *testing.T) {
	sp := quadrant.NewSpace(2)
	tr := New(sp)
	_, err := tr.First()
	require.ErrorIs(t, err, ErrEmptyTree)
	_, err = tr.Last()
	require.ErrorIs(t, err, ErrEmptyTree)
}

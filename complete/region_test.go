package complete

import (
	"testing"

	"github.com/amrforest/forest/pool"
	"github.com/amrforest/forest/quadrant"
	"github.com/amrforest/forest/tree"
	"github.com/stretchr/testify/require"
)

func TestRegionFillsSiblingsBetweenRootChildren(t *testing.T) {
	sp := quadrant.NewSpace(2)
	h1 := sp.SideLength(1)
	a := quadrant.New(0, 0, 1)
	b := quadrant.New(h1, h1, 1)

	tr := tree.New(sp)
	arena := pool.NewArena(1)
	Region(tr, a, b, true, true, func(q quadrant.Quadrant) pool.Ref { return arena.Alloc() })

	require.Equal(t, 4, tr.Len())
	require.True(t, tr.IsComplete())
	require.Equal(t, a, tr.Index(0).Quadrant)
	require.Equal(t, quadrant.New(h1, 0, 1), tr.Index(1).Quadrant)
	require.Equal(t, quadrant.New(0, h1, 1), tr.Index(2).Quadrant)
	require.Equal(t, b, tr.Index(3).Quadrant)
}

func TestRegionSplitsAncestorOfEndpoint(t *testing.T) {
	sp := quadrant.NewSpace(2)
	h1 := sp.SideLength(1)
	a := quadrant.New(0, 0, 1)
	b := quadrant.New(0, h1, 2)

	tr := tree.New(sp)
	arena := pool.NewArena(1)
	Region(tr, a, b, true, true, func(q quadrant.Quadrant) pool.Ref { return arena.Alloc() })

	require.Equal(t, 3, tr.Len())
	require.Equal(t, a, tr.Index(0).Quadrant)
	require.Equal(t, quadrant.New(h1, 0, 1), tr.Index(1).Quadrant)
	require.Equal(t, b, tr.Index(2).Quadrant)
	require.True(t, tr.IsSorted())
}

func TestRegionPanicsOnMisorderedEndpoints(t *testing.T) {
	sp := quadrant.NewSpace(2)
	a := quadrant.New(10, 10, 5)
	b := quadrant.New(0, 0, 5)

	tr := tree.New(sp)
	require.Panics(t, func() {
		Region(tr, a, b, true, true, func(q quadrant.Quadrant) pool.Ref { return pool.NoRef })
	})
}

func TestRegionPanicsOnNonEmptyTree(t *testing.T) {
	sp := quadrant.NewSpace(2)
	tr := tree.New(sp)
	tr.Push(tree.Entry{Quadrant: quadrant.New(0, 0, 0), Payload: pool.NoRef})

	a := quadrant.New(0, 0, 1)
	b := quadrant.New(10, 10, 1)
	require.Panics(t, func() {
		Region(tr, a, b, true, true, func(q quadrant.Quadrant) pool.Ref { return pool.NoRef })
	})
}

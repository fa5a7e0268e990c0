package connectivity

import (
	"testing"

	"github.com/amrforest/forest/quadrant"
	"github.com/stretchr/testify/require"
)

func TestBrickNumTrees(t *testing.T) {
	sp := quadrant.NewSpace(2)
	b := NewBrick(sp, 3, 2, 1, [3]bool{})
	require.EqualValues(t, 6, b.NumTrees())
}

func TestBrickFaceTransformInterior(t *testing.T) {
	sp := quadrant.NewSpace(2)
	b := NewBrick(sp, 3, 3, 1, [3]bool{})
	// tree 4 sits in the middle of a 3x3 grid: every face has a neighbor.
	for face := 0; face < 4; face++ {
		tr, ok := b.FindFaceTransform(4, face)
		require.True(t, ok)
		require.NotEqual(t, int32(4), tr.NTree)
	}
}

func TestBrickFaceTransformBoundary(t *testing.T) {
	sp := quadrant.NewSpace(2)
	b := NewBrick(sp, 2, 2, 1, [3]bool{})
	// tree 0 is the bottom-left cell; its -x and -y faces are true boundaries.
	_, okXNeg := b.FindFaceTransform(0, 0)
	require.False(t, okXNeg)
	_, okYNeg := b.FindFaceTransform(0, 2)
	require.False(t, okYNeg)
	_, okXPos := b.FindFaceTransform(0, 1)
	require.True(t, okXPos)
}

func TestBrickPeriodicWraps(t *testing.T) {
	sp := quadrant.NewSpace(2)
	b := NewBrick(sp, 2, 2, 1, [3]bool{true, true, false})
	tr, ok := b.FindFaceTransform(0, 0)
	require.True(t, ok)
	require.EqualValues(t, 1, tr.NTree)
	require.Equal(t, sp.Root(), tr.Offset[0])
}

func TestBrickCornerTransformsInterior(t *testing.T) {
	sp := quadrant.NewSpace(2)
	b := NewBrick(sp, 3, 3, 1, [3]bool{})
	trs := b.FindCornerTransforms(4, 0)
	require.Len(t, trs, 1)
	require.EqualValues(t, 0, trs[0].NTree)
}

func TestBrickEdgeTransformsRequire3D(t *testing.T) {
	sp2 := quadrant.NewSpace(2)
	b2 := NewBrick(sp2, 2, 2, 1, [3]bool{})
	require.Nil(t, b2.FindEdgeTransforms(0, 0))

	sp3 := quadrant.NewSpace(3)
	b3 := NewBrick(sp3, 2, 2, 2, [3]bool{})
	// edge index 3 is the (+1,+1) pair on the first two axes, which stays
	// inside a 2x2x2 grid from the origin tree without needing periodicity.
	trs := b3.FindEdgeTransforms(0, 3)
	require.NotEmpty(t, trs)
}

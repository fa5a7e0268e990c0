package connectivity

import (
	"testing"

	"github.com/amrforest/forest/quadrant"
	"github.com/stretchr/testify/require"
)

func TestFromConnectivityMatchesBrick(t *testing.T) {
	sp := quadrant.NewSpace(2)
	b := NewBrick(sp, 3, 3, 1, [3]bool{})

	tbl := FromConnectivity(sp, b)
	require.EqualValues(t, b.NumTrees(), tbl.NumTrees())

	for face := 0; face < 4; face++ {
		want, wantOK := b.FindFaceTransform(4, face)
		got, gotOK := tbl.FindFaceTransform(4, face)
		require.Equal(t, wantOK, gotOK)
		require.Equal(t, want, got)
	}

	require.Equal(t, b.FindCornerTransforms(4, 0), tbl.FindCornerTransforms(4, 0))
}

func TestTransformTableCBORRoundTrip(t *testing.T) {
	sp := quadrant.NewSpace(3)
	b := NewBrick(sp, 2, 2, 2, [3]bool{true, false, false})
	tbl := FromConnectivity(sp, b)

	buf, err := EncodeTransformTable(tbl)
	require.NoError(t, err)
	require.NotEmpty(t, buf)

	got, err := DecodeTransformTable(buf)
	require.NoError(t, err)
	require.Equal(t, tbl.Space, got.Space)
	require.Equal(t, tbl.Trees, got.Trees)

	for tr := int32(0); tr < tbl.Trees; tr++ {
		for f := range tbl.Faces[tr] {
			want, wantOK := tbl.FindFaceTransform(tr, f)
			got2, gotOK := got.FindFaceTransform(tr, f)
			require.Equal(t, wantOK, gotOK)
			require.Equal(t, want, got2)
		}
	}
}

func TestTableOutOfRangeTreePanics(t *testing.T) {
	sp := quadrant.NewSpace(2)
	b := NewBrick(sp, 2, 2, 1, [3]bool{})
	tbl := FromConnectivity(sp, b)
	require.Panics(t, func() { tbl.FindFaceTransform(99, 0) })
}

package partition

import (
	"sync"
	"testing"

	"github.com/amrforest/forest/quadrant"
	"github.com/amrforest/forest/transport"
	"github.com/stretchr/testify/require"
)

func makeLocal(globalIdxs []int64) []Entry {
	out := make([]Entry, len(globalIdxs))
	for i, g := range globalIdxs {
		out[i] = Entry{
			Quadrant: quadrant.Quadrant{X: int32(g) * 4, Level: 0, FromTree: 0},
			Data:     []byte{byte(g)},
		}
	}
	return out
}

func TestGivenRedistributesAcrossTwoRanks(t *testing.T) {
	space := quadrant.NewSpace(2)
	oldFirst := []int64{0, 4, 6}
	newFirst := []int64{0, 3, 6}

	local0 := makeLocal([]int64{0, 1, 2, 3})
	local1 := makeLocal([]int64{4, 5})

	ranks := transport.NewLocalWorld(2)

	var out0, out1 []Entry
	var err0, err1 error
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		out0, err0 = Given(space, 1, 0, local0, oldFirst, newFirst, ranks[0])
	}()
	go func() {
		defer wg.Done()
		out1, err1 = Given(space, 1, 1, local1, oldFirst, newFirst, ranks[1])
	}()
	wg.Wait()

	require.NoError(t, err0)
	require.NoError(t, err1)
	require.Len(t, out0, 3)
	require.Len(t, out1, 3)

	gotGlobals := func(entries []Entry) []int {
		out := make([]int, len(entries))
		for i, e := range entries {
			out[i] = int(e.Data[0])
		}
		return out
	}
	require.Equal(t, []int{0, 1, 2}, gotGlobals(out0))
	require.Equal(t, []int{3, 4, 5}, gotGlobals(out1))
}

func TestGivenRejectsLocalCountMismatch(t *testing.T) {
	space := quadrant.NewSpace(2)
	oldFirst := []int64{0, 4}
	newFirst := []int64{0, 4}
	ranks := transport.NewLocalWorld(1)

	_, err := Given(space, 1, 0, makeLocal([]int64{0, 1}), oldFirst, newFirst, ranks[0])
	require.ErrorIs(t, err, ErrLocalCountMismatch)
}

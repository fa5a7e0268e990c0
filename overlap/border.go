package overlap

import (
	"sort"

	"github.com/amrforest/forest/quadrant"
	"github.com/amrforest/forest/tree"
)

// leavesWithin returns the entries of a sorted, complete tree whose Morton
// position falls inside [lo, hi] (inclusive). Same binary-search-the-border
// technique balance.IsBalanced uses against its own tree; overlap uses it
// against a remote tree's entries instead of the local one.
func leavesWithin(space quadrant.Space, entries []tree.Entry, lo, hi quadrant.Quadrant) []tree.Entry {
	start := sort.Search(len(entries), func(i int) bool {
		return space.Compare(entries[i].Quadrant, lo) >= 0
	})
	end := start
	for end < len(entries) && space.Compare(entries[end].Quadrant, hi) <= 0 {
		end++
	}
	if start > 0 {
		prevFirst := space.FirstDescendant(entries[start-1].Quadrant, space.MaxLevel)
		prevLast := space.LastDescendant(entries[start-1].Quadrant, space.MaxLevel)
		if space.Compare(prevFirst, lo) <= 0 && space.Compare(lo, prevLast) <= 0 {
			start--
		}
	}
	return entries[start:end]
}

package balance

import (
	"sort"

	"github.com/amrforest/forest/quadrant"
	"github.com/amrforest/forest/tree"
)

// leavesWithin returns the entries of t whose Morton position falls inside
// [lo, hi] (inclusive), assuming t is complete and sorted -- the same
// binary-search-the-border technique overlap's insulation scan uses
// (spec 4.G) to find which leaves cover a same-level neighbor's footprint.
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

// IsBalanced reports whether, for every leaf of t and every same-tree
// neighbor reached within selector's reach, the level difference is at
// most 1 (spec I4, testable property 4). It only checks neighbors inside
// this tree's own root; cross-tree balance is overlap's and forest's
// responsibility. Each leaf is checked against the coarser leaves covering
// its same-level neighbor cells; a finer neighbor is checked from its own
// side, so finer leaves deep inside a neighbor cell that do not touch the
// leaf are never counted.
func IsBalanced(t *tree.Tree, selector Selector) bool {
	space := t.Space
	offsets := space.FaceOffsets()
	if selector >= 2 && space.Dim == 3 {
		offsets = append(offsets, space.EdgeOffsets()...)
	}
	if int(selector) >= space.Dim {
		offsets = append(offsets, space.CornerOffsets()...)
	}

	for _, e := range t.Entries {
		for _, off := range offsets {
			nb := space.Neighbor(e.Quadrant, off)
			if !space.IsInsideRoot(nb) {
				continue
			}
			lo := space.FirstDescendant(nb, space.MaxLevel)
			hi := space.LastDescendant(nb, space.MaxLevel)
			for _, touching := range leavesWithin(space, t.Entries, lo, hi) {
				d := int(e.Level) - int(touching.Level)
				if d > 1 {
					return false
				}
			}
		}
	}
	return true
}

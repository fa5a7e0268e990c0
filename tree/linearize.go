package tree

import (
	"github.com/amrforest/forest/pool"
	"github.com/amrforest/forest/quadrant"
)

// Linearize makes a single pass over the sorted sequence and drops any
// entry that equals or is an ancestor of its successor, freeing its
// payload back to arena. It compacts in place and rebuilds the per-level
// counts and maxlevel afterward (spec 4.F).
func (t *Tree) Linearize(arena *pool.Arena) {
	if len(t.Entries) == 0 {
		return
	}
	out := t.Entries[:0]
	for i := 0; i < len(t.Entries); i++ {
		cur := t.Entries[i]
		if i+1 < len(t.Entries) {
			next := t.Entries[i+1]
			if t.Space.Equal(cur.Quadrant, next.Quadrant) || t.Space.IsAncestor(cur.Quadrant, next.Quadrant) {
				if arena != nil && cur.Payload != pool.NoRef {
					arena.Free(cur.Payload)
				}
				continue
			}
		}
		out = append(out, cur)
	}
	t.Entries = out
	t.RecomputeCounts()
	t.RefreshDescendants()
}

// RemoveNonOwned drops quadrants that fall outside the unit root, or (when
// this tree is the first or last local tree of the owning process) outside
// the half-open range [firstPos, nextPos) of the process's ownership
// interval (spec 4.F). checkFirst/checkLast toggle whether the lower/upper
// bound applies to this tree at all; a tree that is neither the first nor
// last local tree of its process only has the inside-root check applied.
func (t *Tree) RemoveNonOwned(arena *pool.Arena, firstPos, nextPos quadrant.Quadrant, checkFirst, checkLast bool) {
	out := t.Entries[:0]
	for _, e := range t.Entries {
		if !t.Space.IsInsideRoot(e.Quadrant) {
			t.freeEntry(arena, e)
			continue
		}
		if checkFirst && t.Space.Compare(e.Quadrant, firstPos) < 0 {
			t.freeEntry(arena, e)
			continue
		}
		if checkLast && t.Space.Compare(e.Quadrant, nextPos) >= 0 {
			t.freeEntry(arena, e)
			continue
		}
		out = append(out, e)
	}
	t.Entries = out
	t.RecomputeCounts()
	t.RefreshDescendants()
}

func (t *Tree) freeEntry(arena *pool.Arena, e Entry) {
	if arena != nil && e.Payload != pool.NoRef {
		arena.Free(e.Payload)
	}
}

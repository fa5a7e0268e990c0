package balance

import (
	"sort"

	"github.com/amrforest/forest/complete"
	"github.com/amrforest/forest/internal/xlog"
	"github.com/amrforest/forest/pool"
	"github.com/amrforest/forest/quadrant"
	"github.com/amrforest/forest/tree"
	"go.uber.org/zap"
)

// Border balances inside a single containing quadrant p, given a set of
// p's descendants scattered across levels finer than p -- the compact
// boundary representation the parallel driver exchanges across a process
// boundary (spec 4.E "Border balance (variant)"). It returns the
// Morton-sorted, complete, linear filling of p's balanced subtree, which
// replaces p in the caller's tree.
//
// Every seed must satisfy space.IsAncestor(p, seed); seeds need not be
// sorted or deduplicated, and -- unlike the original's zero-child-id-only
// compact seed representation -- need not be restricted to a particular
// child id: the indirect stage below derives each candidate's own child
// id directly, so an arbitrary descendant of p is enough.
func Border(space quadrant.Space, p quadrant.Quadrant, seeds []quadrant.Quadrant, selector Selector, scratch *pool.Scratch[quadrant.Quadrant], init InitFunc) []tree.Entry {
	if len(seeds) == 0 {
		return []tree.Entry{{Quadrant: p, Payload: init(p)}}
	}

	minlevel := int(p.Level) + 1
	in := uniqueSorted(space, seeds)

	maxlevel := int(p.Level)
	for _, q := range in {
		if int(q.Level) > maxlevel {
			maxlevel = int(q.Level)
		}
	}
	xlog.L().Debug("balance border start",
		zap.Int("selector", int(selector)), zap.Int("seeds", len(in)),
		zap.Int("minlevel", minlevel), zap.Int("maxlevel", maxlevel))

	banks := make([]bank, maxlevel+1)
	for l := range banks {
		banks[l] = bank{hash: make(map[quadrant.Quadrant]bool)}
	}

	rbound := int(selector)

	// No run is needed at minlevel+1: any candidate it would generate sits
	// at minlevel, outside p, and the containment check below discards it
	// anyway (the original skips this level as a pure optimization; here
	// it falls out of the loop bound itself).
	for l := maxlevel; l > minlevel+1; l-- {
		ocountFixed := len(banks[l].out)
		total := len(in) + ocountFixed

		for iz := 0; iz < total; iz++ {
			var q quadrant.Quadrant
			if iz < len(in) {
				q = in[iz]
				if int(q.Level) != l {
					continue
				}
			} else {
				q = banks[l].out[iz-len(in)]
			}
			borderIndirect(space, p, q, rbound, banks, scratch, in)
		}
	}

	out := append([]quadrant.Quadrant(nil), in...)
	for l := minlevel + 1; l <= maxlevel; l++ {
		out = append(out, banks[l].out...)
	}
	sort.Slice(out, func(i, j int) bool { return space.Compare(out[i], out[j]) < 0 })
	out = linearizeQuadrants(space, out)

	result := fillBorder(space, p, minlevel, out, init)
	xlog.L().Debug("balance border done", zap.Int("selector", int(selector)), zap.Int("entries", len(result)))
	return result
}

// borderIndirect offers the parent of q plus, within the selector's reach,
// the parent's face/edge/corner neighbors -- the same candidate shapes
// indirectStage generates for whole-tree balance (spec 4.E steps 2b-2e),
// bounded to staying inside p instead of inside the space's root. There is
// no sibling-stage equivalent: same-level siblings of q are always exactly
// balanced against q (zero level difference) and fillBorder's completion
// reconstructs them regardless, so generating them here would only
// duplicate work completion already does for free.
func borderIndirect(space quadrant.Space, p, q quadrant.Quadrant, rbound int, banks []bank, scratch *pool.Scratch[quadrant.Quadrant], in []quadrant.Quadrant) {
	parent := space.Parent(q)
	borderOffer(space, p, parent, banks, scratch, in)

	pid := space.ChildID(parent)
	ph := space.SideLength(parent.Level)

	offsets := indirectOffsets(space.Dim, pid)
	for i, off := range offsets {
		if subsetSize(space.Dim, i) > rbound {
			continue
		}
		cand := quadrant.Quadrant{
			X:     parent.X + off[0]*ph,
			Y:     parent.Y + off[1]*ph,
			Z:     parent.Z + off[2]*ph,
			Level: parent.Level,
		}
		if !space.IsAncestor(p, cand) {
			continue
		}
		borderOffer(space, p, cand, banks, scratch, in)
	}
}

// borderOffer is offer's dedup-and-insert stage (spec 4.E step 4), adapted
// to binary-search a plain quadrant slice instead of a tree.Tree: Border
// works against raw seeds before they are ever assembled into a Tree.
func borderOffer(space quadrant.Space, p, cand quadrant.Quadrant, banks []bank, scratch *pool.Scratch[quadrant.Quadrant], in []quadrant.Quadrant) {
	if !space.IsAncestor(p, cand) {
		return
	}
	b := &banks[cand.Level]
	if _, ok := b.hash[cand]; ok {
		return
	}
	if idx := sort.Search(len(in), func(i int) bool {
		return space.Compare(in[i], cand) >= 0
	}); idx < len(in) && space.Equal(in[idx], cand) {
		return
	}

	slot := scratch.Get()
	*slot = cand
	b.hash[cand] = false
	b.out = append(b.out, *slot)
	scratch.Put(slot)
}

// linearizeQuadrants drops any quadrant that is an ancestor of (or equal
// to) the one immediately following it in Morton order. An ancestor's own
// key block exclusively and contiguously contains every one of its
// descendants (Compare's tie-break on level), so this adjacent-pair scan
// is enough to catch every ancestor/descendant conflict -- the same
// reasoning tree.Linearize's own adjacent check relies on. A candidate
// offered alongside one of its own, already-present finer descendants
// (the parent-of-q offer is always such a case) is dropped here rather
// than surviving into fillBorder's completion, which assumes its input is
// already a non-overlapping set of positions.
func linearizeQuadrants(space quadrant.Space, qs []quadrant.Quadrant) []quadrant.Quadrant {
	if len(qs) == 0 {
		return qs
	}
	out := qs[:0]
	for i, cur := range qs {
		if i+1 < len(qs) {
			next := qs[i+1]
			if space.Equal(cur, next) || space.IsAncestor(cur, next) {
				continue
			}
		}
		out = append(out, cur)
	}
	return out
}

// uniqueSorted returns seeds sorted into Morton order with exact
// duplicates removed.
func uniqueSorted(space quadrant.Space, seeds []quadrant.Quadrant) []quadrant.Quadrant {
	in := append([]quadrant.Quadrant(nil), seeds...)
	sort.Slice(in, func(i, j int) bool { return space.Compare(in[i], in[j]) < 0 })
	out := in[:0]
	for i, q := range in {
		if i == 0 || !space.Equal(q, in[i-1]) {
			out = append(out, q)
		}
	}
	return out
}

// fillBorder walks the sorted, deduplicated seed-and-candidate list and
// fills every gap between consecutive entries -- and the two ends,
// bounded by p's own first and last descendant at minlevel -- with the
// minimal linear completion (spec 4.D), producing p's final complete
// subtree. A fencepost is only emitted as a leaf in its own right when no
// real entry already refines its position; when one does (the fencepost
// is an ancestor of the adjoining real entry), the fencepost is dropped
// and completion fills in its other siblings instead, since a quadrant
// may never coexist with its own descendant in a valid tree.
func fillBorder(space quadrant.Space, p quadrant.Quadrant, minlevel int, sorted []quadrant.Quadrant, init InitFunc) []tree.Entry {
	first := space.FirstDescendant(p, uint8(minlevel))
	last := space.LastDescendant(p, uint8(minlevel))

	var result []tree.Entry
	fillGap := func(a, b quadrant.Quadrant, includeA, includeB bool) {
		if space.Compare(a, b) >= 0 {
			return
		}
		if includeA && space.IsAncestor(a, b) {
			includeA = false
		}
		if includeB && space.IsAncestor(b, a) {
			includeB = false
		}
		gap := tree.New(space)
		complete.Region(gap, a, b, includeA, includeB, complete.InitFunc(init))
		result = append(result, gap.Entries...)
	}

	prev := first
	for i, q := range sorted {
		fillGap(prev, q, i == 0, false)
		result = append(result, tree.Entry{Quadrant: q, Payload: init(q)})
		prev = q
	}
	fillGap(prev, last, len(sorted) == 0, true)

	sort.Slice(result, func(i, j int) bool { return space.Compare(result[i].Quadrant, result[j].Quadrant) < 0 })
	return result
}

package balance

import (
	"sort"

	"github.com/amrforest/forest/internal/xlog"
	"github.com/amrforest/forest/pool"
	"github.com/amrforest/forest/quadrant"
	"github.com/amrforest/forest/tree"
	"go.uber.org/zap"
)

// InitFunc materializes the payload for a quadrant newly added by balance.
type InitFunc func(q quadrant.Quadrant) pool.Ref

type bank struct {
	hash map[quadrant.Quadrant]bool // value: true if inserted as a parent-stage candidate
	out  []quadrant.Quadrant
}

// Subtree balances t in place for the given selector (spec 4.E): on entry
// t must be almost-sorted (Tree.IsAlmostSorted(true) -- completion alone
// does not require sortedness beyond that); on exit t is complete and,
// for every pair of same-kind neighbor leaves within the selector's reach,
// level difference is at most 1. arena is used only to free payloads of
// any quadrant Linearize drops while restoring (I1); it may be nil if
// payloads need no release. RemoveNonOwned is a separate step left to the
// caller, since it needs the process's ownership interval, which a single
// tree being balanced in isolation (as in tests) does not have.
func Subtree(t *tree.Tree, selector Selector, arena *pool.Arena, scratch *pool.Scratch[quadrant.Quadrant], init InitFunc) {
	if t.Len() == 0 {
		return
	}
	space := t.Space
	maxlevel := int(t.Maxlevel)
	before := t.Len()
	xlog.L().Debug("balance subtree start", zap.Int("selector", int(selector)), zap.Int("entries", before), zap.Int("maxlevel", maxlevel))

	banks := make([]bank, maxlevel+1)
	for l := range banks {
		banks[l] = bank{hash: make(map[quadrant.Quadrant]bool)}
	}

	inlist := t.Entries

	for l := maxlevel; l > 0; l-- {
		ocountFixed := len(banks[l].out)
		total := len(inlist) + ocountFixed

		for iz := 0; iz < total; iz++ {
			var q quadrant.Quadrant
			isFam := false
			if iz < len(inlist) {
				q = inlist[iz].Quadrant
				if int(q.Level) != l {
					continue
				}
				if iz+space.NumChildren() <= len(inlist) {
					run := make([]quadrant.Quadrant, space.NumChildren())
					for k := range run {
						run[k] = inlist[iz+k].Quadrant
					}
					if isFamily(space, run) {
						isFam = true
						iz += space.NumChildren() - 1
					}
				}
			} else {
				q = banks[l].out[iz-len(inlist)]
			}

			isOutRoot := !space.IsInsideRoot(q)
			qid := space.ChildID(q)

			rbound := int(selector)
			if isOutRoot {
				rbound = space.Dim
			}

			siblingStage(space, q, qid, isOutRoot, isFam, banks, scratch, t)
			indirectStage(space, q, qid, l, isOutRoot, rbound, banks, scratch, t)
		}
	}

	for l := 0; l <= maxlevel; l++ {
		for _, c := range banks[l].out {
			if space.IsInsideRoot(c) {
				t.Push(tree.Entry{Quadrant: c, Payload: init(c)})
			}
		}
	}

	sort.Slice(t.Entries, func(i, j int) bool {
		return space.Less(t.Entries[i].Quadrant, t.Entries[j].Quadrant)
	})
	t.Linearize(arena)
	xlog.L().Debug("balance subtree done", zap.Int("selector", int(selector)), zap.Int("entries", t.Len()), zap.Int("added", t.Len()-before))
}

// siblingStage generates q's sibling candidates (spec 4.E step 2a): every
// other child of q's parent, at q's own level, skipped entirely if q
// itself (or its already-complete family) covers them or if q sits
// outside the root.
func siblingStage(space quadrant.Space, q quadrant.Quadrant, qid int, isOutRoot, isFam bool, banks []bank, scratch *pool.Scratch[quadrant.Quadrant], t *tree.Tree) {
	if isOutRoot || isFam {
		return
	}
	var siblings [8]quadrant.Quadrant
	space.Children(space.Parent(q), siblings[:space.NumChildren()])
	for sid, sib := range siblings[:space.NumChildren()] {
		if sid == qid {
			continue
		}
		offer(space, sib, false, banks, scratch, t)
	}
}

// indirectStage generates the parent candidate and, up to rbound's axis
// subset size, the parent's face/edge/corner neighbor candidates (spec
// 4.E steps 2b-2e).
func indirectStage(space quadrant.Space, q quadrant.Quadrant, qid, level int, isOutRoot bool, rbound int, banks []bank, scratch *pool.Scratch[quadrant.Quadrant], t *tree.Tree) {
	parent := space.Parent(q)
	offer(space, parent, true, banks, scratch, t)
	if level == 1 {
		// don't add tree-size quadrants as parent neighbors.
		return
	}

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
		if isOutRoot {
			if !space.IsExtended(cand) {
				continue
			}
		} else {
			if !space.IsInsideRoot(cand) {
				continue
			}
		}
		offer(space, cand, false, banks, scratch, t)
	}
}

// offer runs stage 2 (dedup + insert) for a candidate (spec 4.E step 4).
func offer(space quadrant.Space, cand quadrant.Quadrant, isParentKey bool, banks []bank, scratch *pool.Scratch[quadrant.Quadrant], t *tree.Tree) {
	b := &banks[cand.Level]
	if wasParentKey, ok := b.hash[cand]; ok {
		if isParentKey && wasParentKey {
			return
		}
		return
	}
	if idx := sort.Search(len(t.Entries), func(i int) bool {
		return space.Compare(t.Entries[i].Quadrant, cand) >= 0
	}); idx < len(t.Entries) && space.Equal(t.Entries[idx].Quadrant, cand) {
		return
	}

	slot := scratch.Get()
	*slot = cand
	b.hash[cand] = isParentKey
	b.out = append(b.out, *slot)
	scratch.Put(slot)
}

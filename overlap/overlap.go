package overlap

import (
	"github.com/amrforest/forest/connectivity"
	"github.com/amrforest/forest/internal/xlog"
	"github.com/amrforest/forest/quadrant"
	"github.com/amrforest/forest/tree"
	"github.com/google/btree"
	"go.uber.org/zap"
)

// TreeSource resolves a tree index to its current local contents; overlap
// uses it to binary-search a neighboring tree's border without caring
// whether that tree lives on this process or is mirrored from a remote
// one for the duration of the computation.
type TreeSource func(tree int32) (*tree.Tree, bool)

// crossingTransforms returns every transform across the face, edge, or
// corner that offset crosses, starting from srcTree.
func crossingTransforms(conn connectivity.Connectivity, space quadrant.Space, srcTree int32, offset [3]int32) []quadrant.Transform {
	kind, index := classify(space, offset)
	switch kind {
	case quadrant.FaceKind:
		tr, ok := conn.FindFaceTransform(srcTree, index)
		if !ok {
			return nil
		}
		return []quadrant.Transform{tr}
	case quadrant.EdgeKind:
		return conn.FindEdgeTransforms(srcTree, index)
	default:
		return conn.FindCornerTransforms(srcTree, index)
	}
}

// Legacy returns the quadrants that local's leaves (owned by srcTree)
// force to exist in neighboring trees, per spec 4.G's legacy variant:
// each local leaf's 3x3(x3) insulation is scanned for cells that escape
// this tree's own root; those that land inside a neighbor (via the
// connectivity's face/edge/corner transform) are matched against that
// neighbor's own leaves, and any neighbor leaf strictly finer than
// q.Level+1 is reported, already expressed in the neighbor's own frame.
//
// Each returned quadrant's FromTree names the tree that produced it (the
// neighbor doing the reporting, not srcTree) -- the field a receiving
// process needs to know which of its local trees the quadrant belongs to.
func Legacy(space quadrant.Space, conn connectivity.Connectivity, srcTree int32, local *tree.Tree, source TreeSource) ([]quadrant.Quadrant, error) {
	var out []quadrant.Quadrant
	offsets := insulationOffsets(space.Dim)

	for _, e := range local.Entries {
		q := e.Quadrant
		for _, off := range offsets {
			s := space.Neighbor(q, off)
			if space.IsInsideRoot(s) {
				continue
			}
			for _, tr := range crossingTransforms(conn, space, srcTree, off) {
				rs := space.Transform(s, tr)
				if !space.IsInsideRoot(rs) {
					continue
				}
				remote, ok := source(tr.NTree)
				if !ok {
					return nil, ErrNoSuchTree
				}
				lo := space.FirstDescendant(rs, space.MaxLevel)
				hi := space.LastDescendant(rs, space.MaxLevel)
				for _, touching := range leavesWithin(space, remote.Entries, lo, hi) {
					if touching.Level <= q.Level+1 {
						continue
					}
					out = append(out, quadrant.Quadrant{
						X:        touching.X,
						Y:        touching.Y,
						Z:        touching.Z,
						Level:    touching.Level,
						FromTree: tr.NTree,
					})
				}
			}
		}
	}
	xlog.L().Debug("overlap legacy computed", zap.Int32("src_tree", srcTree), zap.Int("local_leaves", local.Len()), zap.Int("reported", len(out)))
	return out, nil
}

// rankedQuadrant orders btree items by (tree, Morton) for UniqifyOverlap,
// since quadrant.Space.Compare needs a Space receiver that a bare
// quadrant.Quadrant doesn't carry around with it.
type rankedQuadrant struct {
	q     quadrant.Quadrant
	space quadrant.Space
}

func (a rankedQuadrant) Less(other btree.Item) bool {
	b := other.(rankedQuadrant)
	if a.q.FromTree != b.q.FromTree {
		return a.q.FromTree < b.q.FromTree
	}
	return a.space.Compare(a.q, b.q) < 0
}

// UniqifyOverlap sorts the combined output of one or more Legacy calls by
// (tree, Morton), drops exact duplicates, and drops any entry already
// present in skip (spec 4.G, uniqify_overlap) -- skip is typically the
// caller's own local tree contents, since a quadrant already owned
// locally needs no further reporting.
func UniqifyOverlap(space quadrant.Space, combined []quadrant.Quadrant, skip []quadrant.Quadrant) []quadrant.Quadrant {
	seen := btree.New(32)
	for _, q := range skip {
		seen.ReplaceOrInsert(rankedQuadrant{q: q, space: space})
	}

	unique := btree.New(32)
	for _, q := range combined {
		item := rankedQuadrant{q: q, space: space}
		if seen.Has(item) {
			continue
		}
		seen.ReplaceOrInsert(item)
		unique.ReplaceOrInsert(item)
	}

	out := make([]quadrant.Quadrant, 0, unique.Len())
	unique.Ascend(func(item btree.Item) bool {
		out = append(out, item.(rankedQuadrant).q)
		return true
	})
	return out
}

package tree

import (
	"sort"

	"github.com/amrforest/forest/quadrant"
)

// Tree is the Morton-sorted quadrant sequence owned by one process for one
// coarse tree (spec 4.B). It performs no reordering on its own: Push
// appends in whatever order the caller supplies, and Sort (or the
// completion/balance engines, which build already-sorted output) restores
// Morton order before Linearize or RemoveNonOwned run.
type Tree struct {
	Space quadrant.Space

	Entries           []Entry
	QuadrantsPerLevel []int32
	Maxlevel          uint8

	FirstDesc quadrant.Quadrant
	LastDesc  quadrant.Quadrant

	// QuadrantsOffset is the prefix sum of prior trees' sizes on this
	// process (spec 4.B), i.e. this tree's first quadrant's global index.
	QuadrantsOffset int64
}

// New creates an empty tree over the given space, ready to receive entries
// via Push.
func New(space quadrant.Space) *Tree {
	return &Tree{
		Space:             space,
		QuadrantsPerLevel: make([]int32, int(space.MaxLevel)+1),
	}
}

// Len returns the number of quadrants currently owned by the tree.
func (t *Tree) Len() int { return len(t.Entries) }

// Index returns the i'th entry in storage order.
func (t *Tree) Index(i int) Entry { return t.Entries[i] }

// Push appends e to the tree, incrementing QuadrantsPerLevel[e.Level] and
// raising Maxlevel if e.Level is the new highest. It does not re-sort or
// refresh the first/last descendant cache; callers that need a consistent
// cache after a batch of pushes call Sort or RefreshDescendants.
func (t *Tree) Push(e Entry) {
	t.Entries = append(t.Entries, e)
	t.QuadrantsPerLevel[e.Level]++
	if e.Level > t.Maxlevel {
		t.Maxlevel = e.Level
	}
}

// RemoveAt deletes the entry at index i, compacting the slice and
// decrementing its level's count. It does not lower Maxlevel even if i was
// the last quadrant at that level; callers doing bulk removal call
// RecomputeCounts once afterward instead.
func (t *Tree) RemoveAt(i int) Entry {
	e := t.Entries[i]
	t.Entries = append(t.Entries[:i], t.Entries[i+1:]...)
	t.QuadrantsPerLevel[e.Level]--
	return e
}

// Sort restores Morton order over the current entries, then refreshes the
// first/last descendant cache.
func (t *Tree) Sort() {
	sort.Slice(t.Entries, func(i, j int) bool {
		return t.Space.Less(t.Entries[i].Quadrant, t.Entries[j].Quadrant)
	})
	t.RefreshDescendants()
}

// RefreshDescendants recomputes FirstDesc and LastDesc from the current
// first and last owned quadrants. It is a no-op on an empty tree.
func (t *Tree) RefreshDescendants() {
	if len(t.Entries) == 0 {
		return
	}
	first := t.Entries[0].Quadrant
	last := t.Entries[len(t.Entries)-1].Quadrant
	t.FirstDesc = t.Space.FirstDescendant(first, t.Space.MaxLevel)
	t.LastDesc = t.Space.LastDescendant(last, t.Space.MaxLevel)
}

// First returns the first owned entry, or ErrEmptyTree if the tree holds
// nothing.
func (t *Tree) First() (Entry, error) {
	if len(t.Entries) == 0 {
		return Entry{}, ErrEmptyTree
	}
	return t.Entries[0], nil
}

// Last returns the last owned entry, or ErrEmptyTree if the tree holds
// nothing.
func (t *Tree) Last() (Entry, error) {
	if len(t.Entries) == 0 {
		return Entry{}, ErrEmptyTree
	}
	return t.Entries[len(t.Entries)-1], nil
}

// RecomputeCounts rebuilds QuadrantsPerLevel and Maxlevel from scratch. It
// is used after bulk mutation (Linearize, RemoveNonOwned) where maintaining
// the counts incrementally during the pass would be more error-prone than
// a single O(n) rebuild at the end.
func (t *Tree) RecomputeCounts() {
	for i := range t.QuadrantsPerLevel {
		t.QuadrantsPerLevel[i] = 0
	}
	var maxlevel uint8
	for _, e := range t.Entries {
		t.QuadrantsPerLevel[e.Level]++
		if e.Level > maxlevel {
			maxlevel = e.Level
		}
	}
	t.Maxlevel = maxlevel
}

package tree

import (
	"github.com/amrforest/forest/pool"
	"github.com/amrforest/forest/quadrant"
)

// Entry is one quadrant as owned by a Tree: its geometry plus a handle to
// its payload in the forest's arena. FromTree on the embedded Quadrant
// carries the coarse tree of origin for quadrants that arrived via a
// cross-tree transform (overlap, spec 4.G) rather than this tree itself --
// this is the piggyback field the original keeps on every quadrant record
// rather than threading an extra parameter through every call.
type Entry struct {
	quadrant.Quadrant
	Payload pool.Ref
}

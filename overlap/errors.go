package overlap

import "errors"

// ErrNoSuchTree is returned when a TreeSource has no tree for the index a
// connectivity transform names -- a malformed connectivity, since every
// NTree a Transform carries must resolve to a real local or remote tree.
var ErrNoSuchTree = errors.New("overlap: tree source has no tree for transform target")

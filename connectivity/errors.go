package connectivity

import "errors"

var (
	// ErrNoSuchTree is returned by lookups that take a tree index outside
	// [0, NumTrees()).
	ErrNoSuchTree = errors.New("connectivity: no such tree")
)

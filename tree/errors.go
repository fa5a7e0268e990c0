package tree

import "errors"

var (
	// ErrEmptyTree is returned by operations that require at least one
	// owned quadrant (First, Last).
	ErrEmptyTree = errors.New("tree: tree is empty")

	// ErrNotOrdered is the panic value when a < b is required but does not
	// hold (complete.Region).
	ErrNotOrdered = errors.New("tree: quadrants not strictly ordered")
)

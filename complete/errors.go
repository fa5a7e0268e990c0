package complete

import "errors"

// ErrNotEmpty is the panic value when Region is asked to complete into a tree
// that already owns quadrants; completion only ever runs against a fresh
// tree (spec 4.D).
var ErrNotEmpty = errors.New("complete: target tree is not empty")

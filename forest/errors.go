package forest

import "errors"

// ErrNoOwner is returned by FindOwner when a global index falls outside
// every rank's ownership range -- a malformed GlobalFirstQuadrant table.
var ErrNoOwner = errors.New("forest: no rank owns this global index")

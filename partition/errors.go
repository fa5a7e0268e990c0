package partition

import "errors"

var (
	// ErrBoundaryMismatch is returned when oldFirst and newFirst do not
	// describe the same number of processes.
	ErrBoundaryMismatch = errors.New("partition: old and new boundary arrays disagree on process count")

	// ErrLocalCountMismatch is returned when the caller's local slice does
	// not hold exactly oldFirst[rank+1]-oldFirst[rank] entries.
	ErrLocalCountMismatch = errors.New("partition: local entry count does not match old ownership range")

	// ErrBufferSizeMismatch is returned by Unpack when a received buffer's
	// length does not match what n and dataSize predict -- a framing bug,
	// since buffer sizes are computed structurally (spec 4.H step 3), not
	// carried as a self-describing header.
	ErrBufferSizeMismatch = errors.New("partition: buffer size does not match expected entry count")

	// ErrPartialFamily is returned by Correction when the two ranks'
	// reported ownership does not sum to a full family. spec.md leaves
	// partial-family correction behavior open; this module refuses to
	// guess rather than silently misassigning ownership.
	ErrPartialFamily = errors.New("partition: family ownership counts do not sum to a full family")
)

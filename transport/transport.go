package transport

// Transport is the point-to-point and collective surface partition-given
// redistribution and forest validation need (spec §4.H, §6): Isend/Irecv
// post without suspension, Waitall is the one synchronization barrier, and
// AllreduceOr is the single collective forest.Validate uses to turn any
// rank's local assertion failure into every rank's result.
type Transport interface {
	// Rank returns this process's position in [0, Size).
	Rank() int
	// Size returns the number of ranks in the collective.
	Size() int

	// Isend posts payload to rank to, tagged tag, without blocking.
	// payload must not be modified by the caller until the next Waitall.
	Isend(to, tag int, payload []byte)

	// Irecv posts a receive from rank from, tagged tag, into dst without
	// blocking. dst must not be read by the caller until the next
	// Waitall, after which it holds the received bytes.
	Irecv(from, tag int, dst []byte)

	// Waitall blocks until every Isend/Irecv posted since the last
	// Waitall has completed, returning the first error encountered.
	Waitall() error

	// AllreduceOr is a collective: every rank contributes local, and
	// every rank receives the logical OR across all contributions.
	AllreduceOr(local bool) (bool, error)
}

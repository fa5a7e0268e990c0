package partition

import (
	"github.com/amrforest/forest/internal/xlog"
	"github.com/amrforest/forest/quadrant"
	"github.com/amrforest/forest/transport"
	"go.uber.org/zap"
)

// Tag is the message tag partition-given's point-to-point traffic carries
// (spec 6: "message tag PARTITION_GIVEN is reserved for 4.H").
const Tag = 42

func intersect(aLo, aHi, bLo, bHi int64) (int64, int64) {
	lo := aLo
	if bLo > lo {
		lo = bLo
	}
	hi := aHi
	if bHi < hi {
		hi = bHi
	}
	if lo >= hi {
		return lo, lo
	}
	return lo, hi
}

// Given redistributes this rank's quadrants to match new global ownership
// boundaries (spec 4.H). local holds this rank's current quadrants,
// concatenated across all of its trees in global Morton order. oldFirst
// and newFirst are the P+1-length prefix-sum boundary arrays every rank
// computes identically (spec 4.H step 1): rank r owns
// [oldFirst[r], oldFirst[r+1]) before the call and
// [newFirst[r], newFirst[r+1]) after it.
//
// The returned slice is this rank's new quadrants, in the same global
// order, ready for the caller to bucket by FromTree into its per-tree
// containers and recompute each tree's descendants and offsets (spec 4.H
// step 8) -- that bucketing is left to the caller since it is forest
// bookkeeping, not a partition concern.
func Given(space quadrant.Space, dataSize, rank int, local []Entry, oldFirst, newFirst []int64, tp transport.Transport) ([]Entry, error) {
	p := len(oldFirst) - 1
	if len(newFirst)-1 != p || p <= 0 {
		return nil, ErrBoundaryMismatch
	}
	oldStart, oldEnd := oldFirst[rank], oldFirst[rank+1]
	newStart, newEnd := newFirst[rank], newFirst[rank+1]
	if oldEnd-oldStart != int64(len(local)) {
		return nil, ErrLocalCountMismatch
	}

	type pending struct {
		lo, hi int64
		buf    []byte
	}
	recv := make(map[int]pending, p)

	for j := 0; j < p; j++ {
		if j == rank {
			continue
		}
		sendLo, sendHi := intersect(oldStart, oldEnd, newFirst[j], newFirst[j+1])
		if sendHi > sendLo {
			chunk := local[sendLo-oldStart : sendHi-oldStart]
			tp.Isend(j, Tag, Pack(space, dataSize, chunk))
		}
		recvLo, recvHi := intersect(newStart, newEnd, oldFirst[j], oldFirst[j+1])
		if recvHi > recvLo {
			buf := make([]byte, MessageSize(space, dataSize, int(recvHi-recvLo)))
			tp.Irecv(j, Tag, buf)
			recv[j] = pending{lo: recvLo, hi: recvHi, buf: buf}
		}
	}

	if err := tp.Waitall(); err != nil {
		return nil, err
	}

	out := make([]Entry, 0, newEnd-newStart)
	for j := 0; j < p; j++ {
		if j == rank {
			lo, hi := intersect(newStart, newEnd, oldStart, oldEnd)
			if hi > lo {
				out = append(out, local[lo-oldStart:hi-oldStart]...)
			}
			continue
		}
		r, ok := recv[j]
		if !ok {
			continue
		}
		entries, err := Unpack(space, dataSize, int(r.hi-r.lo), r.buf)
		if err != nil {
			return nil, err
		}
		out = append(out, entries...)
	}
	xlog.L().Debug("partition given done", zap.Int("rank", rank), zap.Int("old_count", len(local)), zap.Int("new_count", len(out)))
	return out, nil
}

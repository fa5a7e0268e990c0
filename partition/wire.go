package partition

import (
	"encoding/binary"

	"github.com/amrforest/forest/quadrant"
)

// Entry is one quadrant and its opaque fixed-size payload, the unit
// partition-given moves between processes.
type Entry struct {
	Quadrant quadrant.Quadrant
	Data     []byte
}

// quadrantWireSize returns the encoded byte length of one quadrant: per
// axis coordinate, a level byte, and FromTree -- no padding, matching spec
// 6's "opaque fixed-size" treatment of the rest of the wire format.
func quadrantWireSize(dim int) int {
	if dim == 3 {
		return 4*3 + 1 + 4
	}
	return 4*2 + 1 + 4
}

// MessageSize returns the exact byte length of a packed message holding n
// entries, computed structurally from n and dataSize so a receiver can
// size its buffer before anything arrives (spec 4.H step 3).
func MessageSize(space quadrant.Space, dataSize, n int) int {
	return n * (quadrantWireSize(space.Dim) + dataSize)
}

func encodeQuadrant(buf []byte, dim int, q quadrant.Quadrant) []byte {
	buf = binary.LittleEndian.AppendUint32(buf, uint32(q.X))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(q.Y))
	if dim == 3 {
		buf = binary.LittleEndian.AppendUint32(buf, uint32(q.Z))
	}
	buf = append(buf, q.Level)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(q.FromTree))
	return buf
}

func decodeQuadrant(buf []byte, dim int) (quadrant.Quadrant, []byte) {
	var q quadrant.Quadrant
	q.X = int32(binary.LittleEndian.Uint32(buf))
	buf = buf[4:]
	q.Y = int32(binary.LittleEndian.Uint32(buf))
	buf = buf[4:]
	if dim == 3 {
		q.Z = int32(binary.LittleEndian.Uint32(buf))
		buf = buf[4:]
	}
	q.Level = buf[0]
	buf = buf[1:]
	q.FromTree = int32(binary.LittleEndian.Uint32(buf))
	buf = buf[4:]
	return q, buf
}

// Pack lays out entries as spec 4.H step 4 describes: quadrants first as a
// flat array, then payloads as a tight dataSize-strided stream.
func Pack(space quadrant.Space, dataSize int, entries []Entry) []byte {
	qsz := quadrantWireSize(space.Dim)
	buf := make([]byte, 0, len(entries)*(qsz+dataSize))
	for _, e := range entries {
		buf = encodeQuadrant(buf, space.Dim, e.Quadrant)
	}
	for _, e := range entries {
		buf = append(buf, e.Data...)
	}
	return buf
}

// Unpack reverses Pack, given the entry count the caller already knows
// from the structural size computation that sized the receive buffer.
func Unpack(space quadrant.Space, dataSize, n int, buf []byte) ([]Entry, error) {
	if len(buf) != MessageSize(space, dataSize, n) {
		return nil, ErrBufferSizeMismatch
	}
	qsz := quadrantWireSize(space.Dim)
	out := make([]Entry, n)
	pos := 0
	for i := 0; i < n; i++ {
		q, _ := decodeQuadrant(buf[pos:pos+qsz], space.Dim)
		out[i].Quadrant = q
		pos += qsz
	}
	for i := 0; i < n; i++ {
		data := make([]byte, dataSize)
		copy(data, buf[pos:pos+dataSize])
		out[i].Data = data
		pos += dataSize
	}
	return out, nil
}

package quadrant

import (
	"encoding/binary"
	"hash/crc32"
)

// Checksum computes the CRC32 (IEEE polynomial, matching the stdlib default
// used throughout this codebase) of the stream formed by concatenating,
// for each quadrant in order, its x, y, (z,) level as big-endian 32-bit
// words. It is used only to validate round trips (spec 4.A, 6) -- never as
// a content hash, so a plain stdlib crc32.Hash is exactly the tool the job
// calls for.
func (s Space) Checksum(quadrants []Quadrant) uint32 {
	h := crc32.NewIEEE()
	var buf [4]byte
	for _, q := range quadrants {
		binary.BigEndian.PutUint32(buf[:], uint32(q.X))
		h.Write(buf[:])
		if s.Dim >= 2 {
			binary.BigEndian.PutUint32(buf[:], uint32(q.Y))
			h.Write(buf[:])
		}
		if s.Dim >= 3 {
			binary.BigEndian.PutUint32(buf[:], uint32(q.Z))
			h.Write(buf[:])
		}
		binary.BigEndian.PutUint32(buf[:], uint32(q.Level))
		h.Write(buf[:])
	}
	return h.Sum32()
}

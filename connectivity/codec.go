package connectivity

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// EncodeTransformTable serializes a Table to CBOR, the way this pack's
// massif control structures are themselves encoded: a small, schema'd
// control-plane blob, distinct from the hand-rolled encoding/binary packer
// the hot-path quadrant wire format uses.
func EncodeTransformTable(t *Table) ([]byte, error) {
	b, err := cbor.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("connectivity: encode transform table: %w", err)
	}
	return b, nil
}

// DecodeTransformTable parses a Table previously written by
// EncodeTransformTable.
func DecodeTransformTable(buf []byte) (*Table, error) {
	var t Table
	if err := cbor.Unmarshal(buf, &t); err != nil {
		return nil, fmt.Errorf("connectivity: decode transform table: %w", err)
	}
	return &t, nil
}

package transport

import "errors"

// ErrRecvSizeMismatch is returned from Waitall when an Irecv's destination
// buffer length does not match the bytes actually sent to it -- a wire
// framing bug upstream, since every partition-given message is packed to
// the exact size the receiver computes for it (partition.MessageSize).
var ErrRecvSizeMismatch = errors.New("transport: received payload size does not match destination buffer")

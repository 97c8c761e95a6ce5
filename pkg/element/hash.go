package element

import "encoding/hex"

// Digest is a 128-bit content hash over an element's payload.
//
// Digests cover the type-specific payload only, never the shared record
// wrapper, and are stable for equal payloads across processes. The engine
// uses them as structural memoization keys.
type Digest [16]byte

// String returns the digest in lowercase hex.
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

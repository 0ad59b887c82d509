package domain

import "fmt"

// Snapshot is a deterministic fingerprint of an ordered tuple of values.
//
// Two snapshots of structurally equal tuples hold the same canonical bytes and
// compare equal with ==, which also makes Snapshot usable as a map key. The
// canonical bytes never contain addresses, so a snapshot computed in one
// process matches the one computed for the same inputs in another.
type Snapshot struct {
	hash      uint64
	canonical string
}

// NewSnapshot creates a Snapshot from its canonical encoding and digest.
func NewSnapshot(canonical []byte, hash uint64) Snapshot {
	return Snapshot{hash: hash, canonical: string(canonical)}
}

// Bytes returns the canonical encoding. It is the persisted form of the snapshot.
func (s Snapshot) Bytes() []byte {
	return []byte(s.canonical)
}

// Hash returns the 64-bit digest of the canonical encoding.
func (s Snapshot) Hash() uint64 {
	return s.hash
}

// IsZero reports whether the snapshot was never computed.
func (s Snapshot) IsZero() bool {
	return s.canonical == ""
}

// Equal reports whether both snapshots describe the same inputs.
func (s Snapshot) Equal(other Snapshot) bool {
	return s == other
}

// String returns the digest in hex.
func (s Snapshot) String() string {
	return fmt.Sprintf("%016x", s.hash)
}

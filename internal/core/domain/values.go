package domain

import (
	"crypto/sha256"
	"encoding/hex"
)

// FilePath is a file system path recorded as a value, for example the location a
// capturing service read from.
type FilePath string

// String returns the path.
func (p FilePath) String() string {
	return string(p)
}

// ContentHash is the SHA-256 digest of some content.
type ContentHash [sha256.Size]byte

// HashContent computes the ContentHash of data.
func HashContent(data []byte) ContentHash {
	return ContentHash(sha256.Sum256(data))
}

// String returns the digest in hex.
func (h ContentHash) String() string {
	return hex.EncodeToString(h[:])
}

// RecordedError is an error value that went through persistence.
// Only the original type name and message survive the round trip.
type RecordedError struct {
	Type    string
	Message string
}

// Error implements the error interface.
func (e *RecordedError) Error() string {
	return e.Message
}

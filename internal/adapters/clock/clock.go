// Package clock provides the time recorded on new cache entries.
package clock

import (
	"time"

	"go.trai.ch/rulecache/internal/core/ports"
)

var (
	_ ports.Clock = (*BuildClock)(nil)
	_ ports.Clock = Fixed{}
)

// BuildClock reports the instant the invocation started, so every entry
// written by one invocation carries the same timestamp.
type BuildClock struct {
	start time.Time
}

// NewBuildClock creates a BuildClock frozen at the current time.
func NewBuildClock() *BuildClock {
	return &BuildClock{start: time.Now().UTC()}
}

// Now returns the start of the invocation.
func (c *BuildClock) Now() time.Time {
	return c.start
}

// Fixed is a Clock that always returns the same instant.
type Fixed struct {
	At time.Time
}

// Now returns f.At.
func (f Fixed) Now() time.Time {
	return f.At
}

// Package policy implements the default cache policy predicate.
package policy

import (
	"time"

	"go.trai.ch/rulecache/internal/core/domain"
	"go.trai.ch/rulecache/internal/core/ports"
)

// Freshness accepts entries younger than the policy's maximum age.
//
// Refresh rejects every entry and wins over Offline, which accepts every
// entry. A negative maximum age never expires. Entries stamped in the future,
// for example by a machine with a skewed clock, count as fresh.
type Freshness[R any] struct {
	clock ports.Clock
}

// NewFreshness creates a Freshness measuring age against clock.
func NewFreshness[R any](clock ports.Clock) *Freshness[R] {
	return &Freshness[R]{clock: clock}
}

// IsValid implements ports.EntryValidator.
func (f *Freshness[R]) IsValid(policy domain.CachePolicy, entry domain.CachedEntry[R]) bool {
	return IsFresh(policy, entry.Timestamp, f.clock.Now())
}

// IsFresh applies policy to an entry written at stamped, as seen at now.
func IsFresh(policy domain.CachePolicy, stamped, now time.Time) bool {
	switch {
	case policy.Refresh:
		return false
	case policy.Offline, policy.MaxAge < 0:
		return true
	default:
		return now.Sub(stamped) <= policy.MaxAge
	}
}

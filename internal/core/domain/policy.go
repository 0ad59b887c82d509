package domain

import "time"

// CachePolicy describes how long cached rule results may be reused.
type CachePolicy struct {
	// MaxAge is how long an entry stays fresh. A negative value never expires.
	MaxAge time.Duration
	// Refresh forces every entry to be treated as stale.
	Refresh bool
	// Offline accepts every entry regardless of its age. Refresh wins over Offline.
	Offline bool
}

// DefaultCachePolicy returns the policy used when nothing is configured.
func DefaultCachePolicy() CachePolicy {
	return CachePolicy{MaxAge: DefaultMaxAge}
}

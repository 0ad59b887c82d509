package ports

import "go.trai.ch/rulecache/internal/core/domain"

// EntryCodec converts cached entries with results of type R to and from their persisted form.
type EntryCodec[R any] interface {
	Encode(entry domain.CachedEntry[R]) ([]byte, error)
	Decode(data []byte) (domain.CachedEntry[R], error)
}

// EntryValidator is the cache policy predicate: it decides whether a stored
// entry may still be reused under policy.
type EntryValidator[R any] interface {
	IsValid(policy domain.CachePolicy, entry domain.CachedEntry[R]) bool
}

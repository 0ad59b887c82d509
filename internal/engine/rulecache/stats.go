package rulecache

import "sync/atomic"

// Outcome describes how one execution was served.
type Outcome string

const (
	// OutcomeHit means a stored result was valid and returned.
	OutcomeHit Outcome = "hit"
	// OutcomeMiss means no result was stored and the rule ran.
	OutcomeMiss Outcome = "miss"
	// OutcomeInvalidated means a stored result was rejected and the rule ran.
	OutcomeInvalidated Outcome = "invalidated"
	// OutcomeBypass means the rule is not cacheable and ran without the store.
	OutcomeBypass Outcome = "bypass"
)

// Stats counts executor outcomes since the executor was created.
type Stats struct {
	Hits          int64
	Misses        int64
	Invalidations int64
	Bypassed      int64
	Writes        int64
}

type counters struct {
	hits          atomic.Int64
	misses        atomic.Int64
	invalidations atomic.Int64
	bypassed      atomic.Int64
	writes        atomic.Int64
}

func (c *counters) count(o Outcome) {
	switch o {
	case OutcomeHit:
		c.hits.Add(1)
	case OutcomeMiss:
		c.misses.Add(1)
	case OutcomeInvalidated:
		c.invalidations.Add(1)
	case OutcomeBypass:
		c.bypassed.Add(1)
	}
}

func (c *counters) snapshot() Stats {
	return Stats{
		Hits:          c.hits.Load(),
		Misses:        c.misses.Load(),
		Invalidations: c.invalidations.Load(),
		Bypassed:      c.bypassed.Load(),
		Writes:        c.writes.Load(),
	}
}

package rulecache

import (
	"context"
	"fmt"
	"time"

	"go.trai.ch/rulecache/internal/core/domain"
	"go.trai.ch/rulecache/internal/core/ports"
	"go.trai.ch/rulecache/internal/engine/capture"
	"go.trai.ch/zerr"
)

// Dependencies are the collaborators of an Executor.
type Dependencies[R any] struct {
	Snapshotter ports.Snapshotter
	Store       ports.EntryStore
	Codec       ports.EntryCodec[R]
	Validator   ports.EntryValidator[R]
	Services    ports.ServiceLocator
	Clock       ports.Clock
	Logger      ports.Logger
	Tracer      ports.Tracer
}

// Executor runs rules for lookup keys of type K, building details of type D
// and caching results of type R in a store shared across processes.
//
// The cache key is the snapshot of the transformed lookup key, the rule
// identity and the rule parameters. A stored result is reused only while the
// validator accepts it and every implicit input it recorded is still up to
// date. Executions are not deduplicated: concurrent callers for the same key
// may all run the rule, and the last write wins.
type Executor[K, D, R any] struct {
	deps      Dependencies[R]
	transform func(K) any
	stats     counters
}

// NewExecutor creates an Executor. transform turns a lookup key into the
// value that is snapshotted; nil snapshots the key itself.
func NewExecutor[K, D, R any](deps Dependencies[R], transform func(K) any) *Executor[K, D, R] {
	if transform == nil {
		transform = func(k K) any { return k }
	}
	return &Executor[K, D, R]{deps: deps, transform: transform}
}

// Execute returns the result of rule for key.
//
// details builds the object the rule fills and extract reads the result from
// it; a false second return from extract means the rule produced no result,
// which is returned as absent and never cached. A nil rule yields an absent
// result. Failures to snapshot, read, decode, run or store surface as errors;
// a rejected or stale entry does not, it is replaced by running the rule.
func (e *Executor[K, D, R]) Execute(
	ctx context.Context,
	key K,
	rule *Rule[D],
	extract func(D) (R, bool),
	details func(K) D,
	policy domain.CachePolicy,
) (R, bool, error) {
	var zero R
	if rule == nil {
		return zero, false, nil
	}

	ctx, span := e.deps.Tracer.Start(ctx, "rulecache.execute")
	defer span.End()
	span.SetAttribute("rule", rule.Identity())

	result, ok, outcome, err := e.execute(ctx, key, rule, extract, details, policy)
	span.SetAttribute("outcome", string(outcome))
	if err != nil {
		span.RecordError(err)
		return zero, false, zerr.With(err, "rule", rule.Identity())
	}
	e.stats.count(outcome)
	return result, ok, nil
}

// Stats returns the outcome counters.
func (e *Executor[K, D, R]) Stats() Stats {
	return e.stats.snapshot()
}

func (e *Executor[K, D, R]) execute(
	ctx context.Context,
	key K,
	rule *Rule[D],
	extract func(D) (R, bool),
	details func(K) D,
	policy domain.CachePolicy,
) (R, bool, Outcome, error) {
	var zero R

	if !rule.Cacheable() {
		result, ok, err := e.run(ctx, key, rule, extract, details, nil)
		return result, ok, OutcomeBypass, err
	}

	snapshot, err := e.deps.Snapshotter.Snapshot(e.transform(key), rule.Identity(), rule.Params())
	if err != nil {
		return zero, false, OutcomeMiss, zerr.Wrap(err, domain.ErrSnapshotFailed.Error())
	}

	recorder := capture.NewRecorder()

	outcome := OutcomeMiss
	data, found, err := e.deps.Store.Get(snapshot)
	if err != nil {
		return zero, false, outcome, zerr.With(err, "snapshot", snapshot.String())
	}
	if found {
		entry, err := e.deps.Codec.Decode(data)
		if err != nil {
			return zero, false, outcome, zerr.With(zerr.Wrap(err, domain.ErrCacheEntryUnreadable.Error()), "snapshot", snapshot.String())
		}
		valid, reason := e.validate(ctx, policy, entry)
		if valid {
			return entry.Result, true, OutcomeHit, nil
		}
		e.deps.Logger.Debug(fmt.Sprintf("invalidated %s entry %s: %s", rule.Identity(), snapshot, reason))
		outcome = OutcomeInvalidated
	}

	result, ok, err := e.run(ctx, key, rule, extract, details, recorder)
	if err != nil || !ok {
		return zero, false, outcome, err
	}

	entry := domain.CachedEntry[R]{
		Timestamp: e.deps.Clock.Now(),
		Implicits: recorder.Implicits(),
		Result:    result,
	}
	encoded, err := e.deps.Codec.Encode(entry)
	if err != nil {
		return zero, false, outcome, err
	}
	if err := e.deps.Store.Put(snapshot, encoded); err != nil {
		return zero, false, outcome, zerr.With(err, "snapshot", snapshot.String())
	}
	e.stats.writes.Add(1)
	return result, true, outcome, nil
}

func (e *Executor[K, D, R]) run(
	ctx context.Context,
	key K,
	rule *Rule[D],
	extract func(D) (R, bool),
	details func(K) D,
	recorder *capture.Recorder,
) (R, bool, error) {
	d := details(key)
	if err := rule.action.Execute(ctx, d, capture.NewServices(e.deps.Services, recorder)); err != nil {
		var zero R
		return zero, false, zerr.Wrap(err, domain.ErrRuleExecutionFailed.Error())
	}
	result, ok := extract(d)
	return result, ok, nil
}

func (e *Executor[K, D, R]) validate(ctx context.Context, policy domain.CachePolicy, entry domain.CachedEntry[R]) (bool, string) {
	if !e.deps.Validator.IsValid(policy, entry) {
		return false, fmt.Sprintf("policy rejects entry written at %s", entry.Timestamp.Format(time.RFC3339))
	}
	return capture.UpToDate(ctx, e.deps.Services, entry.Implicits)
}

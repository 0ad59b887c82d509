package app

import (
	"context"
	"encoding/json"
	"fmt"
	"runtime"
	"strings"

	"go.trai.ch/rulecache/internal/adapters/codec"
	"go.trai.ch/rulecache/internal/adapters/policy"
	"go.trai.ch/rulecache/internal/adapters/repository"
	"go.trai.ch/rulecache/internal/core/domain"
	"go.trai.ch/rulecache/internal/engine/capture"
	"go.trai.ch/rulecache/internal/engine/rulecache"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// ResolveOptions configuration for the Resolve method.
type ResolveOptions struct {
	// Refresh treats every cached listing as stale.
	Refresh bool
	// Offline reuses every cached listing regardless of age and never asks
	// the repository whether a recorded listing changed.
	Offline bool
	// JSON prints the result as a JSON array.
	JSON bool
}

// Resolution is the outcome of resolving one coordinate.
type Resolution struct {
	Coordinate string   `json:"coordinate"`
	Versions   []string `json:"versions"`
}

// Resolve lists the available versions of each coordinate, reusing listings
// cached by earlier runs.
func (a *App) Resolve(ctx context.Context, coordinates []string, opts ResolveOptions) error {
	if len(coordinates) == 0 {
		return domain.ErrNoTargetsSpecified
	}

	coords := make([]domain.Coordinate, len(coordinates))
	for i, s := range coordinates {
		c, err := domain.ParseCoordinate(s)
		if err != nil {
			return err
		}
		coords[i] = c
	}

	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}

	flush := a.setupTracing(ctx)
	defer flush()

	store, closeStore, err := a.openStore(cfg.Store)
	if err != nil {
		return err
	}
	defer closeStore()

	lister, err := a.repositories.New(cfg.Repository)
	if err != nil {
		return err
	}
	service := repository.NewVersionService(lister)
	if opts.Offline {
		service = service.Offline()
	}
	services, err := capture.NewRegistry(service)
	if err != nil {
		return err
	}

	cachePolicy := cfg.Policy
	cachePolicy.Refresh = opts.Refresh
	cachePolicy.Offline = opts.Offline

	executor := rulecache.NewExecutor[domain.Coordinate, *VersionDetails](rulecache.Dependencies[[]string]{
		Snapshotter: a.snapshotter,
		Store:       store,
		Codec:       codec.NewEntryCodec(a.values, codec.Strings()),
		Validator:   policy.NewFreshness[[]string](a.clock),
		Services:    services,
		Clock:       a.clock,
		Logger:      a.logger,
		Tracer:      a.tracer,
	}, coordinateKey)
	rule := NewListVersionsRule()

	results := make([]Resolution, len(coords))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, c := range coords {
		g.Go(func() error {
			versions, _, err := executor.Execute(gctx, c, rule, ExtractVersions, NewVersionDetails, cachePolicy)
			if err != nil {
				return zerr.With(err, "coordinate", c.String())
			}
			results[i] = Resolution{Coordinate: c.String(), Versions: versions}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	s := executor.Stats()
	a.logger.Debug(fmt.Sprintf("resolved %d coordinates: %d hits, %d misses, %d invalidated, %d written",
		len(coords), s.Hits, s.Misses, s.Invalidations, s.Writes))

	return a.printResolutions(results, opts.JSON)
}

func (a *App) printResolutions(results []Resolution, asJSON bool) error {
	if asJSON {
		for i := range results {
			if results[i].Versions == nil {
				results[i].Versions = []string{}
			}
		}
		enc := json.NewEncoder(a.stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	for _, r := range results {
		listing := "(no versions)"
		if len(r.Versions) > 0 {
			listing = strings.Join(r.Versions, ", ")
		}
		if _, err := fmt.Fprintf(a.stdout, "%s: %s\n", r.Coordinate, listing); err != nil {
			return err
		}
	}
	return nil
}

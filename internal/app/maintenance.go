package app

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
)

// Stats prints the content of the configured persistent area.
func (a *App) Stats(_ context.Context) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}

	store, closeStore, err := a.openStore(cfg.Store)
	if err != nil {
		return err
	}
	defer closeStore()

	stats, err := store.Stats()
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(a.stdout, "backend:  %s\nlocation: %s\nentries:  %s\nsize:     %s\n",
		stats.Backend,
		stats.Location,
		humanize.Comma(int64(stats.Entries)),
		humanize.Bytes(uint64(max(stats.Bytes, 0))),
	)
	return err
}

// Clean removes every entry from the configured persistent area.
func (a *App) Clean(_ context.Context) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}

	store, closeStore, err := a.openStore(cfg.Store)
	if err != nil {
		return err
	}
	defer closeStore()

	stats, err := store.Stats()
	if err != nil {
		return err
	}

	a.logger.Info(fmt.Sprintf("removing %s cached rule results from %s...", humanize.Comma(int64(stats.Entries)), stats.Location))
	if err := store.Clear(); err != nil {
		return err
	}
	a.logger.Info("rule cache cleared")
	return nil
}

// Package app implements the application layer for rulecache.
package app

import (
	"context"
	"io"
	"os"

	"go.trai.ch/rulecache/internal/adapters/codec"
	"go.trai.ch/rulecache/internal/adapters/telemetry"
	"go.trai.ch/rulecache/internal/core/domain"
	"go.trai.ch/rulecache/internal/core/ports"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
	stores       ports.StoreFactory
	repositories ports.VersionListerFactory
	snapshotter  ports.Snapshotter
	values       *codec.AnyCodec
	clock        ports.Clock
	tracer       ports.Tracer

	stdout     io.Writer
	stderr     io.Writer
	configPath string
	trace      bool
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	log ports.Logger,
	stores ports.StoreFactory,
	repositories ports.VersionListerFactory,
	snapshotter ports.Snapshotter,
	values *codec.AnyCodec,
	clock ports.Clock,
	tracer ports.Tracer,
) *App {
	return &App{
		configLoader: loader,
		logger:       log,
		stores:       stores,
		repositories: repositories,
		snapshotter:  snapshotter,
		values:       values,
		clock:        clock,
		tracer:       tracer,
		stdout:       os.Stdout,
		stderr:       os.Stderr,
	}
}

// WithOutput redirects command output and trace export.
// This is primarily used for testing.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	return a
}

// GlobalOptions are the settings shared by every command.
type GlobalOptions struct {
	ConfigPath string
	Verbose    bool
	JSONLog    bool
	Trace      bool
}

// logSettings is implemented by loggers whose level and format can change.
type logSettings interface {
	SetVerbose(enable bool)
	SetJSON(enable bool)
}

// Configure applies the global options before a command runs.
func (a *App) Configure(opts GlobalOptions) {
	a.configPath = opts.ConfigPath
	a.trace = opts.Trace

	if l, ok := a.logger.(logSettings); ok {
		l.SetVerbose(opts.Verbose)
		l.SetJSON(opts.JSONLog)
	}
}

func (a *App) loadConfig() (*domain.Config, error) {
	if a.configPath != "" {
		cfg, err := a.configLoader.LoadFile(a.configPath)
		if err != nil {
			return nil, zerr.Wrap(err, "failed to load configuration")
		}
		return cfg, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to determine working directory")
	}

	cfg, err := a.configLoader.Load(cwd)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	return cfg, nil
}

// openStore opens the persistent area named by cfg. The returned function
// closes it and logs a failure to do so.
func (a *App) openStore(cfg domain.StoreConfig) (ports.ManagedStore, func(), error) {
	store, err := a.stores.Open(cfg)
	if err != nil {
		return nil, nil, err
	}
	return store, func() {
		if err := store.Close(); err != nil {
			a.logger.Error(err)
		}
	}, nil
}

// setupTracing routes finished spans to the debug log and, with --trace,
// exports them to stderr.
func (a *App) setupTracing(ctx context.Context) func() {
	opts := telemetry.Options{Logger: a.logger}
	if a.trace {
		opts.Export = a.stderr
	}

	shutdown, err := telemetry.Setup(opts)
	if err != nil {
		a.logger.Warn("tracing disabled: " + err.Error())
		return func() {}
	}
	return func() {
		if err := shutdown(context.WithoutCancel(ctx)); err != nil {
			a.logger.Warn("failed to flush traces: " + err.Error())
		}
	}
}

// Package commands implements the CLI commands for rulecache.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/rulecache/internal/app"
	"go.trai.ch/rulecache/internal/build"
)

// CLI represents the command line interface for rulecache.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Configure(opts app.GlobalOptions)
	Resolve(ctx context.Context, coordinates []string, opts app.ResolveOptions) error
	Stats(ctx context.Context) error
	Clean(ctx context.Context) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "rulecache",
		Short:         "Resolve module versions through a persistent cross-build rule cache",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	// Persistent flags come before the version flag so that -v stays with --verbose.
	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", "", "Path to rulecache.yaml (default: searched upwards from the working directory)")
	flags.BoolP("verbose", "v", false, "Log cache hits, misses and invalidations")
	flags.Bool("json-log", false, "Write logs as JSON")
	flags.Bool("trace", false, "Export trace spans to stderr")

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		configPath, _ := cmd.Flags().GetString("config")
		verbose, _ := cmd.Flags().GetBool("verbose")
		jsonLog, _ := cmd.Flags().GetBool("json-log")
		trace, _ := cmd.Flags().GetBool("trace")

		c.app.Configure(app.GlobalOptions{
			ConfigPath: configPath,
			Verbose:    verbose,
			JSONLog:    jsonLog,
			Trace:      trace,
		})
	}

	rootCmd.AddCommand(c.newResolveCmd())
	rootCmd.AddCommand(c.newStatsCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

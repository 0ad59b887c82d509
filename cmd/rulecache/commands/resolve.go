package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/rulecache/internal/app"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve [group:name[:version]...]",
		Short: "List the available versions of modules",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Help()
				return nil
			}
			refresh, _ := cmd.Flags().GetBool("refresh")
			offline, _ := cmd.Flags().GetBool("offline")
			asJSON, _ := cmd.Flags().GetBool("json")

			return c.app.Resolve(cmd.Context(), args, app.ResolveOptions{
				Refresh: refresh,
				Offline: offline,
				JSON:    asJSON,
			})
		},
	}
	cmd.Flags().BoolP("refresh", "r", false, "Ignore cached listings and ask the repository again")
	cmd.Flags().Bool("offline", false, "Reuse cached listings regardless of their age")
	cmd.Flags().Bool("json", false, "Print the result as JSON")
	cmd.MarkFlagsMutuallyExclusive("refresh", "offline")
	return cmd
}

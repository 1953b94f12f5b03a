package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/pkgsweep/internal/adapters/watcher"
	"go.trai.ch/pkgsweep/internal/app"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [directory]",
		Short: "Sweep now and again after every change to the directory",
		Long: `watch runs a sweep, then watches the directory and sweeps again once it has
been quiet for the debounce period. It requires --confirm=nothing.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			debounce, _ := cmd.Flags().GetDuration("debounce")

			return c.app.Watch(cmd.Context(), app.WatchOptions{
				SweepOptions: sweepOptions(cmd, args),
				Debounce:     debounce,
			})
		},
	}
	cmd.Flags().Duration("debounce", watcher.DefaultDebounceWindow, "Quiet period after the last change before sweeping")
	return cmd
}

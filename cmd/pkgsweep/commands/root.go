// Package commands implements the CLI commands for pkgsweep.
package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/pkgsweep/internal/app"
	"go.trai.ch/pkgsweep/internal/build"
	"go.trai.ch/pkgsweep/internal/core/domain"
)

// CLI represents the command line interface for pkgsweep.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Sweep(ctx context.Context, opts app.SweepOptions) error
	Watch(ctx context.Context, opts app.WatchOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:   "pkgsweep [directory]",
		Short: "Remove package archives superseded by a newer version",
		Long: `pkgsweep scans a directory of <name>-<version>-<release>-<arch>.pkg.tar.<compression>
archives, reports the ones superseded by a strictly newer version of the same
package together with their .sig files, and removes them.

Versions that cannot be ordered are never removed automatically.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Sweep(cmd.Context(), sweepOptions(cmd, args))
		},
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "f", "", "Path to the config file (default $XDG_CONFIG_HOME/pkgsweep/config.yaml)")
	flags.StringP("confirm", "c", "", confirmUsage())
	flags.BoolP("dry-run", "n", false, "Report what would be removed without deleting anything")
	flags.BoolP("verbose", "v", false, "Show debug messages")
	flags.Bool("json", false, "Write log messages as JSON")

	c.rootCmd = rootCmd
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// confirmUsage lists every confirm level with its description.
func confirmUsage() string {
	var b strings.Builder
	fmt.Fprintf(&b, "What to confirm before acting (default %s):", domain.DefaultConfirmLevel)
	for _, level := range domain.ConfirmLevels() {
		fmt.Fprintf(&b, "\n  %-11s  %s", level, level.Description())
	}
	return b.String()
}

// sweepOptions reads the persistent flags shared by all sweeping commands.
func sweepOptions(cmd *cobra.Command, args []string) app.SweepOptions {
	configPath, _ := cmd.Flags().GetString("config")
	confirm, _ := cmd.Flags().GetString("confirm")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	verbose, _ := cmd.Flags().GetBool("verbose")
	jsonLogs, _ := cmd.Flags().GetBool("json")

	opts := app.SweepOptions{
		ConfigPath:   configPath,
		DryRun:       dryRun,
		ConfirmLevel: confirm,
		Verbose:      verbose,
		JSON:         jsonLogs,
	}
	if len(args) > 0 {
		opts.Directory = args[0]
	}
	return opts
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

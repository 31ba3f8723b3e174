package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/vennsets/pkg/buildinfo"
)

// RootCommand creates the root cobra command with all subcommands registered.
//
// --verbose switches the logger to debug level before any subcommand runs;
// the logger is then available to commands via loggerFromContext.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Vennsets draws two-set Venn diagrams",
		Long: `Vennsets applies a set operation (union, intersection, difference,
symmetric difference or cartesian product) to two collections and renders
the result as a labeled Venn diagram.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.verbose {
				c.SetLogLevel(LogDebug)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "config file (.toml, .yaml)")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.historyCommand())
	root.AddCommand(c.operationsCommand())
	root.AddCommand(c.completionCommand())

	return root
}

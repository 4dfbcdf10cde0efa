package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/autoreadme/pkg/buildinfo"
)

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "AutoReadMe - Instant README Generator",
		Long:          `AutoReadMe reads project metadata from package.json and the git origin remote and generates a README.md boilerplate from one of several templates.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup()
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/autoreadme/config.toml)")

	root.AddCommand(c.generateCommand())
	root.AddCommand(c.logsCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

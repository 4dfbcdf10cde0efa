package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/autoreadme/pkg/errors"
	"github.com/matzehuels/autoreadme/pkg/metadata"
	"github.com/matzehuels/autoreadme/pkg/readme"
)

// generateOpts holds the flags of the generate command.
type generateOpts struct {
	dir      string
	template string
	badges   bool
	yes      bool
	debug    bool
	noBanner bool
}

// generateCommand creates the generate command.
func (c *CLI) generateCommand() *cobra.Command {
	var opts generateOpts

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a README.md file",
		Long: `Generate a README.md in the project directory from package.json.

Without --yes the command is interactive: it shows a menu, then asks which
template to use and whether to include badges. With --yes no questions are
asked and --template/--badges (or the config file) decide.

Templates: basic, open-source, cli-tool, api-docs.`,
		Example: `  autoreadme generate
  autoreadme generate --yes --template cli-tool --badges=false
  autoreadme generate --dir ./packages/web`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if !flags.Changed("template") {
				opts.template = c.config.Template
			}
			if !flags.Changed("badges") {
				opts.badges = c.config.Badges
			}
			if !flags.Changed("no-banner") {
				opts.noBanner = !c.config.Banner
			}
			return c.runGenerate(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.dir, "dir", "C", ".", "project directory containing package.json")
	cmd.Flags().StringVarP(&opts.template, "template", "t", string(readme.Basic), "README template (basic|open-source|cli-tool|api-docs)")
	cmd.Flags().BoolVarP(&opts.badges, "badges", "b", true, "include GitHub badges")
	cmd.Flags().BoolVarP(&opts.yes, "yes", "y", false, "non-interactive: skip all prompts")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "print the full resolved metadata")
	cmd.Flags().BoolVar(&opts.noBanner, "no-banner", false, "do not print the banner")

	_ = cmd.RegisterFlagCompletionFunc("template", completeTemplates)

	return cmd
}

func (c *CLI) runGenerate(ctx context.Context, opts generateOpts) error {
	kind, err := readme.ParseKind(opts.template)
	if err != nil {
		printError("%s", errors.UserMessage(err))
		return nil
	}

	dir, err := filepath.Abs(opts.dir)
	if err != nil {
		return fmt.Errorf("resolve directory: %w", err)
	}

	if !opts.noBanner {
		printBanner()
	}

	debug := opts.debug
	if !opts.yes {
		action, err := c.prompt.Menu()
		if err != nil {
			return err
		}
		c.Logger.Debug("menu", "action", action)
		switch action {
		case actionLogs:
			return c.showHistory(ctx)
		case actionExit:
			printInfo("Exiting AutoReadMe.")
			return nil
		case actionDebug:
			debug = true
			printWarning("Debug mode enabled: detailed output below")
		}
	}

	printInfo("Extracting project metadata...")
	prog := newProgress(c.Logger)
	m, err := metadata.NewResolver(c.remotes, c.Logger).Resolve(ctx, dir)
	if err != nil {
		if errors.IsDomain(err) {
			printError("%s", errors.UserMessage(err))
			c.Logger.Debug("metadata resolution failed", "err", err)
			return nil
		}
		return err
	}
	prog.done("metadata resolved", "name", m.Name, "dir", dir)
	c.record(ctx, "Project metadata retrieved for %s", m.Name)

	if debug {
		printMetadata(m)
	} else {
		printSuccess("Project metadata retrieved")
	}

	ropts := readme.Options{Template: kind, Badges: opts.badges}
	if !opts.yes {
		ropts, err = c.prompt.ReadmeOptions(ropts)
		if stderrors.Is(err, errAborted) {
			printInfo("Exiting AutoReadMe.")
			return nil
		}
		if err != nil {
			return err
		}
	}

	printInfo("Generating %s using %q template...", readme.FileName, ropts.Template)
	path, err := readme.Write(dir, m, ropts)
	if err != nil {
		return err
	}
	printSuccess("%s generated", readme.FileName)
	printFile(path)

	c.record(ctx, "README generated using %q template at %s", ropts.Template, time.Now().Format(time.DateTime))
	c.patchGitignore(dir)
	return nil
}

func kindNames() []string {
	kinds := readme.Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return names
}

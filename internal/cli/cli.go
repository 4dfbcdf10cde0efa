// Package cli implements the autoreadme command-line interface.
//
// The generate command resolves project metadata from package.json (and
// the git origin remote), asks which README layout to use and writes
// README.md. Supporting commands show the run history, print the config
// location and generate shell completions.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging through
// charmbracelet/log. User-facing status lines are printed separately with
// the lipgloss styles in ui.go.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/autoreadme/pkg/gitignore"
	"github.com/matzehuels/autoreadme/pkg/gitremote"
	"github.com/matzehuels/autoreadme/pkg/history"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "autoreadme"

	// gitignoreComment precedes the history directory in .gitignore.
	gitignoreComment = "AutoReadMe logs"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	config     Config
	verbose    bool

	history history.Store
	remotes gitremote.Lookup
	prompt  prompter
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger:  newLogger(w, level),
		config:  DefaultConfig(),
		remotes: gitremote.New(),
		prompt:  terminalPrompter{},
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
	c.Logger.SetReportTimestamp(level <= log.DebugLevel)
}

// setup loads the config file and opens the history store. It runs before
// every command.
func (c *CLI) setup() error {
	if c.verbose {
		c.SetLogLevel(LogDebug)
	}

	path := c.configPath
	if path == "" {
		p, err := configPath()
		if err != nil {
			c.Logger.Debug("no config location", "err", err)
		}
		path = p
	}
	if path != "" {
		cfg, err := LoadConfig(path)
		if err != nil {
			return err
		}
		c.config = cfg
		c.Logger.Debug("config loaded", "path", path)
	}

	if c.history == nil {
		c.history = c.openHistory()
	}
	return nil
}

func (c *CLI) openHistory() history.Store {
	if !c.config.History {
		return history.NewNullStore()
	}
	store, err := history.NewFileStore(c.config.HistoryDir)
	if err != nil {
		c.Logger.Warn("history disabled", "err", err)
		return history.NewNullStore()
	}
	return store
}

// record appends a history entry. Failures are only logged.
func (c *CLI) record(ctx context.Context, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if _, err := c.history.Append(ctx, msg); err != nil {
		c.Logger.Warn("could not write history", "err", err)
	}
}

// patchGitignore lists the history directory in <dir>/.gitignore.
func (c *CLI) patchGitignore(dir string) {
	store, ok := c.history.(*history.FileStore)
	if !ok || !c.config.PatchGitignore {
		return
	}
	changed, err := gitignore.EnsureEntry(dir, gitignoreComment, store.Dir())
	if err != nil {
		printWarning("Could not modify %s", gitignore.FileName)
		c.Logger.Debug("gitignore update failed", "err", err)
		return
	}
	if changed {
		c.Logger.Debug("history directory added to .gitignore", "dir", dir)
	}
}

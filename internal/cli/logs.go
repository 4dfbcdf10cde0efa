package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// logsCommand creates the command that shows the run history.
func (c *CLI) logsCommand() *cobra.Command {
	var clearAll bool

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Show the AutoReadMe log history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if clearAll {
				if err := c.history.Clear(cmd.Context()); err != nil {
					return fmt.Errorf("clear history: %w", err)
				}
				printSuccess("Log history cleared")
				return nil
			}
			return c.showHistory(cmd.Context())
		},
	}

	cmd.Flags().BoolVar(&clearAll, "clear", false, "delete all history entries")
	return cmd
}

// showHistory prints every history entry, oldest first.
func (c *CLI) showHistory(ctx context.Context) error {
	entries, err := c.history.List(ctx)
	if err != nil {
		return fmt.Errorf("read history: %w", err)
	}

	fmt.Println(StyleTitle.Render("AutoReadMe Log History"))
	if len(entries) == 0 {
		printWarning("No logs available yet.")
		return nil
	}
	for i, e := range entries {
		printEntry(i+1, e.Time.Local().Format(time.DateTime), e.Message)
	}
	printDetail("%d entries", len(entries))
	return nil
}

// Command autoreadme generates a README.md for a Node.js project from its
// package.json and git origin remote.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/matzehuels/autoreadme/internal/cli"
	"github.com/matzehuels/autoreadme/pkg/errors"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx)
	stop()
	os.Exit(code)
}

// run executes the root command and maps its error to a process exit code.
func run(ctx context.Context) int {
	c := cli.New(os.Stderr, cli.LogInfo)
	err := c.RootCommand().ExecuteContext(ctx)
	switch {
	case err == nil:
		return 0
	case ctx.Err() != nil:
		return 130 // interrupted
	case errors.GetCode(err) != "":
		fmt.Fprintf(os.Stderr, "%s [%s]\n", errors.UserMessage(err), errors.GetCode(err))
	default:
		fmt.Fprintln(os.Stderr, err)
	}
	return 1
}

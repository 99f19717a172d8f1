package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/matzehuels/dancelinks/internal/cli"
	"github.com/matzehuels/dancelinks/pkg/errors"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}

// run executes the command line args and returns the process exit code.
// The usage line goes to stdout; every other failure goes to stderr.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	c := cli.New(stderr, cli.LogInfo)
	c.Out = stdout
	c.RegisterHooks()

	if args == nil {
		args = []string{}
	}
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	switch {
	case err == nil:
		return 0
	case stderrors.Is(err, context.Canceled):
		return 130 // Standard shell convention for SIGINT
	}

	switch errors.GetCode(err) {
	case errors.ErrCodeUsage:
		fmt.Fprintln(stdout, errors.UserMessage(err))
	default:
		fmt.Fprintln(stderr, err)
	}
	return 1
}

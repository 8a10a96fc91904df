package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand(os.Stdout).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "urban: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func newRootCommand(out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "urban",
		Short:         "Look up slang definitions on Urban Dictionary",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)

	flags := root.PersistentFlags()
	flags.StringP("output", "o", "text", "output format: text, json or yaml")
	flags.String("log-level", "warn", "log level: debug, info, warn or error")
	flags.String("base-url", "", "override the API base URL")
	flags.Int64("timeout", 15, "request timeout in seconds (0 disables it)")
	flags.Bool("no-color", false, "disable colored output")

	root.AddCommand(
		newDefineCommand(),
		newRandomCommand(),
		newDefIDCommand(),
		newTooltipCommand(),
	)
	return root
}

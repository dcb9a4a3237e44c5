// Command scheduled is the CLI entry point for the DSSR-driven scheduler,
// rebuilt on cobra subcommands (solve, rank, multi-day, sweep, batch, watch)
// in place of the teacher's hand-rolled flag.NewFlagSet switch in
// cmd/cli/main.go — the idiomatic way a CLI with this many independent
// subcommands is built elsewhere in the retrieval pack (mihai-snyk-descheduler's
// go.mod pulls in spf13/cobra + spf13/pflag for the same reason).
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := newRootCmd()
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "scheduled",
		Short:         "Solve a utility-maximizing daily EV activity schedule",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(
		newSolveCmd(),
		newRankCmd(),
		newMultiDayCmd(),
		newSweepCmd(),
		newBatchCmd(),
		newWatchCmd(),
	)
	return root
}

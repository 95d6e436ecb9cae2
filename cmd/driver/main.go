// Replay a question/answer transcript against a process speaking the index
// protocol on stdin/stdout.
// Usage: go run ./cmd/driver <transcript> <command> [args...]
// Example: go run ./cmd/driver testdata/basic.txt go run .
package main

import (
	"BPlusIndex/driver"
	"BPlusIndex/logging"
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
)

func main() {
	var (
		timeout  time.Duration
		logLevel string
	)
	cmd := &cobra.Command{
		Use:           "driver <transcript> <command> [args...]",
		Short:         "replay a transcript against an index process and diff its answers",
		Args:          cobra.MinimumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := logging.New(logLevel, os.Stderr)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}
			d := &driver.Driver{Out: os.Stdout, Log: log}
			return d.Run(ctx, args[0], args[1:])
		},
	}
	// everything after the transcript belongs to the child command
	cmd.Flags().SetInterspersed(false)
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "abort the run after this long, 0 means no limit")
	cmd.Flags().StringVar(&logLevel, "log-level", "warn", "logrus level written to stderr")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

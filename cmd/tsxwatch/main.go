package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"tsxwatch/internal/cli"
)

func main() {
	// The interrupt signal cancels the command context, which the watch
	// loop turns into a graceful stop.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"statustable/internal/cli"
)

func main() {
	// Cancel on interrupt so blocking loads and the UI can stop cleanly
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

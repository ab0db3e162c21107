// Command gitkit inspects git objects, statistics and configuration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/act3-ai/gitkit/cmd/gitkit/cli"
)

// set with -ldflags "-X main.version=..."
var version = "devel"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := cli.NewCLI(version).ExecuteContext(ctx); err != nil {
		cancel()
		os.Exit(1)
	}
}

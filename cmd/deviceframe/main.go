// Command deviceframe frames screenshots in device mockups.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gogpu/deviceframe/internal/cli"
)

var version = "dev"

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		cancel()

		// Force exit on second signal
		<-sigChan
		os.Exit(1)
	}()

	err := cli.Execute(ctx, version)
	cancel()
	if err != nil {
		fmt.Fprintln(os.Stderr, "deviceframe:", err)
		os.Exit(1)
	}
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	codesearchcli "codesearch/internal/cli"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := codesearchcli.Run(ctx, os.Args, codesearchcli.DefaultDependencies(version))
	stop()

	if err == nil {
		return
	}
	if exitErr, ok := err.(cli.ExitCoder); ok {
		if msg := exitErr.Error(); msg != "" {
			fmt.Fprintf(os.Stderr, "codesearch: %s\n", msg)
		}
		os.Exit(exitErr.ExitCode())
	}
	fmt.Fprintf(os.Stderr, "codesearch: %v\n", err)
	os.Exit(1)
}

// Package main is the entry point for the apiforge CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/apiforge/cli/internal/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cmd.Execute(ctx, os.Args[1:])
	stop()
	os.Exit(code)
}

// Package main provides the learn-thai CLI process entrypoint.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/jozefcuryllo/learn-thai/internal/app"
)

// main wires process signal handling to the application runner.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	r := app.Runner{Stdout: os.Stdout, Stderr: os.Stderr}
	os.Exit(r.Execute(ctx, os.Args[1:]))
}

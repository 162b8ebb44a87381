// Package main provides thai-random, which prints one random Thai letter and plays it.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/jozefcuryllo/learn-thai/internal/app"
)

// main ignores its arguments; it always runs the random command with default config resolution.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(app.Execute(ctx, []string{"random"}, os.Stdout, os.Stderr))
}

package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/tiwariParth/go-records-cli/internal/argdemo"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cmd := argdemo.NewCommand()
	if err := cmd.Run(ctx, os.Args); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

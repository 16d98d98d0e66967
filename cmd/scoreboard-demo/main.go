package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
)

func main() {
	ctx := context.Background()
	app, err := BuildApp(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize app: %v\n", err)
		os.Exit(1)
	}
	defer app.Service.Close()

	slog.Info("starting scoreboard demo",
		"environment", app.Config.Environment,
		"profile", app.Config.Profile,
		"dispatch_mode", app.Config.Board.DispatchMode,
		"roster_size", len(app.Roster))

	if err := app.Run(ctx); err != nil {
		slog.Error("demo failed", "error", err)
		os.Exit(1)
	}
}

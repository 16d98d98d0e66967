package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"scoreboard/adapters/jsonfile"
	"scoreboard/config"
	"scoreboard/core"
	"scoreboard/engine"
	"scoreboard/scoreboard"
)

// App aggregates the assembled demo components.
type App struct {
	Config  *config.Config
	Logger  *slog.Logger
	Service *engine.Service
	Roster  []core.Record
}

func provideConfig(_ context.Context) (*config.Config, error) {
	if path := os.Getenv("SCOREBOARD_CONFIG"); path != "" {
		return config.LoadFromFile(path)
	}
	return config.Load()
}

func provideLogger(cfg *config.Config) *slog.Logger {
	var out io.Writer = os.Stdout
	if cfg.Logging.Output == "stderr" {
		out = os.Stderr
	}
	return setupLogging(cfg, out, uuid.NewString())
}

func provideService(cfg *config.Config, logger *slog.Logger) (*engine.Service, error) {
	mode, ok := engine.ParseDispatchMode(cfg.Board.DispatchMode)
	if !ok {
		return nil, fmt.Errorf("unknown dispatch mode: %s", cfg.Board.DispatchMode)
	}
	return scoreboard.New(
		scoreboard.WithDispatchMode(mode),
		scoreboard.WithLogger(logger),
	), nil
}

func provideRoster(cfg *config.Config) ([]core.Record, error) {
	if cfg.Board.SeedFile == "" {
		return defaultRoster(), nil
	}
	return jsonfile.LoadRoster(cfg.Board.SeedFile)
}

// defaultRoster is the ten-player board seeded when no file is configured.
func defaultRoster() []core.Record {
	return []core.Record{
		core.NewRecord("Annika", 98),
		core.NewRecord("Erica", 81),
		core.NewRecord("David", 67),
		core.NewRecord("Carter", 1000),
		core.NewRecord("Erin", 50),
		core.NewRecord("Carol", 126),
		core.NewRecord("Bob", 90),
		core.NewRecord("Diane", 77),
		core.NewRecord("Bill", 90),
		core.NewRecord("Lincoln", 72),
	}
}

// setupLogging configures the logger based on configuration.
func setupLogging(cfg *config.Config, out io.Writer, runID string) *slog.Logger {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Logging.Level),
	}

	switch cfg.Logging.Format {
	case "json":
		handler = slog.NewJSONHandler(out, opts)
	default:
		handler = slog.NewTextHandler(out, opts)
	}

	attrs := convertAttributes(cfg.Logging.Attributes)
	attrs = append(attrs, slog.String("run_id", runID))
	handler = handler.WithAttrs(attrs)

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

// parseLogLevel converts string log level to slog.Level.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// convertAttributes converts map[string]string to []slog.Attr.
func convertAttributes(attrs map[string]string) []slog.Attr {
	var result []slog.Attr
	for k, v := range attrs {
		result = append(result, slog.String(k, v))
	}
	return result
}

// Run seeds the board, looks up two players, withdraws four, and logs
// the standings before and after.
func (a *App) Run(ctx context.Context) error {
	for _, r := range a.Roster {
		if _, err := a.Service.Submit(ctx, r.Name, r.Score); err != nil {
			return fmt.Errorf("seed %s: %w", r, err)
		}
	}
	a.logStandings(ctx, "board seeded")

	for _, r := range a.probes() {
		rank, err := a.Service.Lookup(ctx, r)
		if err != nil {
			a.Logger.WarnContext(ctx, "lookup failed", "record", r.String(), "error", err)
			continue
		}
		a.Logger.InfoContext(ctx, "found", "record", r.String(), "rank", rank)
	}

	for _, r := range a.withdrawals() {
		removed, err := a.Service.Withdraw(ctx, r)
		if errors.Is(err, core.ErrNotFound) {
			a.Logger.WarnContext(ctx, "nothing to remove", "record", r.String())
			continue
		}
		if err != nil {
			return err
		}
		a.Logger.InfoContext(ctx, "removed", "record", removed.String())
	}
	a.logStandings(ctx, "board after removals")
	return nil
}

// probes and withdrawals index into the roster; indexes past its end
// are skipped so shorter seed files still run.
func (a *App) probes() []core.Record {
	var out []core.Record
	for _, idx := range []int{4, 2} {
		if idx < len(a.Roster) {
			out = append(out, a.Roster[idx])
		}
	}
	return out
}

func (a *App) withdrawals() []core.Record {
	var out []core.Record
	for _, idx := range []int{0, 7, 4, 3} {
		if idx < len(a.Roster) {
			out = append(out, a.Roster[idx])
		}
	}
	return out
}

func (a *App) logStandings(ctx context.Context, msg string) {
	standings := a.Service.Standings(ctx, a.Config.Board.StandingsLimit)
	rows := make([]string, 0, len(standings))
	for _, r := range standings {
		rows = append(rows, r.String())
	}
	a.Logger.InfoContext(ctx, msg, "size", a.Service.Size(), "standings", rows)
}

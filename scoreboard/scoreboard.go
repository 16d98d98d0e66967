// Package scoreboard assembles a ready-to-use engine.Service.
package scoreboard

import (
	"log/slog"

	"scoreboard/engine"
	"scoreboard/leaderboard"
)

// Option configures the scoreboard service builder.
type Option func(*config)

type config struct {
	board  leaderboard.Board
	mode   engine.DispatchMode
	logger *slog.Logger
}

// WithBoard sets the underlying board.
func WithBoard(b leaderboard.Board) Option { return func(c *config) { c.board = b } }

// WithDispatchMode selects sync or async event dispatch.
func WithDispatchMode(m engine.DispatchMode) Option { return func(c *config) { c.mode = m } }

// WithLogger sets the logger used for operation traces.
func WithLogger(l *slog.Logger) Option { return func(c *config) { c.logger = l } }

// New builds a configured Service. If not provided, defaults are used:
//   - board: an empty leaderboard.OrderedChain
//   - dispatch: async
//   - logger: slog.Default()
func New(opts ...Option) *engine.Service {
	cfg := &config{mode: engine.DispatchAsync}
	for _, o := range opts {
		o(cfg)
	}
	if cfg.board == nil {
		cfg.board = leaderboard.NewOrderedChain()
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}
	return engine.NewService(cfg.board, engine.NewEventBus(cfg.mode), cfg.logger)
}

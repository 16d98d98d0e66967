package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"scoreboard/core"
	"scoreboard/leaderboard"
)

// Service guards a single Board with one mutex and publishes an event
// for every change.
type Service struct {
	mu     sync.Mutex
	board  leaderboard.Board
	bus    Publisher
	logger *slog.Logger
}

func NewService(board leaderboard.Board, bus Publisher, logger *slog.Logger) *Service {
	if board == nil || bus == nil {
		panic("NewService requires non-nil board and bus")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{board: board, bus: bus, logger: logger}
}

// Subscribe convenience method.
func (s *Service) Subscribe(typ core.EventType, handler func(context.Context, core.Event)) func() {
	return s.bus.Subscribe(typ, handler)
}

// Submit records a score for name and returns the stored record.
func (s *Service) Submit(ctx context.Context, name string, score int64) (core.Record, error) {
	normalized, err := core.NormalizeName(name)
	if err != nil {
		return core.Record{}, err
	}
	rec := core.NewRecord(normalized, score)

	s.mu.Lock()
	s.board.InsertSorted(rec)
	rank := s.insertedRankLocked(rec)
	size := s.board.Size()
	s.mu.Unlock()

	s.logger.DebugContext(ctx, "score inserted", "name", rec.Name, "score", rec.Score, "rank", rank, "size", size)
	s.bus.Publish(ctx, core.NewScoreInserted(rec, rank, size))
	return rec, nil
}

// insertedRankLocked returns the position of a record just inserted.
// Ties land after existing equal scores, so rec sits last among every
// record scoring >= rec.Score.
func (s *Service) insertedRankLocked(rec core.Record) int {
	rank := 0
	for _, r := range s.board.TopN(s.board.Size()) {
		if r.Score < rec.Score {
			break
		}
		rank++
	}
	return rank
}

// normalizeTarget applies the same name normalization Submit stores with.
func normalizeTarget(target core.Record) (core.Record, error) {
	name, err := core.NormalizeName(target.Name)
	if err != nil {
		return core.Record{}, err
	}
	return core.NewRecord(name, target.Score), nil
}

// Lookup returns the 1-based rank of the first record equal to target.
func (s *Service) Lookup(_ context.Context, target core.Record) (int, error) {
	target, err := normalizeTarget(target)
	if err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.board.Find(target) == nil {
		return 0, fmt.Errorf("lookup %s: %w", target, core.ErrNotFound)
	}
	rank, _ := s.board.Rank(target)
	return rank, nil
}

// Withdraw deletes the first record equal to target.
func (s *Service) Withdraw(ctx context.Context, target core.Record) (core.Record, error) {
	target, err := normalizeTarget(target)
	if err != nil {
		return core.Record{}, err
	}
	s.mu.Lock()
	rank, _ := s.board.Rank(target)
	removed, ok := s.board.Delete(target)
	size := s.board.Size()
	s.mu.Unlock()

	if !ok {
		return core.Record{}, fmt.Errorf("withdraw %s: %w", target, core.ErrNotFound)
	}
	s.logger.DebugContext(ctx, "score deleted", "name", removed.Name, "score", removed.Score, "rank", rank, "size", size)
	s.bus.Publish(ctx, core.NewScoreDeleted(removed, rank, size))
	return removed, nil
}

// Standings returns the top n records; n <= 0 returns the whole board.
func (s *Service) Standings(_ context.Context, n int) []core.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n <= 0 {
		n = s.board.Size()
	}
	return s.board.TopN(n)
}

// Leader returns the highest-scoring record.
func (s *Service) Leader(_ context.Context) (core.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.board.First()
	if !ok {
		return core.Record{}, core.ErrEmptyBoard
	}
	return r, nil
}

func (s *Service) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.Size()
}

func (s *Service) Close() { s.bus.Close() }

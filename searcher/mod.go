package searcher

import (
	"othello/experiments/metrics"
	"othello/game"
	"time"
)

// Strategy chooses a move for player. Implementations must treat board as
// read-only; the caller hands out a copy anyway.
type Strategy interface {
	FindMove(player game.Player, board *game.Board) game.Square
}

// StrategyFunc adapts a plain function to the Strategy interface.
type StrategyFunc func(player game.Player, board *game.Board) game.Square

func (f StrategyFunc) FindMove(player game.Player, board *game.Board) game.Square {
	return f(player, board)
}

// Metered is implemented by strategies that report metrics of their last search.
type Metered interface {
	LastMetric() metrics.SearchMetric
}

type settings struct {
	goroutines int
	duration   time.Duration
	episodes   int
	cutoff     int
	evaluate   game.Evaluate
	metrics    metrics.Collector
}

type Option func(s *settings)

func newSettings(options []Option) settings {
	s := settings{ // Default values
		goroutines: 1,
		evaluate:   game.Weighted,
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(&s)
	}
	return s
}

// WithGoroutines spreads the root moves of a minimax search over goroutines.
func WithGoroutines(goroutines int) Option {
	return func(s *settings) {
		if goroutines > 0 {
			s.goroutines = goroutines
		}
	}
}

func WithDuration(duration time.Duration) Option {
	return func(s *settings) {
		if duration > 0 {
			s.duration = duration
		}
	}
}

func WithEpisodes(episodes int) Option {
	return func(s *settings) {
		if episodes > 0 {
			s.episodes = episodes
		}
	}
}

// WithCutoff stops MCTS rollouts after depth moves and scores the position
// with the evaluation function instead.
func WithCutoff(depth int) Option {
	return func(s *settings) {
		if depth > 0 {
			s.cutoff = depth
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(s *settings) {
		if evaluate != nil {
			s.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(s *settings) {
		s.metrics = metrics.NewCollector()
	}
}

package searcher

import (
	"time"

	"quoridor/experiments/metrics"
	"quoridor/game"
)

type Option func(m *MCTS)

// WithEpisodes bounds the search by a number of iterations.
func WithEpisodes(episodes int) Option {
	return func(m *MCTS) {
		if episodes > 0 {
			m.episodes = episodes
		}
	}
}

// WithDuration bounds the search by wall-clock time. Combined with
// WithEpisodes, whichever runs out first stops the search.
func WithDuration(duration time.Duration) Option {
	return func(m *MCTS) {
		if duration > 0 {
			m.duration = duration
		}
	}
}

// WithCutoff caps the number of plies per rollout.
func WithCutoff(depth int) Option {
	return func(m *MCTS) {
		if depth > 0 {
			m.cutoff = depth
		}
	}
}

func WithGoroutines(goroutines int) Option {
	return func(m *MCTS) {
		if goroutines > 0 {
			m.goroutines = goroutines
		}
	}
}

func WithExploration(c float64) Option {
	return func(m *MCTS) {
		if c >= 0 {
			m.exploration = c
		}
	}
}

// WithWallProbability sets how often a rollout places a wall when the mover
// is ahead.
func WithWallProbability(p float64) Option {
	return func(m *MCTS) {
		if p >= 0 && p <= 1 {
			m.wallProbability = p
		}
	}
}

// WithWallMargin lets expansion consider walls while up to margin steps
// behind the opponent.
func WithWallMargin(margin int) Option {
	return func(m *MCTS) {
		m.wallMargin = margin
	}
}

func WithSeed(seed uint64) Option {
	return func(m *MCTS) {
		m.seed = seed
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(m *MCTS) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = metrics.NewCollector()
	}
}

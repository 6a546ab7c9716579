package agent

import (
	"context"

	"quoridor/experiments/metrics"
	"quoridor/game"
)

type Agent interface {
	// FindMove returns the chosen action and performance metrics (if collected) from the simulation process
	FindMove(ctx context.Context, state game.State, player game.Player) (game.Action, metrics.SearchMetric, error)
}

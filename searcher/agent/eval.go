package agent

import (
	"context"

	"quoridor/experiments/metrics"
	"quoridor/game"
	"quoridor/searcher"
)

type evaluationAgent struct {
	mcts *searcher.MCTS
}

// NewEvaluationAgent returns a new agent for actual game play during evaluation.
func NewEvaluationAgent(mcts *searcher.MCTS) Agent {
	return evaluationAgent{mcts: mcts}
}

func (a evaluationAgent) FindMove(ctx context.Context, state game.State, player game.Player) (game.Action, metrics.SearchMetric, error) {
	policy, metric, err := a.mcts.Simulate(ctx, state, player)
	if err != nil {
		return game.Action{}, metric, err
	}
	return findMax(policy), metric, nil
}

func findMax(policy searcher.Policy) game.Action {
	action, _ := policy.Best()
	return action
}

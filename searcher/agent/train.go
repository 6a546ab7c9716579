package agent

import (
	"context"
	"math"

	"quoridor/experiments/metrics"
	"quoridor/game"
	"quoridor/searcher"

	"golang.org/x/exp/rand"
)

type trainingAgent struct {
	mcts        *searcher.MCTS
	temperature float64
	rng         *rand.Rand
}

// NewTrainingAgent returns an agent that samples root moves in proportion to
// their visit counts, sharpened or flattened by temperature. It varies the
// play of self-play games while still taking immediate wins.
func NewTrainingAgent(mcts *searcher.MCTS, temperature float64, seed uint64) Agent {
	if temperature <= 0 {
		temperature = 1.0
	}
	return &trainingAgent{
		mcts:        mcts,
		temperature: temperature,
		rng:         rand.New(rand.NewSource(seed)),
	}
}

func (a *trainingAgent) FindMove(ctx context.Context, state game.State, player game.Player) (game.Action, metrics.SearchMetric, error) {
	policy, metric, err := a.mcts.Simulate(ctx, state, player)
	if err != nil {
		return game.Action{}, metric, err
	}
	for _, edge := range policy {
		if edge.Decisive {
			return edge.Action, metric, nil
		}
	}
	return sample(adjustTemperature(policy, a.temperature), a.rng.Float64()), metric, nil
}

type weighted struct {
	action game.Action
	prob   float64
}

func adjustTemperature(policy searcher.Policy, temperature float64) []weighted {
	// Compute temperature-adjusted move probabilities
	exponent := 1.0 / temperature
	sum := 0.0
	adjusted := make([]weighted, len(policy))
	for i, edge := range policy {
		prob := math.Pow(float64(edge.Visits), exponent)
		sum += prob
		adjusted[i] = weighted{action: edge.Action, prob: prob}
	}
	if sum == 0 {
		// Nothing was visited: fall back to a uniform choice
		for i := range adjusted {
			adjusted[i].prob = 1.0 / float64(len(adjusted))
		}
		return adjusted
	}
	// Normalize
	for i := range adjusted {
		adjusted[i].prob /= sum
	}
	return adjusted
}

func sample(policy []weighted, sampled float64) game.Action {
	cumulative := 0.0
	var lastAction game.Action
	for _, w := range policy {
		lastAction = w.action
		cumulative += w.prob
		if sampled < cumulative {
			return w.action
		}
	}
	return lastAction // Fallback in case of rounding errors
}

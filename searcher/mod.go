package searcher

import (
	"errors"

	"quoridor/game"
)

// ErrEmptyFrontier is returned when the search ends without a single root
// child to choose from: no budget, a finished position, or no legal action.
var ErrEmptyFrontier = errors.New("search produced no candidate moves")

// Edge summarizes one root child after a search.
type Edge struct {
	Action   game.Action
	Visits   int
	Rewards  float64
	Decisive bool // playing Action wins the game on the spot
}

func (e Edge) Mean() float64 {
	if e.Visits == 0 {
		return 0
	}
	return e.Rewards / float64(e.Visits)
}

// Policy lists the root edges in expansion order.
type Policy []Edge

// Best returns a decisive edge if there is one, otherwise the most visited
// edge. Ties go to the earliest edge.
func (p Policy) Best() (game.Action, bool) {
	if len(p) == 0 {
		return game.Action{}, false
	}

	best := 0
	for i, edge := range p {
		if edge.Decisive {
			return edge.Action, true
		}
		if edge.Visits > p[best].Visits {
			best = i
		}
	}
	return p[best].Action, true
}

// merge folds root edges from several trees into one policy keyed by action,
// keeping the order in which actions were first seen.
func merge(policies ...Policy) Policy {
	merged := Policy{}
	index := make(map[game.Action]int)
	for _, policy := range policies {
		for _, edge := range policy {
			i, ok := index[edge.Action]
			if !ok {
				index[edge.Action] = len(merged)
				merged = append(merged, edge)
				continue
			}
			merged[i].Visits += edge.Visits
			merged[i].Rewards += edge.Rewards
			merged[i].Decisive = merged[i].Decisive || edge.Decisive
		}
	}
	return merged
}

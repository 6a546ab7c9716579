package searcher

import (
	"slices"

	"quoridor/game"

	"golang.org/x/exp/rand"
)

// chooseRollout picks the action played by player at one rollout ply. A
// player strictly ahead places a random wall candidate with probability
// wallProbability; otherwise the pawn advances along its shortest path.
func chooseRollout(state game.State, player game.Player, rng *rand.Rand, wallProbability float64, wallMargin int) (game.Action, bool) {
	own, err := state.ShortestPath(player)
	if err != nil {
		return randomMove(state, player, rng)
	}

	other, err := state.ShortestPath(player.Opponent())
	if err == nil && len(own) < len(other) && rng.Float64() < wallProbability {
		if walls := wallCandidates(state, player, wallMargin); len(walls) > 0 {
			return walls[rng.Intn(len(walls))], true
		}
	}

	return advance(state, player, own, rng)
}

// advance steps onto the first cell of path. When the opponent stands there,
// a jump landing on the second cell is taken instead; failing both, any legal
// pawn move will do.
func advance(state game.State, player game.Player, path []game.Cell, rng *rand.Rand) (game.Action, bool) {
	moves := state.LegalPawnMoves(player)
	if len(moves) == 0 {
		return game.Action{}, false
	}

	for _, cell := range path[:min(len(path), 2)] {
		if step := game.Move(cell.Row, cell.Col); slices.Contains(moves, step) {
			return step, true
		}
	}

	return moves[rng.Intn(len(moves))], true
}

func randomMove(state game.State, player game.Player, rng *rand.Rand) (game.Action, bool) {
	moves := state.LegalPawnMoves(player)
	if len(moves) == 0 {
		return game.Action{}, false
	}
	return moves[rng.Intn(len(moves))], true
}

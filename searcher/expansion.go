package searcher

import (
	"slices"

	"quoridor/game"
)

// GenerateActions proposes the moves worth branching on: every legal pawn
// move, followed by the walls that cut the opponent's shortest path. Walls
// are only proposed while the player is no more than wallMargin steps behind
// the opponent; with the default margin of 0 that means ahead or tied.
func GenerateActions(state game.State, player game.Player, wallMargin int) []game.Action {
	moves := state.LegalPawnMoves(player)
	return slices.Concat(moves, wallCandidates(state, player, wallMargin))
}

// wallCandidates falls back to no walls when either path is missing.
func wallCandidates(state game.State, player game.Player, wallMargin int) []game.Action {
	own, err := state.ShortestPath(player)
	if err != nil {
		return nil
	}
	opponent := player.Opponent()
	other, err := state.ShortestPath(opponent)
	if err != nil {
		return nil
	}
	if len(own) > len(other)+wallMargin {
		return nil
	}

	path := append([]game.Cell{state.Pawn(opponent)}, other...)
	return state.LegalWallsNear(path, player)
}

package game

import (
	"fmt"

	"quoridor/utils"
)

// LegalPawnMoves lists the cells the player's pawn can reach this turn,
// including straight jumps over the opponent and diagonal side-steps when the
// jump is blocked.
func (b *Board) LegalPawnMoves(player Player) []Action {
	if b.IsTerminal() {
		return nil
	}

	pos := b.Pawns[player]
	opp := b.Pawns[player.Opponent()]
	moves := make([]Action, 0, 5)

	for _, d := range directions {
		next := pos.add(d[0], d[1])
		if !b.inBounds(next) || b.blocked(pos, next) {
			continue
		}
		if next != opp {
			moves = append(moves, Move(next.Row, next.Col))
			continue
		}

		jump := opp.add(d[0], d[1])
		if b.inBounds(jump) && !b.blocked(opp, jump) {
			moves = append(moves, Move(jump.Row, jump.Col))
			continue
		}

		// Straight jump is blocked, side-step around the opponent instead
		for _, side := range [2][2]int{{d[1], d[0]}, {-d[1], -d[0]}} {
			step := opp.add(side[0], side[1])
			if b.inBounds(step) && !b.blocked(opp, step) {
				moves = append(moves, Move(step.Row, step.Col))
			}
		}
	}

	return moves
}

// LegalWalls enumerates every wall the player may place.
func (b *Board) LegalWalls(player Player) []Action {
	if b.WallsLeft[player] <= 0 || b.IsTerminal() {
		return nil
	}

	walls := []Action{}
	for row := 0; row < b.Size-1; row++ {
		for col := 0; col < b.Size-1; col++ {
			for _, o := range []Orientation{Horizontal, Vertical} {
				if b.canPlaceWall(player, o, row, col) {
					walls = append(walls, PlaceWall(o, row, col))
				}
			}
		}
	}
	return walls
}

// LegalWallsNear returns the legal walls that would cut one of the steps
// along path. The path is read as a sequence of adjacent cells; callers
// usually prepend the pawn position to a ShortestPath result.
func (b *Board) LegalWallsNear(path []Cell, player Player) []Action {
	if b.WallsLeft[player] <= 0 || b.IsTerminal() {
		return nil
	}

	seen := make(map[Action]bool)
	walls := []Action{}
	consider := func(w Action) {
		if seen[w] {
			return
		}
		seen[w] = true
		if b.canPlaceWall(player, w.Orientation, w.Row, w.Col) {
			walls = append(walls, w)
		}
	}

	for i := 1; i < len(path); i++ {
		from, to := path[i-1], path[i]
		switch {
		case from.Col == to.Col && abs(from.Row-to.Row) == 1:
			row := min(from.Row, to.Row)
			consider(PlaceWall(Horizontal, row, from.Col-1))
			consider(PlaceWall(Horizontal, row, from.Col))
		case from.Row == to.Row && abs(from.Col-to.Col) == 1:
			col := min(from.Col, to.Col)
			consider(PlaceWall(Vertical, from.Row-1, col))
			consider(PlaceWall(Vertical, from.Row, col))
		}
	}

	return walls
}

// LegalActions is the full action set: pawn moves followed by walls.
func (b *Board) LegalActions(player Player) []Action {
	return append(b.LegalPawnMoves(player), b.LegalWalls(player)...)
}

// canPlaceWall checks bounds, wall budget, overlap and crossing, and that
// both players keep a path to their goal.
func (b *Board) canPlaceWall(player Player, o Orientation, row, col int) bool {
	if b.WallsLeft[player] <= 0 {
		return false
	}
	i, ok := b.corridor(row, col)
	if !ok {
		return false
	}

	trial := b.Copy()
	switch o {
	case Horizontal:
		if b.HWalls[i] || b.VWalls[i] || b.hasHWall(row, col-1) || b.hasHWall(row, col+1) {
			return false
		}
		trial.HWalls[i] = true
	case Vertical:
		if b.VWalls[i] || b.HWalls[i] || b.hasVWall(row-1, col) || b.hasVWall(row+1, col) {
			return false
		}
		trial.VWalls[i] = true
	default:
		return false
	}

	return trial.hasPath(Player1) && trial.hasPath(Player2)
}

// Apply plays the action for player on a copy of the board.
func (b *Board) Apply(action Action, player Player) (State, error) {
	if b.IsTerminal() {
		return nil, fmt.Errorf("%w: %v by %v on a finished game", ErrIllegalAction, action, player)
	}

	next := b.Copy()
	switch action.Kind {
	case MoveAction:
		if utils.FindIndex(b.LegalPawnMoves(player), action) < 0 {
			return nil, fmt.Errorf("%w: %v by %v", ErrIllegalAction, action, player)
		}
		next.Pawns[player] = action.Cell()
	case WallAction:
		if !b.canPlaceWall(player, action.Orientation, action.Row, action.Col) {
			return nil, fmt.Errorf("%w: %v by %v", ErrIllegalAction, action, player)
		}
		i, _ := b.corridor(action.Row, action.Col)
		if action.Orientation == Horizontal {
			next.HWalls[i] = true
		} else {
			next.VWalls[i] = true
		}
		next.WallsLeft[player]--
	default:
		return nil, fmt.Errorf("%w: empty action by %v", ErrIllegalAction, player)
	}

	return next, nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

package game

import "errors"

var (
	// ErrIllegalAction is returned by State.Apply when the action cannot be played.
	ErrIllegalAction = errors.New("illegal action")
	// ErrNoPath is returned by State.ShortestPath when the goal row is unreachable.
	ErrNoPath = errors.New("no path to goal")
)

// State is the board capability set consumed by the searcher. Implementations
// must behave as immutable values: Apply returns a successor and leaves the
// receiver untouched, so states can be shared between a node and its rollouts.
type State interface {
	Clone() State
	Apply(action Action, player Player) (State, error)
	LegalPawnMoves(player Player) []Action
	// LegalWallsNear returns the legal walls for player that cut a step of path
	LegalWallsNear(path []Cell, player Player) []Action
	// ShortestPath excludes the pawn's own cell and ends on the goal row
	ShortestPath(player Player) ([]Cell, error)
	Pawn(player Player) Cell
	IsTerminal() bool
	Score(player Player) float64
}

// Evaluate scores a (possibly non-terminal) state from the perspective of the
// given player. Positive values favor that player.
type Evaluate func(state State, perspective Player) float64

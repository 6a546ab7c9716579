package game

import "fmt"

// ActionKind tags the variant held by an Action.
type ActionKind uint8

const (
	NoAction ActionKind = iota // zero value, e.g. the action leading to a root node
	MoveAction
	WallAction
)

type Orientation uint8

const (
	Horizontal Orientation = iota
	Vertical
)

// Action is either a pawn move to (Row, Col) or a wall placed with its
// top-left corner on the corridor (Row, Col). Orientation is only meaningful
// for walls. Actions are comparable values.
type Action struct {
	Kind        ActionKind
	Orientation Orientation
	Row         int
	Col         int
}

func Move(row, col int) Action {
	return Action{Kind: MoveAction, Row: row, Col: col}
}

func PlaceWall(orientation Orientation, row, col int) Action {
	return Action{Kind: WallAction, Orientation: orientation, Row: row, Col: col}
}

func (a Action) IsZero() bool {
	return a.Kind == NoAction
}

// Cell returns the destination of a move or the anchor corridor of a wall.
func (a Action) Cell() Cell {
	return Cell{Row: a.Row, Col: a.Col}
}

func (a Action) String() string {
	switch a.Kind {
	case MoveAction:
		return fmt.Sprintf("P(%d,%d)", a.Row, a.Col)
	case WallAction:
		if a.Orientation == Horizontal {
			return fmt.Sprintf("WH(%d,%d)", a.Row, a.Col)
		}
		return fmt.Sprintf("WV(%d,%d)", a.Row, a.Col)
	default:
		return "none"
	}
}

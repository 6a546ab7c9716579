package game

import "fmt"

type Player int

const (
	Player1 Player = iota
	Player2
)

func (p Player) Opponent() Player {
	return 1 - p
}

func (p Player) String() string {
	return fmt.Sprintf("Player%d", int(p)+1)
}

// Cell is a square of the board addressed by row and column.
type Cell struct {
	Row int
	Col int
}

func (c Cell) add(dr, dc int) Cell {
	return Cell{Row: c.Row + dr, Col: c.Col + dc}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

package game

import "fmt"

// Board is the reference Quoridor state. Player1 starts on row 0 and races
// to row Size-1, Player2 starts on the last row and races to row 0. Walls are
// two cells long and anchored on the (Size-1)x(Size-1) grid of corridors.
type Board struct {
	Size      int
	Pawns     [2]Cell
	Goals     [2]int
	WallsLeft [2]int
	HWalls    []bool // indexed by corridor row*(Size-1)+col
	VWalls    []bool
}

// NewBoard initializes a board of the given size with pawns in the middle of
// their home rows.
func NewBoard(size, walls int) *Board {
	if size < 3 {
		panic(fmt.Sprintf("board size %d is too small", size))
	}
	mid := size / 2
	return &Board{
		Size:      size,
		Pawns:     [2]Cell{{Row: 0, Col: mid}, {Row: size - 1, Col: mid}},
		Goals:     [2]int{size - 1, 0},
		WallsLeft: [2]int{walls, walls},
		HWalls:    make([]bool, (size-1)*(size-1)),
		VWalls:    make([]bool, (size-1)*(size-1)),
	}
}

// BoardFromPawns is a convenience for setting up positions: pawns are placed
// on the given cells and no walls are on the board.
func BoardFromPawns(size, walls int, p1, p2 Cell) *Board {
	b := NewBoard(size, walls)
	b.Pawns = [2]Cell{p1, p2}
	return b
}

// Copy returns a deep copy of the board.
func (b *Board) Copy() *Board {
	hwalls := make([]bool, len(b.HWalls))
	copy(hwalls, b.HWalls)
	vwalls := make([]bool, len(b.VWalls))
	copy(vwalls, b.VWalls)

	return &Board{
		Size:      b.Size,
		Pawns:     b.Pawns,
		Goals:     b.Goals,
		WallsLeft: b.WallsLeft,
		HWalls:    hwalls,
		VWalls:    vwalls,
	}
}

func (b *Board) Clone() State {
	return b.Copy()
}

func (b *Board) Pawn(player Player) Cell {
	return b.Pawns[player]
}

func (b *Board) IsTerminal() bool {
	_, ok := b.Winner()
	return ok
}

// Winner reports the player whose pawn stands on its goal row, if any.
func (b *Board) Winner() (Player, bool) {
	for _, p := range []Player{Player1, Player2} {
		if b.Pawns[p].Row == b.Goals[p] {
			return p, true
		}
	}
	return 0, false
}

// Score is the shortest path differential from the player's point of view,
// saturated to +/-WinScore once the game is over.
func (b *Board) Score(player Player) float64 {
	if winner, ok := b.Winner(); ok {
		if winner == player {
			return WinScore
		}
		return -WinScore
	}

	own, err := b.PathLength(player)
	if err != nil {
		return 0
	}
	other, err := b.PathLength(player.Opponent())
	if err != nil {
		return 0
	}
	return float64(other - own)
}

// PathLength is the number of steps left for player to reach its goal row.
func (b *Board) PathLength(player Player) (int, error) {
	path, err := b.ShortestPath(player)
	if err != nil {
		return 0, err
	}
	return len(path), nil
}

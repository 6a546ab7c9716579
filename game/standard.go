package game

const (
	StandardSize  = 9
	StandardWalls = 10

	// WinScore is the magnitude Board.Score reports once the game is decided
	WinScore = 1000.0
)

// NewStandardBoard returns the 9x9 opening position with ten walls per player.
func NewStandardBoard() *Board {
	return NewBoard(StandardSize, StandardWalls)
}

package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewStandardBoard(t *testing.T) {
	b := NewStandardBoard()

	require.Equal(t, Cell{Row: 0, Col: 4}, b.Pawn(Player1))
	require.Equal(t, Cell{Row: 8, Col: 4}, b.Pawn(Player2))
	require.Equal(t, [2]int{10, 10}, b.WallsLeft)
	require.False(t, b.IsTerminal(), "Opening position should not be terminal")
	require.Equal(t, 0.0, b.Score(Player1), "Symmetric opening should score even")
}

func TestLegalPawnMoves(t *testing.T) {
	t.Run("opening moves stay on the board", func(t *testing.T) {
		b := NewStandardBoard()

		require.Equal(t, []Action{Move(1, 4), Move(0, 3), Move(0, 5)}, b.LegalPawnMoves(Player1))
	})

	t.Run("straight jump over an adjacent opponent", func(t *testing.T) {
		b := BoardFromPawns(9, 10, Cell{Row: 4, Col: 4}, Cell{Row: 5, Col: 4})

		require.ElementsMatch(t,
			[]Action{Move(3, 4), Move(6, 4), Move(4, 3), Move(4, 5)},
			b.LegalPawnMoves(Player1))
	})

	t.Run("side-steps when the jump is walled off", func(t *testing.T) {
		b := BoardFromPawns(9, 10, Cell{Row: 4, Col: 4}, Cell{Row: 5, Col: 4})
		b.HWalls[5*8+4] = true // behind the opponent

		require.ElementsMatch(t,
			[]Action{Move(3, 4), Move(5, 3), Move(5, 5), Move(4, 3), Move(4, 5)},
			b.LegalPawnMoves(Player1))
	})

	t.Run("walls block steps", func(t *testing.T) {
		b := NewStandardBoard()
		s, err := b.Apply(PlaceWall(Horizontal, 0, 4), Player2)
		require.NoError(t, err)

		require.Equal(t, []Action{Move(0, 3), Move(0, 5)}, s.LegalPawnMoves(Player1))
	})

	t.Run("no moves on a finished game", func(t *testing.T) {
		b := BoardFromPawns(9, 10, Cell{Row: 8, Col: 0}, Cell{Row: 4, Col: 4})

		require.Empty(t, b.LegalPawnMoves(Player2))
	})
}

func TestApply(t *testing.T) {
	t.Run("moving a pawn returns a successor and leaves the original untouched", func(t *testing.T) {
		b := NewStandardBoard()
		before := b.Copy()

		s, err := b.Apply(Move(1, 4), Player1)

		require.NoError(t, err)
		require.Equal(t, Cell{Row: 1, Col: 4}, s.Pawn(Player1))
		require.Equal(t, before, b, "Apply should not mutate the receiver")
	})

	t.Run("placing a wall consumes the budget", func(t *testing.T) {
		b := NewStandardBoard()

		s, err := b.Apply(PlaceWall(Vertical, 3, 3), Player1)

		require.NoError(t, err)
		require.Equal(t, 9, s.(*Board).WallsLeft[Player1])
		require.Equal(t, 10, b.WallsLeft[Player1], "Apply should not mutate the receiver")
	})

	t.Run("rejects unreachable moves", func(t *testing.T) {
		_, err := NewStandardBoard().Apply(Move(5, 5), Player1)
		require.ErrorIs(t, err, ErrIllegalAction)
	})

	t.Run("rejects the empty action", func(t *testing.T) {
		_, err := NewStandardBoard().Apply(Action{}, Player1)
		require.ErrorIs(t, err, ErrIllegalAction)
	})

	t.Run("rejects overlapping and crossing walls", func(t *testing.T) {
		s, err := NewStandardBoard().Apply(PlaceWall(Horizontal, 0, 4), Player2)
		require.NoError(t, err)

		for _, w := range []Action{
			PlaceWall(Horizontal, 0, 4),
			PlaceWall(Horizontal, 0, 3),
			PlaceWall(Horizontal, 0, 5),
			PlaceWall(Vertical, 0, 4),
		} {
			_, err := s.Apply(w, Player1)
			require.ErrorIs(t, err, ErrIllegalAction, "%v should be illegal", w)
		}

		_, err = s.Apply(PlaceWall(Horizontal, 0, 6), Player1)
		require.NoError(t, err)
	})

	t.Run("rejects walls that seal a pawn in", func(t *testing.T) {
		b := BoardFromPawns(5, 10, Cell{Row: 0, Col: 0}, Cell{Row: 4, Col: 4})
		s, err := b.Apply(PlaceWall(Vertical, 0, 0), Player2)
		require.NoError(t, err)

		_, err = s.Apply(PlaceWall(Horizontal, 1, 0), Player2)

		require.ErrorIs(t, err, ErrIllegalAction)
		require.NotContains(t, s.(*Board).LegalWalls(Player2), PlaceWall(Horizontal, 1, 0))
	})

	t.Run("rejects walls without budget", func(t *testing.T) {
		b := NewBoard(9, 0)

		_, err := b.Apply(PlaceWall(Horizontal, 3, 3), Player1)

		require.ErrorIs(t, err, ErrIllegalAction)
		require.Empty(t, b.LegalWalls(Player1))
	})

	t.Run("rejects actions on a finished game", func(t *testing.T) {
		b := BoardFromPawns(9, 10, Cell{Row: 8, Col: 0}, Cell{Row: 4, Col: 4})

		_, err := b.Apply(Move(3, 4), Player2)

		require.ErrorIs(t, err, ErrIllegalAction)
	})
}

func TestLegalWallsNear(t *testing.T) {
	t.Run("walls cutting a straight path", func(t *testing.T) {
		b := NewStandardBoard()
		path, err := b.ShortestPath(Player2)
		require.NoError(t, err)

		walls := b.LegalWallsNear(append([]Cell{b.Pawn(Player2)}, path...), Player1)

		require.Len(t, walls, 16, "Each of the 8 vertical steps can be cut by 2 horizontal walls")
		require.Contains(t, walls, PlaceWall(Horizontal, 7, 3))
		require.Contains(t, walls, PlaceWall(Horizontal, 0, 4))
	})

	t.Run("sideways steps are cut by vertical walls", func(t *testing.T) {
		b := NewStandardBoard()
		path := []Cell{{Row: 4, Col: 2}, {Row: 4, Col: 3}}

		walls := b.LegalWallsNear(path, Player1)

		require.Equal(t, []Action{PlaceWall(Vertical, 3, 2), PlaceWall(Vertical, 4, 2)}, walls)
	})

	t.Run("empty without walls left", func(t *testing.T) {
		b := NewStandardBoard()
		b.WallsLeft[Player1] = 0
		path, err := b.ShortestPath(Player2)
		require.NoError(t, err)

		require.Empty(t, b.LegalWallsNear(append([]Cell{b.Pawn(Player2)}, path...), Player1))
	})

	t.Run("skips walls that are already blocked", func(t *testing.T) {
		s, err := NewStandardBoard().Apply(PlaceWall(Horizontal, 7, 4), Player1)
		require.NoError(t, err)

		walls := s.LegalWallsNear([]Cell{{Row: 8, Col: 4}, {Row: 7, Col: 4}}, Player1)

		require.Empty(t, walls, "Both cutting walls overlap the placed one")
	})
}

func TestScore(t *testing.T) {
	t.Run("finished game saturates", func(t *testing.T) {
		b := BoardFromPawns(9, 10, Cell{Row: 8, Col: 4}, Cell{Row: 5, Col: 4})

		winner, ok := b.Winner()
		require.True(t, ok)
		require.Equal(t, Player1, winner)
		require.Equal(t, WinScore, b.Score(Player1))
		require.Equal(t, -WinScore, b.Score(Player2))
	})

	t.Run("ongoing game scores the path differential", func(t *testing.T) {
		b := BoardFromPawns(9, 10, Cell{Row: 6, Col: 4}, Cell{Row: 5, Col: 0})

		require.Equal(t, 3.0, b.Score(Player1))
		require.Equal(t, -3.0, b.Score(Player2))
	})
}

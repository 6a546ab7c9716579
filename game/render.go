package game

import (
	"strings"

	"github.com/muesli/termenv"
)

var pawnColors = [2]string{"#e06c75", "#61afef"}

// Render draws the board with pawns as 1 and 2, horizontal walls as '=' and
// vertical walls as '|'. Colors follow the output's terminal profile.
func (b *Board) Render(out *termenv.Output) string {
	var sb strings.Builder

	pawn := func(p Player) string {
		label := "1"
		if p == Player2 {
			label = "2"
		}
		return out.String(label).Foreground(out.Color(pawnColors[p])).Bold().String()
	}

	for row := 0; row < b.Size; row++ {
		for col := 0; col < b.Size; col++ {
			switch (Cell{Row: row, Col: col}) {
			case b.Pawns[Player1]:
				sb.WriteString(pawn(Player1))
			case b.Pawns[Player2]:
				sb.WriteString(pawn(Player2))
			default:
				sb.WriteByte('.')
			}
			if col < b.Size-1 {
				if b.hasVWall(row, col) || b.hasVWall(row-1, col) {
					sb.WriteByte('|')
				} else {
					sb.WriteByte(' ')
				}
			}
		}
		sb.WriteByte('\n')

		if row == b.Size-1 {
			break
		}
		for col := 0; col < b.Size; col++ {
			if b.hasHWall(row, col) || b.hasHWall(row, col-1) {
				sb.WriteByte('=')
			} else {
				sb.WriteByte(' ')
			}
			if col < b.Size-1 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

func (b *Board) String() string {
	return b.Render(termenv.NewOutput(nil, termenv.WithProfile(termenv.Ascii)))
}

package game

import "fmt"

// Directions in the order neighbours are explored: toward row 0 first.
var directions = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

func (b *Board) inBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < b.Size && c.Col >= 0 && c.Col < b.Size
}

func (b *Board) corridor(row, col int) (int, bool) {
	n := b.Size - 1
	if row < 0 || row >= n || col < 0 || col >= n {
		return 0, false
	}
	return row*n + col, true
}

func (b *Board) hasHWall(row, col int) bool {
	i, ok := b.corridor(row, col)
	return ok && b.HWalls[i]
}

func (b *Board) hasVWall(row, col int) bool {
	i, ok := b.corridor(row, col)
	return ok && b.VWalls[i]
}

// blocked reports whether a wall separates two orthogonally adjacent cells.
func (b *Board) blocked(from, to Cell) bool {
	switch {
	case to.Row == from.Row+1 && to.Col == from.Col:
		return b.hasHWall(from.Row, from.Col) || b.hasHWall(from.Row, from.Col-1)
	case to.Row == from.Row-1 && to.Col == from.Col:
		return b.hasHWall(to.Row, to.Col) || b.hasHWall(to.Row, to.Col-1)
	case to.Col == from.Col+1 && to.Row == from.Row:
		return b.hasVWall(from.Row, from.Col) || b.hasVWall(from.Row-1, from.Col)
	case to.Col == from.Col-1 && to.Row == from.Row:
		return b.hasVWall(to.Row, to.Col) || b.hasVWall(to.Row-1, to.Col)
	default:
		panic(fmt.Sprintf("cells %v and %v are not adjacent", from, to))
	}
}

// ShortestPath runs a breadth-first search from the player's pawn to its goal
// row. Pawns are not obstacles; only walls are.
func (b *Board) ShortestPath(player Player) ([]Cell, error) {
	start := b.Pawns[player]
	goal := b.Goals[player]
	if start.Row == goal {
		return []Cell{}, nil
	}

	index := func(c Cell) int { return c.Row*b.Size + c.Col }
	parents := make([]int, b.Size*b.Size)
	for i := range parents {
		parents[i] = -1
	}
	parents[index(start)] = index(start)

	queue := []Cell{start}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current.Row == goal {
			return b.unwind(parents, index(start), current), nil
		}

		for _, d := range directions {
			next := current.add(d[0], d[1])
			if !b.inBounds(next) || parents[index(next)] >= 0 || b.blocked(current, next) {
				continue
			}
			parents[index(next)] = index(current)
			queue = append(queue, next)
		}
	}

	return nil, fmt.Errorf("%w: %v from %v", ErrNoPath, player, start)
}

func (b *Board) unwind(parents []int, start int, end Cell) []Cell {
	path := []Cell{}
	for i := end.Row*b.Size + end.Col; i != start; i = parents[i] {
		path = append(path, Cell{Row: i / b.Size, Col: i % b.Size})
	}
	// Reverse into pawn-to-goal order
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

func (b *Board) hasPath(player Player) bool {
	_, err := b.ShortestPath(player)
	return err == nil
}

package mcts

import "github.com/hexmind/hexengine/pkg/hexboard"

// DefaultNeighborhoodRadius is the hex-distance D used to filter the
// move set a node can expand into. Keeping it small sharply narrows
// branching factor on a 121-cell board without ever excluding a cell
// that could complete a connection next to existing stones.
const DefaultNeighborhoodRadius = 2

// hexDistance returns the hex grid distance between two cells using
// the same axial adjacency as hexboard.Neighbors.
func hexDistance(a, b hexboard.Cell) int {
	dq := a.Col - b.Col
	dr := a.Row - b.Row
	ds := -(dq + dr)
	return max(abs(dq), abs(dr), abs(ds))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// candidateMoves returns the empty cells within radius hex-distance of
// any occupied cell. On an empty board (no stones to be near) it falls
// back to every empty cell, matching the unfiltered first move.
func candidateMoves(b *hexboard.Board, radius int) []hexboard.Cell {
	stones := b.Occupied()
	empties := b.Empties()
	if len(stones) == 0 {
		return empties
	}

	out := make([]hexboard.Cell, 0, len(empties))
	for _, cell := range empties {
		for _, stone := range stones {
			if hexDistance(cell, stone) <= radius {
				out = append(out, cell)
				break
			}
		}
	}
	if len(out) == 0 {
		return empties
	}
	return out
}

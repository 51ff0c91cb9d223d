package engine

import (
	"math/rand"
	"time"

	"github.com/hexmind/hexengine/pkg/hexboard"
)

// RecommendSwap decides whether the second player should invoke the
// swap rule given the opponent's opening move: accept (swap) if it
// landed in the central box, otherwise decline and play normally. The
// central box is the 5x5 region around the center cell (rows and
// columns 3..7 on an 11x11 board); it stays 5x5 on every board size.
func RecommendSwap(size int, firstMove hexboard.Cell) bool {
	center := (size - 1) / 2
	lo, hi := center-2, center+2
	return firstMove.Row >= lo && firstMove.Row <= hi &&
		firstMove.Col >= lo && firstMove.Col <= hi
}

// firstMoveFallback picks a move near the board center when the search
// driver could not complete a single rollout (an empty or already-
// elapsed movetime budget). It tries the exact center, then an
// expanding square ring around it, then any empty cell.
func firstMoveFallback(b *hexboard.Board) hexboard.Cell {
	center := b.Center()
	if b.IsValid(center) {
		return center
	}
	for radius := 1; radius <= b.Size; radius++ {
		for _, cell := range ringCells(center, radius) {
			if b.IsValid(cell) {
				return cell
			}
		}
	}
	if cell, ok := b.RandomEmpty(rand.New(rand.NewSource(time.Now().UnixNano()))); ok {
		return cell
	}
	internalf("firstMoveFallback called on a board with no empty cells")
	return hexboard.Cell{}
}

func ringCells(center hexboard.Cell, radius int) []hexboard.Cell {
	out := make([]hexboard.Cell, 0, 8*radius)
	for dr := -radius; dr <= radius; dr++ {
		for dc := -radius; dc <= radius; dc++ {
			if max(abs(dr), abs(dc)) != radius {
				continue
			}
			out = append(out, hexboard.Cell{Row: center.Row + dr, Col: center.Col + dc})
		}
	}
	return out
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Package hexboard implements a mutable Hex position with an
// incremental connectivity oracle: placing a stone is O(alpha(n))
// amortized, and asking "has color X won" is a single union-find query.
package hexboard

import (
	"math/rand"

	"github.com/hexmind/hexengine/pkg/unionfind"
)

// Color identifies a stone color or the empty state. ColorA owns the
// top/bottom edges, ColorB owns the left/right edges.
type Color uint8

const (
	None Color = iota
	ColorA
	ColorB
)

// Opponent returns the other playing color. Calling it on None is a
// programming error and returns None.
func (c Color) Opponent() Color {
	switch c {
	case ColorA:
		return ColorB
	case ColorB:
		return ColorA
	default:
		return None
	}
}

func (c Color) String() string {
	switch c {
	case ColorA:
		return "A"
	case ColorB:
		return "B"
	default:
		return "."
	}
}

// Cell is a (row, column) coordinate on the board.
type Cell struct {
	Row, Col int
}

// neighborOffsets are the six hex-adjacency deltas, per spec.md §3:
// (r-1,c), (r-1,c+1), (r,c-1), (r,c+1), (r+1,c-1), (r+1,c).
var neighborOffsets = [6]Cell{
	{-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0},
}

// Board is a mutable NxN Hex position with per-color connectivity
// oracles. The zero value is not usable; construct with New.
type Board struct {
	Size       int
	grid       []Color
	empties    []Cell
	emptyIndex map[Cell]int
	ufA        *unionfind.UnionFind
	ufB        *unionfind.UnionFind
	moveCount  int
	lastMove   Cell
	lastColor  Color
	hasLast    bool
}

// New creates a freshly empty board of the given size. Size must be
// positive; a non-positive size is a programming error.
func New(size int) *Board {
	b := &Board{
		Size:       size,
		grid:       make([]Color, size*size),
		empties:    make([]Cell, 0, size*size),
		emptyIndex: make(map[Cell]int, size*size),
		ufA:        unionfind.New(size*size + 2),
		ufB:        unionfind.New(size*size + 2),
	}
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			cell := Cell{r, c}
			b.emptyIndex[cell] = len(b.empties)
			b.empties = append(b.empties, cell)
		}
	}
	return b
}

func (b *Board) nodeID(cell Cell) int {
	return cell.Row*b.Size + cell.Col
}

// virtualNodes returns the two virtual border node ids for a color.
func (b *Board) virtualNodes() (v1, v2 int) {
	return b.Size * b.Size, b.Size*b.Size + 1
}

func (b *Board) inRange(cell Cell) bool {
	return cell.Row >= 0 && cell.Row < b.Size && cell.Col >= 0 && cell.Col < b.Size
}

// At returns the color occupying cell, or None if out of range.
func (b *Board) At(cell Cell) Color {
	if !b.inRange(cell) {
		return None
	}
	return b.grid[b.nodeID(cell)]
}

// IsValid reports whether cell is in-range and empty.
func (b *Board) IsValid(cell Cell) bool {
	return b.inRange(cell) && b.grid[b.nodeID(cell)] == None
}

// Neighbors returns the in-range hex-adjacent cells of cell.
func Neighbors(cell Cell, size int) []Cell {
	out := make([]Cell, 0, 6)
	for _, d := range neighborOffsets {
		n := Cell{cell.Row + d.Row, cell.Col + d.Col}
		if n.Row >= 0 && n.Row < size && n.Col >= 0 && n.Col < size {
			out = append(out, n)
		}
	}
	return out
}

// Place plays color at cell. It returns false and does nothing if the
// cell is out of range or already occupied. Placement is monotone: it
// never undoes union-find work, only merges.
func (b *Board) Place(cell Cell, color Color) bool {
	if !b.IsValid(cell) {
		return false
	}

	id := b.nodeID(cell)
	b.grid[id] = color
	b.removeEmpty(cell)

	uf := b.ufFor(color)
	v1, v2 := b.virtualNodes()

	switch color {
	case ColorA:
		// A owns the top (row 0) / bottom (row Size-1) borders.
		if cell.Row == 0 {
			uf.Union(id, v1)
		}
		if cell.Row == b.Size-1 {
			uf.Union(id, v2)
		}
	case ColorB:
		// B owns the left (col 0) / right (col Size-1) borders.
		if cell.Col == 0 {
			uf.Union(id, v1)
		}
		if cell.Col == b.Size-1 {
			uf.Union(id, v2)
		}
	}

	for _, n := range Neighbors(cell, b.Size) {
		if b.At(n) == color {
			uf.Union(id, b.nodeID(n))
		}
	}

	b.moveCount++
	b.lastMove = cell
	b.lastColor = color
	b.hasLast = true
	return true
}

func (b *Board) ufFor(color Color) *unionfind.UnionFind {
	if color == ColorA {
		return b.ufA
	}
	return b.ufB
}

func (b *Board) removeEmpty(cell Cell) {
	idx, ok := b.emptyIndex[cell]
	if !ok {
		return
	}
	last := len(b.empties) - 1
	b.empties[idx] = b.empties[last]
	b.emptyIndex[b.empties[idx]] = idx
	b.empties = b.empties[:last]
	delete(b.emptyIndex, cell)
}

// Winner returns the color that has connected its two borders, or None
// if neither has. At most one color can satisfy this under correct
// play; if both do (a caller bug upstream), the color of the last
// placed stone is returned, per spec.md §4.2.
func (b *Board) Winner() Color {
	v1, v2 := b.virtualNodes()
	aWins := b.ufA.Connected(v1, v2)
	bWins := b.ufB.Connected(v1, v2)
	switch {
	case aWins && bWins:
		if b.hasLast {
			return b.lastColor
		}
		return ColorA
	case aWins:
		return ColorA
	case bWins:
		return ColorB
	default:
		return None
	}
}

// IsTerminal reports whether the board has a winner.
func (b *Board) IsTerminal() bool {
	return b.Winner() != None
}

// Empties returns the current empty cells. The slice is owned by the
// caller; iteration order is stable between mutations but otherwise
// unspecified.
func (b *Board) Empties() []Cell {
	out := make([]Cell, len(b.empties))
	copy(out, b.empties)
	return out
}

// EmptyCount returns the number of unoccupied cells.
func (b *Board) EmptyCount() int {
	return len(b.empties)
}

// RandomEmpty uniformly samples one empty cell. ok is false if the
// board is full.
func (b *Board) RandomEmpty(rng *rand.Rand) (cell Cell, ok bool) {
	if len(b.empties) == 0 {
		return Cell{}, false
	}
	return b.empties[rng.Intn(len(b.empties))], true
}

// MoveCount returns the number of stones placed so far.
func (b *Board) MoveCount() int {
	return b.moveCount
}

// Occupied returns every cell holding a stone, in row-major order.
func (b *Board) Occupied() []Cell {
	out := make([]Cell, 0, len(b.grid)-len(b.empties))
	for r := 0; r < b.Size; r++ {
		for c := 0; c < b.Size; c++ {
			cell := Cell{r, c}
			if b.At(cell) != None {
				out = append(out, cell)
			}
		}
	}
	return out
}

// Center returns the middle cell of the board. For even sizes this is
// the cell just above-left of true center.
func (b *Board) Center() Cell {
	return Cell{Row: (b.Size - 1) / 2, Col: (b.Size - 1) / 2}
}

// Clone returns a deep copy of the board, including both union-find
// structures and the empties set.
func (b *Board) Clone() *Board {
	clone := &Board{
		Size:       b.Size,
		grid:       make([]Color, len(b.grid)),
		empties:    make([]Cell, len(b.empties)),
		emptyIndex: make(map[Cell]int, len(b.emptyIndex)),
		ufA:        b.ufA.Clone(),
		ufB:        b.ufB.Clone(),
		moveCount:  b.moveCount,
		lastMove:   b.lastMove,
		lastColor:  b.lastColor,
		hasLast:    b.hasLast,
	}
	copy(clone.grid, b.grid)
	copy(clone.empties, b.empties)
	for k, v := range b.emptyIndex {
		clone.emptyIndex[k] = v
	}
	return clone
}

// Reset restores the board to a freshly-empty state of the same size,
// overwriting all stones and union-find state.
func (b *Board) Reset() {
	*b = *New(b.Size)
}

package hexboard

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoardAllEmpty(t *testing.T) {
	b := New(5)
	assert.Equal(t, 25, b.EmptyCount())
	assert.Equal(t, None, b.Winner())
	assert.False(t, b.IsTerminal())
}

func TestPlaceRejectsOccupiedAndOutOfRange(t *testing.T) {
	b := New(5)
	require.True(t, b.Place(Cell{0, 0}, ColorA))
	assert.False(t, b.Place(Cell{0, 0}, ColorB))
	assert.False(t, b.Place(Cell{-1, 0}, ColorA))
	assert.False(t, b.Place(Cell{5, 0}, ColorA))
	assert.Equal(t, 24, b.EmptyCount())
}

// ColorA owns the top/bottom rows; a straight vertical line should win.
func TestColorAWinsTopToBottom(t *testing.T) {
	b := New(4)
	for r := 0; r < 4; r++ {
		require.True(t, b.Place(Cell{r, 0}, ColorA))
	}
	assert.Equal(t, ColorA, b.Winner())
	assert.True(t, b.IsTerminal())
}

// ColorB owns the left/right columns; a straight horizontal line wins.
func TestColorBWinsLeftToRight(t *testing.T) {
	b := New(4)
	for c := 0; c < 4; c++ {
		require.True(t, b.Place(Cell{0, c}, ColorB))
	}
	assert.Equal(t, ColorB, b.Winner())
}

func TestNoWinnerOnPartialChain(t *testing.T) {
	b := New(5)
	require.True(t, b.Place(Cell{0, 0}, ColorA))
	require.True(t, b.Place(Cell{1, 0}, ColorA))
	assert.Equal(t, None, b.Winner())
}

func TestCloneIsIndependent(t *testing.T) {
	b := New(4)
	require.True(t, b.Place(Cell{0, 0}, ColorA))
	clone := b.Clone()
	require.True(t, clone.Place(Cell{1, 0}, ColorA))

	assert.Equal(t, 14, clone.EmptyCount())
	assert.Equal(t, 15, b.EmptyCount())
	assert.Equal(t, None, b.At(Cell{1, 0}))
	assert.Equal(t, ColorA, clone.At(Cell{1, 0}))
}

func TestRandomEmptyExhaustsBoard(t *testing.T) {
	b := New(2)
	rng := rand.New(rand.NewSource(1))
	seen := map[Cell]bool{}
	for i := 0; i < 4; i++ {
		cell, ok := b.RandomEmpty(rng)
		require.True(t, ok)
		require.False(t, seen[cell])
		seen[cell] = true
		require.True(t, b.Place(cell, ColorA))
	}
	_, ok := b.RandomEmpty(rng)
	assert.False(t, ok)
}

func TestNeighborsInRange(t *testing.T) {
	corner := Neighbors(Cell{0, 0}, 5)
	assert.Len(t, corner, 2)

	center := Neighbors(Cell{2, 2}, 5)
	assert.Len(t, center, 6)
}

func TestMoveNotationRoundTrip(t *testing.T) {
	cases := []Cell{{0, 0}, {10, 10}, {3, 7}}
	for _, cell := range cases {
		move := Move(cell)
		parsed, err := ParseMove(move)
		require.NoError(t, err)
		assert.Equal(t, cell, parsed)
	}
	assert.Equal(t, "a1", Move(Cell{0, 0}))
	assert.Equal(t, "k11", Move(Cell{10, 10}))
}

func TestParseMoveRejectsMalformed(t *testing.T) {
	for _, bad := range []string{"", "1", "a", "a0", "zz"} {
		_, err := ParseMove(bad)
		assert.Error(t, err, bad)
	}
}

func TestSymmetricCell(t *testing.T) {
	assert.Equal(t, Cell{3, 1}, SymmetricCell(Cell{1, 3}))
}

package engine

import (
	"errors"
	"testing"

	"github.com/hexmind/hexengine/pkg/hexboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine() *Engine {
	return New(nil)
}

func TestNewGameDefaults(t *testing.T) {
	e := newTestEngine()
	g := e.NewGame(5, hexboard.ColorA, Easy)
	assert.NotEmpty(t, g.ID)
	assert.Equal(t, hexboard.ColorA, g.ToMove)
	assert.False(t, g.Board.IsTerminal())
}

func TestHumanMoveRejectsWrongTurn(t *testing.T) {
	e := newTestEngine()
	g := e.NewGame(5, hexboard.ColorB, Easy)
	err := g.HumanMove("a1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidMove))
}

func TestHumanMoveRejectsMalformedNotation(t *testing.T) {
	e := newTestEngine()
	g := e.NewGame(5, hexboard.ColorA, Easy)
	err := g.HumanMove("not-a-move")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidMove))
}

func TestHumanMovePlaysAndAdvancesTurn(t *testing.T) {
	e := newTestEngine()
	g := e.NewGame(5, hexboard.ColorA, Easy)
	require.NoError(t, g.HumanMove("a1"))
	assert.Equal(t, hexboard.ColorB, g.ToMove)
	assert.Equal(t, hexboard.ColorA, g.Board.At(hexboard.Cell{Row: 0, Col: 0}))

	err := g.HumanMove("a1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidMove))
}

func TestEngineMovePlaysLegalMoveAndAdvancesTurn(t *testing.T) {
	e := newTestEngine()
	g := e.NewGame(4, hexboard.ColorB, Easy)
	move, timedOut, err := g.EngineMove()
	require.NoError(t, err)
	assert.False(t, timedOut)
	cell, err := hexboard.ParseMove(move)
	require.NoError(t, err)
	assert.Equal(t, hexboard.ColorA, g.Board.At(cell))
	assert.Equal(t, hexboard.ColorB, g.ToMove)
}

func TestEngineMoveRejectsWhenGameOver(t *testing.T) {
	e := newTestEngine()
	g := e.NewGame(2, hexboard.ColorB, Easy)
	require.True(t, g.Board.Place(hexboard.Cell{0, 0}, hexboard.ColorA))
	require.True(t, g.Board.Place(hexboard.Cell{1, 0}, hexboard.ColorA))
	require.True(t, g.Board.IsTerminal())

	_, _, err := g.EngineMove()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrGameOver))
}

func TestApplySwapMirrorsFirstMove(t *testing.T) {
	e := newTestEngine()
	g := e.NewGame(11, hexboard.ColorA, Easy)
	require.NoError(t, g.HumanMove("d2")) // ColorA plays (row=1, col=3)

	require.NoError(t, g.ApplySwap())
	assert.Equal(t, 1, g.Board.MoveCount())
	assert.Equal(t, hexboard.ColorB, g.Board.At(hexboard.Cell{Row: 3, Col: 1}))
	assert.Equal(t, hexboard.None, g.Board.At(hexboard.Cell{Row: 1, Col: 3}))
	assert.Equal(t, hexboard.ColorA, g.ToMove)
}

func TestApplySwapRejectsAfterMoreThanOneMove(t *testing.T) {
	e := newTestEngine()
	g := e.NewGame(5, hexboard.ColorA, Easy)
	require.NoError(t, g.HumanMove("a1"))
	_, _, err := g.EngineMove()
	require.NoError(t, err)

	err = g.ApplySwap()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidMove))
}

func TestRecommendSwapCentralBox(t *testing.T) {
	assert.True(t, RecommendSwap(11, hexboard.Cell{Row: 5, Col: 5}))
	assert.False(t, RecommendSwap(11, hexboard.Cell{Row: 0, Col: 0}))
}

func TestStateReportsStones(t *testing.T) {
	e := newTestEngine()
	g := e.NewGame(5, hexboard.ColorA, Medium)
	require.NoError(t, g.HumanMove("a1"))
	s := g.State()
	require.Len(t, s.Stones, 1)
	assert.Equal(t, "a1", s.Stones[0].Move)
	assert.Equal(t, "A", s.Stones[0].Color)
	assert.False(t, s.GameOver)
}

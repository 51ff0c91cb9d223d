// Package engine wires pkg/hexboard and pkg/mcts into the game-handle
// API a text or HTTP adapter drives: new_game, set_difficulty,
// human_move, engine_move, apply_swap, state.
package engine

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hexmind/hexengine/pkg/hexboard"
	"github.com/hexmind/hexengine/pkg/mcts"
)

// Engine constructs game handles and owns nothing but a logger: all
// per-game state lives on Game, so the same Engine is safe to reuse
// across any number of concurrent games (each Game itself is not safe
// for concurrent use, matching the single-threaded search beneath it).
type Engine struct {
	logger Logger
}

// New creates an Engine. A nil logger discards all log output.
func New(logger Logger) *Engine {
	if logger == nil {
		logger = noopLogger{}
	}
	return &Engine{logger: logger}
}

// Game is one in-progress (or finished) Hex game.
type Game struct {
	ID         string
	Board      *hexboard.Board
	ToMove     hexboard.Color
	HumanColor hexboard.Color
	Difficulty Difficulty

	firstMove  hexboard.Cell
	firstColor hexboard.Color
	hasFirst   bool
	swapped    bool

	lastMoveTimedOut bool

	logger Logger
}

// NewGame starts a fresh game on a size x size board. humanColor is
// the color the human plays; the engine plays the other one. ColorA
// always moves first, per spec.md's notation convention.
func (e *Engine) NewGame(size int, humanColor hexboard.Color, difficulty Difficulty) *Game {
	g := &Game{
		ID:         uuid.NewString(),
		Board:      hexboard.New(size),
		ToMove:     hexboard.ColorA,
		HumanColor: humanColor,
		Difficulty: difficulty,
		logger:     e.logger,
	}
	g.logger.Info("new game",
		String("id", g.ID),
		Int("size", size),
		String("human_color", humanColor.String()),
		String("difficulty", difficulty.String()),
	)
	return g
}

// SetDifficulty changes the engine's search budget for future moves.
// It does not affect a search already in progress.
func (g *Game) SetDifficulty(d Difficulty) {
	g.Difficulty = d
	g.logger.Info("difficulty changed", String("id", g.ID), String("difficulty", d.String()))
}

func (g *Game) recordFirstMove(cell hexboard.Cell, color hexboard.Color) {
	if !g.hasFirst {
		g.firstMove, g.firstColor, g.hasFirst = cell, color, true
	}
}

func (g *Game) place(cell hexboard.Cell, color hexboard.Color) {
	if !g.Board.Place(cell, color) {
		internalf("place(%v, %v) rejected on a cell HumanMove/EngineMove already validated", cell, color)
	}
	g.recordFirstMove(cell, color)
	g.ToMove = g.ToMove.Opponent()
}

// HumanMove plays move (a1 notation) as the human's color. It returns
// ErrGameOver if the game has ended, ErrInvalidMove wrapped with
// detail if it isn't the human's turn, the notation doesn't parse, or
// the cell is occupied/out of range.
func (g *Game) HumanMove(move string) error {
	if g.Board.IsTerminal() {
		return gameOverErr()
	}
	if g.ToMove != g.HumanColor {
		return invalidMoveErr("it is not the human player's turn")
	}
	cell, err := hexboard.ParseMove(move)
	if err != nil {
		return invalidMoveErr(err.Error())
	}
	if !g.Board.IsValid(cell) {
		return invalidMoveErr(fmt.Sprintf("%s is occupied or out of range", move))
	}

	color := g.ToMove
	g.place(cell, color)
	g.logger.Info("human move",
		String("id", g.ID), String("move", move), String("color", color.String()),
	)
	return nil
}

// EngineMove runs a search at the game's current difficulty and plays
// the recommended move, returning it in a1 notation. timedOut reports
// whether the search deadline expired before any rollout completed and
// the returned move is therefore the ErrEngineTimeout fallback (a cell
// near the board center) rather than a searched one; this is never an
// error (spec.md §7: EngineTimeout is "never fatal"), only a flag the
// caller may surface to the user or log.
func (g *Game) EngineMove() (move string, timedOut bool, err error) {
	if g.Board.IsTerminal() {
		return "", false, gameOverErr()
	}
	engineColor := g.HumanColor.Opponent()
	if g.ToMove != engineColor {
		return "", false, invalidMoveErr("it is not the engine's turn")
	}

	budget := DifficultyBudgets[g.Difficulty]
	driver := mcts.NewDriver(mcts.Config{MovetimeMs: int(budget / time.Millisecond)})

	start := time.Now()
	_, cell, ok := driver.Search(g.Board, engineColor)
	if !ok {
		timedOut = true
		cell = firstMoveFallback(g.Board)
		g.logger.Warn("engine move timed out before any rollout completed; falling back to a center-biased move",
			String("id", g.ID),
			String("error", engineTimeoutErr("no rollout completed within the movetime budget").Error()),
		)
	}

	g.place(cell, engineColor)
	elapsed := time.Since(start)
	move = hexboard.Move(cell)
	g.lastMoveTimedOut = timedOut

	g.logger.Info("engine move",
		String("id", g.ID), String("move", move), String("color", engineColor.String()),
		Duration("elapsed_ms", elapsed.Milliseconds()),
		Int("rollouts", driver.Rollouts()),
	)
	return move, timedOut, nil
}

// ApplySwap invokes the pie rule: it erases the lone stone from the
// first move and replaces it with the opposite color at the mirrored
// coordinate (row, col) -> (col, row), then passes the turn back to
// the original first-moving color, exactly as if that color's stone
// had simply been played by the other player to begin with. It is only
// legal immediately after the first move of the game.
func (g *Game) ApplySwap() error {
	if !g.hasFirst || g.Board.MoveCount() != 1 {
		return invalidMoveErr("swap is only legal immediately after the first move")
	}
	if g.swapped {
		return invalidMoveErr("swap has already been used this game")
	}

	mirrored := hexboard.SymmetricCell(g.firstMove)
	opponent := g.firstColor.Opponent()

	size := g.Board.Size
	g.Board.Reset()
	if !g.Board.Place(mirrored, opponent) {
		internalf("swap mirror cell %v invalid on a fresh %dx%d board", mirrored, size, size)
	}
	g.swapped = true
	g.ToMove = g.firstColor

	g.logger.Info("swap applied",
		String("id", g.ID),
		String("original_move", hexboard.Move(g.firstMove)),
		String("mirrored_move", hexboard.Move(mirrored)),
	)
	return nil
}

// State is a serializable snapshot of a Game for a protocol adapter.
type State struct {
	ID               string
	Size             int
	Stones           []StoneState
	ToMove           string
	Winner           string
	MoveCount        int
	GameOver         bool
	Swapped          bool
	Difficulty       string
	LastMoveTimedOut bool
}

// StoneState is one occupied cell in a State snapshot.
type StoneState struct {
	Move  string
	Color string
}

// State returns a snapshot of the game's current position.
func (g *Game) State() State {
	occupied := g.Board.Occupied()
	stones := make([]StoneState, len(occupied))
	for i, cell := range occupied {
		stones[i] = StoneState{Move: hexboard.Move(cell), Color: g.Board.At(cell).String()}
	}
	return State{
		ID:               g.ID,
		Size:             g.Board.Size,
		Stones:           stones,
		ToMove:           g.ToMove.String(),
		Winner:           g.Board.Winner().String(),
		MoveCount:        g.Board.MoveCount(),
		GameOver:         g.Board.IsTerminal(),
		Swapped:          g.swapped,
		Difficulty:       g.Difficulty.String(),
		LastMoveTimedOut: g.lastMoveTimedOut,
	}
}

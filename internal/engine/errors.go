package engine

import (
	"errors"
	"fmt"
)

// Sentinel error kinds a caller can test for with errors.Is. Internal
// invariant violations are not in this list: they panic, per design,
// since they mean the engine's own state is inconsistent rather than
// the caller having done something disallowed.
var (
	ErrInvalidMove   = errors.New("invalid move")
	ErrEngineTimeout = errors.New("engine timed out before producing a move")
	ErrGameOver      = errors.New("game is already over")
)

func invalidMoveErr(detail string) error {
	return fmt.Errorf("%w: %s", ErrInvalidMove, detail)
}

func gameOverErr() error {
	return fmt.Errorf("%w", ErrGameOver)
}

func engineTimeoutErr(detail string) error {
	return fmt.Errorf("%w: %s", ErrEngineTimeout, detail)
}

// internalf panics with a wrapped message. Callers reach this only when
// the engine's own invariants have been violated (e.g. Board.Place
// rejected a cell the engine itself had already validated).
func internalf(format string, args ...any) {
	panic(fmt.Errorf("engine: internal invariant violated: "+format, args...))
}

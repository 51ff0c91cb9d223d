// Package textproto drives one Game over a line-oriented protocol: the
// program is told whether it moves first, receives the opponent's
// moves one per line, and replies with its own move each time, until
// told the game is finished.
package textproto

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/hexmind/hexengine/internal/engine"
)

// Commands recognized on their own line; anything else is parsed as a
// move in a1 notation.
const (
	CmdFirst  = "first"
	CmdChange = "change"
	CmdFinish = "finish"
)

// Run reads commands/moves from r and writes the engine's replies to
// w, one per line, until CmdFinish or EOF. It returns the first error
// encountered; a malformed or illegal opponent move ends the loop.
func Run(r io.Reader, w io.Writer, g *engine.Game, logger engine.Logger) error {
	if logger == nil {
		logger = noopLogger{}
	}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch line {
		case CmdFinish:
			logger.Info("protocol finished", engine.String("id", g.ID))
			return nil

		case CmdFirst:
			if err := respond(w, g, logger); err != nil {
				return err
			}

		case CmdChange:
			if err := g.ApplySwap(); err != nil {
				return err
			}
			if err := respond(w, g, logger); err != nil {
				return err
			}

		default:
			if err := g.HumanMove(line); err != nil {
				return err
			}
			if g.State().GameOver {
				continue
			}
			if err := respond(w, g, logger); err != nil {
				return err
			}
		}
	}
	return scanner.Err()
}

// respond runs one engine move and writes it to w. A deadline-expired
// fallback move is still a move, per spec.md §7 ("EngineTimeout ...
// never fatal"); the protocol has no wire encoding for it, so it is
// only noted in the log.
func respond(w io.Writer, g *engine.Game, logger engine.Logger) error {
	move, timedOut, err := g.EngineMove()
	if err != nil {
		return err
	}
	if timedOut {
		logger.Warn("engine move timed out; sent fallback move", engine.String("id", g.ID), engine.String("move", move))
	}
	_, err = fmt.Fprintln(w, move)
	return err
}

type noopLogger struct{}

func (noopLogger) Info(string, ...engine.Field)  {}
func (noopLogger) Warn(string, ...engine.Field)  {}
func (noopLogger) Error(string, ...engine.Field) {}

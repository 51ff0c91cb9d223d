// Package bench runs head-to-head strength tests between two search
// configurations, playing full games out sequentially. Unlike the
// teacher's tree-parallel, multi-worker arena, there is exactly one
// goroutine here: the engine this package benchmarks is itself
// single-threaded, so a concurrent benchmark harness would exercise a
// concurrency model the engine doesn't have.
package bench

import (
	"math/rand"
	"time"

	"github.com/hexmind/hexengine/pkg/hexboard"
	"github.com/hexmind/hexengine/pkg/mcts"
)

// Listener observes a Run as it progresses. Every method is optional;
// embed DefaultListener to get no-op defaults.
type Listener interface {
	OnGameFinished(gameIdx int, winnerName string, moveCount int)
}

// DefaultListener implements Listener with no-ops, for callers who
// only want Summary at the end.
type DefaultListener struct{}

func (DefaultListener) OnGameFinished(int, string, int) {}

// Arena plays Games full games of boardSize Hex between PlayerA and
// PlayerB, alternating who plays ColorA (and so moves first) each
// game, and tallies the results.
type Arena struct {
	BoardSize int
	PlayerA   Config
	PlayerB   Config
	Games     int
	Rng       *rand.Rand
	Listener  Listener
}

// NewArena builds an Arena with a time-seeded rng and a no-op listener.
func NewArena(boardSize int, a, b Config, games int) *Arena {
	return &Arena{
		BoardSize: boardSize,
		PlayerA:   a,
		PlayerB:   b,
		Games:     games,
		Rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
		Listener:  DefaultListener{},
	}
}

// Run plays every game and returns the tallied Summary.
func (a *Arena) Run() Summary {
	summary := Summary{Games: a.Games, AName: a.PlayerA.Name, BName: a.PlayerB.Name}
	var totalMS int64
	var totalMoves int

	for i := 0; i < a.Games; i++ {
		aPlaysFirst := i%2 == 0
		winnerName, moveCount, elapsedMS := a.playOne(aPlaysFirst)

		totalMS += elapsedMS
		totalMoves += moveCount

		switch winnerName {
		case a.PlayerA.Name:
			summary.AWins++
		case a.PlayerB.Name:
			summary.BWins++
		}
		if (winnerName == a.PlayerA.Name) == aPlaysFirst {
			summary.FirstMoveWins++
		} else {
			summary.SecondMoveWins++
		}

		if a.Listener != nil {
			a.Listener.OnGameFinished(i, winnerName, moveCount)
		}
	}

	if a.Games > 0 {
		summary.AvgMoveCountMS = float64(totalMS) / float64(totalMoves)
		summary.AvgGameMoveCount = float64(totalMoves) / float64(a.Games)
	}
	return summary
}

// playOne plays a single game, returning the winning Config's name,
// the number of plies played, and the total milliseconds spent
// searching across both sides.
func (a *Arena) playOne(aPlaysFirst bool) (winnerName string, moveCount int, elapsedMS int64) {
	board := hexboard.New(a.BoardSize)
	byColor := map[hexboard.Color]Config{
		hexboard.ColorA: a.PlayerB,
		hexboard.ColorB: a.PlayerA,
	}
	if aPlaysFirst {
		byColor[hexboard.ColorA] = a.PlayerA
		byColor[hexboard.ColorB] = a.PlayerB
	}

	toMove := hexboard.ColorA
	for !board.IsTerminal() {
		cfg := byColor[toMove]
		driver := mcts.NewDriver(mcts.Config{
			MovetimeMs:  cfg.MovetimeMs,
			MaxRollouts: cfg.MaxRollouts,
			Rng:         a.Rng,
		})

		start := time.Now()
		_, move, ok := driver.Search(board, toMove)
		elapsedMS += time.Since(start).Milliseconds()
		if !ok {
			break
		}
		board.Place(move, toMove)
		moveCount++
		toMove = toMove.Opponent()
	}

	return byColor[board.Winner()].Name, moveCount, elapsedMS
}

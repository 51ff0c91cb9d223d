package bench

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArenaRunPlaysAllGamesAndTalliesAWinner(t *testing.T) {
	strong := Config{Name: "strong", MovetimeMs: -1, MaxRollouts: 200}
	weak := Config{Name: "weak", MovetimeMs: -1, MaxRollouts: 20}

	arena := NewArena(4, strong, weak, 4)
	arena.Rng = rand.New(rand.NewSource(11))

	summary := arena.Run()
	require.Equal(t, 4, summary.Games)
	assert.Equal(t, 4, summary.AWins+summary.BWins)
	assert.Equal(t, 4, summary.FirstMoveWins+summary.SecondMoveWins)
	assert.Greater(t, summary.AvgGameMoveCount, 0.0)
}

type recordingListener struct {
	finished int
}

func (r *recordingListener) OnGameFinished(int, string, int) {
	r.finished++
}

func TestArenaNotifiesListenerPerGame(t *testing.T) {
	cfg := Config{Name: "p", MovetimeMs: -1, MaxRollouts: 10}
	arena := NewArena(3, cfg, cfg, 3)
	arena.Rng = rand.New(rand.NewSource(3))
	rec := &recordingListener{}
	arena.Listener = rec

	arena.Run()
	assert.Equal(t, 3, rec.finished)
}

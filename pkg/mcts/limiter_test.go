package mcts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLimiterStopsOnRolloutCap(t *testing.T) {
	l := NewLimiter(-1, 10)
	l.Reset()
	count := 0
	for l.Ok() {
		l.Tick()
		count++
	}
	assert.Equal(t, 10, count)
}

func TestLimiterStopsOnMovetime(t *testing.T) {
	l := NewLimiter(10, 0)
	l.Reset()
	for l.Ok() {
		l.Tick()
		if l.Rollouts() > 1_000_000 {
			t.Fatal("limiter did not honor movetime")
		}
	}
	assert.GreaterOrEqual(t, l.Elapsed(), 9)
}

func TestLimiterSetStop(t *testing.T) {
	l := NewLimiter(5_000, 0)
	l.Reset()
	assert.True(t, l.Ok())
	l.SetStop(true)
	assert.False(t, l.Ok())
}

func TestLimiterResetClearsCounters(t *testing.T) {
	l := NewLimiter(-1, 5)
	l.Reset()
	for l.Ok() {
		l.Tick()
	}
	assert.Equal(t, 5, l.Rollouts())

	l.Reset()
	assert.Equal(t, 0, l.Rollouts())
	assert.Less(t, l.Elapsed(), 5)
}

package mcts

// Limiter bounds a search loop by wall-clock movetime, and by a hard
// iteration cap used only so a pathological deadline (0ms, a clock that
// never advances in a test) cannot spin forever. Unlike the teacher's
// Limiter, there is no memory/depth/cycles interplay and no StopReason
// bitmask: the search is single-threaded and stops for exactly one
// reason at a time.
type Limiter struct {
	timer      *_Timer
	maxRollout int
	rollouts   int
	stop       bool
}

// DefaultMaxRollouts caps a single search call so a zero or
// already-elapsed deadline still terminates instead of looping forever
// on a clock that hasn't ticked yet.
const DefaultMaxRollouts = 2_000_000

// NewLimiter creates a limiter bound to movetimeMs milliseconds of wall
// clock. A negative movetimeMs disables the deadline and relies solely
// on maxRollouts (0 means DefaultMaxRollouts).
func NewLimiter(movetimeMs int, maxRollouts int) *Limiter {
	if maxRollouts <= 0 {
		maxRollouts = DefaultMaxRollouts
	}
	l := &Limiter{timer: _NewTimer(), maxRollout: maxRollouts}
	l.timer.Movetime(movetimeMs)
	return l
}

// Reset restarts the deadline and iteration counter; call once before
// a Driver run.
func (l *Limiter) Reset() {
	l.timer.Reset()
	l.rollouts = 0
	l.stop = false
}

// SetStop requests the loop to end before its next Ok() check, e.g. in
// response to a context cancellation observed by the caller.
func (l *Limiter) SetStop(v bool) {
	l.stop = v
}

// Ok reports whether the loop may run another rollout. Call this, not
// the timer directly, since it also owns the rollout counter.
func (l *Limiter) Ok() bool {
	if l.stop || l.timer.IsEnd() || l.rollouts >= l.maxRollout {
		return false
	}
	return true
}

// Tick records that one rollout has completed.
func (l *Limiter) Tick() {
	l.rollouts++
}

// Rollouts returns the number of completed rollouts since Reset.
func (l *Limiter) Rollouts() int {
	return l.rollouts
}

// Elapsed returns milliseconds since Reset.
func (l *Limiter) Elapsed() int {
	return l.timer.Elapsed()
}

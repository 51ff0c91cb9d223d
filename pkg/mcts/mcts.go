// Package mcts implements a single-threaded Monte Carlo tree search
// over a Hex position. There is no tree reuse between decisions, no
// transposition table, and no parallel search: each call to
// Driver.Search grows a fresh tree until its Limiter says stop, then
// returns the root child with the highest mean reward.
package mcts

import (
	"math/rand"
	"time"

	"github.com/hexmind/hexengine/pkg/hexboard"
)

// Config tunes one search call.
type Config struct {
	// ExplorationParam is UCB1's c. Zero means DefaultExploration.
	ExplorationParam float64
	// NeighborhoodRadius bounds EXPAND/SIMULATE's candidate moves to
	// cells within this hex-distance of an existing stone. Zero means
	// DefaultNeighborhoodRadius.
	NeighborhoodRadius int
	// MovetimeMs is the wall-clock rollout budget. Negative disables
	// the deadline (only MaxRollouts then bounds the loop).
	MovetimeMs int
	// MaxRollouts caps the loop regardless of movetime; zero means
	// DefaultMaxRollouts.
	MaxRollouts int
	// Rng drives move sampling; nil gets a time-seeded one.
	Rng *rand.Rand
}

func (c Config) withDefaults() Config {
	if c.ExplorationParam == 0 {
		c.ExplorationParam = DefaultExploration
	}
	if c.NeighborhoodRadius == 0 {
		c.NeighborhoodRadius = DefaultNeighborhoodRadius
	}
	if c.Rng == nil {
		c.Rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return c
}

// Driver runs the SELECT/EXPAND/SIMULATE/BACKPROP loop for one
// decision. Construct a fresh Driver (or call Search repeatedly; it is
// stateless besides the Limiter, which Reset rewinds) per move.
type Driver struct {
	cfg     Config
	limiter *Limiter
}

// NewDriver builds a Driver from cfg, filling unset fields with
// defaults.
func NewDriver(cfg Config) *Driver {
	cfg = cfg.withDefaults()
	return &Driver{
		cfg:     cfg,
		limiter: NewLimiter(cfg.MovetimeMs, cfg.MaxRollouts),
	}
}

// Search grows a tree rooted at board's current position with toMove
// to play, returning the root (for stats/logging) and the recommended
// move: the root child with the highest mean reward. ok is false if
// board is already terminal, or if the Limiter stopped the loop before
// any child of the root was expanded.
func (d *Driver) Search(board *hexboard.Board, toMove hexboard.Color) (root *Node, move hexboard.Cell, ok bool) {
	root = newRoot(toMove, candidateMoves(board, d.cfg.NeighborhoodRadius), board.IsTerminal())
	if root.Terminal() {
		return root, hexboard.Cell{}, false
	}

	d.limiter.Reset()
	for d.limiter.Ok() {
		d.iterate(root, board, toMove)
		d.limiter.Tick()
	}

	if len(root.Children) == 0 {
		return root, hexboard.Cell{}, false
	}
	best := BestChild(root, BestChildHighestReward)
	return root, best.MoveIn, true
}

// Rollouts returns how many simulations the most recent Search ran.
func (d *Driver) Rollouts() int {
	return d.limiter.Rollouts()
}

// Elapsed returns the milliseconds since the most recent Search started.
func (d *Driver) Elapsed() int {
	return d.limiter.Elapsed()
}

func (d *Driver) iterate(root *Node, rootBoard *hexboard.Board, rootPlayer hexboard.Color) {
	working := rootBoard.Clone()
	node := root

	// SELECT: descend by UCB1 while every move at this depth already
	// has a child.
	for !node.Terminal() && node.FullyExpanded() && len(node.Children) > 0 {
		node = selectChild(node, d.cfg.ExplorationParam)
		working.Place(node.MoveIn, node.Mover)
	}

	// EXPAND: if this node still has untried moves, play one of them.
	if !node.Terminal() && !node.FullyExpanded() {
		idx := d.cfg.Rng.Intn(len(node.Untried))
		move := node.PopUntried(idx)
		mover := node.Mover.Opponent()
		working.Place(move, mover)
		terminal := working.IsTerminal()
		var untried []hexboard.Cell
		if !terminal {
			untried = candidateMoves(working, d.cfg.NeighborhoodRadius)
		}
		node = node.AddChild(mover, move, untried, terminal)
	}

	// SIMULATE: random playout to a terminal position. node.Mover just
	// moved, so node.Mover.Opponent() moves next in the rollout.
	winner := d.rollout(working, node.Mover.Opponent())

	// Reward is computed once, from rootPlayer's perspective, per
	// spec.md §4.3: win 1.0, loss -1.0, no winner (exhausted empties)
	// 0.0.
	var reward float64
	switch winner {
	case rootPlayer:
		reward = 1.0
	case rootPlayer.Opponent():
		reward = -1.0
	default:
		reward = 0.0
	}

	// BACKPROP: the same reward value is added, unchanged, to every
	// node from the simulated node up to the root. There is no
	// negation per ply: Q is always root-relative, never mover-relative.
	for n := node; n != nil; n = n.Parent {
		n.N++
		n.Q += reward
	}
}

func (d *Driver) rollout(b *hexboard.Board, mover hexboard.Color) hexboard.Color {
	for !b.IsTerminal() {
		moves := candidateMoves(b, d.cfg.NeighborhoodRadius)
		if len(moves) == 0 {
			break
		}
		move := moves[d.cfg.Rng.Intn(len(moves))]
		b.Place(move, mover)
		mover = mover.Opponent()
	}
	return b.Winner()
}

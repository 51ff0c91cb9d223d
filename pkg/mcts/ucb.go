package mcts

import "math"

// DefaultExploration is the UCB1 constant used unless a caller sets a
// different one via Config.ExplorationParam. sqrt(2) is the spec's
// fixed default; rewards are root-relative in [-1, 1] (win/loss/no
// winner), not the textbook [0, 1] the constant was first derived for.
const DefaultExploration = math.Sqrt2

// selectChild walks to the most promising child by UCB1, returning an
// unvisited child immediately if one exists (it dominates any UCB1
// score, since its exploration term is infinite).
func selectChild(parent *Node, c float64) *Node {
	lnN := math.Log(float64(parent.N))
	bestScore := math.Inf(-1)
	best := 0

	for i, child := range parent.Children {
		if child.N == 0 {
			return child
		}
		exploit := child.AvgQ()
		explore := c * math.Sqrt(lnN/float64(child.N))
		score := exploit + explore
		if score > bestScore {
			bestScore = score
			best = i
		}
	}
	return parent.Children[best]
}

// BestChildPolicy selects the move Driver ultimately recommends from
// the root's children.
type BestChildPolicy int

const (
	// BestChildMostVisits picks the most-visited child, the standard
	// MCTS choice: visit count is a more robust strength signal than
	// mean reward on a partially-explored tree.
	BestChildMostVisits BestChildPolicy = iota
	// BestChildHighestReward picks the child with the best mean reward,
	// ignoring visit count.
	BestChildHighestReward
)

// BestChild picks a child of root according to policy. It panics if
// root has no children, which would mean Driver never ran a rollout.
func BestChild(root *Node, policy BestChildPolicy) *Node {
	if len(root.Children) == 0 {
		panic("mcts: BestChild called on a root with no children")
	}
	best := root.Children[0]
	for i := 1; i < len(root.Children); i++ {
		child := root.Children[i]
		switch policy {
		case BestChildHighestReward:
			if child.AvgQ() > best.AvgQ() {
				best = child
			}
		default:
			if child.N > best.N {
				best = child
			}
		}
	}
	return best
}

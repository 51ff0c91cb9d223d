package mcts

import "github.com/hexmind/hexengine/pkg/hexboard"

// Node is one tree node. Children are stored as a slice of pointers,
// each its own allocation: growing a node's Children slice (another
// sibling expanded later) only ever copies pointer values, never the
// pointed-to Node structs, so Parent pointers held by grandchildren
// stay valid no matter how many more siblings get added afterward. A
// slice-of-values arena would break this — appending a new sibling can
// reallocate the backing array, silently orphaning every earlier
// child's address and, with it, every stale Parent pointer already
// handed to its own children.
type Node struct {
	Mover    hexboard.Color // color that played MoveIn to reach this node
	MoveIn   hexboard.Cell  // the move that produced this node from its parent
	Parent   *Node
	Children []*Node
	N        int
	Q        float64 // cumulative reward, from the root player's perspective
	Untried  []hexboard.Cell
	terminal bool
}

// newRoot creates the root of a search tree. Root has no incoming move;
// Mover is set to toMove's opponent so that AddChild's "mover :=
// node.Mover.Opponent()" rule assigns the root's own children to
// toMove, the color actually on the move at the root position.
func newRoot(toMove hexboard.Color, untried []hexboard.Cell, terminal bool) *Node {
	return &Node{
		Mover:    toMove.Opponent(),
		Untried:  untried,
		terminal: terminal,
	}
}

// Terminal reports whether this node's board position ends the game.
func (n *Node) Terminal() bool {
	return n.terminal
}

// FullyExpanded reports whether every legal move from this node has a
// corresponding child already.
func (n *Node) FullyExpanded() bool {
	return len(n.Untried) == 0
}

// PopUntried removes and returns one untried move, chosen by the
// caller's index (the caller picks randomly).
func (n *Node) PopUntried(i int) hexboard.Cell {
	move := n.Untried[i]
	last := len(n.Untried) - 1
	n.Untried[i] = n.Untried[last]
	n.Untried = n.Untried[:last]
	return move
}

// AddChild allocates a new child played by mover via move and appends
// it to n's children, returning the (permanently stable) pointer.
func (n *Node) AddChild(mover hexboard.Color, move hexboard.Cell, untried []hexboard.Cell, terminal bool) *Node {
	child := &Node{
		Mover:    mover,
		MoveIn:   move,
		Parent:   n,
		Untried:  untried,
		terminal: terminal,
	}
	n.Children = append(n.Children, child)
	return child
}

// AvgQ returns the node's mean reward from the root player's
// perspective, 0 for an unvisited node.
func (n *Node) AvgQ() float64 {
	if n.N == 0 {
		return 0
	}
	return n.Q / float64(n.N)
}

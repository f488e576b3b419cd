package solitaire

/*
	Node is one configuration in the search tree. The parent link only
	points back up; a node's children belong to it alone.
*/
type Node struct {
	board    *Board
	key      string
	move     *Jump
	parent   *Node
	depth    int
	lazy     bool
	built    bool
	children []*Node
}

// NewRoot builds the tree rooted at board. Eager expansion materialises
// every reachable configuration before returning.
func NewRoot(board *Board, expansion Expansion) *Node {
	n := &Node{
		board: board,
		key:   board.Key(),
		lazy:  expansion == Lazy,
	}
	if !n.lazy {
		n.grow()
	}
	return n
}

func newChild(s Successor, parent *Node) *Node {
	move := s.Jump
	n := &Node{
		board:  s.Board,
		key:    s.Board.Key(),
		move:   &move,
		parent: parent,
		depth:  parent.depth + 1,
		lazy:   parent.lazy,
	}
	if !n.lazy {
		n.grow()
	}
	return n
}

func (n *Node) grow() {
	successors := n.board.Successors()
	n.children = make([]*Node, 0, len(successors))
	for _, s := range successors {
		n.children = append(n.children, newChild(s, n))
	}
	n.built = true
}

// Children returns the nodes for every legal jump, in generation order.
// A lazy node computes them on first call and keeps them.
func (n *Node) Children() []*Node {
	if !n.built {
		n.grow()
	}
	return n.children
}

// Expanded reports whether the children have been materialised.
func (n *Node) Expanded() bool {
	return n.built
}

func (n *Node) Board() *Board {
	return n.board
}

func (n *Node) Key() string {
	return n.key
}

// Move returns the jump that produced n, or false at the root.
func (n *Node) Move() (Jump, bool) {
	if n.move == nil {
		return Jump{}, false
	}
	return *n.move, true
}

func (n *Node) Parent() *Node {
	return n.parent
}

func (n *Node) Depth() int {
	return n.depth
}

func (n *Node) Solved() bool {
	return n.board.Solved()
}

// Path returns the ancestors of n from the root down to n itself.
func (n *Node) Path() []*Node {
	path := make([]*Node, n.depth+1)
	for cur := n; cur != nil; cur = cur.parent {
		path[cur.depth] = cur
	}
	return path
}

// Nodes counts n and every descendant, expanding lazy nodes on the way.
func (n *Node) Nodes() int {
	total := 1
	for _, c := range n.Children() {
		total += c.Nodes()
	}
	return total
}

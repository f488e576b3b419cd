package solitaire

type discipline int

const (
	fifo discipline = iota
	lifo
)

/*
	frontier is the open set. Nodes are taken from the front; fifo appends
	new batches at the back, lifo puts the whole batch at the front in
	generation order. Membership is by configuration key.
*/
type frontier struct {
	order discipline
	nodes []*Node
	head  int
	keys  map[string]struct{}
}

func newFrontier(order discipline) *frontier {
	return &frontier{
		order: order,
		keys:  make(map[string]struct{}),
	}
}

func (f *frontier) empty() bool {
	return f.head == len(f.nodes)
}

func (f *frontier) contains(n *Node) bool {
	_, ok := f.keys[n.Key()]
	return ok
}

// reserve marks n's configuration as open ahead of pushAll, so later
// siblings with the same layout are filtered.
func (f *frontier) reserve(n *Node) {
	f.keys[n.Key()] = struct{}{}
}

func (f *frontier) push(n *Node) {
	f.reserve(n)
	f.pushAll([]*Node{n})
}

// pushAll adds nodes already passed to reserve.
func (f *frontier) pushAll(batch []*Node) {
	if f.order == fifo {
		f.nodes = append(f.nodes, batch...)
		return
	}
	// the live stack is nodes[head:], with its front at the end
	for i := len(batch) - 1; i >= 0; i-- {
		f.nodes = append(f.nodes, batch[i])
	}
}

func (f *frontier) pop() *Node {
	var n *Node
	if f.order == fifo {
		n = f.nodes[f.head]
		f.nodes[f.head] = nil
		f.head++
	} else {
		last := len(f.nodes) - 1
		n = f.nodes[last]
		f.nodes[last] = nil
		f.nodes = f.nodes[:last]
	}
	delete(f.keys, n.Key())
	return n
}

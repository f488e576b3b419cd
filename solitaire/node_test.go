package solitaire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEagerTreeIsMaterialised(t *testing.T) {
	b, err := NewBoard(5)
	require.NoError(t, err)

	root := NewRoot(b, Eager)
	assert.True(t, root.Expanded())
	assert.Equal(t, 0, root.Depth())
	assert.Nil(t, root.Parent())
	_, ok := root.Move()
	assert.False(t, ok)

	var walk func(n *Node)
	walk = func(n *Node) {
		require.True(t, n.Expanded())
		for _, c := range n.children {
			walk(c)
		}
	}
	walk(root)

	assert.Equal(t, 323873, root.Nodes())
}

func TestLazyTreeGrowsOnDemand(t *testing.T) {
	b, err := NewBoard(5)
	require.NoError(t, err)

	root := NewRoot(b, Lazy)
	assert.False(t, root.Expanded())

	children := root.Children()
	require.Len(t, children, 2)
	assert.True(t, root.Expanded())
	for _, c := range children {
		assert.False(t, c.Expanded())
	}

	// memoised
	again := root.Children()
	assert.Same(t, children[0], again[0])
	assert.Same(t, children[1], again[1])
}

func TestLazyAndEagerAgree(t *testing.T) {
	b, err := NewBoard(5)
	require.NoError(t, err)

	eager := NewRoot(b, Eager)
	lazy := NewRoot(b, Lazy)

	var compare func(e, l *Node, depth int)
	compare = func(e, l *Node, depth int) {
		require.Equal(t, e.Key(), l.Key())
		require.Equal(t, e.Depth(), l.Depth())
		if depth == 0 {
			return
		}
		ec, lc := e.Children(), l.Children()
		require.Len(t, lc, len(ec))
		for i := range ec {
			compare(ec[i], lc[i], depth-1)
		}
	}
	compare(eager, lazy, 4)
}

func TestChildren(t *testing.T) {
	b, err := NewBoard(5)
	require.NoError(t, err)
	root := NewRoot(b, Lazy)

	moves := b.Moves()
	children := root.Children()
	require.Len(t, children, len(moves))
	for i, c := range children {
		assert.Same(t, root, c.Parent())
		assert.Equal(t, 1, c.Depth())
		assert.True(t, b.Apply(moves[i]).Equal(c.Board()))

		m, ok := c.Move()
		require.True(t, ok)
		assert.Equal(t, moves[i], m)
	}
}

func TestPath(t *testing.T) {
	b, err := NewBoard(5)
	require.NoError(t, err)
	root := NewRoot(b, Lazy)

	n := root
	for i := 0; i < 4; i++ {
		children := n.Children()
		require.NotEmpty(t, children)
		n = children[len(children)-1]
	}

	path := n.Path()
	require.Len(t, path, n.Depth()+1)
	assert.Same(t, root, path[0])
	assert.Same(t, n, path[len(path)-1])
	for i := 1; i < len(path); i++ {
		assert.Same(t, path[i-1], path[i].Parent())
		assert.Equal(t, i, path[i].Depth())
	}

	assert.Equal(t, []*Node{root}, root.Path())
}

func TestLeafHasNoChildren(t *testing.T) {
	b := parse(t, "X\nX X\nX O X\nX X X X\nX X X X X")
	root := NewRoot(b, Eager)

	assert.True(t, root.Solved())
	assert.Empty(t, root.Children())
	assert.Equal(t, 1, root.Nodes())
}

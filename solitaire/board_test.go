package solitaire

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidSize(t *testing.T) {
	valid := map[int]bool{5: true, 9: true, 13: true, 17: true}
	for size := -1; size <= 20; size++ {
		assert.Equal(t, valid[size], ValidSize(size), "size %d", size)

		b, err := NewBoard(size)
		if valid[size] {
			require.NoError(t, err, "size %d", size)
			assert.Equal(t, size, b.Size())
		} else {
			assert.ErrorIs(t, err, ErrInvalidSize, "size %d", size)
			assert.Nil(t, b)
		}
	}
}

func TestNewBoardLayout(t *testing.T) {
	for _, size := range []int{5, 9, 13, 17} {
		b, err := NewBoard(size)
		require.NoError(t, err)

		playable := size * (size + 1) / 2
		assert.Equal(t, playable-1, b.Count(Marble), "size %d", size)
		assert.Equal(t, 1, b.Count(Empty), "size %d", size)
		assert.Equal(t, size*size-playable, b.Count(Void), "size %d", size)

		c := Center(size)
		assert.Equal(t, Empty, b.At(c.Row, c.Col))
		for row := 0; row < size; row++ {
			for col := row + 1; col < size; col++ {
				assert.Equal(t, Void, b.At(row, col))
			}
		}
		assert.False(t, b.Solved())
	}
}

func TestCenter(t *testing.T) {
	assert.Equal(t, Position{Row: 2, Col: 1}, Center(5))
	assert.Equal(t, Position{Row: 4, Col: 2}, Center(9))
	assert.Equal(t, Position{Row: 6, Col: 3}, Center(13))
}

func TestAtOutsideGrid(t *testing.T) {
	b, err := NewBoard(5)
	require.NoError(t, err)

	assert.Equal(t, Void, b.At(-1, 0))
	assert.Equal(t, Void, b.At(0, -1))
	assert.Equal(t, Void, b.At(5, 0))
	assert.Equal(t, Void, b.At(4, 5))
}

func TestRender(t *testing.T) {
	b, err := NewBoard(5)
	require.NoError(t, err)

	want := "     O \n" +
		"    O O \n" +
		"   O X O \n" +
		"  O O O O \n" +
		" O O O O O \n"
	assert.Equal(t, want, b.String())

	lines := b.Rows()
	require.Len(t, lines, 5)
	for i, line := range lines {
		indent := len(line) - len(strings.TrimLeft(line, " "))
		assert.Equal(t, 5-i, indent)
	}
	assert.Equal(t, 1, strings.Count(b.String(), "X"))
	assert.Equal(t, 14, strings.Count(b.String(), "O"))
}

func TestParseBoard(t *testing.T) {
	b, err := NewBoard(9)
	require.NoError(t, err)

	parsed, err := ParseBoard(b.String())
	require.NoError(t, err)
	assert.True(t, b.Equal(parsed))
	assert.Equal(t, b.Key(), parsed.Key())

	parsed, err = ParseBoard(`
    X
   O o
  X X X
 X X X X
X X X X X
`)
	require.NoError(t, err)
	assert.Equal(t, 2, parsed.Count(Marble))
	assert.Equal(t, Marble, parsed.At(1, 0))
	assert.Equal(t, Marble, parsed.At(1, 1))
	assert.Equal(t, Empty, parsed.At(2, 1))

	parsed, err = ParseBoard("x\nO x\nx x x\nx x x x\nx x x x x")
	require.NoError(t, err)
	assert.Equal(t, 1, parsed.Count(Marble))
	assert.Equal(t, Empty, parsed.At(1, 1))
}

func TestParseBoardErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
		err  error
	}{
		{"empty", "", ErrInvalidSize},
		{"too few rows", "O\nO O\nO X O\n", ErrInvalidSize},
		{"short row", "O\nO O\nO X\nO O O O\nO O O O O\n", ErrInvalidBoard},
		{"long row", "O\nO O O\nO X O\nO O O O\nO O O O O\n", ErrInvalidBoard},
		{"bad token", "O\nO O\nO X O\nO O Q O\nO O O O O\n", ErrInvalidBoard},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseBoard(tc.text)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestSolved(t *testing.T) {
	one, err := ParseBoard("X\nX X\nX O X\nX X X X\nX X X X X")
	require.NoError(t, err)
	assert.True(t, one.Solved())

	none, err := ParseBoard("X\nX X\nX X X\nX X X X\nX X X X X")
	require.NoError(t, err)
	assert.False(t, none.Solved())

	two, err := ParseBoard("O\nX X\nX X X\nX X X X\nX X X X O")
	require.NoError(t, err)
	assert.False(t, two.Solved())
}

func TestEqual(t *testing.T) {
	a, err := NewBoard(5)
	require.NoError(t, err)
	b, err := NewBoard(5)
	require.NoError(t, err)
	c, err := NewBoard(9)
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))

	moved := a.Apply(a.Moves()[0])
	assert.False(t, a.Equal(moved))
	assert.NotEqual(t, a.Key(), moved.Key())
}

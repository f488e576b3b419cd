package solitaire

import (
	"errors"
	"fmt"
	"strings"
)

const MinSize = 5

var (
	ErrInvalidSize  = errors.New("board size must be an integer of 5 or greater in the set of odd numbers 4n - 3")
	ErrInvalidBoard = errors.New("invalid board layout")
)

type Cell uint8

const (
	Empty Cell = iota
	Marble
	Void
)

func (c Cell) String() string {
	switch c {
	case Empty:
		return "empty"
	case Marble:
		return "marble"
	default:
		return "void"
	}
}

/*
	The board is an equilateral triangle stored as a right triangle in a
	size x size grid, corner in the bottom left. A cell is playable iff
	col <= row; everything to its right is Void.
*/
type Board struct {
	size  int
	cells []Cell
}

// ValidSize reports whether size has a center cell for the starting vacancy.
func ValidSize(size int) bool {
	n := (size + 3) / 4
	return size >= MinSize && size%2 == 1 && size == 4*n-3
}

// Center returns the starting vacancy for a board of the given size.
func Center(size int) Position {
	row := size / 2
	return Position{Row: row, Col: row / 2}
}

// NewBoard returns the starting layout: every playable cell holds a marble
// except the center.
func NewBoard(size int) (*Board, error) {
	if !ValidSize(size) {
		return nil, fmt.Errorf("size %d: %w", size, ErrInvalidSize)
	}

	b := &Board{
		size:  size,
		cells: make([]Cell, size*size),
	}
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			if col <= row {
				b.set(row, col, Marble)
			} else {
				b.set(row, col, Void)
			}
		}
	}

	c := Center(size)
	b.set(c.Row, c.Col, Empty)
	return b, nil
}

/*
	ParseBoard reads the triangle produced by String back into a board.
	Blank lines are ignored, every other line is one row of O/X tokens
	and row r must hold exactly r+1 of them.
*/
func ParseBoard(text string) (*Board, error) {
	var rows [][]string
	for _, line := range strings.Split(text, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		rows = append(rows, fields)
	}

	size := len(rows)
	if !ValidSize(size) {
		return nil, fmt.Errorf("%d rows: %w", size, ErrInvalidSize)
	}

	b := &Board{
		size:  size,
		cells: make([]Cell, size*size),
	}
	for row, tokens := range rows {
		if len(tokens) != row+1 {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", row, len(tokens), row+1, ErrInvalidBoard)
		}
		for col := 0; col < size; col++ {
			if col > row {
				b.set(row, col, Void)
				continue
			}
			switch tokens[col] {
			case "O", "o":
				b.set(row, col, Marble)
			case "X", "x":
				b.set(row, col, Empty)
			default:
				return nil, fmt.Errorf("row %d col %d: unknown cell %q: %w", row, col, tokens[col], ErrInvalidBoard)
			}
		}
	}

	return b, nil
}

func (b *Board) Size() int {
	return b.size
}

// At returns Void for coordinates outside the grid.
func (b *Board) At(row, col int) Cell {
	if row < 0 || col < 0 || row >= b.size || col >= b.size {
		return Void
	}
	return b.cells[row*b.size+col]
}

func (b *Board) set(row, col int, c Cell) {
	b.cells[row*b.size+col] = c
}

func (b *Board) Count(c Cell) int {
	n := 0
	for _, cell := range b.cells {
		if cell == c {
			n++
		}
	}
	return n
}

// Solved reports whether exactly one marble is left.
func (b *Board) Solved() bool {
	marbles := 0
	for _, cell := range b.cells {
		if cell == Marble {
			marbles++
		}
		if marbles > 1 {
			return false
		}
	}
	return marbles == 1
}

// Key identifies the configuration; two boards share a key iff they are
// equal cell by cell.
func (b *Board) Key() string {
	key := make([]byte, len(b.cells))
	for i, cell := range b.cells {
		key[i] = byte(cell)
	}
	return string(key)
}

func (b *Board) Equal(o *Board) bool {
	if b.size != o.size {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

func (b *Board) clone() *Board {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return &Board{
		size:  b.size,
		cells: cells,
	}
}

// Rows renders the board one line per row, without the trailing newline.
func (b *Board) Rows() []string {
	rows := make([]string, 0, b.size)
	for row := 0; row < b.size; row++ {
		var sb strings.Builder
		sb.WriteString(strings.Repeat(" ", b.size-row))
		for col := 0; col < b.size; col++ {
			switch b.At(row, col) {
			case Empty:
				sb.WriteString("X ")
			case Marble:
				sb.WriteString("O ")
			}
		}
		rows = append(rows, sb.String())
	}
	return rows
}

// String draws the triangle. X is an empty space, O a marble.
func (b *Board) String() string {
	var sb strings.Builder
	for _, row := range b.Rows() {
		sb.WriteString(row)
		sb.WriteByte('\n')
	}
	return sb.String()
}

package solitaire

import (
	"fmt"
)

type Direction int8

const (
	Left Direction = iota
	Right
	UpRight
	DownRight
	UpLeft
	DownLeft
)

// Directions lists every direction in generation order.
var Directions = [...]Direction{Left, Right, UpRight, DownRight, UpLeft, DownLeft}

var directionNames = map[Direction]string{
	Left:      "Left",
	Right:     "Right",
	UpRight:   "UpRight",
	DownRight: "DownRight",
	UpLeft:    "UpLeft",
	DownLeft:  "DownLeft",
}

func (d Direction) String() string {
	name, ok := directionNames[d]
	if !ok {
		return fmt.Sprintf("Direction(%d)", int8(d))
	}
	return name
}

func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Direction) UnmarshalText(text []byte) error {
	for dir, name := range directionNames {
		if name == string(text) {
			*d = dir
			return nil
		}
	}
	return fmt.Errorf("unknown direction %q", text)
}

/*
	Delta is the grid step for one cell in direction d. Up and down on the
	grid are the triangle's diagonals: (-1, 0) is up and to the right on the
	drawn triangle, (+1, 0) down and to the left.
*/
func (d Direction) Delta() (int, int) {
	switch d {
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	case UpRight:
		return -1, 0
	case DownRight:
		return 1, 1
	case UpLeft:
		return -1, -1
	case DownLeft:
		return 1, 0
	}
	return 0, 0
}

type Position struct {
	Row int `json:"row" yaml:"row"`
	Col int `json:"col" yaml:"col"`
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}

// Jump is a single move. It is only valid against the board it came from.
type Jump struct {
	Direction Direction `json:"direction" yaml:"direction"`
	From      Position  `json:"from" yaml:"from"`
	Over      Position  `json:"over" yaml:"over"`
	To        Position  `json:"to" yaml:"to"`
}

func (j Jump) String() string {
	return fmt.Sprintf("%s, {From: %d, %d}, {Over: %d, %d}, {To: %d, %d}",
		j.Direction, j.From.Row, j.From.Col, j.Over.Row, j.Over.Col, j.To.Row, j.To.Col)
}

// Moves lists every legal jump, row-major over the source marble and then
// in Directions order.
func (b *Board) Moves() []Jump {
	moves := []Jump{}
	for row := 0; row < b.size; row++ {
		for col := 0; col < b.size; col++ {
			cell := b.At(row, col)
			// voids only trail a row
			if cell == Void {
				break
			}
			if cell == Marble {
				moves = b.appendMoves(row, col, moves)
			}
		}
	}
	return moves
}

func (b *Board) appendMoves(row, col int, moves []Jump) []Jump {
	hitsTop := row < 2
	hitsBottom := row > b.size-3
	hitsLeft := col < 2
	hitsRight := col > b.size-3

	for _, d := range Directions {
		var blocked bool
		switch d {
		case Left:
			blocked = hitsLeft
		case Right:
			blocked = hitsRight
		case UpRight:
			blocked = hitsTop
		case DownRight:
			// hitsRight implies hitsBottom on playable cells; kept so each
			// diagonal lists both edges it crosses
			blocked = hitsBottom || hitsRight
		case UpLeft:
			blocked = hitsTop || hitsLeft
		case DownLeft:
			blocked = hitsBottom
		}
		if blocked {
			continue
		}

		dr, dc := d.Delta()
		over := Position{Row: row + dr, Col: col + dc}
		to := Position{Row: row + 2*dr, Col: col + 2*dc}
		if b.At(over.Row, over.Col) != Marble || b.At(to.Row, to.Col) != Empty {
			continue
		}

		moves = append(moves, Jump{
			Direction: d,
			From:      Position{Row: row, Col: col},
			Over:      over,
			To:        to,
		})
	}

	return moves
}

// Apply returns a new board with j played. j must come from b.Moves().
func (b *Board) Apply(j Jump) *Board {
	next := b.clone()
	next.set(j.From.Row, j.From.Col, Empty)
	next.set(j.Over.Row, j.Over.Col, Empty)
	next.set(j.To.Row, j.To.Col, Marble)
	return next
}

// Successor pairs a legal jump with the board it produces.
type Successor struct {
	Jump  Jump
	Board *Board
}

// Successors generates and applies every legal jump in one step.
func (b *Board) Successors() []Successor {
	moves := b.Moves()
	next := make([]Successor, 0, len(moves))
	for _, m := range moves {
		next = append(next, Successor{Jump: m, Board: b.Apply(m)})
	}
	return next
}

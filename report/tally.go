package report

import (
	"github.com/garlicgarrison/marble-solitaire/solitaire"
)

// Counts is the number of jumps made in each direction.
type Counts [len(solitaire.Directions)]int

// Tally counts the moves along a solution path by direction.
func Tally(sol solitaire.Solution) Counts {
	var c Counts
	for _, step := range sol.Steps {
		if step.Move == nil {
			continue
		}
		d := step.Move.Direction
		if d >= 0 && int(d) < len(c) {
			c[d]++
		}
	}
	return c
}

func (c Counts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// Named drops the directions never used and keys the rest by name.
func (c Counts) Named() map[string]int {
	named := make(map[string]int)
	for _, d := range solitaire.Directions {
		if c[d] > 0 {
			named[d.String()] = c[d]
		}
	}
	return named
}

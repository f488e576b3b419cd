package solitaire

// Step is one board on the path to a solution.
type Step struct {
	Depth int      `json:"depth" yaml:"depth"`
	Move  *Jump    `json:"move,omitempty" yaml:"move,omitempty"`
	Board []string `json:"board" yaml:"board"`
}

// Solution is the serialisable result of a solve.
type Solution struct {
	Size     int      `json:"size" yaml:"size"`
	Strategy Strategy `json:"strategy" yaml:"strategy"`
	Solved   bool     `json:"solved" yaml:"solved"`
	Depth    int      `json:"depth" yaml:"depth"`
	Steps    []Step   `json:"steps,omitempty" yaml:"steps,omitempty"`
	Stats    Stats    `json:"stats" yaml:"stats"`
}

// NewSolution describes the path to n. A nil n gives an unsolved Solution.
func NewSolution(size int, strategy Strategy, n *Node, stats Stats) Solution {
	sol := Solution{
		Size:     size,
		Strategy: strategy,
		Stats:    stats,
	}
	if n == nil {
		return sol
	}

	sol.Solved = n.Solved()
	sol.Depth = n.Depth()
	for _, node := range n.Path() {
		step := Step{
			Depth: node.Depth(),
			Board: node.Board().Rows(),
		}
		if m, ok := node.Move(); ok {
			step.Move = &m
		}
		sol.Steps = append(sol.Steps, step)
	}
	return sol
}

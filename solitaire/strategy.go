package solitaire

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownStrategy = errors.New("invalid solving strategy")

// Strategy is the order in which the solver walks the tree.
type Strategy int

const (
	BreadthFirst Strategy = iota
	DepthFirst
	IterativeDeepening
)

var strategyNames = map[Strategy]string{
	BreadthFirst:       "BreadthFirst",
	DepthFirst:         "DepthFirst",
	IterativeDeepening: "IterativeDeepening",
}

// ParseStrategy accepts the short and long names, case-insensitively.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bfs", "breadthfirst", "breadthfirstsearch", "breadth-first":
		return BreadthFirst, nil
	case "dfs", "depthfirst", "depthfirstsearch", "depth-first":
		return DepthFirst, nil
	case "ids", "iterativedeepening", "iterative-deepening":
		return IterativeDeepening, nil
	}
	return BreadthFirst, fmt.Errorf("%q: %w", name, ErrUnknownStrategy)
}

func (s Strategy) Valid() bool {
	_, ok := strategyNames[s]
	return ok
}

func (s Strategy) String() string {
	name, ok := strategyNames[s]
	if !ok {
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
	return name
}

func (s Strategy) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%s: %w", s, ErrUnknownStrategy)
	}
	return []byte(s.String()), nil
}

func (s *Strategy) UnmarshalText(text []byte) error {
	parsed, err := ParseStrategy(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func (s Strategy) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

func (s *Strategy) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var name string
	if err := unmarshal(&name); err != nil {
		return err
	}
	return s.UnmarshalText([]byte(name))
}

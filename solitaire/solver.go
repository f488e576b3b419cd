package solitaire

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Observer is told about search progress. Calls happen on the solving goroutine.
type Observer interface {
	Expanded(n *Node)
	Restarted(ceiling int)
}

type nopObserver struct{}

func (nopObserver) Expanded(*Node) {}
func (nopObserver) Restarted(int)  {}

// Stats describes the most recent Solve.
type Stats struct {
	Visited    int `json:"visited" yaml:"visited"`
	Expanded   int `json:"expanded" yaml:"expanded"`
	Duplicates int `json:"duplicates" yaml:"duplicates"`
	Restarts   int `json:"restarts" yaml:"restarts"`
	Ceiling    int `json:"ceiling,omitempty" yaml:"ceiling,omitempty"`
}

type Solver struct {
	strategy Strategy
	root     *Node
	log      logrus.FieldLogger
	observer Observer
	stats    Stats
}

type settings struct {
	board     *Board
	expansion Expansion
	log       logrus.FieldLogger
	observer  Observer
}

type Option func(*settings)

// WithBoard starts from a custom layout instead of the standard one. Its
// size must match the solver's.
func WithBoard(b *Board) Option {
	return func(s *settings) {
		s.board = b
	}
}

func WithExpansion(e Expansion) Option {
	return func(s *settings) {
		s.expansion = e
	}
}

func WithLogger(log logrus.FieldLogger) Option {
	return func(s *settings) {
		s.log = log
	}
}

func WithObserver(o Observer) Option {
	return func(s *settings) {
		s.observer = o
	}
}

/*
	New validates size and strategy and builds the search tree. With the
	default eager expansion the whole reachable tree exists once New
	returns; Solve only walks it.
*/
func New(size int, strategy Strategy, opts ...Option) (*Solver, error) {
	if !strategy.Valid() {
		return nil, fmt.Errorf("%s: %w", strategy, ErrUnknownStrategy)
	}

	cfg := settings{
		expansion: Eager,
		log:       logrus.StandardLogger(),
		observer:  nopObserver{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	board := cfg.board
	if board == nil {
		var err error
		board, err = NewBoard(size)
		if err != nil {
			return nil, err
		}
	} else if board.Size() != size {
		return nil, fmt.Errorf("board has size %d, solver wants %d: %w", board.Size(), size, ErrInvalidBoard)
	}

	return &Solver{
		strategy: strategy,
		root:     NewRoot(board, cfg.expansion),
		log:      cfg.log,
		observer: cfg.observer,
	}, nil
}

func (s *Solver) Strategy() Strategy {
	return s.strategy
}

func (s *Solver) Root() *Node {
	return s.root
}

func (s *Solver) Stats() Stats {
	return s.stats
}

// Solve returns the first solved node in strategy order, or nil when the
// frontier runs dry. No solution is not an error.
func (s *Solver) Solve() *Node {
	s.stats = Stats{}

	var found *Node
	switch s.strategy {
	case BreadthFirst:
		found, _ = s.search(fifo, 0)
	case DepthFirst:
		found, _ = s.search(lifo, 0)
	case IterativeDeepening:
		found = s.deepen()
	}

	entry := s.log.WithFields(logrus.Fields{
		"strategy": s.strategy,
		"visited":  s.stats.Visited,
		"expanded": s.stats.Expanded,
	})
	if found == nil {
		entry.Debug("no solution found")
	} else {
		entry.WithField("depth", found.Depth()).Debug("solution found")
	}
	return found
}

/*
	deepen restarts the depth-first search from the root, with fresh open
	and closed sets, each time it dequeues a node deeper than the ceiling.
	Nothing carries over between rounds.
*/
func (s *Solver) deepen() *Node {
	ceiling := 1
	for {
		s.stats.Ceiling = ceiling
		found, restart := s.search(lifo, ceiling)
		if !restart {
			return found
		}

		ceiling++
		s.stats.Restarts++
		s.log.WithField("ceiling", ceiling).Debug("restarting iterative deepening")
		s.observer.Restarted(ceiling)
	}
}

// search walks the tree from the root. A ceiling of 0 means unbounded;
// otherwise restart is true once a node deeper than ceiling is dequeued.
func (s *Solver) search(order discipline, ceiling int) (found *Node, restart bool) {
	open := newFrontier(order)
	closed := make(map[string]struct{})
	open.push(s.root)

	batch := []*Node{}
	for !open.empty() {
		n := open.pop()
		s.stats.Visited++

		if n.Solved() {
			return n, false
		}
		if ceiling > 0 && n.Depth() > ceiling {
			return nil, true
		}

		closed[n.Key()] = struct{}{}
		s.stats.Expanded++
		s.observer.Expanded(n)

		batch = batch[:0]
		for _, child := range n.Children() {
			if _, ok := closed[child.Key()]; ok || open.contains(child) {
				s.stats.Duplicates++
				continue
			}
			open.reserve(child)
			batch = append(batch, child)
		}
		open.pushAll(batch)
	}

	return nil, false
}

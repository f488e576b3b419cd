package trials

import (
	"time"

	guuid "github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/garlicgarrison/marble-solitaire/solitaire"
)

/*
	Trial is one timed solve. Only Solve is timed; building the tree is not.
	Solution holds the rendered path rather than the node, so the search
	tree is dropped once the trial ends.
*/
type Trial struct {
	ID       guuid.UUID      `json:"id" yaml:"id"`
	Index    int             `json:"index" yaml:"index"`
	Elapsed  time.Duration   `json:"elapsed" yaml:"elapsed"`
	Solved   bool            `json:"solved" yaml:"solved"`
	Depth    int             `json:"depth" yaml:"depth"`
	Stats    solitaire.Stats `json:"stats" yaml:"stats"`
	Solution solitaire.Solution `json:"-" yaml:"-"`
}

// Recorder receives each finished trial.
type Recorder interface {
	ObserveTrial(strategy solitaire.Strategy, t Trial)
}

type Runner struct {
	cfg      solitaire.Config
	opts     []solitaire.Option
	log      logrus.FieldLogger
	recorder Recorder
	now      func() time.Time
}

type Option func(*Runner)

func WithLogger(log logrus.FieldLogger) Option {
	return func(r *Runner) {
		r.log = log
	}
}

func WithRecorder(rec Recorder) Option {
	return func(r *Runner) {
		r.recorder = rec
	}
}

// WithSolverOptions passes opts to every solver the runner builds.
func WithSolverOptions(opts ...solitaire.Option) Option {
	return func(r *Runner) {
		r.opts = append(r.opts, opts...)
	}
}

func withClock(now func() time.Time) Option {
	return func(r *Runner) {
		r.now = now
	}
}

func NewRunner(cfg solitaire.Config, opts ...Option) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	r := &Runner{
		cfg: cfg,
		log: logrus.StandardLogger(),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

/*
	Run builds a fresh solver for each of cfg.Trials trials so no trial
	reuses another's tree. It stops at the first construction error.
*/
func (r *Runner) Run() ([]Trial, error) {
	trials := make([]Trial, 0, r.cfg.Trials)
	for i := 0; i < r.cfg.Trials; i++ {
		solver, err := r.cfg.Solver(r.opts...)
		if err != nil {
			return trials, err
		}

		start := r.now()
		result := solver.Solve()
		elapsed := r.now().Sub(start)

		stats := solver.Stats()
		t := Trial{
			ID:       guuid.New(),
			Index:    i + 1,
			Elapsed:  elapsed,
			Solved:   result != nil,
			Stats:    stats,
			Solution: solitaire.NewSolution(r.cfg.Size, r.cfg.Strategy, result, stats),
		}
		if result != nil {
			t.Depth = result.Depth()
		}

		r.log.WithFields(logrus.Fields{
			"trial":   t.Index,
			"id":      t.ID,
			"elapsed": t.Elapsed,
			"solved":  t.Solved,
		}).Info("trial finished")

		if r.recorder != nil {
			r.recorder.ObserveTrial(r.cfg.Strategy, t)
		}
		trials = append(trials, t)
	}

	return trials, nil
}

// Average is the mean elapsed time, zero for no trials.
func Average(trials []Trial) time.Duration {
	if len(trials) == 0 {
		return 0
	}

	var total time.Duration
	for _, t := range trials {
		total += t.Elapsed
	}
	return total / time.Duration(len(trials))
}

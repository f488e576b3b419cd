package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/garlicgarrison/marble-solitaire/metrics"
	"github.com/garlicgarrison/marble-solitaire/report"
	"github.com/garlicgarrison/marble-solitaire/solitaire"
	"github.com/garlicgarrison/marble-solitaire/trials"
)

type solveOptions struct {
	configPath string
	expansion  string
	format     string
	boardPath  string
	metricsOut string
}

func newSolveCmd(root *rootOptions) *cobra.Command {
	opts := &solveOptions{}

	cmd := &cobra.Command{
		Use:   "solve [size] [strategy] [trials]",
		Short: "Search for a path to a single marble",
		Long: `Search for a path to a single marble.

Strategies: bfs (breadthfirstsearch), dfs (depthfirstsearch),
ids (iterativedeepening). With more than one trial the solver runs in
data collection mode and reports the elapsed time of each trial and
their average instead of the solution.`,
		Args: cobra.RangeArgs(0, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, root, opts, args)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.configPath, "config", "", "YAML file with size, strategy, expansion and trials")
	f.StringVar(&opts.expansion, "expansion", "", "eager|lazy tree construction")
	f.StringVar(&opts.format, "format", "text", "text|json|yaml")
	f.StringVar(&opts.boardPath, "board", "", "start from the layout in this file")
	f.StringVar(&opts.metricsOut, "metrics-out", "", "write Prometheus metrics to this file")
	return cmd
}

// config layers the config file, positional arguments and flags.
func (o *solveOptions) config(cmd *cobra.Command, args []string) (solitaire.Config, *solitaire.Board, error) {
	cfg := solitaire.DefaultConfig()
	if o.configPath != "" {
		var err error
		if cfg, err = solitaire.LoadConfig(o.configPath); err != nil {
			return cfg, nil, err
		}
	}

	var board *solitaire.Board
	if o.boardPath != "" {
		raw, err := os.ReadFile(o.boardPath)
		if err != nil {
			return cfg, nil, err
		}
		if board, err = solitaire.ParseBoard(string(raw)); err != nil {
			return cfg, nil, fmt.Errorf("%s: %w", o.boardPath, err)
		}
		cfg.Size = board.Size()
	}

	if len(args) > 0 {
		size, err := strconv.Atoi(args[0])
		if err != nil {
			return cfg, nil, fmt.Errorf("board size %q is not an integer", args[0])
		}
		cfg.Size = size
	}
	if len(args) > 1 {
		strategy, err := solitaire.ParseStrategy(args[1])
		if err != nil {
			return cfg, nil, err
		}
		cfg.Strategy = strategy
	}
	if len(args) > 2 {
		n, err := strconv.Atoi(args[2])
		if err != nil {
			return cfg, nil, fmt.Errorf("trial count %q is not an integer", args[2])
		}
		cfg.Trials = n
	}
	if cmd.Flags().Changed("expansion") {
		expansion, err := solitaire.ParseExpansion(o.expansion)
		if err != nil {
			return cfg, nil, err
		}
		cfg.Expansion = expansion
	}

	return cfg, board, cfg.Validate()
}

func runSolve(cmd *cobra.Command, root *rootOptions, opts *solveOptions, args []string) error {
	log, err := root.logger()
	if err != nil {
		return err
	}
	format, err := report.ParseFormat(opts.format)
	if err != nil {
		return err
	}
	cfg, board, err := opts.config(cmd, args)
	if err != nil {
		return err
	}

	solverOpts := []solitaire.Option{solitaire.WithLogger(log)}
	runnerOpts := []trials.Option{trials.WithLogger(log)}
	if board != nil {
		solverOpts = append(solverOpts, solitaire.WithBoard(board))
	}

	var rec *metrics.Recorder
	if opts.metricsOut != "" {
		rec = metrics.NewRecorder()
		solverOpts = append(solverOpts, solitaire.WithObserver(rec))
		runnerOpts = append(runnerOpts, trials.WithRecorder(rec))
	}
	runnerOpts = append(runnerOpts, trials.WithSolverOptions(solverOpts...))

	runner, err := trials.NewRunner(cfg, runnerOpts...)
	if err != nil {
		return err
	}

	out := root.stdout
	if format == report.TEXT {
		fmt.Fprintf(out, "Solving for board size %d with strategy of %s.\n", cfg.Size, cfg.Strategy)
		if cfg.Trials > 1 {
			fmt.Fprintf(out, "Operating in data collection mode. Averaging over %d trials.\n", cfg.Trials)
		}
	}

	results, err := runner.Run()
	if err != nil {
		return err
	}

	if cfg.Trials > 1 {
		if err := report.WriteTrials(out, format, results); err != nil {
			return err
		}
	} else {
		last := results[len(results)-1]
		if err := report.Write(out, format, last.Solution); err != nil {
			return err
		}
		if format == report.TEXT {
			fmt.Fprintf(out, "Elapsed time: %d milliseconds.\n", last.Elapsed.Milliseconds())
		}
	}

	if rec != nil {
		if err := rec.WriteFile(opts.metricsOut); err != nil {
			return err
		}
		log.WithField("path", opts.metricsOut).Info("metrics written")
	}
	return nil
}

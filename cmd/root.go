package main

import (
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	logLevel string
	stdout   io.Writer
	stderr   io.Writer
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &rootOptions{
		stdout: stdout,
		stderr: stderr,
	}

	cmd := &cobra.Command{
		Use:           "solitaire",
		Short:         "Solve triangular marble solitaire by brute-force search",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "debug|info|warn|error")

	cmd.AddCommand(newSolveCmd(opts), newBoardCmd(opts))
	return cmd
}

// logger writes to stderr so stdout only carries results.
func (o *rootOptions) logger() (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(o.logLevel)
	if err != nil {
		return nil, err
	}

	log := logrus.New()
	log.SetOutput(o.stderr)
	log.SetLevel(lvl)
	return log, nil
}

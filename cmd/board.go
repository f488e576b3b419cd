package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/garlicgarrison/marble-solitaire/solitaire"
)

func newBoardCmd(root *rootOptions) *cobra.Command {
	var moves bool

	cmd := &cobra.Command{
		Use:   "board <size>",
		Short: "Print the starting layout for a board size",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			size, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("board size %q is not an integer", args[0])
			}

			b, err := solitaire.NewBoard(size)
			if err != nil {
				return err
			}

			fmt.Fprint(root.stdout, b.String())
			if moves {
				for _, m := range b.Moves() {
					fmt.Fprintln(root.stdout, m)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&moves, "moves", false, "also list the legal first moves")
	return cmd
}

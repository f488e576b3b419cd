package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/garlicgarrison/marble-solitaire/solitaire"
)

var ErrUnknownFormat = errors.New("unknown output format")

type Format string

const (
	TEXT Format = "text"
	JSON Format = "json"
	YAML Format = "yaml"
)

func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case TEXT, JSON, YAML:
		return f, nil
	case "":
		return TEXT, nil
	}
	return TEXT, fmt.Errorf("%q: %w", name, ErrUnknownFormat)
}

// Report is a solution plus the per-direction tally of its moves.
type Report struct {
	solitaire.Solution `yaml:",inline"`
	Moves              map[string]int `json:"moves,omitempty" yaml:"moves,omitempty"`
}

func New(sol solitaire.Solution) Report {
	return Report{
		Solution: sol,
		Moves:    Tally(sol).Named(),
	}
}

func Write(w io.Writer, format Format, sol solitaire.Solution) error {
	switch format {
	case TEXT:
		return writeText(w, sol)
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(New(sol))
	case YAML:
		b, err := yaml.Marshal(New(sol))
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	}
	return fmt.Errorf("%q: %w", format, ErrUnknownFormat)
}

/*
	writeText prints every board from the root down with its depth, then a
	closing line. An unsolved result only gets the closing line.
*/
func writeText(w io.Writer, sol solitaire.Solution) error {
	if !sol.Solved {
		_, err := fmt.Fprintln(w, "No solution found.")
		return err
	}

	var sb strings.Builder
	for _, step := range sol.Steps {
		fmt.Fprintf(&sb, "Depth: %d\n", step.Depth)
		if step.Move != nil {
			fmt.Fprintf(&sb, "Move: %s\n", step.Move)
		}
		for _, row := range step.Board {
			sb.WriteString(row)
			sb.WriteByte('\n')
		}
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "Final board state (Depth: %d)\n", sol.Depth)

	_, err := io.WriteString(w, sb.String())
	return err
}

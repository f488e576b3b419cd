package report

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v2"

	"github.com/garlicgarrison/marble-solitaire/trials"
)

// Summary is the structured form of a data collection run.
type Summary struct {
	Trials  []trials.Trial `json:"trials" yaml:"trials"`
	Average time.Duration  `json:"average" yaml:"average"`
}

// WriteTrials prints the elapsed time of each trial and their average.
func WriteTrials(w io.Writer, format Format, results []trials.Trial) error {
	summary := Summary{
		Trials:  results,
		Average: trials.Average(results),
	}

	switch format {
	case TEXT:
		for _, t := range results {
			if _, err := fmt.Fprintf(w, "[Trial %d]: Elapsed time: %d milliseconds.\n", t.Index, t.Elapsed.Milliseconds()); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w, "[Average]: Elapsed time: %d milliseconds.\n", summary.Average.Milliseconds())
		return err
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(summary)
	case YAML:
		b, err := yaml.Marshal(summary)
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	}
	return fmt.Errorf("%q: %w", format, ErrUnknownFormat)
}

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// RunSummary is the per-run accounting written to stdout: how many raw items
// arrived, how many were skipped, and how many events made it into the
// calendar. FirstGame and LastGame are nil for an empty run.
type RunSummary struct {
	GeneratedAt time.Time  `json:"generated_at"`
	Season      string     `json:"season"`
	RawItems    int        `json:"raw_items"`
	Skipped     int        `json:"skipped"`
	Emitted     int        `json:"emitted"`
	OutputFile  string     `json:"output_file,omitempty"`
	FirstGame   *time.Time `json:"first_game,omitempty"`
	LastGame    *time.Time `json:"last_game,omitempty"`
}

// WriteSummary writes the run summary in the specified format
func WriteSummary(w io.Writer, summary *RunSummary, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, summary)
	case FormatText:
		return writeText(w, summary)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs the summary as JSON
func writeJSON(w io.Writer, summary *RunSummary) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(summary)
}

// writeText outputs the summary as human-readable text
func writeText(w io.Writer, summary *RunSummary) error {
	fmt.Fprintf(w, "Season: %s\n", summary.Season)
	fmt.Fprintf(w, "Schedule items: %d (%d skipped)\n", summary.RawItems, summary.Skipped)

	if summary.Emitted == 0 {
		fmt.Fprintln(w, "No games emitted; wrote an empty calendar.")
	} else {
		fmt.Fprintf(w, "Emitted %d events\n", summary.Emitted)
		if summary.FirstGame != nil && summary.LastGame != nil {
			fmt.Fprintf(w, "First game: %s\n", summary.FirstGame.Format("Mon Jan 2 2006 3:04 PM"))
			fmt.Fprintf(w, "Last game:  %s\n", summary.LastGame.Format("Mon Jan 2 2006 3:04 PM"))
		}
	}

	if summary.OutputFile != "" {
		fmt.Fprintf(w, "Calendar written to %s\n", summary.OutputFile)
	}
	return nil
}

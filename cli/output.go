package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

func checkFormat(format string) error {
	switch format {
	case formatText, formatJSON, formatYAML:
		return nil
	default:
		return fmt.Errorf("%w: output %q (use text, json or yaml)", ErrUnknownFormat, format)
	}
}

// writeOutput encodes v as JSON or YAML, or calls text for the text format.
func writeOutput(w io.Writer, format string, v any, text func(io.Writer) error) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case formatText:
		return text(w)
	default:
		return checkFormat(format)
	}
}

// writeReportText prints one report as aligned key/value lines.
func writeReportText(w io.Writer, r Report) error {
	run := r.Algorithm
	if r.Heuristic != "" {
		run += " (" + r.Heuristic + ")"
	}
	lines := [][2]string{
		{"problem", r.Problem},
		{"algorithm", run},
		{"outcome", r.Outcome},
		{"found", fmt.Sprint(r.Found)},
		{"cost", fmt.Sprint(r.Cost)},
		{"length", fmt.Sprint(r.Length)},
		{"expanded", fmt.Sprint(r.Expanded)},
		{"max frontier", fmt.Sprint(r.MaxFrontier)},
		{"elapsed", fmt.Sprintf("%.3fms", r.ElapsedMS)},
		{"actions", strings.Join(r.Actions, " ")},
	}
	if r.Error != "" {
		lines = append(lines, [2]string{"error", r.Error})
	}
	for _, l := range lines {
		if _, err := fmt.Fprintf(w, "%-13s %s\n", l[0]+":", l[1]); err != nil {
			return err
		}
	}

	return nil
}

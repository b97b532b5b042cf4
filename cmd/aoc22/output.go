package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ghodss/yaml"

	"github.com/katalvlaran/aoc22/puzzle"
)

// Output formats accepted by --format.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

var errUnknownFormat = fmt.Errorf("aoc22: unknown format (want %s, %s or %s)", formatText, formatJSON, formatYAML)

func checkFormat(format string) error {
	switch format {
	case formatText, formatJSON, formatYAML:
		return nil
	default:
		return fmt.Errorf("%w: %q", errUnknownFormat, format)
	}
}

// writeAnswers renders answers in format. Text separates days with a blank
// line; json and yaml write a single list.
func writeAnswers(w io.Writer, format string, answers []puzzle.Answer) error {
	switch format {
	case formatJSON:
		b, err := json.MarshalIndent(answers, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", b)
		return err
	case formatYAML:
		b, err := yaml.Marshal(answers)
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	case formatText:
		for i, ans := range answers {
			if i > 0 {
				if _, err := fmt.Fprintln(w); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintln(w, ans); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", errUnknownFormat, format)
	}
}

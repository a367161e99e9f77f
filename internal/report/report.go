package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/jacoelho/ppmfmt/internal/rewrite"
)

// Format determines how summaries are printed.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Summary describes the outcome of a single conversion.
type Summary struct {
	Input        string `json:"input" yaml:"input"`
	Output       string `json:"output" yaml:"output"`
	Comments     int    `json:"comments" yaml:"comments"`
	Tokens       int    `json:"tokens" yaml:"tokens"`
	HeaderTokens int    `json:"header_tokens" yaml:"header_tokens"`
	BlankLines   int    `json:"blank_lines" yaml:"blank_lines"`
	Bytes        int    `json:"bytes" yaml:"bytes"`
	DryRun       bool   `json:"dry_run,omitempty" yaml:"dry_run,omitempty"`
}

// New builds a summary from rewrite statistics.
func New(input, output string, stats rewrite.Stats, size int) Summary {
	return Summary{
		Input:        input,
		Output:       output,
		Comments:     stats.Comments,
		Tokens:       stats.Tokens,
		HeaderTokens: stats.HeaderTokens,
		BlankLines:   stats.BlankLines,
		Bytes:        size,
	}
}

// Lines returns the number of lines written to the output.
func (s Summary) Lines() int {
	return s.Comments + s.Tokens
}

// Write prints the summary in the requested format.
func (s Summary) Write(w io.Writer, format Format) error {
	switch format {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(s)
	case FormatYAML:
		payload, err := yaml.Marshal(s)
		if err != nil {
			return fmt.Errorf("encode YAML: %w", err)
		}
		_, err = w.Write(payload)
		return err
	case FormatText, "":
		writef := func(format string, args ...any) error {
			if _, err := fmt.Fprintf(w, format, args...); err != nil {
				return err
			}
			return nil
		}

		title := "Conversion summary"
		if s.DryRun {
			title += " (dry run)"
		}
		if err := writef("%s\n", title); err != nil {
			return err
		}
		if err := writef("  input: %s\n", s.Input); err != nil {
			return err
		}
		if err := writef("  output: %s\n", s.Output); err != nil {
			return err
		}
		if err := writef("  lines written: %d\n", s.Lines()); err != nil {
			return err
		}
		if err := writef("  comments: %d\n", s.Comments); err != nil {
			return err
		}
		if err := writef("  tokens: %d (header: %d)\n", s.Tokens, s.HeaderTokens); err != nil {
			return err
		}
		if err := writef("  blank lines removed: %d\n", s.BlankLines); err != nil {
			return err
		}

		return writef("  bytes: %d\n", s.Bytes)
	default:
		return fmt.Errorf("unsupported report format: %s", format)
	}
}

package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/jacoelho/ppmfmt/internal/report"
)

var (
	ErrNoArguments         = errors.New("no arguments provided")
	ErrHelp                = errors.New("help requested")
	ErrUsage               = errors.New("expected exactly two arguments: input.ppm output.ppm")
	ErrInvalidReportFormat = errors.New("-report must be one of: text, json, yaml")
)

// Config defines CLI options for the PPM rewrite command.
type Config struct {
	InputFile  string
	OutputFile string

	// ReportFormat is empty when no summary should be printed.
	ReportFormat report.Format

	Atomic   bool
	DryRun   bool
	Annotate bool
	Verbose  bool
}

// Parse parses and validates CLI arguments. Flags must precede the two
// positional paths.
func Parse(args []string) (*Config, error) {
	if len(args) == 0 {
		return nil, ErrNoArguments
	}

	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	reportFormat := fs.String("report", "", "Print a conversion summary: text, json or yaml")
	atomic := fs.Bool("atomic", false, "Write to a temporary file and rename it into place")
	dryRun := fs.Bool("dry-run", false, "Run conversion without writing the output file")
	annotate := fs.Bool("annotate", false, "Prefix each output line with its classification")
	verbose := fs.Bool("v", false, "Log conversion steps to stderr")

	if err := fs.Parse(args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, ErrHelp
		}
		return nil, fmt.Errorf("parse arguments: %w", err)
	}

	if fs.NArg() != 2 {
		return nil, ErrUsage
	}

	parsedReportFormat, err := parseReportFormat(*reportFormat)
	if err != nil {
		return nil, err
	}

	return &Config{
		InputFile:    fs.Arg(0),
		OutputFile:   fs.Arg(1),
		ReportFormat: parsedReportFormat,
		Atomic:       *atomic,
		DryRun:       *dryRun,
		Annotate:     *annotate,
		Verbose:      *verbose,
	}, nil
}

func parseReportFormat(input string) (report.Format, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "":
		return "", nil
	case string(report.FormatText):
		return report.FormatText, nil
	case string(report.FormatJSON):
		return report.FormatJSON, nil
	case string(report.FormatYAML), "yml":
		return report.FormatYAML, nil
	default:
		return "", fmt.Errorf("%w, got: %s", ErrInvalidReportFormat, input)
	}
}

// Program returns the name the command was invoked as.
func Program(args []string) string {
	if len(args) == 0 || args[0] == "" {
		return "ppmfmt"
	}
	return filepath.Base(args[0])
}

// Usage returns the one line usage message.
func Usage(program string) string {
	return fmt.Sprintf("Usage: %s input.ppm output.ppm", program)
}

// Help returns the full command help text.
func Help(program string) string {
	return fmt.Sprintf(`%[1]s - rewrite a plain PPM file with one token per line

Usage:
  %[1]s [options] input.ppm output.ppm

Options:
  -report FORMAT   Print a conversion summary: text, json or yaml
  -atomic          Write to a temporary file and rename it into place
  -dry-run         Run conversion without writing the output file
  -annotate        Prefix lines with C (comment), H (header) or D (data)
  -v               Log conversion steps to stderr
  -h, -help        Show this help message

Use -- before paths that begin with a dash: %[1]s -- -in.ppm out.ppm`, program)
}

package main

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/jacoelho/ppmfmt/internal/config"
	"github.com/jacoelho/ppmfmt/internal/exit"
	"github.com/jacoelho/ppmfmt/internal/files"
	"github.com/jacoelho/ppmfmt/internal/logging"
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	result := convert(args, stdout, stderr)
	result.Print()
	return result.ExitCode
}

func convert(args []string, stdout, stderr io.Writer) *exit.Result {
	program := config.Program(args)

	cfg, err := config.Parse(args)
	if err != nil {
		switch {
		case errors.Is(err, config.ErrHelp):
			return exit.Success(stdout, config.Help(program))
		case errors.Is(err, config.ErrUsage), errors.Is(err, config.ErrNoArguments):
			return exit.Error(stdout, config.Usage(program))
		default:
			return exit.Errorf(stderr, "Error: %v\n%s", err, config.Usage(program))
		}
	}

	logger := logging.New(cfg.Verbose, stderr)
	defer func() { _ = logger.Sync() }()

	summary, err := files.Run(*cfg, logger)
	if err != nil {
		if errors.Is(err, files.ErrInputNotFound) {
			return exit.Reportedf(stdout, "Error: Could not find input file %s", cfg.InputFile)
		}
		return exit.Reportedf(stdout, "Error during conversion: %v", err)
	}

	message := "Successfully converted " + cfg.InputFile + " to " + cfg.OutputFile
	if cfg.ReportFormat != "" {
		var buf strings.Builder
		if err := summary.Write(&buf, cfg.ReportFormat); err != nil {
			return exit.Errorf(stderr, "Error: failed to write report: %v", err)
		}
		message += "\n" + strings.TrimRight(buf.String(), "\n")
	}

	return exit.Success(stdout, message)
}

package files

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jacoelho/ppmfmt/internal/config"
	"github.com/jacoelho/ppmfmt/internal/report"
	"github.com/jacoelho/ppmfmt/internal/rewrite"
)

var (
	// ErrInputNotFound reports a missing input file. Any other error
	// returned by Run is a generic conversion failure.
	ErrInputNotFound   = errors.New("input file not found")
	ErrInvalidEncoding = errors.New("input is not valid UTF-8 text")
)

// Run rewrites cfg.InputFile into cfg.OutputFile with one token per line.
// The output is not touched when the input cannot be read.
func Run(cfg config.Config, logger *zap.Logger) (report.Summary, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	content, err := readInput(cfg.InputFile)
	if err != nil {
		return report.Summary{}, err
	}
	logger.Debug("read input", zap.String("path", cfg.InputFile), zap.Int("bytes", len(content)))

	doc := rewrite.Parse(content)
	payload := doc.Render()
	if cfg.Annotate {
		payload = doc.RenderAnnotated()
	}

	stats := doc.Stats()
	logger.Debug("rewrote document",
		zap.Int("comments", stats.Comments),
		zap.Int("tokens", stats.Tokens),
		zap.Int("header_tokens", stats.HeaderTokens),
		zap.Int("blank_lines", stats.BlankLines),
	)

	summary := report.New(cfg.InputFile, cfg.OutputFile, stats, len(payload))
	if cfg.DryRun {
		summary.DryRun = true
		logger.Debug("dry run, skipping write", zap.String("path", cfg.OutputFile))
		return summary, nil
	}

	write := writeOutput
	if cfg.Atomic {
		write = writeOutputAtomic
	}
	if err := write(cfg.OutputFile, payload); err != nil {
		return report.Summary{}, fmt.Errorf("write output file: %w", err)
	}
	logger.Debug("wrote output", zap.String("path", cfg.OutputFile), zap.Bool("atomic", cfg.Atomic), zap.Int("bytes", len(payload)))

	return summary, nil
}

func readInput(filename string) (string, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrInputNotFound, filename)
		}
		return "", fmt.Errorf("read input file: %w", err)
	}

	if !utf8.Valid(data) {
		return "", fmt.Errorf("decode input file %s: %w", filename, ErrInvalidEncoding)
	}

	return string(data), nil
}

func writeOutput(filename string, payload []byte) error {
	return os.WriteFile(filename, payload, 0644)
}

// writeOutputAtomic writes payload next to filename and renames it into
// place, so readers never observe a partially written file.
func writeOutputAtomic(filename string, payload []byte) (err error) {
	tmp := filepath.Join(filepath.Dir(filename), "."+filepath.Base(filename)+"."+uuid.NewString()+".tmp")

	file, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp)
		}
	}()

	if _, err = file.Write(payload); err != nil {
		_ = file.Close()
		return err
	}
	if err = file.Close(); err != nil {
		return err
	}

	return os.Rename(tmp, filename)
}

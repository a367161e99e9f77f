package logging

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestNewVerbose(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := New(true, &buf)
	logger.Debug("read input", zap.String("path", "in.ppm"))

	output := buf.String()
	if !strings.Contains(output, "DEBUG") || !strings.Contains(output, "read input") || !strings.Contains(output, "in.ppm") {
		t.Fatalf("unexpected log output: %q", output)
	}
}

func TestNewQuiet(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := New(false, &buf)
	logger.Error("should not appear")

	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}

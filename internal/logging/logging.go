package logging

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a console logger writing debug output to w when verbose is
// set, and a no-op logger otherwise.
func New(verbose bool, w io.Writer) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.TimeKey = ""
	encoderConfig.CallerKey = ""

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(w),
		zap.NewAtomicLevelAt(zapcore.DebugLevel),
	)

	return zap.New(core)
}

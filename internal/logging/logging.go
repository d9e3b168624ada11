// Package logging builds the zap logger the fixture programs use for
// diagnostics. Logs always go to stderr so stdout carries program output
// only.
package logging

import (
	"io" // io lets tests capture log output
	"os" // os supplies stderr and the debug environment variable

	"go.uber.org/zap"         // zap is the structured logger
	"go.uber.org/zap/zapcore" // zapcore configures the console encoder and level
)

///////////////////////////////////////////////////////////////////////////////
// Logger construction
///////////////////////////////////////////////////////////////////////////////

// DebugEnv turns on debug logging when set to a non-empty value.
const DebugEnv = "PASSFIXTURE_DEBUG"

// New returns a console logger writing to w. Lines carry no timestamp and
// use upper-case level names.
func New(w io.Writer, debug bool) *zap.Logger {
	enc := zap.NewProductionEncoderConfig()
	enc.TimeKey = ""
	enc.EncodeLevel = zapcore.CapitalLevelEncoder

	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(w), level)
	return zap.New(core)
}

// Default returns a stderr logger whose level follows DebugEnv.
func Default() *zap.Logger {
	return New(os.Stderr, os.Getenv(DebugEnv) != "")
}

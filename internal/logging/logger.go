//
//  Copyright © Opsrig Inc. All rights reserved.
//

// Package logging provides module-scoped structured loggers backed by
// zap. Application code obtains loggers via [GetLogger]; per-module
// levels are adjusted at runtime with [UpdateLogLevels] using specs of
// the form "server:debug;.:info".
package logging

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a module-tagged wrapper around a zap sugared logger.
type Logger struct {
	module string
	level  zap.AtomicLevel
	sugar  *zap.SugaredLogger
	writer io.Writer
}

// newLogger builds an unregistered logger. Application code should call
// GetLogger to obtain a tracked, configured instance.
func newLogger(module string) *Logger {
	l := &Logger{
		module: module,
		level:  zap.NewAtomicLevelAt(zapcore.InfoLevel),
	}
	l.rebuild(os.Stdout)
	return l
}

func (l *Logger) rebuild(w io.Writer) {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.LowercaseLevelEncoder

	// LOG_FORMATTER=text selects console output; the default is JSON.
	var encoder zapcore.Encoder
	if os.Getenv("LOG_FORMATTER") == "text" {
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	} else {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(w), l.level)

	options := []zap.Option{zap.AddCallerSkip(1)}
	if os.Getenv("LOG_REPORT_CALLER") != "" {
		options = append(options, zap.AddCaller())
	}

	l.writer = w
	l.sugar = zap.New(core, options...).Sugar().With("module", l.module)
}

// SetLevel sets the logging level for this module.
func (l *Logger) SetLevel(level zapcore.Level) {
	l.level.SetLevel(level)
}

// IsDebugEnabled reports whether debug output is currently emitted. Use
// as a guard when assembling debug output is itself expensive.
func (l *Logger) IsDebugEnabled() bool {
	return l.level.Enabled(zapcore.DebugLevel)
}

// Out returns the current output writer.
func (l *Logger) Out() io.Writer {
	return l.writer
}

// SetOut redirects log output, primarily for tests.
func (l *Logger) SetOut(w io.Writer) {
	l.rebuild(w)
}

// Debug logs a debug message.
func (l *Logger) Debug(args ...interface{}) { l.sugar.Debug(args...) }

// Debugf logs a formatted debug message.
func (l *Logger) Debugf(format string, args ...interface{}) { l.sugar.Debugf(format, args...) }

// Info logs an info message.
func (l *Logger) Info(args ...interface{}) { l.sugar.Info(args...) }

// Infof logs a formatted info message.
func (l *Logger) Infof(format string, args ...interface{}) { l.sugar.Infof(format, args...) }

// Warn logs a warning message.
func (l *Logger) Warn(args ...interface{}) { l.sugar.Warn(args...) }

// Warnf logs a formatted warning message.
func (l *Logger) Warnf(format string, args ...interface{}) { l.sugar.Warnf(format, args...) }

// Error logs an error message.
func (l *Logger) Error(args ...interface{}) { l.sugar.Error(args...) }

// Errorf logs a formatted error message.
func (l *Logger) Errorf(format string, args ...interface{}) { l.sugar.Errorf(format, args...) }

// Fatal logs a message and exits.
func (l *Logger) Fatal(args ...interface{}) { l.sugar.Fatal(args...) }

// Fatalf logs a formatted message and exits.
func (l *Logger) Fatalf(format string, args ...interface{}) { l.sugar.Fatalf(format, args...) }

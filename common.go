// ABOUTME: Debug logging setup shared by all commands
// ABOUTME: Writes rotated zap logs to a file, never to the terminal

package main

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Debug log rotation limits
const (
	debugLogMaxSizeMB  = 10
	debugLogMaxBackups = 3
)

// newLogger returns a debug logger writing to filename, or a no-op logger
// when debug logging is off. The TUI owns the terminal, so nothing is
// logged to stdout or stderr.
func newLogger(enabled bool, filename string) *zap.Logger {
	if !enabled {
		return zap.NewNop()
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000000")

	writer := zapcore.AddSync(&lumberjack.Logger{
		Filename:   filename,
		MaxSize:    debugLogMaxSizeMB,
		MaxBackups: debugLogMaxBackups,
	})

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), writer, zapcore.DebugLevel)

	return zap.New(core, zap.AddCaller())
}

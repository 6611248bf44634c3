package logger

import (
	"fmt"
	"os"
	"path/filepath"

	zap "go.uber.org/zap"
	zapcore "go.uber.org/zap/zapcore"
)

var logFile *os.File

// Init replaces the global zap logger. The overlay owns the terminal, so
// logs only go to a file; with an empty path logging is disabled.
func Init(debug bool, path string) error {
	if path == "" {
		zap.ReplaceGlobals(zap.NewNop())
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", path, err)
	}

	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), zapcore.AddSync(f), level)

	Close()
	logFile = f
	zap.ReplaceGlobals(zap.New(core))
	return nil
}

// Close flushes the global logger and releases the log file
func Close() {
	_ = zap.L().Sync()
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
}

// Debug logs a debug message on the global logger
func Debug(msg string, fields ...zap.Field) {
	zap.L().Debug(msg, fields...)
}

// Info logs an info message on the global logger
func Info(msg string, fields ...zap.Field) {
	zap.L().Info(msg, fields...)
}

// Warn logs a warning message on the global logger
func Warn(msg string, fields ...zap.Field) {
	zap.L().Warn(msg, fields...)
}

// Error logs an error message on the global logger
func Error(msg string, fields ...zap.Field) {
	zap.L().Error(msg, fields...)
}

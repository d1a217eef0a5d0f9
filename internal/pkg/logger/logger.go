package logger

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Level = zapcore.Level

const (
	DEBUG = zapcore.DebugLevel
	INFO  = zapcore.InfoLevel
	WARN  = zapcore.WarnLevel
	ERROR = zapcore.ErrorLevel
	FATAL = zapcore.FatalLevel
)

// Field aliases so callers don't import zap directly
type Field = zap.Field

var (
	String   = zap.String
	Int      = zap.Int
	Int64    = zap.Int64
	Bool     = zap.Bool
	Duration = zap.Duration
	Any      = zap.Any
	Err      = zap.Error
)

type Logger struct {
	level zap.AtomicLevel
	log   *zap.Logger
}

// New builds a JSON logger in production and a console logger otherwise
func New(level Level, development bool) *Logger {
	atom := zap.NewAtomicLevelAt(level)

	var cfg zap.Config
	if development {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}
	cfg.Level = atom
	cfg.EncoderConfig.TimeKey = "time"
	cfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05")

	z, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		z = zap.NewExample()
	}

	return &Logger{level: atom, log: z}
}

// Nop returns a logger that discards everything (tests)
func Nop() *Logger {
	return &Logger{level: zap.NewAtomicLevelAt(FATAL), log: zap.NewNop()}
}

func (l *Logger) Debug(msg string, fields ...Field) { l.log.Debug(msg, fields...) }
func (l *Logger) Info(msg string, fields ...Field)  { l.log.Info(msg, fields...) }
func (l *Logger) Warn(msg string, fields ...Field)  { l.log.Warn(msg, fields...) }
func (l *Logger) Error(msg string, fields ...Field) { l.log.Error(msg, fields...) }
func (l *Logger) Fatal(msg string, fields ...Field) { l.log.Fatal(msg, fields...) }

// With returns a child logger carrying the given fields
func (l *Logger) With(fields ...Field) *Logger {
	return &Logger{level: l.level, log: l.log.With(fields...)}
}

// SetLevel changes the logging level
func (l *Logger) SetLevel(level Level) {
	l.level.SetLevel(level)
}

// GetLevel returns current logging level
func (l *Logger) GetLevel() Level {
	return l.level.Level()
}

// Sync flushes buffered entries
func (l *Logger) Sync() error {
	return l.log.Sync()
}

// ParseLevel maps LOG_LEVEL values to a level, defaulting to INFO
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return DEBUG
	case "warn", "warning":
		return WARN
	case "error":
		return ERROR
	default:
		return INFO
	}
}

// Global logger instance
var defaultLogger = New(INFO, true)

// Package-level functions for easy access
func Debug(msg string, fields ...Field) { defaultLogger.Debug(msg, fields...) }
func Info(msg string, fields ...Field)  { defaultLogger.Info(msg, fields...) }
func Warn(msg string, fields ...Field)  { defaultLogger.Warn(msg, fields...) }
func Error(msg string, fields ...Field) { defaultLogger.Error(msg, fields...) }
func Fatal(msg string, fields ...Field) { defaultLogger.Fatal(msg, fields...) }

// SetDefault replaces the global logger
func SetDefault(l *Logger) {
	if l != nil {
		defaultLogger = l
	}
}

// Default returns the global logger
func Default() *Logger {
	return defaultLogger
}

// SetGlobalLevel sets the level for the global logger
func SetGlobalLevel(level Level) {
	defaultLogger.SetLevel(level)
}

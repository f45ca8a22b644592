// Package log provides the leveled logger used across the module.
package log

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Levels lists the accepted level names from the most verbose.
var Levels = []string{"debug", "info", "warn", "error"}

// Logger is a leveled logger with structured context.
type Logger interface {
	Debug(args ...interface{})
	Debugf(msg string, args ...interface{})
	Info(args ...interface{})
	Infof(msg string, args ...interface{})
	Warning(args ...interface{})
	Warningf(msg string, args ...interface{})
	Error(args ...interface{})
	Errorf(msg string, args ...interface{})
	// With returns a logger which adds the key value pairs to every entry.
	With(keysAndValues ...interface{}) Logger
	Sync() error
}

// DefaultLogger writes production formatted entries to stderr.
var DefaultLogger Logger = mustLogger(NewDefaultProductionLogger())

// Config configures NewLogger. File is optional and enables a rotating file sink.
type Config struct {
	Level      string
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
	JSON       bool
}

type zapLogger struct {
	sugar *zap.SugaredLogger
}

func NewDefaultProductionLogger() (Logger, error) {
	logger, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	return &zapLogger{sugar: logger.Sugar()}, nil
}

func NewDefaultDevelopmentLogger() (Logger, error) {
	logger, err := zap.NewDevelopment()
	if err != nil {
		return nil, err
	}
	return &zapLogger{sugar: logger.Sugar()}, nil
}

// NewSilentLogger discards every entry.
func NewSilentLogger() Logger {
	return &zapLogger{sugar: zap.NewNop().Sugar()}
}

// NewLogger returns a logger writing to stderr and, when File is set, to a rotating file.
func NewLogger(config Config) (Logger, error) {
	level, err := ParseLevel(config.Level)
	if err != nil {
		return nil, err
	}
	cores := []zapcore.Core{
		zapcore.NewCore(encoder(config.JSON), zapcore.Lock(os.Stderr), level),
	}
	if config.File != "" {
		if err := os.MkdirAll(filepath.Dir(config.File), 0o755); err != nil {
			return nil, errors.Wrapf(err, "failed to create log directory for %s", config.File)
		}
		sink := &lumberjack.Logger{
			Filename:   config.File,
			MaxSize:    config.MaxSizeMB,
			MaxBackups: config.MaxBackups,
			MaxAge:     config.MaxAgeDays,
			Compress:   config.Compress,
		}
		cores = append(cores, zapcore.NewCore(encoder(true), zapcore.AddSync(sink), level))
	}
	logger := zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddCallerSkip(1))
	return &zapLogger{sugar: logger.Sugar()}, nil
}

// ParseLevel converts a level name into a zap level. Empty string means info.
func ParseLevel(name string) (zapcore.Level, error) {
	if name == "" {
		return zapcore.InfoLevel, nil
	}
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return level, errors.Wrapf(err, "invalid log level %q", name)
	}
	return level, nil
}

func encoder(json bool) zapcore.Encoder {
	config := zap.NewProductionEncoderConfig()
	config.EncodeTime = zapcore.ISO8601TimeEncoder
	if json {
		return zapcore.NewJSONEncoder(config)
	}
	config.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return zapcore.NewConsoleEncoder(config)
}

func mustLogger(logger Logger, err error) Logger {
	if err != nil {
		panic(err)
	}
	return logger
}

func (l *zapLogger) Debug(args ...interface{})                { l.sugar.Debug(args...) }
func (l *zapLogger) Debugf(msg string, args ...interface{})   { l.sugar.Debugf(msg, args...) }
func (l *zapLogger) Info(args ...interface{})                 { l.sugar.Info(args...) }
func (l *zapLogger) Infof(msg string, args ...interface{})    { l.sugar.Infof(msg, args...) }
func (l *zapLogger) Warning(args ...interface{})              { l.sugar.Warn(args...) }
func (l *zapLogger) Warningf(msg string, args ...interface{}) { l.sugar.Warnf(msg, args...) }
func (l *zapLogger) Error(args ...interface{})                { l.sugar.Error(args...) }
func (l *zapLogger) Errorf(msg string, args ...interface{})   { l.sugar.Errorf(msg, args...) }
func (l *zapLogger) Sync() error                              { return l.sugar.Sync() }

func (l *zapLogger) With(keysAndValues ...interface{}) Logger {
	return &zapLogger{sugar: l.sugar.With(keysAndValues...)}
}

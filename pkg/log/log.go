// Package log provides the logging functionality for portlib.
package log

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	Logger *PortLogger
)

func init() {
	Logger = CreateLogger(DefaultLoggerConfig(false))
}

// DefaultLoggerConfig writes human readable lines to stderr
func DefaultLoggerConfig(debug bool) *zap.Config {
	c := zap.NewDevelopmentConfig()
	c.Development = false
	c.DisableStacktrace = true
	c.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(time.RFC3339)
	if debug {
		c.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	} else {
		c.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	return &c
}

func CreateLogger(config *zap.Config) *PortLogger {
	if config == nil {
		config = DefaultLoggerConfig(false)
	}

	l, err := config.Build()
	if err != nil {
		panic(err)
	}

	return &PortLogger{
		l.Sugar(),
	}
}

// SetDebug replaces the package logger with one at debug level
func SetDebug(debug bool) {
	Logger = CreateLogger(DefaultLoggerConfig(debug))
}

type PortLogger struct {
	*zap.SugaredLogger
}

package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// thin wrapper around a sugared zap logger
type Logger struct {
	*zap.SugaredLogger
}

func NewLogger(verbose bool) *Logger {
	config := zap.NewDevelopmentConfig()
	config.DisableStacktrace = true
	config.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	logger, err := config.Build()
	if err != nil {
		panic(err)
	}

	return &Logger{logger.Sugar()}
}

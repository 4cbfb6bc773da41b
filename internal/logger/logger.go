// Package logger builds the process-wide zap logger.
package logger

import (
	"go.uber.org/zap"
)

type Logger struct {
	Log   *zap.Logger
	level zap.AtomicLevel
}

// New returns a logger that discards everything until Init is called.
func New() *Logger {
	return &Logger{
		Log:   zap.NewNop(),
		level: zap.NewAtomicLevel(),
	}
}

// Init replaces the no-op logger with a JSON production logger at level.
func (l *Logger) Init(level string) error {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	cfg.InitialFields = map[string]any{"service": "fridgebook"}

	zl, err := cfg.Build()
	if err != nil {
		return err
	}

	l.Log = zl
	l.level = lvl
	return nil
}

// SetLevel changes the level of an initialized logger in place.
func (l *Logger) SetLevel(level string) error {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return err
	}
	l.level.SetLevel(lvl.Level())
	return nil
}

// Named returns a child logger for a component.
func (l *Logger) Named(component string) *zap.Logger {
	return l.Log.Named(component)
}

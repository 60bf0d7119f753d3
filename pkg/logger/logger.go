// Package logger holds the process-wide zap logger and hands out named children.
package logger

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	EnvLocal       = "local"
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

var (
	mu   sync.RWMutex
	base *zap.SugaredLogger = zap.NewNop().Sugar()
)

// Init builds the base logger for the given environment and level and
// installs it as the zap global logger.
func Init(env, level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("parse log level %q: %w", level, err)
	}

	var cfg zap.Config
	switch env {
	case EnvLocal:
		cfg = zap.NewDevelopmentConfig()
	case EnvDevelopment:
		cfg = zap.NewProductionConfig()
	default:
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = ""
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	l, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	zap.ReplaceGlobals(l)

	mu.Lock()
	base = l.Sugar()
	mu.Unlock()
	return nil
}

// MustInit is Init that panics.
func MustInit(env, level string) {
	if err := Init(env, level); err != nil {
		panic(err)
	}
}

// MustNamed returns a child of the base logger scoped to name.
func MustNamed(name string) *zap.SugaredLogger {
	if name == "" {
		panic("logger: empty name")
	}
	mu.RLock()
	defer mu.RUnlock()
	return base.Named(name)
}

// Sync flushes the base logger.
func Sync() {
	mu.RLock()
	defer mu.RUnlock()
	_ = base.Sync()
}

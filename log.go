package bough

import (
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// loggerPtr stores the active logger. Accessed atomically so that SetLogger
// can be called concurrently with logging from any goroutine.
var (
	loggerPtr       atomic.Pointer[zap.Logger]
	loggerInstalled atomic.Bool
)

func init() {
	loggerPtr.Store(zap.NewNop())
}

// Logger returns the package logger. It discards everything until SetLogger
// is called.
func Logger() *zap.Logger {
	return loggerPtr.Load()
}

// SetLogger replaces the package logger. A nil logger restores the no-op one.
func SetLogger(l *zap.Logger) {
	if l == nil {
		loggerInstalled.Store(false)
		loggerPtr.Store(zap.NewNop())
		return
	}
	loggerInstalled.Store(true)
	loggerPtr.Store(l.Named("bough"))
}

// loggerIsNop reports whether no logger has been installed yet.
func loggerIsNop() bool {
	return !loggerInstalled.Load()
}

// NewLogger builds a zap logger from cfg. Format "json" selects the
// production encoder; anything else gets a compact colored console encoder.
// Unknown levels fall back to info.
func NewLogger(cfg LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	l, err := zapCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return l, nil
}

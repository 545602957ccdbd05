package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the process logger: JSON at info level for deployed
// environments, console at debug when ENV=LOCAL. Stack traces are attached
// from error level up. LOG_LEVEL overrides the level when it parses.
func New() *zap.Logger {
	var cfg zap.Config
	if os.Getenv("ENV") == "LOCAL" {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		if parsed, err := zapcore.ParseLevel(lvl); err == nil {
			cfg.Level = zap.NewAtomicLevelAt(parsed)
		}
	}
	return zap.Must(cfg.Build())
}

package master

import (
	"go.uber.org/zap"

	"crunch/Common/logger"
)

func buildLogger(cfg *Config) *zap.Logger {
	return logger.New(cfg.Logging).With(zap.String("component", "master"))
}

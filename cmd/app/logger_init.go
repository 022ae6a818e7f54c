package main

import (
	"github.com/vantagerp/lootcase-api/internal/config"
	"github.com/vantagerp/lootcase-api/internal/logger"
)

// initLogger initializes the logger using centralized app configuration
func initLogger(cfg *config.Config) {
	addSource := cfg.Environment == "dev" || cfg.Environment == "development"

	loggerConfig := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Environment,
		addSource,
	)

	logger.Init(loggerConfig)
}

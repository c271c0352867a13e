package main

import (
	"context"
	"fmt"
	"os"

	"film-catalog/internal/app"
	"film-catalog/internal/config"
	"film-catalog/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel, cfg.JSONLogs)

	application, err := app.NewApplication(context.Background(), cfg, log)
	if err != nil {
		log.Error("Main", err, map[string]interface{}{"stage": "initialization"})
		os.Exit(1)
	}

	if err := application.Run(); err != nil {
		log.Error("Main", err, map[string]interface{}{"stage": "run"})
		os.Exit(1)
	}
}

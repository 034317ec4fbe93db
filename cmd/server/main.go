package main

import (
	"fmt"
	"os"

	"github.com/egauth-dev/egauth/internal/config"
	"github.com/egauth-dev/egauth/internal/logger"
	"github.com/egauth-dev/egauth/internal/server"
)

func main() {
	// Load configuration; missing secrets fail here, not at first use
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger.Init(cfg.Logging.Level, cfg.Logging.Format)
	log := logger.GetLogger()

	// Create server
	srv, err := server.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create server")
	}

	log.Info().Str("env", cfg.Env).Int("port", cfg.Port).Msg("Starting egauth server...")

	// Start HTTP server (this blocks)
	if err := srv.Start(); err != nil {
		log.Fatal().Err(err).Msg("Server failed to start")
	}
}

package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/chanwatch/core/internal/api"
	"github.com/chanwatch/core/internal/config"
	"github.com/chanwatch/core/internal/orchestrator"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	configPath := flag.String("config", "config.yaml", "path to the monitor's YAML config file")
	flag.Parse()

	log.Info().Msg("starting chanwatch monitor")

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Warn().Err(err).Msg("failed to load config, using defaults")
		cfg = config.Default()
	}

	paramsTable, err := cfg.ParamsTable()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid market params in config")
	}

	orch := orchestrator.New(cfg.Dedupe.Cooldown, cfg.Store.Capacity, paramsTable)

	apiCfg := &api.ServerConfig{
		Port:            ":" + cfg.API.Port,
		ReadTimeout:     30 * time.Second,
		WriteTimeout:    30 * time.Second,
		ShutdownTimeout: 10 * time.Second,
		CORSOrigins:     cfg.API.CORSOrigins,
	}
	server := api.NewServer(apiCfg, orch)

	go func() {
		if err := server.Start(); err != nil {
			log.Error().Err(err).Msg("API server error")
		}
	}()

	log.Info().Str("apiPort", cfg.API.Port).Msg("chanwatch monitor started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down...")

	if err := server.Shutdown(); err != nil {
		log.Error().Err(err).Msg("API server shutdown error")
	}

	log.Info().Msg("chanwatch monitor stopped")
}

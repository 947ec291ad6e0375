package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-client-panel/internal/config"
	"github.com/MKhiriev/go-client-panel/internal/handler"
	"github.com/MKhiriev/go-client-panel/internal/logger"
	"github.com/MKhiriev/go-client-panel/internal/server"
	"github.com/MKhiriev/go-client-panel/internal/service"
	"github.com/MKhiriev/go-client-panel/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("binserver")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil && cfg.LogLevel != "" {
		zerolog.SetGlobalLevel(level)
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	version := cfg.Version
	if buildVersion != "N/A" {
		version = buildVersion
	}

	repositories, err := store.NewRepositories(context.Background(), cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating repositories")
	}
	defer repositories.Close()

	services, err := service.NewServices(repositories.BinRepository, config.App{Version: version}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	serverCfg := config.Server{
		HTTPAddress:    cfg.HTTPAddress,
		RequestTimeout: cfg.RequestTimeout,
		MaxBodyBytes:   cfg.MaxBodyBytes,
		RateLimit:      cfg.RateLimit,
		RateBurst:      cfg.RateBurst,
	}

	handlers, err := handler.NewHandlers(services, serverCfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, serverCfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}

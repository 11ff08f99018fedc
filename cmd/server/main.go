package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-linkup/internal/config"
	"github.com/MKhiriev/go-linkup/internal/handler"
	"github.com/MKhiriev/go-linkup/internal/logger"
	"github.com/MKhiriev/go-linkup/internal/media"
	"github.com/MKhiriev/go-linkup/internal/server"
	"github.com/MKhiriev/go-linkup/internal/service"
	"github.com/MKhiriev/go-linkup/internal/store"
	"github.com/MKhiriev/go-linkup/internal/workers"
	"github.com/rs/zerolog"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("go-linkup-server").Fatal().Err(err).Msg("error getting configs")
	}
	if buildVersion != "N/A" {
		cfg.App.Version = buildVersion
	}

	log := logger.NewLogger("go-linkup-server", logger.WithLevel(logger.ParseLevel(cfg.App.LogLevel, zerolog.DebugLevel)))
	log.Debug().Str("http", cfg.Server.HTTPAddress).Str("grpc", cfg.Server.GRPCAddress).
		Str("driver", cfg.Storage.DB.Driver).Msg("received configs")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	resolver, err := media.NewResolver(ctx, cfg.Media, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating media resolver")
	}

	services, err := service.NewServices(storages, *cfg, resolver, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	// the health worker only has someone to report to when gRPC is enabled
	if handlers.GRPC != nil {
		bg := workers.NewWorkers(workers.NewHealthWorker(storages.HealthChecker, handlers.GRPC, cfg.Workers, log))
		go bg.Run(ctx)
	}

	srv.RunServer()
	cancel()
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

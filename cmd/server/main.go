package main

import (
	"fmt"

	"github.com/MKhiriev/calmora/internal/config"
	"github.com/MKhiriev/calmora/internal/handler"
	"github.com/MKhiriev/calmora/internal/logger"
	"github.com/MKhiriev/calmora/internal/server"
	"github.com/MKhiriev/calmora/internal/service"
	"github.com/MKhiriev/calmora/internal/store"
	"github.com/MKhiriev/calmora/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("calmora-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	log = &logger.Logger{Logger: log.Level(logger.ParseLevel(cfg.App.LogLevel))}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages := store.NewServerStorages()
	services := service.NewServices(storages, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
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

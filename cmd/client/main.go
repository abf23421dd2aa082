package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/calmora/internal/adapter"
	"github.com/MKhiriev/calmora/internal/client"
	"github.com/MKhiriev/calmora/internal/config"
	"github.com/MKhiriev/calmora/internal/controller"
	"github.com/MKhiriev/calmora/internal/logger"
	"github.com/MKhiriev/calmora/internal/service"
	"github.com/MKhiriev/calmora/internal/store"
	"github.com/MKhiriev/calmora/internal/tui"
	"github.com/MKhiriev/calmora/internal/workers"
	"github.com/MKhiriev/calmora/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("calmora-client").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("calmora-client", cfg.App.LogFile, cfg.App.LogLevel)
	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer storages.Close()

	jar, err := adapter.NewSessionJar(ctx, storages.CookieRepository, log)
	if err != nil {
		log.Fatal().Err(err).Msg("restore session")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, jar, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	services := service.NewClientServices(serverAdapter, log)
	ctrl := controller.NewSessionController(ctx, services, log)
	ui := tui.New(ctrl, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)

	app, err := client.NewApp(ctx, ctrl, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	workersCtx, stopWorkers := context.WithCancel(ctx)
	background := workers.NewWorkers(
		workers.NewCookiePurger(storages.CookieRepository, workers.DefaultPurgeInterval, log),
	)
	workersDone := make(chan struct{})
	go func() {
		background.Run(workersCtx)
		close(workersDone)
	}()

	if err = app.Run(); err != nil {
		log.Error().Err(err).Msg("client run error")
		fmt.Fprintln(os.Stderr, err)
	}

	stopWorkers()
	<-workersDone
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

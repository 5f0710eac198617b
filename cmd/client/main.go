package main

import (
	"fmt"

	"github.com/akulikov/scoresync/internal/adapter"
	"github.com/akulikov/scoresync/internal/client"
	"github.com/akulikov/scoresync/internal/config"
	"github.com/akulikov/scoresync/internal/device"
	"github.com/akulikov/scoresync/internal/idempotency"
	"github.com/akulikov/scoresync/internal/logger"
	"github.com/akulikov/scoresync/internal/service"
	"github.com/akulikov/scoresync/internal/store"
	"github.com/akulikov/scoresync/internal/tui"
	"github.com/akulikov/scoresync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("scoresync-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	localStorage, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	deviceProvider := device.NewProvider(cfg.Storage.DeviceIdentityPath, cfg.Device.Platform, cfg.App.Version)
	if err = deviceProvider.Init(); err != nil {
		log.Fatal().Err(err).Msg("init device identity")
	}

	keys := idempotency.NewGenerator(deviceProvider)

	services := service.NewClientServices(localStorage.LocalStorage, serverAdapter, keys, cfg.Sync, log)

	ui, err := tui.New(services, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
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

	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}

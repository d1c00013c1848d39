package main

import (
	"context"
	"os"

	"github.com/MKhiriev/munch-accounts/internal/config"
	"github.com/MKhiriev/munch-accounts/internal/crypto"
	"github.com/MKhiriev/munch-accounts/internal/handler"
	"github.com/MKhiriev/munch-accounts/internal/logger"
	"github.com/MKhiriev/munch-accounts/internal/server"
	"github.com/MKhiriev/munch-accounts/internal/service"
	"github.com/MKhiriev/munch-accounts/internal/store"
	"github.com/MKhiriev/munch-accounts/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	buildInfo.Print(os.Stdout)

	log := logger.NewLogger("munch-accounts-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Dur("request_timeout", cfg.Server.RequestTimeout).
		Bool("legacy_status_codes", cfg.Server.LegacyStatusCodes).
		Str("version", cfg.App.Version).
		Msg("received configs")

	hasher := crypto.NewSHA256Hasher(cfg.App.HashSuffix)

	storages, err := store.NewStorages(context.Background(), cfg.Storage.DB, hasher, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if closeErr := storages.Close(); closeErr != nil {
			log.Error().Err(closeErr).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(storages, hasher, *cfg, log)
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

	srv.RunServer()
}

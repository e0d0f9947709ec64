package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-vault-sync/internal/config"
	"github.com/MKhiriev/go-vault-sync/internal/handler"
	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/internal/server"
	"github.com/MKhiriev/go-vault-sync/internal/service"
	"github.com/MKhiriev/go-vault-sync/internal/store"
	"github.com/MKhiriev/go-vault-sync/internal/utils"
	"github.com/MKhiriev/go-vault-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(build)

	cfg, err := config.GetServerConfig()
	if err != nil {
		logger.NewLogger("vault-sync-server", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("vault-sync-server", cfg.App.LogLevel)

	if cfg.App.HashKey != "" {
		utils.InitHasherPool(cfg.App.HashKey)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, *cfg, build, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.Run(ctx); err != nil {
		log.Err(err).Msg("server stopped with error")
	}
}

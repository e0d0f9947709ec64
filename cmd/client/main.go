package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-vault-sync/internal/client"
	"github.com/MKhiriev/go-vault-sync/internal/config"
	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Println(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("vault-sync-client", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("vault-sync-client", "", cfg.App.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	app, err := client.NewApp(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

package service

import (
	"context"

	"github.com/MKhiriev/go-vault-sync/internal/config"
	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/models"
)

type appInfoService struct {
	appVersion string

	logger *logger.Logger
}

// NewAppInfoService reports cfg.Version, falling back to the version linked
// into the binary. Without either the server refuses to start.
func NewAppInfoService(cfg config.App, build models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	version := cfg.Version
	if version == "" {
		version = build.BuildVersion()
	}
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	logger.Info().
		Str("version", version).
		Str("build_date", build.BuildDate()).
		Str("build_commit", build.BuildCommit()).
		Msg("app info resolved")

	return &appInfoService{
		appVersion: version,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

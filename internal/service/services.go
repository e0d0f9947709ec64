package service

import (
	"github.com/MKhiriev/go-vault-sync/internal/config"
	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/internal/store"
	"github.com/MKhiriev/go-vault-sync/models"
)

type Services struct {
	IdentityService IdentityService
	SnapshotService SnapshotService
	BlobService     BlobService
	AppInfoService  AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, err
	}

	snapshots := NewSnapshotValidationService().Wrap(NewSnapshotService(storages.SnapshotRepository, logger))
	blobs := NewBlobValidationService().Wrap(NewBlobService(storages.BlobRepository, logger))

	return &Services{
		IdentityService: NewIdentityService(cfg.App, logger),
		SnapshotService: snapshots,
		BlobService:     blobs,
		AppInfoService:  appInfo,
	}, nil
}

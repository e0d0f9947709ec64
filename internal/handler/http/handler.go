package http

import (
	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/internal/service"
	"github.com/MKhiriev/go-vault-sync/internal/utils"
)

type Handler struct {
	services *service.Services

	// hashKey enables the HashSHA256 body check on write routes when set.
	hashKey string

	traceIDs *utils.UUIDGenerator
	logger   *logger.Logger
}

func NewHandler(services *service.Services, hashKey string, logger *logger.Logger) *Handler {
	logger.Info().Bool("integrity_check", hashKey != "").Msg("http handler created")
	return &Handler{
		services: services,
		hashKey:  hashKey,
		traceIDs: utils.NewUUIDGenerator(),
		logger:   logger,
	}
}

// Package grpc exposes the standard gRPC health service of the remote store.
package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/internal/service"
)

// Service names reported by the health endpoint in addition to the
// overall "" entry.
const (
	SnapshotServiceName = "vaultsync.SnapshotStore"
	BlobServiceName     = "vaultsync.BlobStore"
)

// Handler is the root gRPC transport handler.
type Handler struct {
	services *service.Services
	health   *health.Server

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
}

// Register attaches the health service to srv and marks every store as serving.
func (h *Handler) Register(srv *grpc.Server) {
	healthpb.RegisterHealthServer(srv, h.health)

	for _, name := range []string{"", SnapshotServiceName, BlobServiceName} {
		h.health.SetServingStatus(name, healthpb.HealthCheckResponse_SERVING)
	}
}

// Shutdown flips every service to NOT_SERVING so that watchers see the
// server going away before the listener closes.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

// UnaryLogger logs every unary call with its method, status and duration.
func (h *Handler) UnaryLogger(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := next(ctx, req)

	event := h.logger.Info()
	if err != nil {
		event = h.logger.Err(err)
	}
	event.Str("method", info.FullMethod).Dur("duration", time.Since(start)).Send()

	return resp, err
}

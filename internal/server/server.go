package server

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-vault-sync/internal/config"
	"github.com/MKhiriev/go-vault-sync/internal/handler"
	"github.com/MKhiriev/go-vault-sync/internal/logger"
)

// transport is one listener managed by [server].
type transport interface {
	RunServer() error
	Shutdown()
}

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{logger: logger}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		grpcSrv, err := newGRPCServer(handlers.GRPC, cfg, logger)
		if err != nil {
			return nil, err
		}
		servers.gRPCServer = grpcSrv
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

func (s *server) transports() []transport {
	var ts []transport
	if s.httpServer != nil {
		ts = append(ts, s.httpServer)
	}
	if s.gRPCServer != nil {
		ts = append(ts, s.gRPCServer)
	}
	return ts
}

func (s *server) Run(ctx context.Context) error {
	return runTransports(ctx, s.transports(), s.logger)
}

func (s *server) Shutdown() {
	for _, t := range s.transports() {
		t.Shutdown()
	}
}

// runTransports starts every transport and blocks until ctx is done or one
// of them fails. All transports are shut down before it returns.
func runTransports(ctx context.Context, ts []transport, log *logger.Logger) error {
	failed := make(chan error, len(ts))
	for _, t := range ts {
		go func() {
			if err := t.RunServer(); err != nil {
				failed <- err
			}
		}()
	}

	var runErr error
	select {
	case <-ctx.Done():
	case err := <-failed:
		runErr = fmt.Errorf("%w: %w", errTransportStopped, err)
		log.Err(err).Str("func", "server.Run").Msg("transport failed, shutting down")
	}

	for _, t := range ts {
		t.Shutdown()
	}
	log.Info().Msg("server Shutdown gracefully")

	return runErr
}

package server

import (
	"fmt"
	"net"

	"google.golang.org/grpc"

	"github.com/MKhiriev/go-vault-sync/internal/config"
	myGRPC "github.com/MKhiriev/go-vault-sync/internal/handler/grpc"
	"github.com/MKhiriev/go-vault-sync/internal/logger"
)

type grpcServer struct {
	handler *myGRPC.Handler

	server          *grpc.Server
	gRPCNetListener net.Listener

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) (*grpcServer, error) {
	listener, err := net.Listen("tcp", cfg.GRPCAddress)
	if err != nil {
		return nil, fmt.Errorf("listen gRPC on %s: %w", cfg.GRPCAddress, err)
	}

	srv := grpc.NewServer(grpc.UnaryInterceptor(handler.UnaryLogger))
	handler.Register(srv)

	return &grpcServer{
		handler:         handler,
		server:          srv,
		gRPCNetListener: listener,
		logger:          logger,
	}, nil
}

func (g *grpcServer) RunServer() error {
	g.logger.Info().Str("address", g.gRPCNetListener.Addr().String()).Msg("gRPC server listening")
	if err := g.server.Serve(g.gRPCNetListener); err != nil {
		g.logger.Err(err).Str("func", "*grpcServer.RunServer").Msg("gRPC server Serve")
		return err
	}
	return nil
}

func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("gRPC server Shutdown")
	g.handler.Shutdown()
	g.server.GracefulStop()
}

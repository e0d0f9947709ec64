package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-vault-sync/internal/app"
	"github.com/MKhiriev/go-vault-sync/internal/config"
	"github.com/MKhiriev/go-vault-sync/internal/logger"
)

const shutdownTimeout = 10 * time.Second

type httpServer struct {
	server *http.Server
	logger *logger.Logger
}

func newHTTPServer(router *chi.Mux, cfg config.Server, logger *logger.Logger) *httpServer {
	var handler http.Handler = router
	if cfg.RequestTimeout > 0 {
		handler = http.TimeoutHandler(router, cfg.RequestTimeout, app.MsgRequestTimedOut)
	}

	return &httpServer{
		server: &http.Server{
			Addr:              cfg.HTTPAddress,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger: logger,
	}
}

// RunServer returns nil once Shutdown has closed the listener.
func (h *httpServer) RunServer() error {
	h.logger.Info().Str("address", h.server.Addr).Msg("HTTP server listening")
	if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		h.logger.Err(err).Str("func", "*httpServer.RunServer").Msg("HTTP server ListenAndServe")
		return err
	}
	return nil
}

func (h *httpServer) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := h.server.Shutdown(ctx); err != nil {
		h.logger.Err(err).Str("func", "*httpServer.Shutdown").Msg("HTTP server Shutdown")
	}
}

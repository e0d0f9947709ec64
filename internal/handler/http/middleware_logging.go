package http

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-vault-sync/internal/logger"
)

// withLogging writes one access log entry per request. Server errors are
// logged at error level and client errors at warn level.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		start := time.Now()

		lw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(lw, r)

		var event *zerolog.Event
		switch {
		case lw.status >= http.StatusInternalServerError:
			event = log.Error()
		case lw.status >= http.StatusBadRequest:
			event = log.Warn()
		default:
			event = log.Info()
		}

		event.
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Str("remote_addr", r.RemoteAddr).
			Int("status", lw.status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Send()
	})
}

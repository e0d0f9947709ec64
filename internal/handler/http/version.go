package http

import (
	"net/http"
)

// getServerVersion answers with the plain version string the client adapter
// compares against. It is the only route served without a token.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(h.services.AppInfoService.GetAppVersion(r.Context())))
}

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	router.Get("/api/version/", h.getServerVersion)

	// snapshot and blob routes, caller identity comes from the token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/vaults/snapshot", h.pullByOwner)
		r.Get("/api/vaults/legacy/snapshot", h.pullByLegacyUserPrefix)

		r.Get("/api/vaults/{vaultID}/snapshot", h.pullByOwnerVault)
		r.With(h.withHashing).Put("/api/vaults/{vaultID}/snapshot", h.pushByOwnerVault)

		r.Get("/api/vaults/{vaultID}/blobs", h.listBlobs)
		r.Get("/api/vaults/{vaultID}/blobs/{blobID}", h.getBlob)
		r.With(h.withHashing).Put("/api/vaults/{vaultID}/blobs/{blobID}", h.putBlob)
		r.Delete("/api/vaults/{vaultID}/blobs/{blobID}", h.deleteBlob)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

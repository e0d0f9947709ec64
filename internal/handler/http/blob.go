package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-vault-sync/internal/app"
	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/internal/utils"
	"github.com/MKhiriev/go-vault-sync/models"
)

// listBlobs returns blob metadata only; ciphertext is left out of the listing.
func (h *Handler) listBlobs(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	identity, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	blobs, err := h.services.BlobService.List(r.Context(), identity.OwnerID, chi.URLParam(r, "vaultID"))
	if err != nil {
		writeServiceError(w, log, "*Handler.listBlobs", err)
		return
	}
	for i := range blobs {
		blobs[i].Ciphertext = nil
	}

	utils.WriteJSON(w, blobs, http.StatusOK)
}

func (h *Handler) getBlob(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	identity, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	blob, err := h.services.BlobService.Get(r.Context(), identity.OwnerID, chi.URLParam(r, "vaultID"), chi.URLParam(r, "blobID"))
	if err != nil {
		writeServiceError(w, log, "*Handler.getBlob", err)
		return
	}

	utils.WriteJSON(w, blob, http.StatusOK)
}

// putBlob keys the blob by the caller and the URL, whatever the body says.
func (h *Handler) putBlob(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	identity, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	var put models.PutBlobRequest
	if err := json.NewDecoder(r.Body).Decode(&put); err != nil {
		log.Err(err).Str("func", "*Handler.putBlob").Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}
	put.Blob.OwnerID = identity.OwnerID
	put.Blob.VaultID = chi.URLParam(r, "vaultID")
	put.Blob.BlobID = chi.URLParam(r, "blobID")

	result, err := h.services.BlobService.Put(r.Context(), put)
	if err != nil {
		writeServiceError(w, log, "*Handler.putBlob", err)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) deleteBlob(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	identity, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	result, err := h.services.BlobService.Delete(r.Context(), identity.OwnerID, chi.URLParam(r, "vaultID"), chi.URLParam(r, "blobID"))
	if err != nil {
		writeServiceError(w, log, "*Handler.deleteBlob", err)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

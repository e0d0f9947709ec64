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

// pullByOwner returns the most recently updated snapshot of any vault of the caller.
func (h *Handler) pullByOwner(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	identity, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	snapshot, err := h.services.SnapshotService.PullByOwner(r.Context(), identity.OwnerID)
	if err != nil {
		writeServiceError(w, log, "*Handler.pullByOwner", err)
		return
	}

	utils.WriteJSON(w, snapshot, http.StatusOK)
}

func (h *Handler) pullByLegacyUserPrefix(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	identity, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	snapshot, err := h.services.SnapshotService.PullByLegacyUserPrefix(r.Context(), identity)
	if err != nil {
		writeServiceError(w, log, "*Handler.pullByLegacyUserPrefix", err)
		return
	}

	utils.WriteJSON(w, snapshot, http.StatusOK)
}

func (h *Handler) pullByOwnerVault(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	identity, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	snapshot, err := h.services.SnapshotService.Pull(r.Context(), identity.OwnerID, chi.URLParam(r, "vaultID"))
	if err != nil {
		writeServiceError(w, log, "*Handler.pullByOwnerVault", err)
		return
	}

	utils.WriteJSON(w, snapshot, http.StatusOK)
}

// pushByOwnerVault answers 200 for an accepted push and 409 with
// {"accepted":false} when the revision is stale.
func (h *Handler) pushByOwnerVault(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	identity, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	var push models.PushRequest
	if err := json.NewDecoder(r.Body).Decode(&push); err != nil {
		log.Err(err).Str("func", "*Handler.pushByOwnerVault").Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}
	push.OwnerID = identity.OwnerID
	push.VaultID = chi.URLParam(r, "vaultID")

	result, err := h.services.SnapshotService.Push(r.Context(), push)
	if err != nil {
		writeServiceError(w, log, "*Handler.pushByOwnerVault", err)
		return
	}

	status := http.StatusOK
	if !result.Accepted {
		log.Info().Str("vault_id", push.VaultID).Int64("revision", push.Revision).Msg("stale push rejected")
		status = http.StatusConflict
	}
	utils.WriteJSON(w, result, status)
}

func identityFromRequest(w http.ResponseWriter, r *http.Request) (models.Identity, bool) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok || identity.OwnerID == "" {
		logger.FromRequest(r).Err(ErrNoIdentity).Send()
		utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return models.Identity{}, false
	}
	return identity, true
}

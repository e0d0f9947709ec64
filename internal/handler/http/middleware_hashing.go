package http

import (
	"bytes"
	"crypto/hmac"
	"encoding/hex"
	"io"
	"net/http"

	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/internal/utils"
)

// withHashing checks the HashSHA256 header against the HMAC of the raw
// request body. It is a no-op when the server runs without a hash key.
func (h *Handler) withHashing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.hashKey == "" {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			log.Err(err).Str("func", "*Handler.withHashing").Msg("failed to read request body")
			utils.WriteError(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(body))

		received, err := hex.DecodeString(r.Header.Get(utils.HashHeader))
		if err != nil || len(received) == 0 || !hmac.Equal(received, utils.Hash(body)) {
			log.Error().Str("func", "*Handler.withHashing").
				Str("hash from request", r.Header.Get(utils.HashHeader)).
				Msg("hashes are not equal")
			utils.WriteError(w, ErrIntegrityCheckFailed.Error(), http.StatusBadRequest)
			return
		}

		next.ServeHTTP(w, r)
	})
}

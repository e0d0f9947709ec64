package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/internal/utils"
)

// auth resolves the caller identity from the bearer token and stores it in
// the request context with [utils.WithIdentity]. Requests without a valid
// token are rejected with 401 before reaching a handler.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Str("func", "*Handler.auth").Send()
			utils.WriteError(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Err(err).Str("func", "*Handler.auth").Send()
			utils.WriteError(w, err.Error(), http.StatusUnauthorized)
			return
		}

		identity, err := h.services.IdentityService.ParseToken(r.Context(), tokenString)
		if err != nil {
			log.Err(err).Str("func", "*Handler.auth").Msg("error occurred during parsing token")
			utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithIdentity(r.Context(), identity)))
	})
}

// getTokenFromAuthHeader splits "<scheme> <token>" and returns the token.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}

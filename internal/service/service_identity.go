package service

import (
	"context"

	"github.com/MKhiriev/go-vault-sync/internal/config"
	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/internal/utils"
	"github.com/MKhiriev/go-vault-sync/models"
)

// identityService resolves callers from signed access tokens. Accounts are
// issued elsewhere; this service only verifies.
type identityService struct {
	// tokenSignKey is the HMAC secret used to verify access tokens.
	tokenSignKey string

	// tokenIssuer is the expected "iss" claim.
	tokenIssuer string

	logger *logger.Logger
}

func NewIdentityService(cfg config.App, logger *logger.Logger) IdentityService {
	return &identityService{
		tokenSignKey: cfg.TokenSignKey,
		tokenIssuer:  cfg.TokenIssuer,
		logger:       logger,
	}
}

// ParseToken verifies tokenString and returns the caller identity. Any
// failure (expired, wrong issuer, malformed, no subject) is reported as
// ErrTokenIsExpiredOrInvalid.
func (s *identityService) ParseToken(ctx context.Context, tokenString string) (models.Identity, error) {
	identity, err := utils.ValidateAndParseAccessToken(tokenString, s.tokenSignKey, s.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "identityService.ParseToken").Msg("token rejected")
		return models.Identity{}, ErrTokenIsExpiredOrInvalid
	}

	return identity, nil
}

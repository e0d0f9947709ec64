package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-vault-sync/models"
)

// GenerateAccessToken creates a signed HMAC-SHA256 access token for identity.
//
// The token includes the following claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the owner id
//   - uid            : the account id used for legacy snapshot lookups (optional)
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//
// Example usage:
//
//	token, err := utils.GenerateAccessToken("vault-sync", models.Identity{OwnerID: "o1"}, time.Hour, "secret")
func GenerateAccessToken(issuer string, identity models.Identity, tokenDuration time.Duration, signKey string) (string, error) {
	if issuer == "" || identity.OwnerID == "" || tokenDuration == 0 || signKey == "" {
		return "", errors.New("invalid params for generating access token")
	}

	now := time.Now()
	claims := &models.IdentityClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   identity.OwnerID,
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: identity.UserID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during signing access token: %w", err)
	}

	return tokenString, nil
}

// ValidateAndParseAccessToken validates the given token string and resolves
// the caller identity from its claims.
//
// Validation includes:
//   - HMAC signature verification using the provided sign key
//   - Issuer (iss) claim check against the provided tokenIssuer
//   - Expiration (exp) claim check
//   - Subject (sub) claim presence
func ValidateAndParseAccessToken(tokenString, tokenSignKey, tokenIssuer string) (models.Identity, error) {
	claims := &models.IdentityClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return models.Identity{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	return claims.Identity()
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>" header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}

// OwnerFromAccessToken reads the owner id from the token subject without
// verifying the signature. The client uses it only to key local storage;
// the server verifies every token it receives.
func OwnerFromAccessToken(tokenString string) (string, bool) {
	claims := &models.IdentityClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return "", false
	}

	identity, err := claims.Identity()
	if err != nil {
		return "", false
	}
	return identity.OwnerID, true
}

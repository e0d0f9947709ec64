package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-vault-sync/internal/config"
	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/internal/utils"
	"github.com/MKhiriev/go-vault-sync/models"
)

func TestIdentityService_ParseToken(t *testing.T) {
	cfg := config.App{TokenSignKey: "sign", TokenIssuer: "vault-sync"}
	svc := NewIdentityService(cfg, logger.Nop())

	identity := models.Identity{OwnerID: "owner-1", UserID: "42"}
	token, err := utils.GenerateAccessToken("vault-sync", identity, time.Hour, "sign")
	require.NoError(t, err)

	got, err := svc.ParseToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, identity, got)
}

func TestIdentityService_ParseToken_Rejects(t *testing.T) {
	svc := NewIdentityService(config.App{TokenSignKey: "sign", TokenIssuer: "vault-sync"}, logger.Nop())

	foreign, err := utils.GenerateAccessToken("vault-sync", models.Identity{OwnerID: "o"}, time.Hour, "other-key")
	require.NoError(t, err)
	expired, err := utils.GenerateAccessToken("vault-sync", models.Identity{OwnerID: "o"}, -time.Minute, "sign")
	require.NoError(t, err)

	for name, token := range map[string]string{"foreign key": foreign, "expired": expired, "garbage": "x.y.z", "empty": ""} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.ParseToken(context.Background(), token)
			assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
		})
	}
}

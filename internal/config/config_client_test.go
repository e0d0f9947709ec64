package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-vault-sync/models"
)

func validClientSource() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			AccessToken: "token",
			VaultID:     "vault-1",
			KeySalt:     "salt",
		},
		Storage: Storage{
			DB:    DB{DSN: "/tmp/client.db"},
			Files: Files{VaultDir: "/tmp/vaults"},
		},
		Adapter: Adapter{HTTPAddress: "http://localhost:8080", RequestTimeout: time.Second},
		Sync:    Sync{Enabled: true},
	}
}

func TestNewClientConfig_Defaults(t *testing.T) {
	cfg, err := newClientConfig(validClientSource())
	require.NoError(t, err)

	assert.Equal(t, 24*time.Hour, cfg.Storage.CacheTTL)
	assert.Equal(t, models.StorageModeDurable, cfg.Storage.Mode)
	assert.Equal(t, 5*time.Minute, cfg.Workers.SyncInterval)
	assert.Equal(t, models.DefaultMaxFileBytes, cfg.Storage.MaxFileBytes)
	assert.Equal(t, models.DefaultMaxVaultBytes, cfg.Storage.MaxVaultBytes)
}

func TestNewClientConfig_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "in-memory dsn", mutate: func(c *StructuredConfig) { c.Storage.DB.DSN = ":memory:" }, wantErr: ErrInvalidStorageConfigs},
		{name: "durable without dir", mutate: func(c *StructuredConfig) { c.Storage.Files.VaultDir = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "sync without remote", mutate: func(c *StructuredConfig) { c.Adapter.HTTPAddress = "" }, wantErr: ErrInvalidAdapterConfigs},
		{name: "missing vault", mutate: func(c *StructuredConfig) { c.App.VaultID = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "sync without token", mutate: func(c *StructuredConfig) { c.App.AccessToken = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "negative interval", mutate: func(c *StructuredConfig) { c.Workers.SyncInterval = -time.Second }, wantErr: ErrInvalidWorkerConfigs},
		{
			name: "cache-only offline needs neither dir nor remote",
			mutate: func(c *StructuredConfig) {
				c.Storage.Cache.Mode = "cache-only"
				c.Storage.Files.VaultDir = ""
				c.Sync.Enabled = false
				c.Adapter = Adapter{}
				c.App.AccessToken = ""
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := validClientSource()
			tt.mutate(src)

			_, err := newClientConfig(src)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateServer(t *testing.T) {
	cfg := &StructuredConfig{
		App:     App{TokenSignKey: "k", TokenIssuer: "iss"},
		Storage: Storage{DB: DB{DSN: "postgres://localhost/vault"}},
		Server:  Server{HTTPAddress: "localhost:8080"},
	}
	assert.NoError(t, cfg.validateServer())

	cfg.Storage.S3.Bucket = "blobs"
	assert.ErrorIs(t, cfg.validateServer(), ErrInvalidStorageConfigs)

	cfg.Storage.S3.Region = "us-east-1"
	cfg.App.TokenSignKey = ""
	assert.ErrorIs(t, cfg.validateServer(), ErrInvalidAppConfigs)
}
